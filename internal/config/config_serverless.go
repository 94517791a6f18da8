package config

// GetEnvConfig loads and validates the application configuration from
// environment variables and built-in defaults only.
//
// It is the entry point for the serverless runtime: function platforms pass
// settings exclusively through the environment, there are no command-line
// flags to parse and no config file on disk. Priority follows
// [GetStructuredConfig] with the flag and JSON sources absent.
func GetEnvConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withDefaults().
		build()
}
