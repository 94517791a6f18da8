// Package serverless exposes the aggregation API as a single
// platform-agnostic function handler for FaaS deployments (Vercel, Yandex
// Cloud Functions, and similar). The full application is initialized lazily on
// the first request and cached for the lifetime of the function instance.
package serverless

import (
	"net/http"
	"sync"

	"github.com/joho/godotenv"

	"github.com/pmezhin/vesselwatch/internal/adapter"
	"github.com/pmezhin/vesselwatch/internal/config"
	httphandler "github.com/pmezhin/vesselwatch/internal/handler/http"
	"github.com/pmezhin/vesselwatch/internal/logger"
	"github.com/pmezhin/vesselwatch/internal/service"
	"github.com/pmezhin/vesselwatch/internal/session"
)

var (
	initOnce  sync.Once
	initErr   error
	cachedMux http.Handler
)

// Handler is the entry point for serverless platforms.
//
// Configuration comes exclusively from environment variables (a local .env
// file is honoured for development). Initialization runs once per function
// instance; if it fails, every request answers 500 until the instance is
// recycled.
func Handler(w http.ResponseWriter, r *http.Request) {
	// CORS headers
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Trace-ID")
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	initOnce.Do(initialize)

	if initErr != nil || cachedMux == nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	cachedMux.ServeHTTP(w, r)
}

func initialize() {
	_ = godotenv.Load()

	log := logger.NewLogger("serverless")

	cfg, err := config.GetEnvConfig()
	if err != nil {
		initErr = err
		log.Error().Err(err).Msg("error loading serverless config")
		return
	}

	sess := session.Load(cfg.Session.CookieFile, log)

	tracker, err := adapter.NewHTTPTrackerAdapter(cfg.Upstream, sess, log)
	if err != nil {
		initErr = err
		log.Error().Err(err).Msg("error creating tracker adapter")
		return
	}

	services, err := service.NewServices(tracker, *cfg, log)
	if err != nil {
		initErr = err
		log.Error().Err(err).Msg("error creating services")
		return
	}

	cachedMux = httphandler.NewHandler(services, log).Init()
}

// ResetForTesting clears the cached initialization state so tests can invoke
// Handler against different environments. Not safe for concurrent use.
func ResetForTesting() {
	initOnce = sync.Once{}
	initErr = nil
	cachedMux = nil
}
