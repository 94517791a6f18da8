package service

import "errors"

var (
	ErrVesselIDRequired = errors.New("vessel id is required")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
