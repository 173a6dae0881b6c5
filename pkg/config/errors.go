package config

import "errors"

var (
	// ErrParsingConfig wraps failures from the env parser.
	ErrParsingConfig = errors.New("failed to parse environment variables into config")
	// ErrLoadingEnvFile wraps failures reading explicit .env files.
	ErrLoadingEnvFile = errors.New("failed to load env file")
	// ErrNilPointer is returned when Load receives a nil pointer.
	ErrNilPointer = errors.New("nil pointer provided to config loader")
)
