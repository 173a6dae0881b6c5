// Package config parses environment variables into typed structs.
//
// It combines github.com/joho/godotenv for .env files with
// github.com/caarlos0/env/v11 for struct tags. Every config type is parsed at
// most once per process; later Load calls for the same type are served from
// an in-memory cache until ResetCache is called.
//
//	type ServerConfig struct {
//		Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	var cfg ServerConfig
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
package config
