package config

import (
	"log/slog"

	"github.com/subosito/gotenv"
)

// LoadEnv loads the .env file for the given environment name; when the
// file is missing the process environment is used as-is.
func LoadEnv(env string) {
	envFile := "config/envs/.env." + env
	if err := gotenv.Load(envFile); err != nil {
		slog.Warn("No .env file found, using OS environment",
			slog.String("env", env))
	}
}
