package impl

import (
	"io"
	"log/slog"
	"time"

	"aegis/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:        12,
			MaxFailedAttempts: 5,
			LockDuration:      15 * time.Minute,
			CodeTTL:           10 * time.Minute,
			ResetTokenTTL:     15 * time.Minute,
		},
	}
}
