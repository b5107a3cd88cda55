// Package logging constructs the shared zap logger for the service.
package logging

import (
	"go.uber.org/zap"
)

// New returns a production zap logger. Callers own the Sync call.
func New() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.DisableStacktrace = true
	return cfg.Build()
}
