// Package logging builds the zap logger used across promptdeck.
package logging

import "go.uber.org/zap"

// New returns a sugared logger. Verbose mode emits debug-level console
// output; otherwise the logger is a no-op so normal CLI output stays
// clean.
func New(verbose bool) (*zap.SugaredLogger, error) {
	if !verbose {
		return zap.NewNop().Sugar(), nil
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}
