// Package obslog wires the ambient structured logger every other package
// in this tree accepts rather than constructs: a Module traces resolution
// decisions through one, a Bridge traces RPC round-trips through one,
// cmd/folp builds the one real instance and threads it down. Grounded on
// theRebelliousNerd-codenerd's cmd/nerd/main.go, which builds a
// zap.NewProductionConfig() logger at startup and bumps it to debug level
// under a verbose flag rather than hand-rolling log-level plumbing.
package obslog

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a zap.Logger suitable for a long-running engine process:
// JSON-encoded production defaults, with the level dropped to Debug when
// verbose is set. Callers own the returned logger's lifetime and should
// defer logger.Sync() once they're done with it.
func New(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}

// Nop returns a logger that discards everything, for call sites (tests,
// library callers that never opted into logging) that need a non-nil
// *zap.Logger but no actual output.
func Nop() *zap.Logger {
	return zap.NewNop()
}

// Named returns a child logger scoped to component, the convention every
// package in this tree follows instead of passing ad hoc prefixes:
// obslog.Named(base, "module"), obslog.Named(base, "smtbridge"), and so on.
func Named(base *zap.Logger, component string) *zap.Logger {
	if base == nil {
		base = Nop()
	}
	return base.Named(component)
}
