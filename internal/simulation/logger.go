package simulation

// Logger is the minimal structured-logging surface the engine needs to
// report non-fatal conditions (spec §7's ConvergenceWarning). Shaped after
// the calculation.Logger the teacher's cmd/rpgo/main.go already implements
// against (Debugf/Infof/Warnf/Errorf).
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger discards everything. The engine's default logger.
type NopLogger struct{}

func (NopLogger) Debugf(string, ...any) {}
func (NopLogger) Infof(string, ...any)  {}
func (NopLogger) Warnf(string, ...any)  {}
func (NopLogger) Errorf(string, ...any) {}
