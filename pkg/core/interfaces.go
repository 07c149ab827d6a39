package core

// Logger receives render progress and diagnostics
type Logger interface {
	Printf(format string, args ...any)
}

// NopLogger discards everything
type NopLogger struct{}

func (NopLogger) Printf(string, ...any) {}
