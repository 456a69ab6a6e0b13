package core

// Logger interface for renderer logging. *slog.Logger satisfies it.
type Logger interface {
	Info(msg string, args ...any)
	Debug(msg string, args ...any)
}

// NopLogger discards everything
type NopLogger struct{}

func (NopLogger) Info(string, ...any)  {}
func (NopLogger) Debug(string, ...any) {}
