package logging

import "context"

// NopLogger discards everything. Useful in tests and as a safe default.
type NopLogger struct{}

// NewNopLogger returns a Logger that drops all records.
func NewNopLogger() *NopLogger { return &NopLogger{} }

func (l *NopLogger) Debug(ctx context.Context, msg string, args ...any) {}
func (l *NopLogger) Info(ctx context.Context, msg string, args ...any)  {}
func (l *NopLogger) Warn(ctx context.Context, msg string, args ...any)  {}
func (l *NopLogger) Error(ctx context.Context, msg string, args ...any) {}
func (l *NopLogger) With(args ...any) Logger                            { return l }
