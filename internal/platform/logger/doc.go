// Package logger provides structured logging functionality for the application
// using Go's standard library log/slog package. It configures the process-wide
// default logger and carries request-scoped loggers through context.Context so
// that every log line emitted while serving a request shares its trace ID.
package logger
