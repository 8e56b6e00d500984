// Package logger provides structured logging functionality for the
// application: a JSON slog setup driven by configuration and helpers for
// carrying a request-scoped logger through context.Context.
package logger
