// Package logger provides structured logging functionality for the
// application, built on log/slog with a JSON handler and a configurable
// level.
package logger
