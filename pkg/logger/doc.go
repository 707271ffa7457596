// Package logger builds configured slog loggers for the fingerprint
// pipeline and its CLI.
//
// It is a thin factory over log/slog: pick a format (text for humans,
// JSON for aggregation), a level, an output writer, and optional static
// attributes. The fingerprint generator accepts any *slog.Logger, so this
// package is a convenience, not a requirement.
package logger
