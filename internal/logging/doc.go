// Package logging provides structured logging for bridgectl built on log/slog.
//
// The package offers a TTY-optimized text handler with color support,
// a JSON handler for machine consumption, a MultiHandler for teeing
// output to multiple destinations, and test helpers that route log
// output through testing.T.
//
// Loggers are constructed once at process start (in the root command)
// and threaded explicitly; packages receive a *slog.Logger rather than
// reading process-global state mid-operation.
package logging
