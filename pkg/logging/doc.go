// Package logging configures structured logging for the wine cellar binaries.
//
// Both cellard and cellar log JSON to stderr through log/slog. Every record
// carries the binary name and build version:
//
//	{"time":"2025-01-15T10:30:00.123Z","level":"INFO","msg":"lookup served",
//	 "module":"cellard","version":"v1.0.0","wineType":"BOLD_RED","region":"rioja"}
//
// The server sets the default logger from LOG_LEVEL at startup:
//
//	logging.SetDefaultStructuredLogger("cellard", version)
//
// The CLI resolves --log-level and --debug first:
//
//	logging.SetDefaultStructuredLoggerWithLevel("cellar", version, "debug")
//
// ParseLogLevel accepts debug, info, warn (or warning) and error in any case;
// anything else means info. NewLogLogger adapts the default handler for
// APIs that want a *log.Logger, such as http.Server.ErrorLog.
package logging
