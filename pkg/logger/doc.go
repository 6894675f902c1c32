// Package logger provides a thin factory around Go's slog package with
// functional options for configuration and helper attribute constructors.
//
// The session manager and the tracker accept any *slog.Logger; this package
// is how applications build one with consistent defaults. The single
// factory - New - creates a *slog.Logger configured by Option functions:
//
//   - Select an output format (text or json)
//   - Set the minimum log level
//   - Supply default slog.Attr values applied to every record
//   - Pick per-environment presets (WithDevelopment, WithProduction)
//
// Helper constructors such as Error, Code, SessionID and BatchSize live in
// attr.go and keep attribute naming consistent across the codebase; the
// "code" attribute in particular carries the stable diagnostic codes the
// session layer emits (session.parse_error and friends).
//
// # Usage
//
//	log := logger.New(
//	    logger.WithProduction("my-service"),
//	)
//	logger.SetAsDefault(log)
//
//	manager := session.New(
//	    session.WithCookieStore(jar),
//	    session.WithLogger(log),
//	)
package logger
