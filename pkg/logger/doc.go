// Package logger builds slog loggers for the engine with context-aware
// attribute injection.
//
// Handlers are wrapped in a decorator that pulls request-scoped
// attributes out of the context on every log call, so the resolved
// organization or acting principal appears on each line without
// threading it through call sites:
//
//	log := logger.New(
//	    logger.WithProduction("authz-engine"),
//	    logger.WithContextExtractors(tenant.LoggerExtractor()),
//	)
package logger
