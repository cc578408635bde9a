// Package logger builds the dashboard's *slog.Logger.
//
// New takes functional options for format, level, output and static
// attributes. WithEnvironment selects text output at debug level for
// development and JSON at info level for staging and production.
//
// Context extractors registered with WithContextExtractors run on every
// record, which is how request and visitor IDs reach log lines without being
// passed around:
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, cfg.Name),
//	    logger.WithContextExtractors(
//	        requestid.LoggerExtractor(),
//	        workspace.LoggerExtractor(),
//	    ),
//	)
//
// The attribute helpers (Error, RequestID, VisitorID, Form, Table, ...) keep
// key names consistent across packages.
package logger
