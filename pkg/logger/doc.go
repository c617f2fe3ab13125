// Package logger builds *slog.Logger instances with a small set of functional
// options and keeps attribute names consistent across the module.
//
// New picks a text or JSON handler, applies static attributes and wraps the
// result in LogHandlerDecorator, which injects request-scoped attributes
// through ContextExtractor callbacks on every record.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(os.Getenv("APP_ENV"), "sessiondemo"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
//	log.WarnContext(ctx, "corrupt session file removed",
//	    logger.SessionID(id),
//	    logger.Path(path),
//	)
//
// Libraries in this module accept an optional *slog.Logger and fall back to
// Discard when none is supplied.
//
// Error and Errors return an empty attribute for nil errors, so
//
//	log.Info("saved", logger.Error(err))
//
// needs no nil check.
package logger
