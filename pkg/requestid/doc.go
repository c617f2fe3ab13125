// Package requestid tags every request with a correlation id.
//
// Middleware takes the id from the X-Request-ID header when it is well formed
// and generates a UUID otherwise. The id is echoed in the response and stored
// in the request context, where LoggerExtractor picks it up for structured
// logs:
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//	r.Use(requestid.Middleware)
package requestid
