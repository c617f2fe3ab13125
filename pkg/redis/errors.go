package redis

import "errors"

var (
	// ErrEmptyConnectionURL is returned by Connect when Config.ConnectionURL is blank.
	ErrEmptyConnectionURL = errors.New("redis: empty connection URL")
	// ErrFailedToParseRedisConnString wraps redis.ParseURL failures.
	ErrFailedToParseRedisConnString = errors.New("redis: failed to parse connection URL")
	// ErrRedisNotReady is returned when no connection attempt succeeded.
	ErrRedisNotReady = errors.New("redis: server not ready")
	// ErrHealthcheckFailed wraps a failed ping from Healthcheck.
	ErrHealthcheckFailed = errors.New("redis: healthcheck failed")
)
