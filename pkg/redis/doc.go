// Package redis connects to the Redis server that backs session.RedisStore
// when sessions are not kept on the local filesystem.
//
// Connect retries the initial ping according to Config, and Healthcheck
// exposes the connection to readiness probes:
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	store := session.NewRedisStore(client, session.WithKeyPrefix("sess:"))
//
// Config fields are read from REDIS_* environment variables via
// github.com/caarlos0/env.
package redis
