// Command sessiondemo serves a per-client visit counter backed by session
// files (or Redis with SESSION_STORE=redis).
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/dmitrymomot/filesession/pkg/config"
	"github.com/dmitrymomot/filesession/pkg/httpserver"
	"github.com/dmitrymomot/filesession/pkg/logger"
	"github.com/dmitrymomot/filesession/pkg/redis"
	"github.com/dmitrymomot/filesession/pkg/requestid"
	"github.com/dmitrymomot/filesession/pkg/session"
)

type appConfig struct {
	Env         string `env:"APP_ENV" envDefault:"development"`
	Store       string `env:"SESSION_STORE" envDefault:"file"`
	RedisPrefix string `env:"SESSION_REDIS_PREFIX" envDefault:"sess:"`

	HTTP    httpserver.Config
	Session session.Config
	Redis   redis.Config
}

func main() {
	if err := run(context.Background()); err != nil {
		slog.Error("sessiondemo failed", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load[appConfig]()
	if err != nil {
		return err
	}

	log := logger.New(
		logger.WithEnvironment(cfg.Env, "sessiondemo"),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	opts := []session.Option{
		session.WithLogger(log),
		session.WithMetrics(session.NewMetrics(reg)),
	}
	var checks []func(context.Context) error

	switch cfg.Store {
	case "file":
	case "redis":
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer client.Close()

		opts = append(opts, session.WithStore(session.NewRedisStore(client, session.WithKeyPrefix(cfg.RedisPrefix))))
		checks = append(checks, redis.Healthcheck(client))
	default:
		return fmt.Errorf("unknown SESSION_STORE %q, want file or redis", cfg.Store)
	}

	mgr, err := session.NewFromConfig(cfg.Session, opts...)
	if err != nil {
		return err
	}
	log.Info("session store ready",
		slog.String("store", cfg.Store),
		logger.Path(mgr.Store().Path("")),
		logger.Duration(mgr.Config().TTL),
	)

	srv := httpserver.New(cfg.HTTP, httpserver.WithLogger(log))
	return srv.Run(ctx, newRouter(mgr, log, reg, checks...))
}
