package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrymomot/filesession/pkg/httpserver"
	"github.com/dmitrymomot/filesession/pkg/logger"
	"github.com/dmitrymomot/filesession/pkg/requestid"
	"github.com/dmitrymomot/filesession/pkg/session"
)

func newRouter(mgr *session.Manager, log *slog.Logger, gatherer prometheus.Gatherer, checks ...func(context.Context) error) http.Handler {
	r := chi.NewRouter()
	r.Use(requestid.Middleware)

	r.Get("/healthz", httpserver.HealthCheckHandler(log))
	r.Get("/readyz", httpserver.HealthCheckHandler(log, checks...))
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	r.Group(func(r chi.Router) {
		r.Use(mgr.Middleware())
		r.Get("/", visits)
		r.Post("/forget", forget(log))
	})

	return r
}

func visits(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")

	sess, ok := session.FromContext(r.Context())
	if !ok {
		_, _ = io.WriteString(w, "The session will be created after you reload this page.")
		return
	}

	n, ok := sess.GetInt("visits")
	if ok {
		n++
	}
	sess.Set("visits", n)

	_, _ = fmt.Fprintf(w, "You have visited this page %d times today.", n)
}

func forget(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := session.FromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		if err := sess.Destroy(r.Context()); err != nil {
			log.ErrorContext(r.Context(), "failed to destroy session",
				logger.SessionID(sess.ID()),
				logger.Error(err),
			)
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
