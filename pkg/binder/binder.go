// Package binder connects query-state decoding to the HTTP layer.
//
// The binder is standard `func(http.Handler) http.Handler` middleware, so it
// mounts on Chi, Gorilla, or the stdlib mux. It decodes the request's raw
// query string against a qs.Config and stores the resulting params in the
// request context, keyed by namespace so several widgets' binders can stack
// on one route:
//
//	r := chi.NewRouter()
//	r.Use(binder.Middleware(ordersCfg))
//	r.Use(binder.Middleware(usersCfg))
//	r.Get("/dashboard", func(w http.ResponseWriter, req *http.Request) {
//	    orders, _ := binder.FromRequest(req, "orders")
//	    // render the orders table from its params
//	})
//
// Decoding never fails a request: a hand-edited URL with a bad integer
// degrades to its raw string value, and the coercion failure is logged and
// counted instead of surfaced to the client.
package binder

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/querykit/querykit/pkg/qs"
)

// ctxKey keys bound params by namespace in the request context.
type ctxKey struct {
	namespace string
}

// Option configures the binder middleware.
type Option func(*options)

type options struct {
	logger  *slog.Logger
	metrics *Metrics
	tracing *TracingConfig
}

// WithLogger sets the logger for coercion failures. Defaults to
// slog.Default.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithMetrics records decode counts, durations, and coercion failures on
// the given collector.
func WithMetrics(m *Metrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}

// WithTracing wraps each decode in an OpenTelemetry span.
func WithTracing(opts ...TracingOption) Option {
	return func(o *options) {
		cfg := defaultTracingConfig()
		for _, opt := range opts {
			opt(&cfg)
		}
		cfg.resolve()
		o.tracing = &cfg
	}
}

// Middleware returns middleware that decodes the request query string for
// the config's namespace and stores the params in the request context.
func Middleware(cfg *qs.Config, opts ...Option) func(http.Handler) http.Handler {
	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			endSpan := func(error) {}
			if o.tracing != nil {
				ctx, endSpan = o.tracing.start(ctx, cfg.Namespace(), r.URL.RawQuery)
			}

			start := time.Now()
			params, err := qs.Parse(cfg, r.URL.RawQuery)
			if err != nil {
				o.logger.Warn("query coercion failed",
					"namespace", cfg.Namespace(),
					"query", r.URL.RawQuery,
					"err", err,
				)
			}
			if o.metrics != nil {
				o.metrics.recordDecode(cfg.Namespace(), err, time.Since(start))
			}
			endSpan(err)

			ctx = context.WithValue(ctx, ctxKey{namespace: cfg.Namespace()}, params)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// FromContext returns the params bound for the namespace, if any.
func FromContext(ctx context.Context, namespace string) (qs.Params, bool) {
	p, ok := ctx.Value(ctxKey{namespace: namespace}).(qs.Params)
	return p, ok
}

// FromRequest returns the params bound for the namespace on the request.
func FromRequest(r *http.Request, namespace string) (qs.Params, bool) {
	return FromContext(r.Context(), namespace)
}
