package binder

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/querykit/querykit/pkg/qs"
)

func mustConfig(t *testing.T, namespace string, opts ...qs.Option) *qs.Config {
	t.Helper()
	cfg, err := qs.NewConfig(namespace, opts...)
	if err != nil {
		t.Fatalf("NewConfig(%q) failed: %v", namespace, err)
	}
	return cfg
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// TestMiddlewareBindsParams tests decode-into-context on a chi router.
func TestMiddlewareBindsParams(t *testing.T) {
	cfg := mustConfig(t, "o")

	var got qs.Params
	r := chi.NewRouter()
	r.Use(Middleware(cfg, WithLogger(quietLogger())))
	r.Get("/list", func(w http.ResponseWriter, req *http.Request) {
		got, _ = FromRequest(req, "o")
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/list?o.page=2&o.name=foo", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
	if got == nil {
		t.Fatal("no params bound")
	}
	if !got["page"].Equal(qs.Int(2)) {
		t.Errorf("page: got %v, want 2", got["page"])
	}
	if !got["page_size"].Equal(qs.Int(5)) {
		t.Errorf("page_size: got %v, want default 5", got["page_size"])
	}
	if !got["name"].Equal(qs.String("foo")) {
		t.Errorf("name: got %v, want \"foo\"", got["name"])
	}
}

// TestStackedNamespaces tests two binders sharing one route.
func TestStackedNamespaces(t *testing.T) {
	users := mustConfig(t, "u")
	orders := mustConfig(t, "ord")

	var gotUsers, gotOrders qs.Params
	r := chi.NewRouter()
	r.Use(Middleware(users, WithLogger(quietLogger())))
	r.Use(Middleware(orders, WithLogger(quietLogger())))
	r.Get("/dash", func(w http.ResponseWriter, req *http.Request) {
		gotUsers, _ = FromRequest(req, "u")
		gotOrders, _ = FromRequest(req, "ord")
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dash?u.name=alice&ord.status=open", nil))

	if !gotUsers["name"].Equal(qs.String("alice")) {
		t.Errorf("users name: got %v", gotUsers["name"])
	}
	if _, ok := gotUsers["status"]; ok {
		t.Error("orders field leaked into users binding")
	}
	if !gotOrders["status"].Equal(qs.String("open")) {
		t.Errorf("orders status: got %v", gotOrders["status"])
	}
}

// TestCoercionFailureKeepsServing tests that a bad integer never fails the
// request and is counted on the metrics collector.
func TestCoercionFailureKeepsServing(t *testing.T) {
	cfg := mustConfig(t, "o")

	reg := prometheus.NewRegistry()
	m := NewMetrics(WithRegistry(reg))

	var got qs.Params
	handler := Middleware(cfg, WithLogger(quietLogger()), WithMetrics(m))(
		http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			got, _ = FromRequest(req, "o")
		}),
	)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/list?o.page=abc", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
	if !got["page"].Equal(qs.String("abc")) {
		t.Errorf("page: got %v, want the raw string kept", got["page"])
	}

	if n := testutil.ToFloat64(m.coercionFailures.WithLabelValues("o")); n != 1 {
		t.Errorf("coercion failures: got %v, want 1", n)
	}
	if n := testutil.ToFloat64(m.decodesTotal.WithLabelValues("o", "coercion_error")); n != 1 {
		t.Errorf("decodes total: got %v, want 1", n)
	}
}

// TestTracingEnabled tests the traced path against the no-op global
// provider.
func TestTracingEnabled(t *testing.T) {
	cfg := mustConfig(t, "o")

	var got qs.Params
	handler := Middleware(cfg,
		WithLogger(quietLogger()),
		WithTracing(WithTracerName("test"), WithIncludeQuery(true)),
	)(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		got, _ = FromRequest(req, "o")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/list?o.name=foo", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
	if !got["name"].Equal(qs.String("foo")) {
		t.Errorf("name: got %v, want \"foo\"", got["name"])
	}
}

// TestFromContextMiss tests lookup of an unbound namespace.
func TestFromContextMiss(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, ok := FromRequest(req, "nope"); ok {
		t.Error("FromRequest reported params for an unbound namespace")
	}
}
