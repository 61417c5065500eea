// Package views persists named parameter sets.
//
// A saved view is a bookmark the application manages for the user: "my open
// orders", "recently modified" - a name attached to the full-encoded query
// string of one namespace. UI tables list the saved views, and applying one
// decodes its query back into params.
//
// Stores implement the Store interface; MemoryStore serves tests and
// single-node deployments, S3Store shares views across instances.
package views

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/querykit/querykit/pkg/qs"
)

// Sentinel errors for view stores.
var (
	// ErrNotFound is returned when no view exists under the given name.
	ErrNotFound = errors.New("views: view not found")

	// ErrEmptyName is returned when a view is saved without a name.
	ErrEmptyName = errors.New("views: view name must not be empty")
)

// View is one saved parameter set.
type View struct {
	// Name identifies the view within its store.
	Name string `json:"name"`

	// Namespace is the qs namespace the view belongs to.
	Namespace string `json:"namespace"`

	// Query is the full-encoded, unnamespaced form of the parameters.
	Query string `json:"query"`

	// SavedAt is when the view was last saved.
	SavedAt time.Time `json:"saved_at"`
}

// Store persists views. Implementations must be safe for concurrent use.
type Store interface {
	// Save stores the view, overwriting any existing view with the same name.
	Save(ctx context.Context, v View) error

	// Get returns the view with the given name, or ErrNotFound.
	Get(ctx context.Context, name string) (View, error)

	// List returns all views, ordered by name.
	List(ctx context.Context) ([]View, error)

	// Delete removes the view with the given name, or returns ErrNotFound.
	Delete(ctx context.Context, name string) error
}

// FromParams builds a view from a parameter object, capturing its
// full-encoded form.
func FromParams(name string, cfg *qs.Config, params qs.Params) (View, error) {
	if name == "" {
		return View{}, ErrEmptyName
	}
	return View{
		Name:      name,
		Namespace: cfg.Namespace(),
		Query:     qs.EncodeFull(params),
		SavedAt:   time.Now().UTC(),
	}, nil
}

// Apply decodes the view's query back into params under the config. The
// view's query is unnamespaced, so its keys are re-prefixed with the
// config's namespace before decoding; defaults merge beneath as usual.
func Apply(cfg *qs.Config, v View) (qs.Params, error) {
	return qs.Parse(cfg, namespaceQuery(cfg.Namespace(), v.Query))
}

// namespaceQuery prefixes every key of an unnamespaced query string with
// "<namespace>.".
func namespaceQuery(namespace, query string) string {
	if query == "" {
		return ""
	}
	pairs := strings.Split(query, "&")
	for i, p := range pairs {
		pairs[i] = namespace + "." + p
	}
	return strings.Join(pairs, "&")
}
