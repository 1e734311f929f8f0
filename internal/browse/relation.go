package browse

import (
	"context"
	"sync"
)

// RelationView is a read-only join attached to a resolved owner for
// display. Related and Err are independent: zero related items with a nil
// Err means the owner legitimately has none, while a non-nil Err marks a
// failed fetch.
type RelationView[O, R any] struct {
	Owner   O
	Related []R
	Err     error
}

// Resolver fetches the dependent collection of an owner entity through a
// server-side filter. Resolving is idempotent; each call replaces the
// previous view, nothing accumulates.
type Resolver[O, R any] struct {
	mu    sync.Mutex
	fetch func(ctx context.Context, owner O) ([]R, error)
	view  RelationView[O, R]
	has   bool
}

// NewResolver creates a resolver over fetch.
func NewResolver[O, R any](fetch func(ctx context.Context, owner O) ([]R, error)) *Resolver[O, R] {
	return &Resolver[O, R]{fetch: fetch}
}

// Resolve fetches the owner's dependent collection and stores the resulting
// view. On failure the view holds the owner, an empty collection, and the
// error.
func (r *Resolver[O, R]) Resolve(ctx context.Context, owner O) RelationView[O, R] {
	related, err := r.fetch(ctx, owner)

	view := RelationView[O, R]{Owner: owner, Related: related, Err: err}
	if view.Related == nil {
		view.Related = []R{}
	}

	r.mu.Lock()
	r.view = view
	r.has = true
	r.mu.Unlock()

	return view
}

// View returns the most recent relation view; ok is false before the first
// Resolve.
func (r *Resolver[O, R]) View() (RelationView[O, R], bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.view, r.has
}
