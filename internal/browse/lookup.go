package browse

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/prittywoman/harmonyctl/internal/catalog"
	"github.com/prittywoman/harmonyctl/internal/shared"
)

// Result is the state of the most recent lookup: the queried identifier,
// the resolved entity when it succeeded, and a displayable message when it
// failed. Value and ErrorMessage are never both set.
type Result[T any] struct {
	Query        string
	Value        *T
	ErrorMessage string
}

// Lookup is the search-by-id side channel of one view. It is independent of
// the view's page cache: resolving an entity never inserts it into the
// cached page, and mutations elsewhere never invalidate a resolved result.
type Lookup[T any] struct {
	mu        sync.Mutex
	fetch     func(ctx context.Context, id int) (*T, error)
	creds     catalog.TokenSource
	needsAuth bool
	result    Result[T]
}

// NewLookup creates a lookup over fetch. When needsAuth is set, a missing
// credential short-circuits before any request.
func NewLookup[T any](fetch func(ctx context.Context, id int) (*T, error), creds catalog.TokenSource, needsAuth bool) *Lookup[T] {
	return &Lookup[T]{fetch: fetch, creds: creds, needsAuth: needsAuth}
}

// Result returns the state of the most recent lookup.
func (l *Lookup[T]) Result() Result[T] {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.result
}

// Lookup resolves one entity by its identifier.
//
// A blank or non-numeric identifier fails with [shared.ErrMissingIdentifier]
// and issues no request; the previously displayed result is kept. A request
// failure stores a displayable message and clears the previously resolved
// entity, so a stale success never remains visible behind a newer error.
func (l *Lookup[T]) Lookup(ctx context.Context, rawID string) (*T, error) {
	rawID = strings.TrimSpace(rawID)
	if rawID == "" {
		return nil, shared.ErrMissingIdentifier
	}

	id, err := strconv.Atoi(rawID)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a numeric id", shared.ErrMissingIdentifier, rawID)
	}

	if l.needsAuth && (l.creds == nil || l.creds.Token() == "") {
		return nil, shared.ErrMissingCredential
	}

	value, err := l.fetch(ctx, id)

	l.mu.Lock()
	defer l.mu.Unlock()

	if err != nil {
		l.result = Result[T]{Query: rawID, ErrorMessage: fmt.Sprintf("failed to fetch %s: %v", rawID, err)}
		return nil, fmt.Errorf("%w: %v", shared.ErrFetchFailed, err)
	}

	l.result = Result[T]{Query: rawID, Value: value}
	return value, nil
}
