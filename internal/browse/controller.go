package browse

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/prittywoman/harmonyctl/internal/catalog"
	"github.com/prittywoman/harmonyctl/internal/shared"
)

// Collection is the remote CRUD surface a [Controller] drives. Satisfied by
// [catalog.Resource].
type Collection[T any] interface {
	List(ctx context.Context, page, pageSize int) (*catalog.Page[T], error)
	Get(ctx context.Context, id int) (*T, error)
	Create(ctx context.Context, fields map[string]any) (*T, error)
	Update(ctx context.Context, id int, fields map[string]any) (*T, error)
	Delete(ctx context.Context, id int) error
}

// Page is the controller's cached slice of the collection plus pagination
// metadata. Items hold the server's order for the loaded page.
type Page[T any] struct {
	Items      []T
	Page       int
	PageSize   int
	TotalCount int
	TotalPages int
}

// Direction selects the neighbor page for [Controller.Advance].
type Direction int

const (
	Next Direction = iota
	Previous
)

// Controller keeps one view's page of a paginated remote collection
// consistent with create/update/delete operations.
//
// All cache writes happen under one mutex, so a page replacement and a
// local patch cannot race: whichever operation settles last wins. Page
// loads additionally carry a generation counter; a load that settles after
// a newer load was issued is discarded with [shared.ErrSuperseded].
type Controller[T any] struct {
	mu     sync.Mutex
	source Collection[T]
	id     func(T) int
	rules  Rules
	creds  catalog.TokenSource

	page    Page[T]
	loading bool
	issued  uint64 // newest load generation handed out
}

// NewController creates a controller over source. id extracts an entity's
// server-assigned identifier; creds supplies the shared credential.
func NewController[T any](source Collection[T], id func(T) int, rules Rules, creds catalog.TokenSource) *Controller[T] {
	return &Controller[T]{
		source: source,
		id:     id,
		rules:  rules,
		creds:  creds,
		page:   Page[T]{Page: 1, PageSize: 10, TotalPages: 1},
	}
}

// Rules returns the controller's resource configuration.
func (c *Controller[T]) Rules() Rules { return c.rules }

// Page returns a snapshot of the cached page. The items slice is copied so
// callers can't mutate the cache.
func (c *Controller[T]) Page() Page[T] {
	c.mu.Lock()
	defer c.mu.Unlock()

	snapshot := c.page
	snapshot.Items = make([]T, len(c.page.Items))
	copy(snapshot.Items, c.page.Items)
	return snapshot
}

// Loading reports whether a page load is in flight.
func (c *Controller[T]) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// LoadPage fetches the given page and replaces the cached one.
//
// page and pageSize must both be >= 1; violations fail with
// [shared.ErrInvalidPaging] before any request. A missing credential fails
// with [shared.ErrMissingCredential] before any request. An HTTP 401 maps
// to [shared.ErrUnauthorized], any other failure to [shared.ErrFetchFailed].
// When a newer LoadPage was issued while this one was in flight, the result
// is discarded and [shared.ErrSuperseded] returned.
func (c *Controller[T]) LoadPage(ctx context.Context, page, pageSize int) error {
	if page < 1 || pageSize < 1 {
		return fmt.Errorf("%w: page=%d page_size=%d", shared.ErrInvalidPaging, page, pageSize)
	}
	if c.creds == nil || c.creds.Token() == "" {
		return shared.ErrMissingCredential
	}

	c.mu.Lock()
	c.issued++
	gen := c.issued
	c.loading = true
	c.mu.Unlock()

	result, err := c.source.List(ctx, page, pageSize)

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen == c.issued {
		c.loading = false
	}

	if err != nil {
		if errors.Is(err, shared.ErrUnauthorized) {
			return err
		}
		return fmt.Errorf("%w: %v", shared.ErrFetchFailed, err)
	}

	if gen != c.issued {
		return shared.ErrSuperseded
	}

	c.page = Page[T]{
		Items:      result.Results,
		Page:       page,
		PageSize:   pageSize,
		TotalCount: result.Count,
		TotalPages: ceilDiv(result.Count, pageSize),
	}
	return nil
}

// Advance loads the neighbor page in the given direction. Past either
// boundary it is a no-op, matching the disabled pagination buttons in the
// views: no request is issued and no error returned.
func (c *Controller[T]) Advance(ctx context.Context, dir Direction) error {
	c.mu.Lock()
	target := c.page.Page
	if dir == Next {
		target++
	} else {
		target--
	}

	upper := c.page.TotalPages
	if upper < 1 {
		upper = 1
	}
	if target < 1 || target > upper {
		c.mu.Unlock()
		return nil
	}
	pageSize := c.page.PageSize
	c.mu.Unlock()

	return c.LoadPage(ctx, target, pageSize)
}

// Create validates the required fields, posts the entity, and appends the
// server's representation to the cached page.
//
// The cached TotalCount and TotalPages are intentionally left stale; they
// catch up on the next LoadPage.
func (c *Controller[T]) Create(ctx context.Context, fields map[string]any) (*T, error) {
	if err := c.rules.Validate(fields); err != nil {
		return nil, err
	}
	if c.creds == nil || c.creds.Token() == "" {
		return nil, shared.ErrMissingCredential
	}

	created, err := c.source.Create(ctx, fields)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrCreateFailed, err)
	}

	c.mu.Lock()
	c.page.Items = append(c.page.Items, *created)
	c.mu.Unlock()

	return created, nil
}

// Update validates the required fields, patches the entity, and replaces
// the matching cached item with the server's representation. Items on other
// pages are untouched; an id not on the cached page patches nothing.
func (c *Controller[T]) Update(ctx context.Context, id int, fields map[string]any) (*T, error) {
	if err := c.rules.Validate(fields); err != nil {
		return nil, err
	}
	if c.creds == nil || c.creds.Token() == "" {
		return nil, shared.ErrMissingCredential
	}

	updated, err := c.source.Update(ctx, id, fields)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrUpdateFailed, err)
	}

	c.mu.Lock()
	for i, item := range c.page.Items {
		if c.id(item) == id {
			c.page.Items[i] = *updated
			break
		}
	}
	c.mu.Unlock()

	return updated, nil
}

// Remove deletes the entity and drops it from the cached page, preserving
// the order of the remaining items. Counts are left stale, same as Create.
func (c *Controller[T]) Remove(ctx context.Context, id int) error {
	if c.creds == nil || c.creds.Token() == "" {
		return shared.ErrMissingCredential
	}

	if err := c.source.Delete(ctx, id); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrDeleteFailed, err)
	}

	c.mu.Lock()
	kept := c.page.Items[:0]
	for _, item := range c.page.Items {
		if c.id(item) != id {
			kept = append(kept, item)
		}
	}
	c.page.Items = kept
	c.mu.Unlock()

	return nil
}

func ceilDiv(count, size int) int {
	if count <= 0 {
		return 0
	}
	return (count + size - 1) / size
}
