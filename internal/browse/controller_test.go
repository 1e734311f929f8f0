package browse

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/prittywoman/harmonyctl/internal/catalog"
	"github.com/prittywoman/harmonyctl/internal/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID   int
	Name string
}

// fakeCollection is an in-memory Collection[item] that counts calls and can
// be programmed to fail or block.
type fakeCollection struct {
	mu         sync.Mutex
	listCalls  int
	writeCalls int

	listFn   func(page, pageSize int) (*catalog.Page[item], error)
	createFn func(fields map[string]any) (*item, error)
	updateFn func(id int, fields map[string]any) (*item, error)
	deleteFn func(id int) error
}

func (f *fakeCollection) List(_ context.Context, page, pageSize int) (*catalog.Page[item], error) {
	f.mu.Lock()
	f.listCalls++
	fn := f.listFn
	f.mu.Unlock()
	if fn == nil {
		return &catalog.Page[item]{}, nil
	}
	return fn(page, pageSize)
}

func (f *fakeCollection) Get(_ context.Context, id int) (*item, error) {
	return &item{ID: id}, nil
}

func (f *fakeCollection) Create(_ context.Context, fields map[string]any) (*item, error) {
	f.mu.Lock()
	f.writeCalls++
	fn := f.createFn
	f.mu.Unlock()
	if fn == nil {
		return &item{}, nil
	}
	return fn(fields)
}

func (f *fakeCollection) Update(_ context.Context, id int, fields map[string]any) (*item, error) {
	f.mu.Lock()
	f.writeCalls++
	fn := f.updateFn
	f.mu.Unlock()
	if fn == nil {
		return &item{ID: id}, nil
	}
	return fn(id, fields)
}

func (f *fakeCollection) Delete(_ context.Context, id int) error {
	f.mu.Lock()
	f.writeCalls++
	fn := f.deleteFn
	f.mu.Unlock()
	if fn == nil {
		return nil
	}
	return fn(id)
}

func (f *fakeCollection) counts() (int, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listCalls, f.writeCalls
}

// pagedItems simulates a server collection of total items served in fixed
// server order.
func pagedItems(total int) func(page, pageSize int) (*catalog.Page[item], error) {
	return func(page, pageSize int) (*catalog.Page[item], error) {
		start := (page - 1) * pageSize
		var results []item
		for i := start; i < total && i < start+pageSize; i++ {
			results = append(results, item{ID: i + 1, Name: fmt.Sprintf("item %d", i+1)})
		}
		return &catalog.Page[item]{Count: total, Results: results}, nil
	}
}

func newTestController(f *fakeCollection) *Controller[item] {
	rules := Rules{Name: "item", Required: []string{"name"}, LookupNeedsAuth: true}
	return NewController[item](f, func(i item) int { return i.ID }, rules, catalog.StaticToken("tok"))
}

func TestControllerLoadPage(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		f := &fakeCollection{listFn: pagedItems(25)}
		c := newTestController(f)

		require.NoError(t, c.LoadPage(ctx, 1, 10))

		page := c.Page()
		assert.Len(t, page.Items, 10)
		assert.LessOrEqual(t, len(page.Items), page.PageSize)
		assert.Equal(t, 25, page.TotalCount)
		assert.Equal(t, 3, page.TotalPages)
		assert.Equal(t, 1, page.Page)
	})

	t.Run("Partial Last Page", func(t *testing.T) {
		f := &fakeCollection{listFn: pagedItems(25)}
		c := newTestController(f)

		require.NoError(t, c.LoadPage(ctx, 3, 10))
		assert.Len(t, c.Page().Items, 5)
	})

	t.Run("Invalid Paging Issues No Request", func(t *testing.T) {
		f := &fakeCollection{listFn: pagedItems(25)}
		c := newTestController(f)

		require.ErrorIs(t, c.LoadPage(ctx, 0, 10), shared.ErrInvalidPaging)
		require.ErrorIs(t, c.LoadPage(ctx, 1, 0), shared.ErrInvalidPaging)

		lists, _ := f.counts()
		assert.Zero(t, lists)
	})

	t.Run("Missing Credential Issues No Request", func(t *testing.T) {
		f := &fakeCollection{listFn: pagedItems(25)}
		c := NewController[item](f, func(i item) int { return i.ID }, Rules{Name: "item"}, catalog.StaticToken(""))

		require.ErrorIs(t, c.LoadPage(ctx, 1, 10), shared.ErrMissingCredential)

		lists, _ := f.counts()
		assert.Zero(t, lists)
	})

	t.Run("Unauthorized Passes Through", func(t *testing.T) {
		f := &fakeCollection{listFn: func(int, int) (*catalog.Page[item], error) {
			return nil, fmt.Errorf("%w: GET /items/", shared.ErrUnauthorized)
		}}
		c := newTestController(f)

		require.ErrorIs(t, c.LoadPage(ctx, 1, 10), shared.ErrUnauthorized)
	})

	t.Run("Transport Failure Maps To FetchFailed", func(t *testing.T) {
		f := &fakeCollection{listFn: func(int, int) (*catalog.Page[item], error) {
			return nil, errors.New("connection refused")
		}}
		c := newTestController(f)

		require.ErrorIs(t, c.LoadPage(ctx, 1, 10), shared.ErrFetchFailed)
	})

	t.Run("Stale Response Is Discarded", func(t *testing.T) {
		started := make(chan struct{})
		release := make(chan struct{})
		f := &fakeCollection{}
		f.listFn = func(page, pageSize int) (*catalog.Page[item], error) {
			if page == 1 {
				close(started)
				<-release // first load stalls until the second has settled
				return &catalog.Page[item]{Count: 1, Results: []item{{ID: 99, Name: "stale"}}}, nil
			}
			return pagedItems(25)(page, pageSize)
		}
		c := newTestController(f)

		errCh := make(chan error, 1)
		go func() {
			errCh <- c.LoadPage(context.Background(), 1, 10)
		}()

		// Wait until the slow load is in flight, then issue the newer one.
		<-started
		require.NoError(t, c.LoadPage(context.Background(), 2, 10))

		close(release)
		require.ErrorIs(t, <-errCh, shared.ErrSuperseded)

		page := c.Page()
		assert.Equal(t, 2, page.Page)
		assert.Equal(t, 25, page.TotalCount)
	})
}

func TestControllerAdvance(t *testing.T) {
	ctx := context.Background()

	t.Run("Previous At First Page Is A NoOp", func(t *testing.T) {
		f := &fakeCollection{listFn: pagedItems(25)}
		c := newTestController(f)
		require.NoError(t, c.LoadPage(ctx, 1, 10))
		before, _ := f.counts()

		require.NoError(t, c.Advance(ctx, Previous))

		after, _ := f.counts()
		assert.Equal(t, before, after)
		assert.Equal(t, 1, c.Page().Page)
	})

	t.Run("Clamps At Last Page", func(t *testing.T) {
		// count=25, page_size=10 -> pages 1,2,3; the fourth advance clamps.
		f := &fakeCollection{listFn: pagedItems(25)}
		c := newTestController(f)
		require.NoError(t, c.LoadPage(ctx, 1, 10))

		var sequence []int
		for i := 0; i < 3; i++ {
			require.NoError(t, c.Advance(ctx, Next))
			sequence = append(sequence, c.Page().Page)
		}

		assert.Equal(t, []int{2, 3, 3}, sequence)
		lists, _ := f.counts()
		assert.Equal(t, 3, lists) // initial load + two real advances
	})
}

func TestControllerCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Appends Without Touching Counts", func(t *testing.T) {
		f := &fakeCollection{listFn: pagedItems(25)}
		f.createFn = func(fields map[string]any) (*item, error) {
			return &item{ID: 26, Name: fields["name"].(string)}, nil
		}
		c := newTestController(f)
		require.NoError(t, c.LoadPage(ctx, 1, 10))

		created, err := c.Create(ctx, map[string]any{"name": "new item"})
		require.NoError(t, err)
		assert.Equal(t, 26, created.ID)

		page := c.Page()
		assert.Len(t, page.Items, 11)
		assert.Equal(t, 26, page.Items[10].ID) // appended at the end
		assert.Equal(t, 25, page.TotalCount)   // deliberately stale
		assert.Equal(t, 3, page.TotalPages)
	})

	t.Run("Blank Required Field Short Circuits", func(t *testing.T) {
		f := &fakeCollection{}
		c := newTestController(f)

		_, err := c.Create(ctx, map[string]any{"name": "  "})
		require.ErrorIs(t, err, shared.ErrValidation)

		var verr *shared.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, []string{"name"}, verr.Fields)

		_, writes := f.counts()
		assert.Zero(t, writes)
	})

	t.Run("Failure Leaves Cache Unchanged", func(t *testing.T) {
		f := &fakeCollection{listFn: pagedItems(5)}
		f.createFn = func(map[string]any) (*item, error) { return nil, errors.New("boom") }
		c := newTestController(f)
		require.NoError(t, c.LoadPage(ctx, 1, 10))

		_, err := c.Create(ctx, map[string]any{"name": "x"})
		require.ErrorIs(t, err, shared.ErrCreateFailed)
		assert.Len(t, c.Page().Items, 5)
	})
}

func TestControllerUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("Replaces Matching Item In Place", func(t *testing.T) {
		f := &fakeCollection{listFn: pagedItems(5)}
		f.updateFn = func(id int, fields map[string]any) (*item, error) {
			return &item{ID: id, Name: fields["name"].(string)}, nil
		}
		c := newTestController(f)
		require.NoError(t, c.LoadPage(ctx, 1, 10))

		_, err := c.Update(ctx, 3, map[string]any{"name": "renamed"})
		require.NoError(t, err)

		page := c.Page()
		require.Len(t, page.Items, 5)
		for i, it := range page.Items {
			assert.Equal(t, i+1, it.ID) // order preserved
			if it.ID == 3 {
				assert.Equal(t, "renamed", it.Name)
			} else {
				assert.Equal(t, fmt.Sprintf("item %d", it.ID), it.Name)
			}
		}
	})

	t.Run("Failure Leaves Cache Unchanged", func(t *testing.T) {
		f := &fakeCollection{listFn: pagedItems(5)}
		f.updateFn = func(int, map[string]any) (*item, error) { return nil, errors.New("boom") }
		c := newTestController(f)
		require.NoError(t, c.LoadPage(ctx, 1, 10))

		_, err := c.Update(ctx, 3, map[string]any{"name": "renamed"})
		require.ErrorIs(t, err, shared.ErrUpdateFailed)
		assert.Equal(t, "item 3", c.Page().Items[2].Name)
	})
}

func TestControllerRemove(t *testing.T) {
	ctx := context.Background()

	t.Run("Drops Item Preserving Order", func(t *testing.T) {
		f := &fakeCollection{listFn: pagedItems(5)}
		c := newTestController(f)
		require.NoError(t, c.LoadPage(ctx, 1, 10))

		require.NoError(t, c.Remove(ctx, 3))

		page := c.Page()
		ids := make([]int, 0, len(page.Items))
		for _, it := range page.Items {
			ids = append(ids, it.ID)
		}
		assert.Equal(t, []int{1, 2, 4, 5}, ids)
		assert.Equal(t, 5, page.TotalCount) // deliberately stale
	})

	t.Run("Failure Leaves Cache Unchanged", func(t *testing.T) {
		f := &fakeCollection{listFn: pagedItems(5)}
		f.deleteFn = func(int) error { return errors.New("boom") }
		c := newTestController(f)
		require.NoError(t, c.LoadPage(ctx, 1, 10))

		require.ErrorIs(t, c.Remove(ctx, 3), shared.ErrDeleteFailed)
		assert.Len(t, c.Page().Items, 5)
	})
}
