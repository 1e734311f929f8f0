package browse

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/prittywoman/harmonyctl/internal/catalog"
	"github.com/prittywoman/harmonyctl/internal/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	ctx := context.Background()

	t.Run("Blank Identifier Issues No Request", func(t *testing.T) {
		var calls atomic.Int32
		l := NewLookup(func(context.Context, int) (*item, error) {
			calls.Add(1)
			return nil, nil
		}, catalog.StaticToken("tok"), true)

		_, err := l.Lookup(ctx, "   ")
		require.ErrorIs(t, err, shared.ErrMissingIdentifier)
		assert.Zero(t, calls.Load())
	})

	t.Run("Non Numeric Identifier Issues No Request", func(t *testing.T) {
		var calls atomic.Int32
		l := NewLookup(func(context.Context, int) (*item, error) {
			calls.Add(1)
			return nil, nil
		}, catalog.StaticToken("tok"), true)

		_, err := l.Lookup(ctx, "abc")
		require.ErrorIs(t, err, shared.ErrMissingIdentifier)
		assert.Zero(t, calls.Load())
	})

	t.Run("Missing Credential When Auth Required", func(t *testing.T) {
		l := NewLookup(func(context.Context, int) (*item, error) {
			t.Fatal("unexpected fetch")
			return nil, nil
		}, catalog.StaticToken(""), true)

		_, err := l.Lookup(ctx, "7")
		require.ErrorIs(t, err, shared.ErrMissingCredential)
	})

	t.Run("Open Endpoint Works Without Credential", func(t *testing.T) {
		l := NewLookup(func(_ context.Context, id int) (*item, error) {
			return &item{ID: id, Name: "open"}, nil
		}, catalog.StaticToken(""), false)

		value, err := l.Lookup(ctx, "7")
		require.NoError(t, err)
		assert.Equal(t, 7, value.ID)
	})

	t.Run("Success Stores Value And Clears Error", func(t *testing.T) {
		fail := true
		l := NewLookup(func(_ context.Context, id int) (*item, error) {
			if fail {
				return nil, errors.New("not found")
			}
			return &item{ID: id, Name: "found"}, nil
		}, catalog.StaticToken("tok"), true)

		_, err := l.Lookup(ctx, "7")
		require.Error(t, err)
		require.NotEmpty(t, l.Result().ErrorMessage)

		fail = false
		_, err = l.Lookup(ctx, "7")
		require.NoError(t, err)

		result := l.Result()
		assert.Equal(t, "7", result.Query)
		require.NotNil(t, result.Value)
		assert.Equal(t, "found", result.Value.Name)
		assert.Empty(t, result.ErrorMessage)
	})

	t.Run("Failure Clears Previously Resolved Entity", func(t *testing.T) {
		l := NewLookup(func(_ context.Context, id int) (*item, error) {
			if id == 7 {
				return &item{ID: 7, Name: "found"}, nil
			}
			return nil, errors.New("not found")
		}, catalog.StaticToken("tok"), true)

		_, err := l.Lookup(ctx, "7")
		require.NoError(t, err)
		require.NotNil(t, l.Result().Value)

		_, err = l.Lookup(ctx, "8")
		require.ErrorIs(t, err, shared.ErrFetchFailed)

		result := l.Result()
		assert.Nil(t, result.Value) // a stale success never stays visible
		assert.NotEmpty(t, result.ErrorMessage)
		assert.Equal(t, "8", result.Query)
	})
}
