package listview

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCascadeLoadRoot(t *testing.T) {
	orgs := NewLevel("organization", func(ctx context.Context, parentID int) ([]Option, error) {
		assert.Equal(t, 0, parentID)
		return []Option{{ID: 1, Label: "Acme Industries"}}, nil
	})
	sites := NewLevel("site", func(ctx context.Context, parentID int) ([]Option, error) {
		return nil, nil
	})

	c := NewCascade(orgs, sites)
	require.NoError(t, c.LoadRoot(context.Background()))
	require.Len(t, c.Options(0), 1)
	assert.Equal(t, "Acme Industries", c.Options(0)[0].Label)
}

func TestSelectClearsChildrenBeforeChildFetch(t *testing.T) {
	c := NewCascade(
		NewLevel("organization", func(ctx context.Context, parentID int) ([]Option, error) {
			return []Option{{ID: 1, Label: "Acme"}}, nil
		}),
		NewLevel("site", func(ctx context.Context, parentID int) ([]Option, error) {
			return []Option{{ID: 10, Label: "Head Office"}, {ID: 11, Label: "Plant"}}, nil
		}),
		NewLevel("department", func(ctx context.Context, parentID int) ([]Option, error) {
			return []Option{{ID: 100, Label: "Engineering"}}, nil
		}),
	)

	ctx := context.Background()
	require.NoError(t, c.LoadRoot(ctx))
	require.NoError(t, c.Select(ctx, 0, 1))
	require.NoError(t, c.Select(ctx, 1, 10))
	require.NoError(t, c.Select(ctx, 2, 100))

	// Re-selecting the organization wipes everything below it; only the
	// immediate child list is refetched.
	require.NoError(t, c.Select(ctx, 0, 1))
	assert.Equal(t, 0, c.Value(1))
	assert.Equal(t, 0, c.Value(2))
	assert.Len(t, c.Options(1), 2)
	assert.Empty(t, c.Options(2), "grandchild options stay empty until their parent is picked")
}

func TestSelectUnsetLeavesChildEmpty(t *testing.T) {
	var siteFetches int
	c := NewCascade(
		NewLevel("organization", func(ctx context.Context, parentID int) ([]Option, error) {
			return []Option{{ID: 1, Label: "Acme"}}, nil
		}),
		NewLevel("site", func(ctx context.Context, parentID int) ([]Option, error) {
			siteFetches++
			return []Option{{ID: 10, Label: "Head Office"}}, nil
		}),
	)

	ctx := context.Background()
	require.NoError(t, c.Select(ctx, 0, 1))
	require.Equal(t, 1, siteFetches)

	require.NoError(t, c.Select(ctx, 0, 0))
	assert.Equal(t, 1, siteFetches, "clearing a selection must not refetch the child")
	assert.Empty(t, c.Options(1))
}

func TestSelectChildFetchFailureKeepsSelection(t *testing.T) {
	boom := errors.New("boom")
	c := NewCascade(
		NewLevel("organization", func(ctx context.Context, parentID int) ([]Option, error) {
			return []Option{{ID: 1, Label: "Acme"}}, nil
		}),
		NewLevel("site", func(ctx context.Context, parentID int) ([]Option, error) {
			return nil, boom
		}),
	)

	err := c.Select(context.Background(), 0, 1)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, c.Value(0), "the selection itself sticks even when the child list fails")
	assert.Empty(t, c.Options(1))
}

func TestSelectOutOfRangeIsNoop(t *testing.T) {
	c := NewCascade(NewLevel("organization", func(ctx context.Context, parentID int) ([]Option, error) {
		return nil, nil
	}))
	assert.NoError(t, c.Select(context.Background(), 5, 1))
	assert.NoError(t, c.Select(context.Background(), -1, 1))
	assert.Equal(t, 0, c.Value(5))
}
