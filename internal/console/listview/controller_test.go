package listview

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orgconsole/internal/apiclient"
	"orgconsole/internal/authtoken"
)

type row struct {
	ID   int
	Name string
	City string
}

func claimsWithOrg(t *testing.T, orgID interface{}) authtoken.Claims {
	t.Helper()
	mc := jwt.MapClaims{"user_id": 1, "role": "admin"}
	if orgID != nil {
		mc["organization_id"] = orgID
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, mc)
	s, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	claims, err := authtoken.Decode(s)
	require.NoError(t, err)
	return claims
}

func rowFields(r row) []string { return []string{r.Name, r.City} }

func staticFetch(items []row, pg apiclient.Pagination) FetchFunc[row] {
	return func(ctx context.Context, params apiclient.Params) ([]row, apiclient.Pagination, error) {
		return items, pg, nil
	}
}

func TestRefreshScopesToOrganization(t *testing.T) {
	var got apiclient.Params
	fetch := func(ctx context.Context, params apiclient.Params) ([]row, apiclient.Pagination, error) {
		got = params
		return nil, apiclient.Pagination{Page: 1, TotalPages: 1}, nil
	}

	ctrl := New(claimsWithOrg(t, 3), 10, fetch, rowFields)
	require.NoError(t, ctrl.Refresh(context.Background()))

	assert.Equal(t, 3, got["organization_id"])
	assert.Equal(t, 1, got["page"])
	assert.Equal(t, 10, got["pageSize"])
}

func TestScopingErrorShortCircuits(t *testing.T) {
	called := false
	fetch := func(ctx context.Context, params apiclient.Params) ([]row, apiclient.Pagination, error) {
		called = true
		return nil, apiclient.Pagination{}, nil
	}

	ctrl := New(claimsWithOrg(t, nil), 10, fetch, rowFields)
	err := ctrl.Refresh(context.Background())
	assert.ErrorIs(t, err, authtoken.ErrInvalidOrg)
	assert.False(t, called, "no network call on a scoping error")
	assert.False(t, ctrl.CanMutate())
	assert.Equal(t, authtoken.ErrInvalidOrg.Error(), ctrl.ErrMsg())
}

func TestSetFilterResetsPage(t *testing.T) {
	var pages []interface{}
	fetch := func(ctx context.Context, params apiclient.Params) ([]row, apiclient.Pagination, error) {
		pages = append(pages, params["page"])
		return nil, apiclient.Pagination{Page: 1, TotalPages: 1}, nil
	}

	ctrl := New(claimsWithOrg(t, 1), 10, fetch, rowFields)
	require.NoError(t, ctrl.SetPage(context.Background(), 4))
	require.NoError(t, ctrl.SetFilter(context.Background(), "site_id", "2"))

	assert.Equal(t, []interface{}{4, 1}, pages)
	assert.Equal(t, 1, ctrl.Page())
	assert.Equal(t, "2", ctrl.Filter("site_id"))
}

func TestFilterDefaultsToAll(t *testing.T) {
	ctrl := New(claimsWithOrg(t, 1), 10, staticFetch(nil, apiclient.Pagination{}), rowFields)
	assert.Equal(t, "all", ctrl.Filter("is_active"))
}

func TestSetSearchTermDoesNotRefetch(t *testing.T) {
	var fetches int32
	fetch := func(ctx context.Context, params apiclient.Params) ([]row, apiclient.Pagination, error) {
		atomic.AddInt32(&fetches, 1)
		return []row{{ID: 1, Name: "Pune Plant", City: "Pune"}}, apiclient.Pagination{Page: 1, TotalPages: 1, TotalItems: 1}, nil
	}

	ctrl := New(claimsWithOrg(t, 1), 10, fetch, rowFields)
	require.NoError(t, ctrl.Refresh(context.Background()))
	ctrl.SetSearchTerm("pune")
	ctrl.SetSearchTerm("")
	assert.Equal(t, int32(1), atomic.LoadInt32(&fetches))
}

func TestVisibleItemsPageLocalSearch(t *testing.T) {
	items := []row{
		{ID: 1, Name: "Head Office", City: "Pune"},
		{ID: 2, Name: "Assembly Line A", City: "Nashik"},
		{ID: 3, Name: "Warehouse", City: "PUNE"},
	}
	ctrl := New(claimsWithOrg(t, 1), 10, staticFetch(items, apiclient.Pagination{Page: 1, TotalPages: 1, TotalItems: 3}), rowFields)
	require.NoError(t, ctrl.Refresh(context.Background()))

	ctrl.SetSearchTerm("pune")
	got := ctrl.VisibleItems()
	require.Len(t, got, 2, "match is case-insensitive across all display fields")
	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, 3, got[1].ID)

	ctrl.SetSearchTerm("  ")
	assert.Len(t, ctrl.VisibleItems(), 3, "blank search shows the whole page")

	ctrl.SetSearchTerm("zzz")
	assert.Empty(t, ctrl.VisibleItems())
}

func TestFailedFetchClearsItems(t *testing.T) {
	var fail atomic.Bool
	fetch := func(ctx context.Context, params apiclient.Params) ([]row, apiclient.Pagination, error) {
		if fail.Load() {
			return nil, apiclient.Pagination{}, &apiclient.APIError{StatusCode: 500, Message: "db down"}
		}
		return []row{{ID: 1, Name: "Head Office"}}, apiclient.Pagination{Page: 1, TotalPages: 1, TotalItems: 1}, nil
	}

	ctrl := New(claimsWithOrg(t, 1), 10, fetch, rowFields)
	require.NoError(t, ctrl.Refresh(context.Background()))
	require.Len(t, ctrl.VisibleItems(), 1)

	fail.Store(true)
	err := ctrl.Refresh(context.Background())
	require.Error(t, err)
	assert.Empty(t, ctrl.VisibleItems(), "stale rows must not survive a failed fetch")
	assert.Equal(t, "db down", ctrl.ErrMsg())

	fail.Store(false)
	require.NoError(t, ctrl.Refresh(context.Background()))
	assert.Equal(t, "", ctrl.ErrMsg())
}

func TestStaleResponseDiscarded(t *testing.T) {
	firstStarted := make(chan struct{})
	releaseFirst := make(chan struct{})
	var call int32

	fetch := func(ctx context.Context, params apiclient.Params) ([]row, apiclient.Pagination, error) {
		if atomic.AddInt32(&call, 1) == 1 {
			close(firstStarted)
			<-releaseFirst
			return []row{{ID: 1, Name: "slow page one"}}, apiclient.Pagination{Page: 1, TotalPages: 2, TotalItems: 20}, nil
		}
		return []row{{ID: 2, Name: "fast page two"}}, apiclient.Pagination{Page: 2, TotalPages: 2, TotalItems: 20}, nil
	}

	ctrl := New(claimsWithOrg(t, 1), 10, fetch, rowFields)

	done := make(chan error, 1)
	go func() { done <- ctrl.Refresh(context.Background()) }()

	<-firstStarted
	require.NoError(t, ctrl.SetPage(context.Background(), 2))

	close(releaseFirst)
	require.NoError(t, <-done)

	got := ctrl.VisibleItems()
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].ID, "the slow reply must not overwrite the newer page")
	assert.Equal(t, 2, ctrl.Page())
}

func TestDeleteAndRefreshIsPessimistic(t *testing.T) {
	var fetches int32
	fetch := func(ctx context.Context, params apiclient.Params) ([]row, apiclient.Pagination, error) {
		atomic.AddInt32(&fetches, 1)
		return nil, apiclient.Pagination{Page: 1, TotalPages: 1}, nil
	}
	ctrl := New(claimsWithOrg(t, 1), 10, fetch, rowFields)

	err := ctrl.DeleteAndRefresh(context.Background(), func(ctx context.Context) error {
		return &apiclient.APIError{StatusCode: 409, Message: "department has employees"}
	})
	require.Error(t, err)
	assert.Equal(t, int32(0), atomic.LoadInt32(&fetches), "no refetch when the delete is refused")

	require.NoError(t, ctrl.DeleteAndRefresh(context.Background(), func(ctx context.Context) error { return nil }))
	assert.Equal(t, int32(1), atomic.LoadInt32(&fetches))
}
