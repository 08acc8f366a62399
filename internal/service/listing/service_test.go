package listing

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prostormat/prostormat-api/internal/domain"
)

type fakeSource struct {
	venues []domain.Venue
	err    error

	gotStatuses  []domain.VenueStatus
	gotSubvenues bool
	calls        int
}

func (f *fakeSource) ListForRanking(_ context.Context, statuses []domain.VenueStatus, includeSubvenues bool) ([]domain.Venue, error) {
	f.calls++
	f.gotStatuses = statuses
	f.gotSubvenues = includeSubvenues

	if f.err != nil {
		return nil, f.err
	}
	return f.venues, nil
}

func publishedVenues(n int) []domain.Venue {
	venues := make([]domain.Venue, 0, n)
	for i := int64(1); i <= int64(n); i++ {
		venues = append(venues, domain.Venue{
			ID:     i,
			Slug:   fmt.Sprintf("venue-%d", i),
			Status: domain.VenuePublished,
		})
	}
	return venues
}

func seedPtr(s int32) *int32 { return &s }

func TestListPagination(t *testing.T) {
	src := &fakeSource{venues: publishedVenues(45)}
	svc := New(src, nil, testLogger(), Config{})

	tests := []struct {
		name        string
		page        int
		wantLen     int
		wantHasMore bool
	}{
		{name: "first page is full", page: 1, wantLen: 20, wantHasMore: true},
		{name: "middle page is full", page: 2, wantLen: 20, wantHasMore: true},
		{name: "last page holds the remainder", page: 3, wantLen: 5, wantHasMore: false},
		{name: "past the end is empty not an error", page: 4, wantLen: 0, wantHasMore: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := svc.List(context.Background(), Params{Page: tt.page, Seed: seedPtr(42)})
			require.NoError(t, err)

			assert.Len(t, page.Venues, tt.wantLen)
			assert.Equal(t, tt.wantHasMore, page.HasMore)
			assert.Equal(t, 45, page.TotalCount)
			assert.Equal(t, 3, page.TotalPages)
			assert.Equal(t, tt.page, page.CurrentPage)
			assert.Equal(t, int32(42), page.Seed)
		})
	}
}

func TestListPagesAreDisjointAndCoverEverything(t *testing.T) {
	src := &fakeSource{venues: publishedVenues(45)}
	svc := New(src, nil, testLogger(), Config{})

	seen := make(map[int64]int)
	for p := 1; p <= 3; p++ {
		page, err := svc.List(context.Background(), Params{Page: p, Seed: seedPtr(42)})
		require.NoError(t, err)

		for _, v := range page.Venues {
			seen[v.ID]++
		}
	}

	require.Len(t, seen, 45)
	for id, count := range seen {
		assert.Equal(t, 1, count, "venue %d appeared %d times", id, count)
	}
}

func TestListMintsSeedWhenAbsent(t *testing.T) {
	src := &fakeSource{venues: publishedVenues(5)}
	svc := New(src, nil, testLogger(), Config{})

	page, err := svc.List(context.Background(), Params{Page: 1})
	require.NoError(t, err)

	// The minted seed replays to the identical ordering.
	replay, err := svc.List(context.Background(), Params{Page: 1, Seed: seedPtr(page.Seed)})
	require.NoError(t, err)

	assert.Equal(t, idsOf(page.Venues), idsOf(replay.Venues))
}

func TestListDefaultsInvalidPageToFirst(t *testing.T) {
	src := &fakeSource{venues: publishedVenues(5)}
	svc := New(src, nil, testLogger(), Config{})

	page, err := svc.List(context.Background(), Params{Page: -3, Seed: seedPtr(1)})
	require.NoError(t, err)

	assert.Equal(t, 1, page.CurrentPage)
	assert.Len(t, page.Venues, 5)
}

func TestListVisibilityGate(t *testing.T) {
	tests := []struct {
		name          string
		includeHidden bool
		isAdmin       bool
		wantStatuses  []domain.VenueStatus
	}{
		{
			name:         "public caller gets public set",
			wantStatuses: domain.PublicStatuses(),
		},
		{
			name:          "include_hidden without admin is ignored",
			includeHidden: true,
			wantStatuses:  domain.PublicStatuses(),
		},
		{
			name:          "admin with include_hidden sees everything",
			includeHidden: true,
			isAdmin:       true,
			wantStatuses: []domain.VenueStatus{
				domain.VenuePublished,
				domain.VenueActive,
				domain.VenueHidden,
				domain.VenueDraft,
			},
		},
		{
			name:         "admin without include_hidden gets public set",
			isAdmin:      true,
			wantStatuses: domain.PublicStatuses(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &fakeSource{venues: publishedVenues(3)}
			svc := New(src, nil, testLogger(), Config{})

			_, err := svc.List(context.Background(), Params{
				Page:          1,
				Seed:          seedPtr(1),
				IncludeHidden: tt.includeHidden,
				IsAdmin:       tt.isAdmin,
			})
			require.NoError(t, err)

			assert.Equal(t, tt.wantStatuses, src.gotStatuses)
		})
	}
}

func TestListStoreFailure(t *testing.T) {
	src := &fakeSource{err: errors.New("connection refused")}
	svc := New(src, nil, testLogger(), Config{})

	page, err := svc.List(context.Background(), Params{Page: 1, Seed: seedPtr(1)})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.Nil(t, page)
}

func TestListFilterRunsBeforeSequencing(t *testing.T) {
	venues := publishedVenues(30)
	for i := range venues {
		if i%2 == 0 {
			venues[i].District = "Praha 1"
		} else {
			venues[i].District = "Praha 7"
		}
	}

	src := &fakeSource{venues: venues}
	svc := New(src, nil, testLogger(), Config{})

	page, err := svc.List(context.Background(), Params{
		Page:   1,
		Seed:   seedPtr(42),
		Filter: Filter{District: "Praha 7"},
	})
	require.NoError(t, err)

	assert.Equal(t, 15, page.TotalCount)
	assert.Len(t, page.Venues, 15)
	for _, v := range page.Venues {
		assert.Equal(t, "Praha 7", v.District)
	}
}

func TestListSubvenuesPassThrough(t *testing.T) {
	src := &fakeSource{venues: publishedVenues(3)}
	svc := New(src, nil, testLogger(), Config{})

	_, err := svc.List(context.Background(), Params{
		Page:   1,
		Seed:   seedPtr(1),
		Filter: Filter{IncludeSubvenues: true},
	})
	require.NoError(t, err)

	assert.True(t, src.gotSubvenues)
}
