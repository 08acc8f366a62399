package listing

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prostormat/prostormat-api/internal/domain"
)

func intPtr(n int) *int { return &n }

func int64Ptr(n int64) *int64 { return &n }

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestFilterCapacityBuckets(t *testing.T) {
	venues := []domain.Venue{
		{ID: 1, Name: "Small Cafe", CapacitySeated: intPtr(10), Status: domain.VenuePublished},
		{ID: 2, Name: "Wine Bar", CapacitySeated: intPtr(20), CapacityStanding: intPtr(28), Status: domain.VenuePublished},
		{ID: 3, Name: "Gallery", CapacitySeated: intPtr(45), Status: domain.VenuePublished},
		{ID: 4, Name: "Loft", CapacityStanding: intPtr(59), Status: domain.VenuePublished},
		{ID: 5, Name: "Hall", CapacitySeated: intPtr(80), Status: domain.VenuePublished},
		{ID: 6, Name: "Arena", CapacitySeated: intPtr(600), Status: domain.VenuePublished},
		{ID: 7, Name: "Unknown", Status: domain.VenuePublished},
	}

	tests := []struct {
		name    string
		bucket  string
		wantIDs []int64
	}{
		{
			name:    "bucket 0 is 0-29",
			bucket:  "0",
			wantIDs: []int64{1, 2},
		},
		{
			name:    "bucket 30 is 30-59 on either capacity",
			bucket:  "30",
			wantIDs: []int64{3, 4},
		},
		{
			name:    "bucket 60 is 60-119",
			bucket:  "60",
			wantIDs: []int64{5},
		},
		{
			name:    "bucket 480 is unbounded above",
			bucket:  "480",
			wantIDs: []int64{6},
		},
		{
			name:    "empty bucket imposes nothing",
			bucket:  "",
			wantIDs: []int64{1, 2, 3, 4, 5, 6, 7},
		},
		{
			name:    "all sentinel imposes nothing",
			bucket:  CapacityAll,
			wantIDs: []int64{1, 2, 3, 4, 5, 6, 7},
		},
		{
			name:    "unknown bucket key is ignored",
			bucket:  "9000",
			wantIDs: []int64{1, 2, 3, 4, 5, 6, 7},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Filter{Capacity: tt.bucket}

			got := f.Apply(testLogger(), venues)

			ids := make([]int64, 0, len(got))
			for _, v := range got {
				ids = append(ids, v.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestFilterCapacityExcludesVenuesWithoutCapacity(t *testing.T) {
	f := Filter{Capacity: "30"}

	got := f.Apply(testLogger(), []domain.Venue{
		{ID: 1, Name: "No capacity data"},
	})

	assert.Empty(t, got)
}

func TestFilterDistrict(t *testing.T) {
	venues := []domain.Venue{
		{ID: 1, District: "Praha 1", Address: "Na Příkopě 3"},
		{ID: 2, District: "", Address: "Na Příkopě 3, Praha 1, 110 00"},
		{ID: 3, District: "Praha 10", Address: "Vršovická 12"},
		{ID: 4, District: "", Address: "Vinohradská 8, Praha 10"},
		{ID: 5, District: "praha 1", Address: ""},
	}

	f := Filter{District: "Praha 1"}
	got := f.Apply(testLogger(), venues)

	require.Len(t, got, 3)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(2), got[1].ID)
	assert.Equal(t, int64(5), got[2].ID)
}

func TestFilterDistrictDoesNotPrefixMatch(t *testing.T) {
	// "Praha 1" must not swallow "Praha 10"; the address comparison is
	// component equality, not substring.
	f := Filter{District: "Praha 1"}

	got := f.Apply(testLogger(), []domain.Venue{
		{ID: 1, District: "Praha 10"},
		{ID: 2, Address: "Korunní 2, Praha 10"},
	})

	assert.Empty(t, got)
}

func TestFilterQuery(t *testing.T) {
	venues := []domain.Venue{
		{ID: 1, Name: "Rooftop Bar", Description: "city views"},
		{ID: 2, Name: "Gallery", Description: "includes a small bar area"},
		{ID: 3, Name: "Konferenční sál", Address: "Barrandov, Praha 5"},
		{ID: 4, Name: "Club", Description: "dance floor"},
	}

	f := Filter{Query: "  BAR "}
	got := f.Apply(testLogger(), venues)

	require.Len(t, got, 3)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(2), got[1].ID)
	assert.Equal(t, int64(3), got[2].ID)
}

func TestFilterVenueTypeMatchesPrimaryAndTags(t *testing.T) {
	venues := []domain.Venue{
		{ID: 1, VenueType: "conference"},
		{ID: 2, VenueType: "restaurant", VenueTypes: []string{"conference", "wedding"}},
		{ID: 3, VenueType: "club"},
	}

	f := Filter{VenueType: "conference"}
	got := f.Apply(testLogger(), venues)

	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(2), got[1].ID)
}

func TestFilterStatusesAndSubvenues(t *testing.T) {
	venues := []domain.Venue{
		{ID: 1, Status: domain.VenuePublished},
		{ID: 2, Status: domain.VenueHidden},
		{ID: 3, Status: domain.VenuePublished, ParentID: int64Ptr(1)},
		{ID: 4, Status: domain.VenueDraft},
	}

	f := Filter{Statuses: []domain.VenueStatus{domain.VenuePublished}}
	got := f.Apply(testLogger(), venues)
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)

	f.IncludeSubvenues = true
	got = f.Apply(testLogger(), venues)
	require.Len(t, got, 2)
	assert.Equal(t, int64(3), got[1].ID)
}

func TestFilterConstraintsCombineWithAND(t *testing.T) {
	venues := []domain.Venue{
		{ID: 1, Name: "Rooftop Bar", District: "Praha 1", CapacitySeated: intPtr(40), Status: domain.VenuePublished},
		{ID: 2, Name: "Cellar Bar", District: "Praha 2", CapacitySeated: intPtr(40), Status: domain.VenuePublished},
		{ID: 3, Name: "Rooftop Garden", District: "Praha 1", CapacitySeated: intPtr(40), Status: domain.VenuePublished},
		{ID: 4, Name: "Tiny Bar", District: "Praha 1", CapacitySeated: intPtr(12), Status: domain.VenuePublished},
	}

	f := Filter{
		Query:    "bar",
		District: "Praha 1",
		Capacity: "30",
	}

	got := f.Apply(testLogger(), venues)

	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)
}
