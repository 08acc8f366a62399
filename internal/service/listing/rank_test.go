package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prostormat/prostormat-api/internal/domain"
)

func venue(id int64, priority int, source string) domain.Venue {
	v := domain.Venue{ID: id, PrioritySource: source}
	if priority > 0 {
		v.Priority = &priority
	}
	return v
}

func featured(id int64, position int) domain.Venue {
	v := venue(id, 1, domain.PrioritySourceHomepage)
	if position > 0 {
		v.HomepageSlot = &domain.HomepageSlot{Position: position}
	}
	return v
}

func idsOf(venues []domain.Venue) []int64 {
	ids := make([]int64, 0, len(venues))
	for _, v := range venues {
		ids = append(ids, v.ID)
	}
	return ids
}

func tiersOf(venues []domain.Venue) []domain.Tier {
	tiers := make([]domain.Tier, 0, len(venues))
	for _, v := range venues {
		tiers = append(tiers, v.Tier())
	}
	return tiers
}

func TestSequenceTierOrder(t *testing.T) {
	venues := []domain.Venue{
		venue(10, 0, ""),
		venue(11, 3, "manual"),
		venue(12, 2, "manual"),
		featured(13, 2),
		venue(14, 1, "manual"),
		venue(15, 0, ""),
		featured(16, 1),
		venue(17, 2, "manual"),
	}

	got := Sequence(venues, 7)

	require.Len(t, got, len(venues))

	tiers := tiersOf(got)
	for i := 1; i < len(tiers); i++ {
		assert.LessOrEqual(t, tiers[i-1], tiers[i], "tier boundary violated at index %d", i)
	}

	// Featured block leads in slot order regardless of seed.
	assert.Equal(t, int64(16), got[0].ID)
	assert.Equal(t, int64(13), got[1].ID)
	assert.Equal(t, int64(14), got[2].ID)
}

func TestSequenceFeaturedOrder(t *testing.T) {
	noSlot := featured(40, 0)
	venues := []domain.Venue{
		featured(30, 5),
		noSlot,
		featured(20, 1),
		featured(50, 0),
		featured(10, 5),
	}

	got := Sequence(venues, 123)

	// Slot position first, missing position last, ties broken by ID.
	assert.Equal(t, []int64{20, 10, 30, 40, 50}, idsOf(got))
}

func TestSequenceDeterministicForSeed(t *testing.T) {
	venues := make([]domain.Venue, 0, 40)
	for i := int64(1); i <= 40; i++ {
		venues = append(venues, venue(i, int(i%4), "manual"))
	}

	first := Sequence(venues, 42)
	second := Sequence(venues, 42)

	assert.Equal(t, idsOf(first), idsOf(second))
}

func TestSequenceIndependentOfFetchOrder(t *testing.T) {
	venues := make([]domain.Venue, 0, 30)
	for i := int64(1); i <= 30; i++ {
		venues = append(venues, venue(i, 0, ""))
	}

	reversed := make([]domain.Venue, len(venues))
	for i, v := range venues {
		reversed[len(venues)-1-i] = v
	}

	assert.Equal(t, idsOf(Sequence(venues, 42)), idsOf(Sequence(reversed, 42)))
}

func TestSequenceDifferentSeedsDiffer(t *testing.T) {
	venues := make([]domain.Venue, 0, 50)
	for i := int64(1); i <= 50; i++ {
		venues = append(venues, venue(i, 0, ""))
	}

	a := Sequence(venues, 1)
	b := Sequence(venues, 2)

	assert.NotEqual(t, idsOf(a), idsOf(b))
	assert.ElementsMatch(t, idsOf(a), idsOf(b))
}

func TestSequenceIsPermutation(t *testing.T) {
	venues := []domain.Venue{
		featured(1, 1),
		venue(2, 1, "manual"),
		venue(3, 1, "manual"),
		venue(4, 2, "manual"),
		venue(5, 3, "manual"),
		venue(6, 0, ""),
		venue(7, 0, ""),
		venue(8, 0, ""),
	}

	got := Sequence(venues, -9)

	assert.ElementsMatch(t, idsOf(venues), idsOf(got))
}

func TestSequenceTiersShuffleIndependently(t *testing.T) {
	// Two tiers with identical ID sets must not follow the same
	// permutation for one seed.
	tier1 := make([]domain.Venue, 0, 20)
	tier2 := make([]domain.Venue, 0, 20)
	for i := int64(1); i <= 20; i++ {
		tier1 = append(tier1, venue(i, 1, "manual"))
		tier2 = append(tier2, venue(i+100, 2, "manual"))
	}

	got := Sequence(append(tier1, tier2...), 42)
	require.Len(t, got, 40)

	firstIDs := idsOf(got[:20])
	secondIDs := make([]int64, 0, 20)
	for _, id := range idsOf(got[20:]) {
		secondIDs = append(secondIDs, id-100)
	}

	assert.NotEqual(t, firstIDs, secondIDs)
}

func TestMintSeedVaries(t *testing.T) {
	seen := make(map[int32]bool)
	for range 16 {
		seen[MintSeed()] = true
	}

	assert.Greater(t, len(seen), 1)
}
