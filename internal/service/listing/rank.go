package listing

import (
	"cmp"
	"math"
	"math/rand/v2"
	"slices"

	"github.com/prostormat/prostormat-api/internal/domain"
)

// Sequence produces the one total ordering used for pagination:
// featured venues in homepage-slot order, then priority tiers 1..3 and
// the unranked rest, each tier permuted by a shuffle that depends only
// on the seed and the tier. The same seed over the same venue set
// always yields the same sequence, which is what keeps "load more"
// pages disjoint.
func Sequence(venues []domain.Venue, seed int32) []domain.Venue {
	buckets := make(map[domain.Tier][]domain.Venue, 5)
	for _, v := range venues {
		t := v.Tier()
		buckets[t] = append(buckets[t], v)
	}

	sortFeatured(buckets[domain.TierFeatured])

	out := make([]domain.Venue, 0, len(venues))
	out = append(out, buckets[domain.TierFeatured]...)

	for _, tier := range []domain.Tier{
		domain.TierPriority1,
		domain.TierPriority2,
		domain.TierPriority3,
		domain.TierUnranked,
	} {
		b := buckets[tier]
		shuffleTier(b, seed, tier)
		out = append(out, b...)
	}

	return out
}

// MintSeed produces a fresh 32-bit order seed for a new browsing
// session. The transport echoes it back so the client can resubmit it
// on every subsequent page.
func MintSeed() int32 {
	return rand.Int32()
}

func sortFeatured(b []domain.Venue) {
	slices.SortFunc(b, func(a, z domain.Venue) int {
		return cmp.Or(
			cmp.Compare(slotPosition(a), slotPosition(z)),
			cmp.Compare(a.ID, z.ID),
		)
	})
}

// slotPosition treats a missing position as last.
func slotPosition(v domain.Venue) int {
	if v.HomepageSlot == nil {
		return math.MaxInt
	}
	return v.HomepageSlot.Position
}

// shuffleTier applies a seeded Fisher-Yates permutation. The bucket is
// first ordered by venue ID so the result depends only on bucket
// membership and seed, never on database fetch order. Each tier salts
// the generator differently so the four permutations are independent
// streams of the same session seed.
func shuffleTier(b []domain.Venue, seed int32, tier domain.Tier) {
	if len(b) < 2 {
		return
	}

	slices.SortFunc(b, func(a, z domain.Venue) int {
		return cmp.Compare(a.ID, z.ID)
	})

	rng := rand.New(rand.NewPCG(uint64(uint32(seed)), uint64(tier)))
	rng.Shuffle(len(b), func(i, j int) {
		b[i], b[j] = b[j], b[i]
	})
}
