package listing

import (
	"log/slog"
	"math"
	"slices"
	"strings"

	"github.com/prostormat/prostormat-api/internal/domain"
)

// Filter carries the optional listing constraints. Zero values impose
// nothing; constraints combine with AND, the fields inside a single
// constraint with OR.
type Filter struct {
	Query            string
	VenueType        string
	District         string
	Capacity         string // bucket key, see capacityBuckets
	Statuses         []domain.VenueStatus
	IncludeSubvenues bool
}

type capacityRange struct {
	min, max int
}

// Bucket keys are the range lower bounds. The boundaries are the
// product's capacity facets; the UI labels carry no meaning here.
var capacityBuckets = map[string]capacityRange{
	"0":   {0, 29},
	"30":  {30, 59},
	"60":  {60, 119},
	"120": {120, 239},
	"240": {240, 479},
	"480": {480, math.MaxInt},
}

// CapacityAll is the "show all" sentinel. It imposes no constraint, as
// does an empty bucket key.
const CapacityAll = "all"

type Predicate func(domain.Venue) bool

// Compile turns the filter into one combined predicate. Unknown
// capacity bucket keys are logged and ignored rather than rejected.
func (f Filter) Compile(logger *slog.Logger) Predicate {
	var preds []Predicate

	if q := strings.ToLower(strings.TrimSpace(f.Query)); q != "" {
		preds = append(preds, func(v domain.Venue) bool {
			return strings.Contains(strings.ToLower(v.Name), q) ||
				strings.Contains(strings.ToLower(v.Description), q) ||
				strings.Contains(strings.ToLower(v.Address), q)
		})
	}

	if t := strings.TrimSpace(f.VenueType); t != "" {
		preds = append(preds, func(v domain.Venue) bool {
			return v.VenueType == t || slices.Contains(v.VenueTypes, t)
		})
	}

	if d := strings.TrimSpace(f.District); d != "" {
		preds = append(preds, func(v domain.Venue) bool {
			return matchesDistrict(v, d)
		})
	}

	if key := strings.TrimSpace(f.Capacity); key != "" && key != CapacityAll {
		if rng, ok := capacityBuckets[key]; ok {
			preds = append(preds, func(v domain.Venue) bool {
				return inRange(v.CapacitySeated, rng) || inRange(v.CapacityStanding, rng)
			})
		} else if logger != nil {
			logger.Warn("ignoring unknown capacity bucket", "bucket", key)
		}
	}

	if len(f.Statuses) > 0 {
		statuses := slices.Clone(f.Statuses)
		preds = append(preds, func(v domain.Venue) bool {
			return slices.Contains(statuses, v.Status)
		})
	}

	if !f.IncludeSubvenues {
		preds = append(preds, func(v domain.Venue) bool {
			return v.ParentID == nil
		})
	}

	return func(v domain.Venue) bool {
		for _, p := range preds {
			if !p(v) {
				return false
			}
		}
		return true
	}
}

// Apply runs the compiled predicate over a venue set.
func (f Filter) Apply(logger *slog.Logger, venues []domain.Venue) []domain.Venue {
	pred := f.Compile(logger)

	out := make([]domain.Venue, 0, len(venues))
	for _, v := range venues {
		if pred(v) {
			out = append(out, v)
		}
	}

	return out
}

// matchesDistrict compares case-insensitively against the district
// column, or against any comma-delimited address component for venues
// that only carry the district inside their address. Component equality
// keeps "Praha 1" from matching "Praha 10".
func matchesDistrict(v domain.Venue, district string) bool {
	if strings.EqualFold(strings.TrimSpace(v.District), district) {
		return true
	}

	for _, part := range strings.Split(v.Address, ",") {
		if strings.EqualFold(strings.TrimSpace(part), district) {
			return true
		}
	}

	return false
}

func inRange(capacity *int, rng capacityRange) bool {
	return capacity != nil && *capacity >= rng.min && *capacity <= rng.max
}
