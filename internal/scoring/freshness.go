package scoring

import (
	"math"
	"time"
)

// scoreFreshness scores how recently the listing was touched. The reference
// timestamp is updatedAt, falling back to createdAt, falling back to now; a
// listing with no timestamps at all is therefore treated as perfectly fresh.
func scoreFreshness(listing Listing, now time.Time) FreshnessScore {
	reference := now
	switch {
	case listing.UpdatedAt != nil:
		reference = *listing.UpdatedAt
	case listing.CreatedAt != nil:
		reference = *listing.CreatedAt
	}

	daysSinceUpdate := int(math.Floor(now.Sub(reference).Hours() / 24))

	score := 100
	switch {
	case daysSinceUpdate > 180:
		score = 20
	case daysSinceUpdate > 90:
		score = 40
	case daysSinceUpdate > 30:
		score = 70
	case daysSinceUpdate > 7:
		score = 90
	}

	return FreshnessScore{
		Score:    score,
		MaxScore: 100,
		Details: FreshnessDetails{
			DaysSinceUpdate:   daysSinceUpdate,
			HasRecentActivity: daysSinceUpdate <= 30,
		},
	}
}
