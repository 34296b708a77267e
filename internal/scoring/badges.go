package scoring

import "time"

// Badge identifiers. Each badge is independently eligible; a listing may
// hold any subset.
const (
	BadgeTopRated        = "top_rated"
	BadgeVerified        = "verified"
	BadgeCompleteProfile = "complete_profile"
	BadgeParentFavorite  = "parent_favorite"
	BadgeRisingStar      = "rising_star"
	BadgePremium         = "premium"
)

const daysPerMonth = 30

// determineBadges evaluates the badge rules over the raw listing data, the
// review set, and the already-computed overall score. It is a strict
// function of its inputs.
func determineBadges(listing Listing, reviews []Review, overallScore int, now time.Time) []string {
	badges := []string{}

	if listing.Rating >= 4.5 && len(reviews) >= 10 {
		badges = append(badges, BadgeTopRated)
	}

	if listing.IsVerifiedByGov {
		badges = append(badges, BadgeVerified)
	}

	if overallScore >= 90 {
		badges = append(badges, BadgeCompleteProfile)
	}

	if listing.FavoriteAdds >= 20 {
		badges = append(badges, BadgeParentFavorite)
	}

	// Rising star: created under six months ago with a 4.0+ rating. A
	// listing without a creation timestamp never qualifies.
	if listing.CreatedAt != nil {
		monthsSinceCreation := now.Sub(*listing.CreatedAt).Hours() / (24 * daysPerMonth)
		if monthsSinceCreation < 6 && listing.Rating >= 4.0 {
			badges = append(badges, BadgeRisingStar)
		}
	}

	if listing.IsPremium {
		badges = append(badges, BadgePremium)
	}

	return badges
}
