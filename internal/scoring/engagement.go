package scoring

// scoreEngagement scores review volume, rating quality, inquiry
// responsiveness, and profile views. Buckets award baseline points instead
// of zero so brand-new listings stay rankable against established ones; the
// thresholds and baselines encode a product decision and are not tunable
// per listing.
func scoreEngagement(listing Listing, reviews []Review, inquiries []Inquiry) EngagementScore {
	score := 0

	// Review volume (max 30)
	reviewCount := len(reviews)
	switch {
	case reviewCount >= 10:
		score += 30
	case reviewCount >= 5:
		score += 25
	case reviewCount >= 3:
		score += 20
	case reviewCount >= 1:
		score += 15
	default:
		score += 5 // new-listing baseline
	}

	// Average rating (max 35). A listing with reviews but a rating below 3.0
	// earns nothing from this bucket; the baseline is for unrated listings only.
	rating := listing.Rating
	switch {
	case rating >= 4.5:
		score += 35
	case rating >= 4.0:
		score += 30
	case rating >= 3.5:
		score += 20
	case rating >= 3.0:
		score += 10
	case reviewCount == 0:
		score += 15
	}

	// Response rate (max 25). With zero inquiries the rate defaults to 1.0
	// and the >=0.9 arm claims the award; the zero-inquiry arm below only
	// fires if that default ever changes. The arm order is load-bearing.
	responded := 0
	for _, inquiry := range inquiries {
		if inquiry.Status == InquiryResponded || inquiry.Status == InquiryClosed {
			responded++
		}
	}
	responseRate := 1.0
	if len(inquiries) > 0 {
		responseRate = float64(responded) / float64(len(inquiries))
	}
	switch {
	case responseRate >= 0.9:
		score += 25
	case responseRate >= 0.75:
		score += 20
	case responseRate >= 0.5:
		score += 15
	case len(inquiries) == 0:
		score += 20
	}

	// Profile views (max 10)
	views := listing.ProfileViews
	switch {
	case views >= 100:
		score += 10
	case views >= 50:
		score += 7
	case views >= 10:
		score += 5
	default:
		score += 2
	}

	if score > 100 {
		score = 100
	}

	return EngagementScore{
		Score:    score,
		MaxScore: 100,
		Details: EngagementDetails{
			HasReviews:          reviewCount > 0,
			AverageRating:       rating,
			InquiryResponseRate: responseRate,
			ProfileViews:        views,
		},
	}
}
