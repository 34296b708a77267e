package scoring

// scoreVerification scores licensing and verification signals additively.
// Government verification is the strongest independent trust signal and
// carries half the dimension on its own.
func scoreVerification(listing Listing) VerificationScore {
	details := VerificationDetails{
		IsVerified:    listing.IsVerified,
		HasLicense:    listing.LicenseNumber != "",
		IsGovVerified: listing.IsVerifiedByGov,
		IsClaimed:     listing.ClaimStatus == ClaimVerified,
	}

	score := 0
	if details.IsGovVerified {
		score += 50
	}
	if details.HasLicense {
		score += 20
	}
	if details.IsClaimed {
		score += 20
	}
	if details.IsVerified {
		score += 10
	}
	if score > 100 {
		score = 100
	}

	return VerificationScore{
		Score:    score,
		MaxScore: 100,
		Details:  details,
	}
}
