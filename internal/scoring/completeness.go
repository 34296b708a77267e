package scoring

import "math"

// minDescriptionLength is the character count below which a description is
// treated as missing.
const minDescriptionLength = 100

// scoreCompleteness checks presence and adequacy of the static profile
// fields. All checks weigh equally; the score is the rounded percentage of
// checks that pass.
func scoreCompleteness(listing Listing, imageCount int) CompletenessScore {
	details := CompletenessDetails{
		HasDescription:       len(listing.Description) > minDescriptionLength,
		HasPhotos:            imageCount >= 3,
		HasWebsite:           listing.Website != "",
		HasPhone:             listing.Phone != "",
		HasFeatures:          len(listing.Features) >= 3,
		HasSchedule:          listing.Schedule != nil || (listing.HoursOpen != "" && listing.HoursClose != ""),
		HasProgramHighlights: len(listing.ProgramHighlights) >= 2,
	}

	checks := []bool{
		details.HasDescription,
		details.HasPhotos,
		details.HasWebsite,
		details.HasPhone,
		details.HasFeatures,
		details.HasSchedule,
		details.HasProgramHighlights,
	}

	completed := 0
	for _, ok := range checks {
		if ok {
			completed++
		}
	}

	score := int(math.Round(float64(completed) / float64(len(checks)) * 100))

	return CompletenessScore{
		Score:    score,
		MaxScore: 100,
		Details:  details,
	}
}
