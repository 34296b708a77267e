package scoring

import "sort"

// maxSuggestions caps the returned improvement list.
const maxSuggestions = 5

var priorityOrder = map[Priority]int{
	PriorityHigh:   0,
	PriorityMedium: 1,
	PriorityLow:    2,
}

// generateSuggestions derives improvement actions from the breakdown's
// detail objects. Each unmet condition appends one suggestion; the result
// is sorted by priority then descending points and truncated to the top 5.
// An empty list means nothing fired, not an error.
func generateSuggestions(breakdown Breakdown) []Suggestion {
	suggestions := []Suggestion{}

	if !breakdown.Completeness.Details.HasDescription {
		suggestions = append(suggestions, Suggestion{
			Category: "completeness",
			Action:   "Add a detailed description (100+ characters) about your program",
			Points:   14,
			Priority: PriorityHigh,
		})
	}
	if !breakdown.Completeness.Details.HasPhotos {
		suggestions = append(suggestions, Suggestion{
			Category: "completeness",
			Action:   "Upload at least 3 photos of your facility",
			Points:   14,
			Priority: PriorityHigh,
		})
	}
	if !breakdown.Completeness.Details.HasFeatures {
		suggestions = append(suggestions, Suggestion{
			Category: "completeness",
			Action:   "Add at least 3 features/amenities to your profile",
			Points:   14,
			Priority: PriorityMedium,
		})
	}
	if !breakdown.Completeness.Details.HasProgramHighlights {
		suggestions = append(suggestions, Suggestion{
			Category: "completeness",
			Action:   "Add at least 2 program highlights",
			Points:   14,
			Priority: PriorityMedium,
		})
	}

	if !breakdown.Engagement.Details.HasReviews {
		suggestions = append(suggestions, Suggestion{
			Category: "engagement",
			Action:   "Encourage parents to leave reviews",
			Points:   12,
			Priority: PriorityHigh,
		})
	}
	if breakdown.Engagement.Details.InquiryResponseRate < 0.75 {
		suggestions = append(suggestions, Suggestion{
			Category: "engagement",
			Action:   "Respond to inquiries within 24 hours to improve response rate",
			Points:   6,
			Priority: PriorityHigh,
		})
	}

	if !breakdown.Verification.Details.HasLicense {
		suggestions = append(suggestions, Suggestion{
			Category: "verification",
			Action:   "Add your license number to build trust",
			Points:   4,
			Priority: PriorityMedium,
		})
	}
	if !breakdown.Verification.Details.IsClaimed {
		suggestions = append(suggestions, Suggestion{
			Category: "verification",
			Action:   "Claim your profile to show you own this business",
			Points:   4,
			Priority: PriorityHigh,
		})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		if priorityOrder[suggestions[i].Priority] != priorityOrder[suggestions[j].Priority] {
			return priorityOrder[suggestions[i].Priority] < priorityOrder[suggestions[j].Priority]
		}
		return suggestions[i].Points > suggestions[j].Points
	})

	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
}
