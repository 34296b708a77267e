package scoring

import (
	"strings"
	"testing"
)

func TestGenerateSuggestions_EmptyListingCapsAtFive(t *testing.T) {
	// An empty listing trips 7 of the 8 rules (the zero-inquiry response
	// rate defaults to 1.0, so that rule stays quiet); the list caps at 5.
	breakdown := Breakdown{
		Completeness: scoreCompleteness(Listing{}, 0),
		Engagement:   scoreEngagement(Listing{}, nil, nil),
		Verification: scoreVerification(Listing{}),
		Freshness:    scoreFreshness(Listing{}, testNow),
	}

	suggestions := generateSuggestions(breakdown)

	if len(suggestions) != 5 {
		t.Fatalf("expected 5 suggestions, got %d", len(suggestions))
	}
	assertSorted(t, suggestions)
}

func TestGenerateSuggestions_SortOrder(t *testing.T) {
	// Description and photos suggestions (high, 14) must come before the
	// claim suggestion (high, 4), which must come before medium entries.
	breakdown := Breakdown{
		Completeness: scoreCompleteness(Listing{}, 0),
		Engagement:   EngagementDetailsComplete(t),
		Verification: scoreVerification(Listing{LicenseNumber: "DC-1"}),
	}

	suggestions := generateSuggestions(breakdown)

	if len(suggestions) != 5 {
		t.Fatalf("expected 5 suggestions, got %d", len(suggestions))
	}
	if suggestions[0].Points != 14 || suggestions[0].Priority != PriorityHigh {
		t.Fatalf("expected a high/14 suggestion first, got %+v", suggestions[0])
	}
	assertSorted(t, suggestions)

	var sawClaim bool
	for _, s := range suggestions {
		if strings.Contains(s.Action, "Claim your profile") {
			sawClaim = true
			if s.Points != 4 || s.Priority != PriorityHigh {
				t.Fatalf("claim suggestion has wrong shape: %+v", s)
			}
		}
	}
	if !sawClaim {
		t.Fatal("expected the claim-profile suggestion")
	}
}

func TestGenerateSuggestions_NoneWhenComplete(t *testing.T) {
	breakdown := Breakdown{
		Completeness: scoreCompleteness(Listing{
			Description:       longDescription(),
			Website:           "https://example.com",
			Phone:             "+12125550123",
			Features:          []string{"a", "b", "c"},
			HoursOpen:         "08:00",
			HoursClose:        "18:00",
			ProgramHighlights: []string{"x", "y"},
		}, 3),
		Engagement:   EngagementDetailsComplete(t),
		Verification: verificationComplete(),
	}

	if suggestions := generateSuggestions(breakdown); len(suggestions) != 0 {
		t.Fatalf("expected no suggestions, got %v", suggestions)
	}
}

func TestGenerateSuggestions_LowResponseRate(t *testing.T) {
	breakdown := Breakdown{
		Completeness: scoreCompleteness(Listing{
			Description:       longDescription(),
			Website:           "https://example.com",
			Phone:             "+12125550123",
			Features:          []string{"a", "b", "c"},
			HoursOpen:         "08:00",
			HoursClose:        "18:00",
			ProgramHighlights: []string{"x", "y"},
		}, 3),
		Engagement:   scoreEngagement(Listing{Rating: 4.8}, makeReviews(5), makeInquiries(1, 1)),
		Verification: verificationComplete(),
	}

	suggestions := generateSuggestions(breakdown)

	if len(suggestions) != 1 {
		t.Fatalf("expected only the response-rate suggestion, got %v", suggestions)
	}
	s := suggestions[0]
	if s.Category != "engagement" || s.Points != 6 || s.Priority != PriorityHigh {
		t.Fatalf("unexpected suggestion shape: %+v", s)
	}
}

func assertSorted(t *testing.T, suggestions []Suggestion) {
	t.Helper()
	for i := 1; i < len(suggestions); i++ {
		prev, cur := suggestions[i-1], suggestions[i]
		if priorityOrder[prev.Priority] > priorityOrder[cur.Priority] {
			t.Fatalf("suggestions out of priority order at %d: %v", i, suggestions)
		}
		if prev.Priority == cur.Priority && prev.Points < cur.Points {
			t.Fatalf("suggestions out of point order at %d: %v", i, suggestions)
		}
	}
}

func longDescription() string {
	return strings.Repeat("Our program focuses on play-based learning. ", 4)
}
