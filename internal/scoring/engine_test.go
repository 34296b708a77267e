package scoring

import (
	"context"
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
)

func fixedClock() func() time.Time {
	return func() time.Time { return testNow }
}

func sampleListing() (Listing, []Image, []Review, []Inquiry) {
	createdAt := testNow.AddDate(0, -2, 0)
	updatedAt := testNow.AddDate(0, 0, -10)
	listing := Listing{
		Name:              "Sunny Days Childcare",
		Description:       longDescription(),
		Website:           "https://sunny-days.example.com",
		Phone:             "+12125550123",
		Features:          []string{"outdoor play", "meals", "music"},
		ProgramHighlights: []string{"STEM program", "bilingual staff"},
		HoursOpen:         "07:30",
		HoursClose:        "18:00",
		LicenseNumber:     "DC-482913",
		IsVerified:        true,
		IsVerifiedByGov:   true,
		ClaimStatus:       ClaimVerified,
		IsPremium:         true,
		Rating:            4.6,
		ProfileViews:      120,
		FavoriteAdds:      25,
		CreatedAt:         &createdAt,
		UpdatedAt:         &updatedAt,
	}
	images := []Image{{}, {}, {}, {}}
	return listing, images, makeReviews(12), makeInquiries(10, 0)
}

func TestComputeScore_Deterministic(t *testing.T) {
	engine := NewEngineWithClock(fixedClock(), nil)
	listing, images, reviews, inquiries := sampleListing()

	first := engine.ComputeScore(listing, images, reviews, inquiries)
	second := engine.ComputeScore(listing, images, reviews, inquiries)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("identical inputs produced different outputs:\n%+v\n%+v", first, second)
	}
}

func TestComputeScore_WeightedAggregate(t *testing.T) {
	engine := NewEngineWithClock(fixedClock(), nil)
	listing, images, reviews, inquiries := sampleListing()

	result := engine.ComputeScore(listing, images, reviews, inquiries)

	want := int(math.Round(
		float64(result.CompletenessScore)*0.4 +
			float64(result.EngagementScore)*0.3 +
			float64(result.VerificationScore)*0.2 +
			float64(result.FreshnessScore)*0.1,
	))
	if result.OverallScore != want {
		t.Fatalf("expected weighted overall %d, got %d", want, result.OverallScore)
	}
}

func TestComputeScore_FullyOptimizedListing(t *testing.T) {
	engine := NewEngineWithClock(fixedClock(), nil)
	listing, images, reviews, inquiries := sampleListing()

	result := engine.ComputeScore(listing, images, reviews, inquiries)

	// Completeness 100, engagement 100, verification 100, freshness 90
	// (updated 10 days ago): overall = round(40+30+20+9) = 99.
	if result.CompletenessScore != 100 {
		t.Fatalf("expected completeness 100, got %d", result.CompletenessScore)
	}
	if result.EngagementScore != 100 {
		t.Fatalf("expected engagement 100, got %d", result.EngagementScore)
	}
	if result.VerificationScore != 100 {
		t.Fatalf("expected verification 100, got %d", result.VerificationScore)
	}
	if result.FreshnessScore != 90 {
		t.Fatalf("expected freshness 90, got %d", result.FreshnessScore)
	}
	if result.OverallScore != 99 {
		t.Fatalf("expected overall 99, got %d", result.OverallScore)
	}
	if !result.Breakdown.Freshness.Details.HasRecentActivity {
		t.Fatal("expected hasRecentActivity true at 10 days")
	}
	if len(result.ImprovementSuggestions) != 0 {
		t.Fatalf("expected no suggestions, got %v", result.ImprovementSuggestions)
	}
	if len(result.Badges) != 6 {
		t.Fatalf("expected all six badges, got %v", result.Badges)
	}
}

func TestComputeScore_RangeInvariant(t *testing.T) {
	engine := NewEngineWithClock(fixedClock(), nil)
	old := testNow.AddDate(-3, 0, 0)

	inputs := []Listing{
		{},
		{Rating: 5, ProfileViews: 1000, FavoriteAdds: 1000, IsPremium: true},
		{CreatedAt: &old, UpdatedAt: &old},
		{Rating: -1},
	}
	for _, listing := range inputs {
		result := engine.ComputeScore(listing, nil, nil, nil)
		for name, score := range map[string]int{
			"overall":      result.OverallScore,
			"completeness": result.CompletenessScore,
			"engagement":   result.EngagementScore,
			"verification": result.VerificationScore,
			"freshness":    result.FreshnessScore,
		} {
			if score < 0 || score > 100 {
				t.Fatalf("%s score out of range: %d (listing %+v)", name, score, listing)
			}
		}
	}
}

func TestComputeScore_DoesNotMutateInputs(t *testing.T) {
	engine := NewEngineWithClock(fixedClock(), nil)
	listing, images, reviews, inquiries := sampleListing()

	before := listing
	beforeReviews := append([]Review(nil), reviews...)

	_ = engine.ComputeScore(listing, images, reviews, inquiries)

	if !reflect.DeepEqual(before, listing) {
		t.Fatal("listing snapshot was mutated")
	}
	if !reflect.DeepEqual(beforeReviews, reviews) {
		t.Fatal("review slice was mutated")
	}
}

func TestComputeScore_NewListingBaseline(t *testing.T) {
	engine := NewEngineWithClock(fixedClock(), nil)

	result := engine.ComputeScore(Listing{}, nil, nil, nil)

	// Baseline floors keep a brand-new listing well above zero.
	if result.EngagementScore < 42 {
		t.Fatalf("expected engagement >= 42 for a new listing, got %d", result.EngagementScore)
	}
	var sawReviewSuggestion bool
	for _, s := range result.ImprovementSuggestions {
		if s.Category == "engagement" && s.Points == 12 && s.Priority == PriorityHigh {
			sawReviewSuggestion = true
		}
	}
	if !sawReviewSuggestion {
		t.Fatalf("expected the encourage-reviews suggestion, got %v", result.ImprovementSuggestions)
	}
}

func TestCategoryRank_StubIsMarkedPlaceholder(t *testing.T) {
	engine := NewEngine(nil)

	rank, err := engine.CategoryRank(context.Background(), uuid.Nil, "daycare")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !rank.Placeholder {
		t.Fatal("stub rank must be flagged as placeholder")
	}
	if rank.Rank != 0 || rank.CategoryAverage != 65 {
		t.Fatalf("unexpected stub values: %+v", rank)
	}
}
