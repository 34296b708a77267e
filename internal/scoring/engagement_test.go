package scoring

import "testing"

func makeReviews(n int) []Review {
	reviews := make([]Review, n)
	for i := range reviews {
		reviews[i] = Review{Rating: 5}
	}
	return reviews
}

func makeInquiries(responded, pending int) []Inquiry {
	inquiries := make([]Inquiry, 0, responded+pending)
	for i := 0; i < responded; i++ {
		inquiries = append(inquiries, Inquiry{Status: InquiryResponded})
	}
	for i := 0; i < pending; i++ {
		inquiries = append(inquiries, Inquiry{Status: InquiryPending})
	}
	return inquiries
}

func TestScoreEngagement_NewListingFloor(t *testing.T) {
	// Zero reviews, inquiries, and views: 5 (reviews) + 15 (unrated baseline)
	// + 25 (zero-inquiry rate defaults to 1.0) + 2 (views) = 47.
	result := scoreEngagement(Listing{}, nil, nil)

	if result.Score != 47 {
		t.Fatalf("expected new-listing engagement 47, got %d", result.Score)
	}
	if result.Details.HasReviews {
		t.Fatal("expected hasReviews false")
	}
	if result.Details.InquiryResponseRate != 1.0 {
		t.Fatalf("expected default response rate 1.0, got %v", result.Details.InquiryResponseRate)
	}
}

func TestScoreEngagement_ZeroInquiriesHitHighRateArm(t *testing.T) {
	// The zero-inquiry default rate of 1.0 lands in the >=0.9 arm (25 pts),
	// not the dedicated 20-pt zero-inquiry arm. Documented behavior.
	with := scoreEngagement(Listing{}, nil, nil).Score
	without := scoreEngagement(Listing{}, nil, makeInquiries(10, 0)).Score
	if with != without {
		t.Fatalf("expected zero inquiries to score like a perfect response rate: %d vs %d", with, without)
	}
}

func TestScoreEngagement_QualityGate(t *testing.T) {
	// Reviews present but rating below 3.0: the rating bucket awards nothing.
	lowRated := scoreEngagement(Listing{Rating: 2.9}, makeReviews(3), nil)
	unrated := scoreEngagement(Listing{}, makeReviews(3), nil)

	// Both get 20 review pts + 25 response pts + 2 view pts; neither gets
	// rating points because the baseline only applies with zero reviews.
	if lowRated.Score != 47 {
		t.Fatalf("expected low-rated score 47, got %d", lowRated.Score)
	}
	if unrated.Score != 47 {
		t.Fatalf("expected unrated-with-reviews score 47, got %d", unrated.Score)
	}
}

func TestScoreEngagement_ReviewVolumeBuckets(t *testing.T) {
	cases := []struct {
		reviews int
		want    int
	}{
		{0, 5},
		{1, 15},
		{3, 20},
		{5, 25},
		{10, 30},
		{40, 30},
	}
	for _, tc := range cases {
		// Rating 4.9 and 100 views pin the other buckets at 35+25+10.
		got := scoreEngagement(Listing{Rating: 4.9, ProfileViews: 100}, makeReviews(tc.reviews), nil).Score
		wantTotal := tc.want + 35 + 25 + 10
		if wantTotal > 100 {
			wantTotal = 100
		}
		if got != wantTotal {
			t.Fatalf("reviews=%d: expected %d, got %d", tc.reviews, wantTotal, got)
		}
	}
}

func TestScoreEngagement_ResponseRateBuckets(t *testing.T) {
	cases := []struct {
		responded, pending int
		wantRatePts        int
	}{
		{9, 1, 25}, // 0.9
		{3, 1, 20}, // 0.75
		{1, 1, 15}, // 0.5
		{1, 3, 0},  // 0.25
		{0, 5, 0},  // 0.0
	}
	for _, tc := range cases {
		inquiries := makeInquiries(tc.responded, tc.pending)
		got := scoreEngagement(Listing{}, makeReviews(1), inquiries).Score
		// 15 review pts, 0 rating pts (one review, rating 0), 2 view pts.
		want := 15 + tc.wantRatePts + 2
		if got != want {
			t.Fatalf("responded=%d pending=%d: expected %d, got %d", tc.responded, tc.pending, want, got)
		}
	}
}

func TestScoreEngagement_ClampedAt100(t *testing.T) {
	listing := Listing{Rating: 5.0, ProfileViews: 500}
	result := scoreEngagement(listing, makeReviews(20), makeInquiries(50, 0))
	if result.Score != 100 {
		t.Fatalf("expected clamp at 100, got %d", result.Score)
	}
}

func TestScoreEngagement_ClosedInquiriesCountAsResponded(t *testing.T) {
	inquiries := []Inquiry{{Status: InquiryClosed}, {Status: InquiryClosed}}
	result := scoreEngagement(Listing{}, nil, inquiries)
	if result.Details.InquiryResponseRate != 1.0 {
		t.Fatalf("expected closed inquiries to count as responded, rate %v", result.Details.InquiryResponseRate)
	}
}
