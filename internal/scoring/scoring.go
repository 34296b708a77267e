// Package scoring computes listing profile optimization scores.
//
// The engine is a single-pass, stateless pipeline: four independent
// sub-scorers (completeness, engagement, verification, freshness) feed a
// weighted aggregator, followed by badge evaluation and improvement
// suggestion generation. Every function here is pure; callers supply the
// listing snapshot plus its images, reviews, and inquiries, and receive one
// fully populated Score. Nothing is persisted and no inputs are mutated.
package scoring

import (
	"time"

	"github.com/google/uuid"
)

// ClaimStatus reflects whether the business owner has taken ownership of the listing.
type ClaimStatus string

const (
	ClaimUnclaimed     ClaimStatus = "unclaimed"
	ClaimPendingReview ClaimStatus = "pending_review"
	ClaimVerified      ClaimStatus = "verified"
)

// InquiryStatus is the lifecycle status of a contact inquiry.
type InquiryStatus string

const (
	InquiryPending   InquiryStatus = "pending"
	InquiryResponded InquiryStatus = "responded"
	InquiryClosed    InquiryStatus = "closed"
)

// DayHours is a single day's opening window in a weekly schedule.
type DayHours struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

// WeeklySchedule maps weekday names to opening hours.
type WeeklySchedule map[string]DayHours

// Listing is a read-only snapshot of a listing's attributes at score time.
// Absent fields keep their zero value; the scorers treat zero values as
// failing the related check rather than as an error.
type Listing struct {
	ID                uuid.UUID
	Name              string
	Category          string // provider type, e.g. "daycare"; used for peer ranking only
	Description       string
	Website           string
	Phone             string
	Features          []string
	ProgramHighlights []string
	Schedule          WeeklySchedule
	HoursOpen         string
	HoursClose        string
	LicenseNumber     string
	IsVerified        bool
	IsVerifiedByGov   bool
	ClaimStatus       ClaimStatus
	IsPremium         bool
	Rating            float64 // aggregate 0-5, zero when unrated
	ProfileViews      int
	FavoriteAdds      int
	CreatedAt         *time.Time
	UpdatedAt         *time.Time
}

// Review carries the single field the scorer consumes: the numeric rating.
type Review struct {
	ID     uuid.UUID
	Rating int // 1-5
}

// Inquiry carries the lifecycle status of one contact request.
type Inquiry struct {
	ID     uuid.UUID
	Status InquiryStatus
}

// Image is metadata for one media item attached to a listing. Only the
// count matters to the scorer.
type Image struct {
	ID      uuid.UUID
	URL     string
	Caption string
}

// CompletenessDetails are the boolean checks behind the completeness score.
// The suggestion generator reads these directly, so the field set is a
// contract: fields must not be pruned without updating the suggestion rules.
type CompletenessDetails struct {
	HasDescription       bool `json:"hasDescription"`
	HasPhotos            bool `json:"hasPhotos"`
	HasWebsite           bool `json:"hasWebsite"`
	HasPhone             bool `json:"hasPhone"`
	HasFeatures          bool `json:"hasFeatures"`
	HasSchedule          bool `json:"hasSchedule"`
	HasProgramHighlights bool `json:"hasProgramHighlights"`
}

// EngagementDetails are the engagement signals behind the engagement score.
type EngagementDetails struct {
	HasReviews          bool    `json:"hasReviews"`
	AverageRating       float64 `json:"averageRating"`
	InquiryResponseRate float64 `json:"inquiryResponseRate"`
	ProfileViews        int     `json:"profileViews"`
}

// VerificationDetails are the trust signals behind the verification score.
type VerificationDetails struct {
	IsVerified    bool `json:"isVerified"`
	HasLicense    bool `json:"hasLicense"`
	IsGovVerified bool `json:"isGovVerified"`
	IsClaimed     bool `json:"isClaimed"`
}

// FreshnessDetails describe how recently the listing was updated.
type FreshnessDetails struct {
	DaysSinceUpdate   int  `json:"daysSinceUpdate"`
	HasRecentActivity bool `json:"hasRecentActivity"`
}

// CompletenessScore is the completeness dimension of the breakdown.
type CompletenessScore struct {
	Score    int                 `json:"score"`
	MaxScore int                 `json:"maxScore"`
	Details  CompletenessDetails `json:"details"`
}

// EngagementScore is the engagement dimension of the breakdown.
type EngagementScore struct {
	Score    int               `json:"score"`
	MaxScore int               `json:"maxScore"`
	Details  EngagementDetails `json:"details"`
}

// VerificationScore is the verification dimension of the breakdown.
type VerificationScore struct {
	Score    int                 `json:"score"`
	MaxScore int                 `json:"maxScore"`
	Details  VerificationDetails `json:"details"`
}

// FreshnessScore is the freshness dimension of the breakdown.
type FreshnessScore struct {
	Score    int              `json:"score"`
	MaxScore int              `json:"maxScore"`
	Details  FreshnessDetails `json:"details"`
}

// Breakdown groups the four dimension scores with their detail objects.
type Breakdown struct {
	Completeness CompletenessScore `json:"completeness"`
	Engagement   EngagementScore   `json:"engagement"`
	Verification VerificationScore `json:"verification"`
	Freshness    FreshnessScore    `json:"freshness"`
}

// Priority ranks a suggestion's urgency.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Suggestion is one prioritized, point-valued improvement action.
type Suggestion struct {
	Category string   `json:"category"`
	Action   string   `json:"action"`
	Points   int      `json:"points"`
	Priority Priority `json:"priority"`
}

// Score is the full optimization score output for one listing.
type Score struct {
	OverallScore           int          `json:"overallScore"`
	CompletenessScore      int          `json:"completenessScore"`
	EngagementScore        int          `json:"engagementScore"`
	VerificationScore      int          `json:"verificationScore"`
	FreshnessScore         int          `json:"freshnessScore"`
	Breakdown              Breakdown    `json:"breakdown"`
	Badges                 []string     `json:"badges"`
	ImprovementSuggestions []Suggestion `json:"improvementSuggestions"`
}
