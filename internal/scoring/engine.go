package scoring

import (
	"math"
	"time"
)

// Dimension weights. They must sum to 1.0 so the aggregate needs no clamp.
const (
	weightCompleteness = 0.40
	weightEngagement   = 0.30
	weightVerification = 0.20
	weightFreshness    = 0.10
)

// Engine computes optimization scores. It holds no per-listing state and is
// safe for concurrent use; the injected clock keeps freshness and badge age
// math deterministic under test.
type Engine struct {
	now   func() time.Time
	peers PeerRankProvider
}

// NewEngine creates a scoring engine. A nil peers provider falls back to
// the placeholder StubPeerRankProvider.
func NewEngine(peers PeerRankProvider) *Engine {
	return NewEngineWithClock(time.Now, peers)
}

// NewEngineWithClock creates a scoring engine pinned to the given clock.
func NewEngineWithClock(now func() time.Time, peers PeerRankProvider) *Engine {
	if now == nil {
		now = time.Now
	}
	if peers == nil {
		peers = StubPeerRankProvider{}
	}
	return &Engine{now: now, peers: peers}
}

// ComputeScore runs the full pipeline: the four sub-scorers, the weighted
// aggregate, badge evaluation, and suggestion generation. It reads only its
// arguments and never fails; absent fields simply fail their checks.
func (e *Engine) ComputeScore(listing Listing, images []Image, reviews []Review, inquiries []Inquiry) Score {
	now := e.now()

	completeness := scoreCompleteness(listing, len(images))
	engagement := scoreEngagement(listing, reviews, inquiries)
	verification := scoreVerification(listing)
	freshness := scoreFreshness(listing, now)

	overall := int(math.Round(
		float64(completeness.Score)*weightCompleteness +
			float64(engagement.Score)*weightEngagement +
			float64(verification.Score)*weightVerification +
			float64(freshness.Score)*weightFreshness,
	))

	breakdown := Breakdown{
		Completeness: completeness,
		Engagement:   engagement,
		Verification: verification,
		Freshness:    freshness,
	}

	return Score{
		OverallScore:           overall,
		CompletenessScore:      completeness.Score,
		EngagementScore:        engagement.Score,
		VerificationScore:      verification.Score,
		FreshnessScore:         freshness.Score,
		Breakdown:              breakdown,
		Badges:                 determineBadges(listing, reviews, overall, now),
		ImprovementSuggestions: generateSuggestions(breakdown),
	}
}
