package scoring

import (
	"context"

	"github.com/google/uuid"
)

// PeerRank compares one listing's score against others in its category.
// Placeholder is true when the values come from the stub provider rather
// than a real peer query.
type PeerRank struct {
	Rank            int  `json:"rank"`
	CategoryAverage int  `json:"categoryAverage"`
	Placeholder     bool `json:"placeholder"`
}

// PeerRankProvider supplies a listing's rank against peers in the same
// category. The ranking query is I/O-bound and lives outside the pure
// engine. Implementations must return an error when the peer data is
// unavailable instead of fabricating a rank.
type PeerRankProvider interface {
	CategoryRank(ctx context.Context, listingID uuid.UUID, category string) (PeerRank, error)
}

// StubPeerRankProvider returns placeholder values. No peer query is
// performed; the Placeholder flag is always set so callers cannot mistake
// the output for a real ranking.
type StubPeerRankProvider struct{}

// CategoryRank returns the placeholder rank.
func (StubPeerRankProvider) CategoryRank(_ context.Context, _ uuid.UUID, _ string) (PeerRank, error) {
	return PeerRank{Rank: 0, CategoryAverage: 65, Placeholder: true}, nil
}

// CategoryRank delegates to the engine's injected provider.
func (e *Engine) CategoryRank(ctx context.Context, listingID uuid.UUID, category string) (PeerRank, error) {
	return e.peers.CategoryRank(ctx, listingID, category)
}

// Compile-time check that the stub satisfies the interface.
var _ PeerRankProvider = StubPeerRankProvider{}
