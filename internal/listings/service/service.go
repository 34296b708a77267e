// Package service implements the listings business logic: it assembles the
// scoring inputs from the repository and counter store, runs the scoring
// engine, and mediates review/inquiry writes.
package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"carefinder_backend/internal/events"
	"carefinder_backend/internal/listings/counters"
	"carefinder_backend/internal/listings/repository"
	"carefinder_backend/internal/listings/transport"
	"carefinder_backend/internal/scoring"
	"carefinder_backend/platform/logger"
	"carefinder_backend/platform/phone"

	"github.com/google/uuid"
)

// Service orchestrates listing reads, engagement writes, and scoring.
type Service struct {
	repo     repository.Repository
	counters *counters.Store
	engine   *scoring.Engine
	bus      events.Bus
	log      *logger.Logger
}

// New creates a new listings service.
func New(repo repository.Repository, counterStore *counters.Store, engine *scoring.Engine, bus events.Bus, log *logger.Logger) *Service {
	return &Service{
		repo:     repo,
		counters: counterStore,
		engine:   engine,
		bus:      bus,
		log:      log,
	}
}

// GetListing returns the listing snapshot with pending counter deltas folded in.
func (s *Service) GetListing(ctx context.Context, id uuid.UUID) (scoring.Listing, error) {
	listing, err := s.repo.GetListing(ctx, id)
	if err != nil {
		return scoring.Listing{}, err
	}
	return s.withPendingCounters(ctx, listing)
}

// GetOptimizationScore computes the optimization score for one listing.
// The three input collections are fetched concurrently; the computation
// itself is a pure function of the assembled snapshot.
func (s *Service) GetOptimizationScore(ctx context.Context, id uuid.UUID) (scoring.Score, error) {
	listing, err := s.GetListing(ctx, id)
	if err != nil {
		return scoring.Score{}, err
	}

	var (
		images    []scoring.Image
		reviews   []repository.Review
		inquiries []repository.Inquiry
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		images, err = s.repo.ListImages(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		reviews, err = s.repo.ListReviews(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		inquiries, err = s.repo.ListInquiries(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return scoring.Score{}, err
	}

	score := s.engine.ComputeScore(listing, images, toScoringReviews(reviews), toScoringInquiries(inquiries))

	s.log.WithContext(ctx).ScoreComputed(id.String(), score.OverallScore, len(score.Badges), len(score.ImprovementSuggestions))
	return score, nil
}

// CategoryRank returns the listing's rank against peers in its category.
// With the stub provider wired, the result carries placeholder values and
// is flagged as such.
func (s *Service) CategoryRank(ctx context.Context, id uuid.UUID) (scoring.PeerRank, error) {
	listing, err := s.repo.GetListing(ctx, id)
	if err != nil {
		return scoring.PeerRank{}, err
	}
	return s.engine.CategoryRank(ctx, listing.ID, listing.Category)
}

// RecordProfileView bumps the pending view counter for a listing.
func (s *Service) RecordProfileView(ctx context.Context, id uuid.UUID) (int64, error) {
	if _, err := s.repo.GetListing(ctx, id); err != nil {
		return 0, err
	}
	return s.counters.IncrementViews(ctx, id)
}

// RecordFavorite bumps the pending favorite counter for a listing.
func (s *Service) RecordFavorite(ctx context.Context, id uuid.UUID) (int64, error) {
	if _, err := s.repo.GetListing(ctx, id); err != nil {
		return 0, err
	}
	return s.counters.IncrementFavorites(ctx, id)
}

// ListReviews returns all reviews for a listing.
func (s *Service) ListReviews(ctx context.Context, id uuid.UUID) ([]repository.Review, error) {
	if _, err := s.repo.GetListing(ctx, id); err != nil {
		return nil, err
	}
	return s.repo.ListReviews(ctx, id)
}

// SubmitReview stores a new review and publishes ReviewCreated.
func (s *Service) SubmitReview(ctx context.Context, id uuid.UUID, req transport.CreateReviewRequest) (repository.Review, error) {
	review, err := s.repo.CreateReview(ctx, repository.Review{
		ListingID:  id,
		AuthorName: req.AuthorName,
		Rating:     req.Rating,
		Comment:    req.Comment,
	})
	if err != nil {
		return repository.Review{}, err
	}

	s.bus.Publish(ctx, events.ReviewCreated{
		BaseEvent: events.NewBaseEvent(),
		ListingID: id,
		ReviewID:  review.ID,
		Rating:    review.Rating,
	})
	return review, nil
}

// ListInquiries returns all inquiries for a listing.
func (s *Service) ListInquiries(ctx context.Context, id uuid.UUID) ([]repository.Inquiry, error) {
	if _, err := s.repo.GetListing(ctx, id); err != nil {
		return nil, err
	}
	return s.repo.ListInquiries(ctx, id)
}

// SubmitInquiry stores a new pending inquiry and publishes InquiryCreated.
// The contact phone number is normalized to E.164 before storage.
func (s *Service) SubmitInquiry(ctx context.Context, id uuid.UUID, req transport.CreateInquiryRequest) (repository.Inquiry, error) {
	inquiry, err := s.repo.CreateInquiry(ctx, repository.Inquiry{
		ListingID:  id,
		ParentName: req.ParentName,
		Email:      req.Email,
		Phone:      phone.NormalizeE164(req.Phone),
		Message:    req.Message,
	})
	if err != nil {
		return repository.Inquiry{}, err
	}

	s.bus.Publish(ctx, events.InquiryCreated{
		BaseEvent: events.NewBaseEvent(),
		ListingID: id,
		InquiryID: inquiry.ID,
	})
	return inquiry, nil
}

// RespondInquiry transitions an inquiry to responded or closed and
// publishes InquiryResponded.
func (s *Service) RespondInquiry(ctx context.Context, listingID, inquiryID uuid.UUID, status scoring.InquiryStatus) (repository.Inquiry, error) {
	inquiry, err := s.repo.UpdateInquiryStatus(ctx, listingID, inquiryID, status)
	if err != nil {
		return repository.Inquiry{}, err
	}

	s.bus.Publish(ctx, events.InquiryResponded{
		BaseEvent: events.NewBaseEvent(),
		ListingID: listingID,
		InquiryID: inquiryID,
		Status:    string(status),
	})
	return inquiry, nil
}

// TouchListing bumps a listing's updated_at. Used by the module's event
// handlers so freshness reflects recent activity.
func (s *Service) TouchListing(ctx context.Context, id uuid.UUID) error {
	return s.repo.TouchListing(ctx, id)
}

func (s *Service) withPendingCounters(ctx context.Context, listing scoring.Listing) (scoring.Listing, error) {
	views, favorites, err := s.counters.Pending(ctx, listing.ID)
	if err != nil {
		// Counter reads are best-effort; scoring proceeds on the persisted values.
		s.log.WithContext(ctx).Warn("pending counters unavailable", "listing_id", listing.ID.String(), "error", err.Error())
		return listing, nil
	}
	listing.ProfileViews += int(views)
	listing.FavoriteAdds += int(favorites)
	return listing, nil
}

func toScoringReviews(reviews []repository.Review) []scoring.Review {
	result := make([]scoring.Review, 0, len(reviews))
	for _, review := range reviews {
		result = append(result, scoring.Review{ID: review.ID, Rating: review.Rating})
	}
	return result
}

func toScoringInquiries(inquiries []repository.Inquiry) []scoring.Inquiry {
	result := make([]scoring.Inquiry, 0, len(inquiries))
	for _, inquiry := range inquiries {
		result = append(result, scoring.Inquiry{ID: inquiry.ID, Status: inquiry.Status})
	}
	return result
}
