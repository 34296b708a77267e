package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"carefinder_backend/internal/events"
	"carefinder_backend/internal/listings/counters"
	"carefinder_backend/internal/listings/repository"
	"carefinder_backend/internal/listings/transport"
	"carefinder_backend/internal/scoring"
	"carefinder_backend/platform/apperr"
	"carefinder_backend/platform/logger"
)

type fakeRepo struct {
	listing   scoring.Listing
	images    []scoring.Image
	reviews   []repository.Review
	inquiries []repository.Inquiry
	touched   []uuid.UUID
}

func (f *fakeRepo) GetListing(_ context.Context, id uuid.UUID) (scoring.Listing, error) {
	if id != f.listing.ID {
		return scoring.Listing{}, apperr.NotFound("listing not found")
	}
	return f.listing, nil
}

func (f *fakeRepo) ListImages(_ context.Context, _ uuid.UUID) ([]scoring.Image, error) {
	return f.images, nil
}

func (f *fakeRepo) ListReviews(_ context.Context, _ uuid.UUID) ([]repository.Review, error) {
	return f.reviews, nil
}

func (f *fakeRepo) CreateReview(_ context.Context, review repository.Review) (repository.Review, error) {
	review.ID = uuid.New()
	review.CreatedAt = time.Now()
	f.reviews = append(f.reviews, review)
	return review, nil
}

func (f *fakeRepo) ListInquiries(_ context.Context, _ uuid.UUID) ([]repository.Inquiry, error) {
	return f.inquiries, nil
}

func (f *fakeRepo) CreateInquiry(_ context.Context, inquiry repository.Inquiry) (repository.Inquiry, error) {
	inquiry.ID = uuid.New()
	inquiry.Status = scoring.InquiryPending
	inquiry.CreatedAt = time.Now()
	f.inquiries = append(f.inquiries, inquiry)
	return inquiry, nil
}

func (f *fakeRepo) UpdateInquiryStatus(_ context.Context, _, inquiryID uuid.UUID, status scoring.InquiryStatus) (repository.Inquiry, error) {
	for i := range f.inquiries {
		if f.inquiries[i].ID == inquiryID {
			f.inquiries[i].Status = status
			return f.inquiries[i], nil
		}
	}
	return repository.Inquiry{}, apperr.NotFound("inquiry not found")
}

func (f *fakeRepo) TouchListing(_ context.Context, id uuid.UUID) error {
	f.touched = append(f.touched, id)
	return nil
}

var _ repository.Repository = (*fakeRepo)(nil)

type recordingBus struct {
	mu        sync.Mutex
	published []events.Event
}

func (b *recordingBus) Publish(_ context.Context, event events.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.published = append(b.published, event)
}

func (b *recordingBus) PublishSync(ctx context.Context, event events.Event) error {
	b.Publish(ctx, event)
	return nil
}

func (b *recordingBus) Subscribe(string, events.Handler) {}

func (b *recordingBus) names() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	names := make([]string, 0, len(b.published))
	for _, e := range b.published {
		names = append(names, e.EventName())
	}
	return names
}

func newTestService(t *testing.T, repo *fakeRepo) (*Service, *counters.Store, *recordingBus) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	counterStore := counters.New(client)
	bus := &recordingBus{}
	svc := New(repo, counterStore, scoring.NewEngine(nil), bus, logger.New("development"))
	return svc, counterStore, bus
}

func TestGetOptimizationScore_MergesPendingCounters(t *testing.T) {
	listingID := uuid.New()
	repo := &fakeRepo{listing: scoring.Listing{ID: listingID, ProfileViews: 48}}
	svc, counterStore, _ := newTestService(t, repo)
	ctx := context.Background()

	// 48 persisted + 2 pending crosses the 50-view bucket boundary.
	for i := 0; i < 2; i++ {
		if _, err := counterStore.IncrementViews(ctx, listingID); err != nil {
			t.Fatalf("increment views: %v", err)
		}
	}

	score, err := svc.GetOptimizationScore(ctx, listingID)
	if err != nil {
		t.Fatalf("get optimization score: %v", err)
	}
	if got := score.Breakdown.Engagement.Details.ProfileViews; got != 50 {
		t.Fatalf("expected 50 merged profile views, got %d", got)
	}
}

func TestGetOptimizationScore_UnknownListing(t *testing.T) {
	repo := &fakeRepo{listing: scoring.Listing{ID: uuid.New()}}
	svc, _, _ := newTestService(t, repo)

	_, err := svc.GetOptimizationScore(context.Background(), uuid.New())
	if !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestSubmitReview_PublishesEvent(t *testing.T) {
	listingID := uuid.New()
	repo := &fakeRepo{listing: scoring.Listing{ID: listingID}}
	svc, _, bus := newTestService(t, repo)

	review, err := svc.SubmitReview(context.Background(), listingID, transport.CreateReviewRequest{Rating: 5, Comment: "wonderful staff"})
	if err != nil {
		t.Fatalf("submit review: %v", err)
	}
	if review.Rating != 5 {
		t.Fatalf("expected rating 5, got %d", review.Rating)
	}

	names := bus.names()
	if len(names) != 1 || names[0] != (events.ReviewCreated{}).EventName() {
		t.Fatalf("expected a single ReviewCreated event, got %v", names)
	}
}

func TestSubmitInquiry_NormalizesPhone(t *testing.T) {
	listingID := uuid.New()
	repo := &fakeRepo{listing: scoring.Listing{ID: listingID}}
	svc, _, _ := newTestService(t, repo)

	inquiry, err := svc.SubmitInquiry(context.Background(), listingID, transport.CreateInquiryRequest{
		ParentName: "Dana",
		Email:      "dana@example.com",
		Phone:      "(212) 555-0123",
		Message:    "Do you have openings for toddlers?",
	})
	if err != nil {
		t.Fatalf("submit inquiry: %v", err)
	}
	if inquiry.Phone != "+12125550123" {
		t.Fatalf("expected E.164 phone, got %q", inquiry.Phone)
	}
	if inquiry.Status != scoring.InquiryPending {
		t.Fatalf("expected pending status, got %q", inquiry.Status)
	}
}

func TestRespondInquiry_UpdatesStatusAndPublishes(t *testing.T) {
	listingID := uuid.New()
	repo := &fakeRepo{listing: scoring.Listing{ID: listingID}}
	svc, _, bus := newTestService(t, repo)
	ctx := context.Background()

	inquiry, err := svc.SubmitInquiry(ctx, listingID, transport.CreateInquiryRequest{
		ParentName: "Dana",
		Email:      "dana@example.com",
		Message:    "Openings?",
	})
	if err != nil {
		t.Fatalf("submit inquiry: %v", err)
	}

	updated, err := svc.RespondInquiry(ctx, listingID, inquiry.ID, scoring.InquiryResponded)
	if err != nil {
		t.Fatalf("respond inquiry: %v", err)
	}
	if updated.Status != scoring.InquiryResponded {
		t.Fatalf("expected responded status, got %q", updated.Status)
	}

	names := bus.names()
	if len(names) != 2 || names[1] != (events.InquiryResponded{}).EventName() {
		t.Fatalf("expected InquiryResponded event, got %v", names)
	}
}

func TestCategoryRank_StubPlaceholder(t *testing.T) {
	listingID := uuid.New()
	repo := &fakeRepo{listing: scoring.Listing{ID: listingID, Category: "daycare"}}
	svc, _, _ := newTestService(t, repo)

	rank, err := svc.CategoryRank(context.Background(), listingID)
	if err != nil {
		t.Fatalf("category rank: %v", err)
	}
	if !rank.Placeholder {
		t.Fatal("expected placeholder rank from stub provider")
	}
}

func TestRecordProfileView_UnknownListing(t *testing.T) {
	repo := &fakeRepo{listing: scoring.Listing{ID: uuid.New()}}
	svc, _, _ := newTestService(t, repo)

	_, err := svc.RecordProfileView(context.Background(), uuid.New())
	if !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
