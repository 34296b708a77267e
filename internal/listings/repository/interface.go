package repository

import (
	"context"
	"time"

	"carefinder_backend/internal/scoring"

	"github.com/google/uuid"
)

// Review is a full review record. The scoring engine only consumes the
// rating; the remaining fields serve the reviews API.
type Review struct {
	ID         uuid.UUID
	ListingID  uuid.UUID
	AuthorName string
	Rating     int
	Comment    string
	CreatedAt  time.Time
}

// Inquiry is a full contact inquiry record with its lifecycle status.
type Inquiry struct {
	ID          uuid.UUID
	ListingID   uuid.UUID
	ParentName  string
	Email       string
	Phone       string
	Message     string
	Status      scoring.InquiryStatus
	CreatedAt   time.Time
	RespondedAt *time.Time
}

// Repository defines data access for the listings bounded context.
type Repository interface {
	// GetListing returns the listing snapshot used for scoring and display.
	GetListing(ctx context.Context, id uuid.UUID) (scoring.Listing, error)
	// ListImages returns the media metadata attached to a listing.
	ListImages(ctx context.Context, listingID uuid.UUID) ([]scoring.Image, error)
	// ListReviews returns all reviews for a listing, newest first.
	ListReviews(ctx context.Context, listingID uuid.UUID) ([]Review, error)
	// CreateReview inserts a review and recomputes the listing's aggregate
	// rating in the same transaction.
	CreateReview(ctx context.Context, review Review) (Review, error)
	// ListInquiries returns all inquiries for a listing, newest first.
	ListInquiries(ctx context.Context, listingID uuid.UUID) ([]Inquiry, error)
	// CreateInquiry inserts a new pending inquiry.
	CreateInquiry(ctx context.Context, inquiry Inquiry) (Inquiry, error)
	// UpdateInquiryStatus transitions an inquiry to responded or closed.
	UpdateInquiryStatus(ctx context.Context, listingID, inquiryID uuid.UUID, status scoring.InquiryStatus) (Inquiry, error)
	// TouchListing bumps the listing's updated_at to now.
	TouchListing(ctx context.Context, id uuid.UUID) error
}
