package transport

import (
	"time"

	"github.com/google/uuid"

	"carefinder_backend/internal/scoring"
)

// ListingResponse is the listing snapshot in API responses.
type ListingResponse struct {
	ID                uuid.UUID              `json:"id"`
	Name              string                 `json:"name"`
	Category          string                 `json:"category"`
	Description       string                 `json:"description,omitempty"`
	Website           string                 `json:"website,omitempty"`
	Phone             string                 `json:"phone,omitempty"`
	Features          []string               `json:"features"`
	ProgramHighlights []string               `json:"programHighlights"`
	Schedule          scoring.WeeklySchedule `json:"schedule,omitempty"`
	HoursOpen         string                 `json:"hoursOpen,omitempty"`
	HoursClose        string                 `json:"hoursClose,omitempty"`
	LicenseNumber     string                 `json:"licenseNumber,omitempty"`
	IsVerified        bool                   `json:"isVerified"`
	IsVerifiedByGov   bool                   `json:"isVerifiedByGov"`
	ClaimStatus       string                 `json:"claimStatus"`
	IsPremium         bool                   `json:"isPremium"`
	Rating            float64                `json:"rating"`
	ProfileViews      int                    `json:"profileViews"`
	FavoriteAdds      int                    `json:"favoriteAdds"`
	CreatedAt         *time.Time             `json:"createdAt,omitempty"`
	UpdatedAt         *time.Time             `json:"updatedAt,omitempty"`
}

// ScoreResponse wraps the computed optimization score with its listing ID.
type ScoreResponse struct {
	ListingID uuid.UUID `json:"listingId"`
	scoring.Score
}

// RankResponse wraps the peer rank with its listing ID.
type RankResponse struct {
	ListingID uuid.UUID `json:"listingId"`
	scoring.PeerRank
}

// CounterResponse reports the new pending total after an increment.
type CounterResponse struct {
	ListingID uuid.UUID `json:"listingId"`
	Pending   int64     `json:"pending"`
}

// CreateReviewRequest contains data for submitting a review.
type CreateReviewRequest struct {
	AuthorName string `json:"authorName" validate:"omitempty,max=100"`
	Rating     int    `json:"rating" validate:"required,min=1,max=5"`
	Comment    string `json:"comment" validate:"omitempty,max=2000"`
}

// ReviewResponse represents a review in API responses.
type ReviewResponse struct {
	ID         uuid.UUID `json:"id"`
	ListingID  uuid.UUID `json:"listingId"`
	AuthorName string    `json:"authorName,omitempty"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ReviewListResponse wraps a list of reviews.
type ReviewListResponse struct {
	Items []ReviewResponse `json:"items"`
	Total int              `json:"total"`
}

// CreateInquiryRequest contains data for submitting a contact inquiry.
type CreateInquiryRequest struct {
	ParentName string `json:"parentName" validate:"required,min=1,max=100"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone" validate:"omitempty,max=30"`
	Message    string `json:"message" validate:"required,min=1,max=2000"`
}

// UpdateInquiryRequest transitions an inquiry's lifecycle status.
type UpdateInquiryRequest struct {
	Status string `json:"status" validate:"required,oneof=responded closed"`
}

// InquiryResponse represents an inquiry in API responses.
type InquiryResponse struct {
	ID          uuid.UUID  `json:"id"`
	ListingID   uuid.UUID  `json:"listingId"`
	ParentName  string     `json:"parentName"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone,omitempty"`
	Message     string     `json:"message"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	RespondedAt *time.Time `json:"respondedAt,omitempty"`
}

// InquiryListResponse wraps a list of inquiries.
type InquiryListResponse struct {
	Items []InquiryResponse `json:"items"`
	Total int               `json:"total"`
}
