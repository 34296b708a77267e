// Package events provides domain event definitions for decoupled,
// event-driven communication between modules.
// Infrastructure (Bus, Handler) is in platform/events.
package events

import (
	"carefinder_backend/platform/events"

	"github.com/google/uuid"
)

// Re-export platform types for convenience
type (
	Event       = events.Event
	Bus         = events.Bus
	Handler     = events.Handler
	HandlerFunc = events.HandlerFunc
	BaseEvent   = events.BaseEvent
)

// Re-export platform functions
var NewBaseEvent = events.NewBaseEvent

// =============================================================================
// Listings Domain Events
// =============================================================================

// ReviewCreated is published when a parent submits a new review.
type ReviewCreated struct {
	BaseEvent
	ListingID uuid.UUID `json:"listingId"`
	ReviewID  uuid.UUID `json:"reviewId"`
	Rating    int       `json:"rating"`
}

func (e ReviewCreated) EventName() string { return "listings.review.created" }

// InquiryCreated is published when a parent submits a contact inquiry.
type InquiryCreated struct {
	BaseEvent
	ListingID uuid.UUID `json:"listingId"`
	InquiryID uuid.UUID `json:"inquiryId"`
}

func (e InquiryCreated) EventName() string { return "listings.inquiry.created" }

// InquiryResponded is published when a provider responds to or closes an inquiry.
type InquiryResponded struct {
	BaseEvent
	ListingID uuid.UUID `json:"listingId"`
	InquiryID uuid.UUID `json:"inquiryId"`
	Status    string    `json:"status"`
}

func (e InquiryResponded) EventName() string { return "listings.inquiry.responded" }

// ListingUpdated is published when a listing's profile content changes.
type ListingUpdated struct {
	BaseEvent
	ListingID uuid.UUID `json:"listingId"`
}

func (e ListingUpdated) EventName() string { return "listings.listing.updated" }
