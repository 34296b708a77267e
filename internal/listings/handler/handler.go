// Package handler exposes the listings HTTP endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"carefinder_backend/internal/listings/repository"
	"carefinder_backend/internal/listings/service"
	"carefinder_backend/internal/listings/transport"
	"carefinder_backend/internal/scoring"
	"carefinder_backend/platform/httpkit"
	"carefinder_backend/platform/validator"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
	msgInvalidID        = "invalid listing ID"
	msgInvalidInquiryID = "invalid inquiry ID"
)

// Handler handles HTTP requests for listings.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a new listings handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// GetListing returns the listing snapshot.
// GET /api/v1/listings/:id
func (h *Handler) GetListing(c *gin.Context) {
	id, ok := parseListingID(c)
	if !ok {
		return
	}

	listing, err := h.svc.GetListing(c.Request.Context(), id)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, toListingResponse(listing))
}

// GetScore returns the computed optimization score.
// GET /api/v1/listings/:id/score
func (h *Handler) GetScore(c *gin.Context) {
	id, ok := parseListingID(c)
	if !ok {
		return
	}

	score, err := h.svc.GetOptimizationScore(c.Request.Context(), id)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, transport.ScoreResponse{ListingID: id, Score: score})
}

// GetRank returns the listing's category rank. With the stub provider the
// payload is flagged as placeholder data.
// GET /api/v1/listings/:id/rank
func (h *Handler) GetRank(c *gin.Context) {
	id, ok := parseListingID(c)
	if !ok {
		return
	}

	rank, err := h.svc.CategoryRank(c.Request.Context(), id)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, transport.RankResponse{ListingID: id, PeerRank: rank})
}

// RecordView bumps the pending profile-view counter.
// POST /api/v1/listings/:id/views
func (h *Handler) RecordView(c *gin.Context) {
	id, ok := parseListingID(c)
	if !ok {
		return
	}

	pending, err := h.svc.RecordProfileView(c.Request.Context(), id)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, transport.CounterResponse{ListingID: id, Pending: pending})
}

// RecordFavorite bumps the pending favorite counter.
// POST /api/v1/listings/:id/favorites
func (h *Handler) RecordFavorite(c *gin.Context) {
	id, ok := parseListingID(c)
	if !ok {
		return
	}

	pending, err := h.svc.RecordFavorite(c.Request.Context(), id)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, transport.CounterResponse{ListingID: id, Pending: pending})
}

// ListReviews returns all reviews for a listing.
// GET /api/v1/listings/:id/reviews
func (h *Handler) ListReviews(c *gin.Context) {
	id, ok := parseListingID(c)
	if !ok {
		return
	}

	reviews, err := h.svc.ListReviews(c.Request.Context(), id)
	if httpkit.HandleError(c, err) {
		return
	}

	items := make([]transport.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		items = append(items, toReviewResponse(review))
	}
	httpkit.OK(c, transport.ReviewListResponse{Items: items, Total: len(items)})
}

// CreateReview submits a new review.
// POST /api/v1/listings/:id/reviews
func (h *Handler) CreateReview(c *gin.Context) {
	id, ok := parseListingID(c)
	if !ok {
		return
	}

	var req transport.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	review, err := h.svc.SubmitReview(c.Request.Context(), id, req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.Created(c, toReviewResponse(review))
}

// ListInquiries returns all inquiries for a listing.
// GET /api/v1/listings/:id/inquiries
func (h *Handler) ListInquiries(c *gin.Context) {
	id, ok := parseListingID(c)
	if !ok {
		return
	}

	inquiries, err := h.svc.ListInquiries(c.Request.Context(), id)
	if httpkit.HandleError(c, err) {
		return
	}

	items := make([]transport.InquiryResponse, 0, len(inquiries))
	for _, inquiry := range inquiries {
		items = append(items, toInquiryResponse(inquiry))
	}
	httpkit.OK(c, transport.InquiryListResponse{Items: items, Total: len(items)})
}

// CreateInquiry submits a new contact inquiry.
// POST /api/v1/listings/:id/inquiries
func (h *Handler) CreateInquiry(c *gin.Context) {
	id, ok := parseListingID(c)
	if !ok {
		return
	}

	var req transport.CreateInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	inquiry, err := h.svc.SubmitInquiry(c.Request.Context(), id, req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.Created(c, toInquiryResponse(inquiry))
}

// UpdateInquiry transitions an inquiry to responded or closed.
// PATCH /api/v1/listings/:id/inquiries/:inquiryId
func (h *Handler) UpdateInquiry(c *gin.Context) {
	id, ok := parseListingID(c)
	if !ok {
		return
	}
	inquiryID, err := uuid.Parse(c.Param("inquiryId"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidInquiryID, nil)
		return
	}

	var req transport.UpdateInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	inquiry, err := h.svc.RespondInquiry(c.Request.Context(), id, inquiryID, scoring.InquiryStatus(req.Status))
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, toInquiryResponse(inquiry))
}

func parseListingID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidID, nil)
		return uuid.Nil, false
	}
	return id, true
}

func toListingResponse(listing scoring.Listing) transport.ListingResponse {
	return transport.ListingResponse{
		ID:                listing.ID,
		Name:              listing.Name,
		Category:          listing.Category,
		Description:       listing.Description,
		Website:           listing.Website,
		Phone:             listing.Phone,
		Features:          listing.Features,
		ProgramHighlights: listing.ProgramHighlights,
		Schedule:          listing.Schedule,
		HoursOpen:         listing.HoursOpen,
		HoursClose:        listing.HoursClose,
		LicenseNumber:     listing.LicenseNumber,
		IsVerified:        listing.IsVerified,
		IsVerifiedByGov:   listing.IsVerifiedByGov,
		ClaimStatus:       string(listing.ClaimStatus),
		IsPremium:         listing.IsPremium,
		Rating:            listing.Rating,
		ProfileViews:      listing.ProfileViews,
		FavoriteAdds:      listing.FavoriteAdds,
		CreatedAt:         listing.CreatedAt,
		UpdatedAt:         listing.UpdatedAt,
	}
}

func toReviewResponse(review repository.Review) transport.ReviewResponse {
	return transport.ReviewResponse{
		ID:         review.ID,
		ListingID:  review.ListingID,
		AuthorName: review.AuthorName,
		Rating:     review.Rating,
		Comment:    review.Comment,
		CreatedAt:  review.CreatedAt,
	}
}

func toInquiryResponse(inquiry repository.Inquiry) transport.InquiryResponse {
	return transport.InquiryResponse{
		ID:          inquiry.ID,
		ListingID:   inquiry.ListingID,
		ParentName:  inquiry.ParentName,
		Email:       inquiry.Email,
		Phone:       inquiry.Phone,
		Message:     inquiry.Message,
		Status:      string(inquiry.Status),
		CreatedAt:   inquiry.CreatedAt,
		RespondedAt: inquiry.RespondedAt,
	}
}
