package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"carefinder_backend/internal/scoring"
	"carefinder_backend/platform/apperr"
)

const (
	listingNotFoundMessage = "listing not found"
	inquiryNotFoundMessage = "inquiry not found"
)

// Repo implements the Repository interface with PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new listings repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Compile-time check that Repo implements Repository.
var _ Repository = (*Repo)(nil)

const listingColumns = `
	id, name, category, COALESCE(description, ''), COALESCE(website, ''), COALESCE(phone, ''),
	COALESCE(features, '{}'), COALESCE(program_highlights, '{}'), schedule,
	COALESCE(hours_open, ''), COALESCE(hours_close, ''), COALESCE(license_number, ''),
	is_verified, is_verified_by_gov, claim_status, is_premium,
	COALESCE(rating, 0), profile_views, favorite_adds, created_at, updated_at`

// GetListing retrieves the listing snapshot by ID.
func (r *Repo) GetListing(ctx context.Context, id uuid.UUID) (scoring.Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM listings WHERE id = $1`

	var (
		listing     scoring.Listing
		scheduleRaw []byte
		claimStatus string
		createdAt   *time.Time
		updatedAt   *time.Time
	)

	err := r.pool.QueryRow(ctx, query, id).Scan(
		&listing.ID, &listing.Name, &listing.Category, &listing.Description, &listing.Website, &listing.Phone,
		&listing.Features, &listing.ProgramHighlights, &scheduleRaw,
		&listing.HoursOpen, &listing.HoursClose, &listing.LicenseNumber,
		&listing.IsVerified, &listing.IsVerifiedByGov, &claimStatus, &listing.IsPremium,
		&listing.Rating, &listing.ProfileViews, &listing.FavoriteAdds, &createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return scoring.Listing{}, apperr.NotFound(listingNotFoundMessage)
		}
		return scoring.Listing{}, fmt.Errorf("get listing by id: %w", err)
	}

	listing.ClaimStatus = scoring.ClaimStatus(claimStatus)
	listing.CreatedAt = createdAt
	listing.UpdatedAt = updatedAt

	if len(scheduleRaw) > 0 {
		var schedule scoring.WeeklySchedule
		if err := json.Unmarshal(scheduleRaw, &schedule); err != nil {
			return scoring.Listing{}, fmt.Errorf("decode listing schedule: %w", err)
		}
		listing.Schedule = schedule
	}

	return listing, nil
}

// ListImages retrieves image metadata for a listing.
func (r *Repo) ListImages(ctx context.Context, listingID uuid.UUID) ([]scoring.Image, error) {
	query := `
		SELECT id, url, COALESCE(caption, '')
		FROM listing_images
		WHERE listing_id = $1
		ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, listingID)
	if err != nil {
		return nil, fmt.Errorf("list listing images: %w", err)
	}
	defer rows.Close()

	images := []scoring.Image{}
	for rows.Next() {
		var img scoring.Image
		if err := rows.Scan(&img.ID, &img.URL, &img.Caption); err != nil {
			return nil, fmt.Errorf("scan listing image: %w", err)
		}
		images = append(images, img)
	}
	return images, rows.Err()
}

// ListReviews retrieves all reviews for a listing, newest first.
func (r *Repo) ListReviews(ctx context.Context, listingID uuid.UUID) ([]Review, error) {
	query := `
		SELECT id, listing_id, COALESCE(author_name, ''), rating, COALESCE(comment, ''), created_at
		FROM listing_reviews
		WHERE listing_id = $1
		ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, listingID)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()

	reviews := []Review{}
	for rows.Next() {
		var review Review
		if err := rows.Scan(&review.ID, &review.ListingID, &review.AuthorName, &review.Rating, &review.Comment, &review.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		reviews = append(reviews, review)
	}
	return reviews, rows.Err()
}

// CreateReview inserts a review and recomputes the listing's aggregate
// rating in the same transaction.
func (r *Repo) CreateReview(ctx context.Context, review Review) (Review, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return Review{}, fmt.Errorf("begin create review: %w", err)
	}
	defer tx.Rollback(ctx)

	insert := `
		INSERT INTO listing_reviews (id, listing_id, author_name, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, now())
		RETURNING created_at`

	review.ID = uuid.New()
	err = tx.QueryRow(ctx, insert, review.ID, review.ListingID, review.AuthorName, review.Rating, review.Comment).
		Scan(&review.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return Review{}, apperr.NotFound(listingNotFoundMessage)
		}
		return Review{}, fmt.Errorf("insert review: %w", err)
	}

	// Keep the denormalized aggregate rating in step with the review set.
	update := `
		UPDATE listings
		SET rating = (
			SELECT ROUND(AVG(rating)::numeric, 2)
			FROM listing_reviews
			WHERE listing_id = $1
		)
		WHERE id = $1`
	if _, err := tx.Exec(ctx, update, review.ListingID); err != nil {
		return Review{}, fmt.Errorf("refresh aggregate rating: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return Review{}, fmt.Errorf("commit create review: %w", err)
	}
	return review, nil
}

// ListInquiries retrieves all inquiries for a listing, newest first.
func (r *Repo) ListInquiries(ctx context.Context, listingID uuid.UUID) ([]Inquiry, error) {
	query := `
		SELECT id, listing_id, parent_name, email, COALESCE(phone, ''), message, status, created_at, responded_at
		FROM listing_inquiries
		WHERE listing_id = $1
		ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, listingID)
	if err != nil {
		return nil, fmt.Errorf("list inquiries: %w", err)
	}
	defer rows.Close()

	inquiries := []Inquiry{}
	for rows.Next() {
		var inquiry Inquiry
		var status string
		if err := rows.Scan(&inquiry.ID, &inquiry.ListingID, &inquiry.ParentName, &inquiry.Email, &inquiry.Phone,
			&inquiry.Message, &status, &inquiry.CreatedAt, &inquiry.RespondedAt); err != nil {
			return nil, fmt.Errorf("scan inquiry: %w", err)
		}
		inquiry.Status = scoring.InquiryStatus(status)
		inquiries = append(inquiries, inquiry)
	}
	return inquiries, rows.Err()
}

// CreateInquiry inserts a new pending inquiry.
func (r *Repo) CreateInquiry(ctx context.Context, inquiry Inquiry) (Inquiry, error) {
	query := `
		INSERT INTO listing_inquiries (id, listing_id, parent_name, email, phone, message, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now())
		RETURNING created_at`

	inquiry.ID = uuid.New()
	inquiry.Status = scoring.InquiryPending
	err := r.pool.QueryRow(ctx, query,
		inquiry.ID, inquiry.ListingID, inquiry.ParentName, inquiry.Email, inquiry.Phone, inquiry.Message, string(inquiry.Status),
	).Scan(&inquiry.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return Inquiry{}, apperr.NotFound(listingNotFoundMessage)
		}
		return Inquiry{}, fmt.Errorf("insert inquiry: %w", err)
	}
	return inquiry, nil
}

// UpdateInquiryStatus transitions an inquiry to responded or closed.
func (r *Repo) UpdateInquiryStatus(ctx context.Context, listingID, inquiryID uuid.UUID, status scoring.InquiryStatus) (Inquiry, error) {
	query := `
		UPDATE listing_inquiries
		SET status = $3, responded_at = now()
		WHERE id = $1 AND listing_id = $2
		RETURNING id, listing_id, parent_name, email, COALESCE(phone, ''), message, status, created_at, responded_at`

	var inquiry Inquiry
	var statusOut string
	err := r.pool.QueryRow(ctx, query, inquiryID, listingID, string(status)).Scan(
		&inquiry.ID, &inquiry.ListingID, &inquiry.ParentName, &inquiry.Email, &inquiry.Phone,
		&inquiry.Message, &statusOut, &inquiry.CreatedAt, &inquiry.RespondedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Inquiry{}, apperr.NotFound(inquiryNotFoundMessage)
		}
		return Inquiry{}, fmt.Errorf("update inquiry status: %w", err)
	}
	inquiry.Status = scoring.InquiryStatus(statusOut)
	return inquiry, nil
}

// TouchListing bumps the listing's updated_at so freshness reflects activity.
func (r *Repo) TouchListing(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `UPDATE listings SET updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("touch listing: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(listingNotFoundMessage)
	}
	return nil
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}
