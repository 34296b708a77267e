// Package listings provides the listings bounded context module.
package listings

import (
	"context"

	"carefinder_backend/internal/events"
	apphttp "carefinder_backend/internal/http"
	"carefinder_backend/internal/listings/counters"
	"carefinder_backend/internal/listings/handler"
	"carefinder_backend/internal/listings/repository"
	"carefinder_backend/internal/listings/service"
	"carefinder_backend/internal/scoring"
	"carefinder_backend/platform/logger"
	"carefinder_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// Module is the listings bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
	repo    repository.Repository
}

// NewModule creates and initializes the listings module. redisClient may be
// nil, in which case engagement counters degrade to zero deltas.
func NewModule(pool *pgxpool.Pool, redisClient *redis.Client, bus events.Bus, val *validator.Validator, log *logger.Logger) *Module {
	repo := repository.New(pool)
	counterStore := counters.New(redisClient)
	engine := scoring.NewEngine(nil)

	svc := service.New(repo, counterStore, engine, bus, log)
	h := handler.New(svc, val)

	return &Module{
		handler: h,
		service: svc,
		repo:    repo,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "listings"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts listings routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.V1.Group("/listings")
	group.GET("/:id", m.handler.GetListing)
	group.GET("/:id/score", m.handler.GetScore)
	group.GET("/:id/rank", m.handler.GetRank)
	group.POST("/:id/views", m.handler.RecordView)
	group.POST("/:id/favorites", m.handler.RecordFavorite)
	group.GET("/:id/reviews", m.handler.ListReviews)
	group.POST("/:id/reviews", m.handler.CreateReview)
	group.GET("/:id/inquiries", m.handler.ListInquiries)
	group.POST("/:id/inquiries", m.handler.CreateInquiry)
	group.PATCH("/:id/inquiries/:inquiryId", m.handler.UpdateInquiry)
}

// RegisterHandlers subscribes to domain events. A new review counts as
// profile activity, so it bumps the listing's updated_at.
func (m *Module) RegisterHandlers(bus events.Bus) {
	bus.Subscribe(events.ReviewCreated{}.EventName(), m)
}

// Handle routes events to the appropriate handler method.
func (m *Module) Handle(ctx context.Context, event events.Event) error {
	switch e := event.(type) {
	case events.ReviewCreated:
		return m.service.TouchListing(ctx, e.ListingID)
	default:
		return nil
	}
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
