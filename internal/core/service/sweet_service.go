package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/sweetshop/inventory-api/internal/api/metrics"
	"github.com/sweetshop/inventory-api/internal/core/domain"
	"github.com/sweetshop/inventory-api/internal/core/ports"
)

// CatalogCache abstracts the catalog list cache (Redis). A miss is reported
// as (nil, nil); cache failures must never surface to callers.
type CatalogCache interface {
	GetList(ctx context.Context) ([]*domain.Sweet, error)
	SetList(ctx context.Context, sweets []*domain.Sweet) error
	Invalidate(ctx context.Context) error
}

// SweetService enforces the quantity invariants on the catalog.
type SweetService struct {
	repo   ports.SweetRepository
	cache  CatalogCache
	logger zerolog.Logger
}

func NewSweetService(repo ports.SweetRepository, cache CatalogCache, logger zerolog.Logger) *SweetService {
	return &SweetService{repo: repo, cache: cache, logger: logger}
}

// Create persists a new catalog item. All four fields are required; zero
// price or quantity is valid, absence is not. Deliberately open to any
// authenticated user, not just admins.
func (s *SweetService) Create(ctx context.Context, input ports.CreateSweetInput) (*domain.Sweet, error) {
	if input.Name == "" || input.Category == "" || input.Price == nil || input.Quantity == nil {
		return nil, domain.ErrMissingFields
	}

	sweet := &domain.Sweet{
		Name:     input.Name,
		Category: input.Category,
		Price:    *input.Price,
		Quantity: *input.Quantity,
	}

	created, err := s.repo.Create(ctx, sweet)
	if err != nil {
		s.logger.Error().Err(err).Str("name", input.Name).Msg("failed to create sweet")
		return nil, err
	}

	metrics.SweetsCreatedTotal.Inc()
	s.invalidateCache(ctx)

	s.logger.Info().Str("id", created.ID).Str("name", created.Name).Msg("sweet created")
	return created, nil
}

// List returns all items, newest-created first, serving from the cache when
// a fresh copy is available.
func (s *SweetService) List(ctx context.Context) ([]*domain.Sweet, error) {
	if cached, err := s.cache.GetList(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("catalog cache read failed, falling back to store")
	} else if cached != nil {
		return cached, nil
	}

	sweets, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetList(ctx, sweets); err != nil {
		s.logger.Warn().Err(err).Msg("failed to populate catalog cache")
	}
	return sweets, nil
}

// Search always hits the store; criteria combinations make caching by key
// impractical at this catalog size.
func (s *SweetService) Search(ctx context.Context, filter ports.SearchFilter) ([]*domain.Sweet, error) {
	return s.repo.Search(ctx, filter)
}

// Update overwrites only the supplied fields. No range validation is applied
// on this path: a negative price passes through, matching the behavior the
// API has always had.
func (s *SweetService) Update(ctx context.Context, id string, fields ports.UpdateFields) (*domain.Sweet, error) {
	updated, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	s.invalidateCache(ctx)
	return updated, nil
}

func (s *SweetService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateCache(ctx)
	s.logger.Info().Str("id", id).Msg("sweet deleted")
	return nil
}

// Purchase decrements the stock by quantity. The decrement is a single
// conditional store operation, so two concurrent purchases can never jointly
// exceed the available stock; the loser sees ErrInsufficientStock.
func (s *SweetService) Purchase(ctx context.Context, id string, quantity int64) (*domain.Sweet, error) {
	if quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	sweet, err := s.repo.DecrementQuantity(ctx, id, quantity)
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientStock) {
			metrics.InsufficientStockTotal.Inc()
		}
		metrics.PurchasesTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	metrics.PurchasesTotal.WithLabelValues("ok").Inc()
	s.invalidateCache(ctx)

	s.logger.Info().
		Str("id", id).
		Int64("quantity", quantity).
		Int64("remaining", sweet.Quantity).
		Msg("sweet purchased")
	return sweet, nil
}

// Restock increments the stock by quantity. Admin-only, enforced at the
// route boundary.
func (s *SweetService) Restock(ctx context.Context, id string, quantity int64) (*domain.Sweet, error) {
	if quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	sweet, err := s.repo.IncrementQuantity(ctx, id, quantity)
	if err != nil {
		metrics.RestocksTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	metrics.RestocksTotal.WithLabelValues("ok").Inc()
	s.invalidateCache(ctx)

	s.logger.Info().
		Str("id", id).
		Int64("quantity", quantity).
		Int64("stock", sweet.Quantity).
		Msg("sweet restocked")
	return sweet, nil
}

func (s *SweetService) invalidateCache(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("failed to invalidate catalog cache")
	}
}
