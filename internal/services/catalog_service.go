package services

import (
	"context"

	"go.uber.org/zap"
	"itinero/internal/catalog"
	"itinero/internal/repositories"
	"itinero/pkg/utils"
)

type CatalogServiceInterface interface {
	Search(ctx context.Context, destination string, filters catalog.SearchFilters) ([]catalog.Activity, error)
	GetActivity(ctx context.Context, placeID string) (*catalog.Activity, error)
}

type CatalogService struct {
	client       catalog.SearchClient
	cache        *catalog.Cache
	activityRepo repositories.ActivityRepository
	logger       *zap.Logger
}

func NewCatalogService(
	client catalog.SearchClient,
	cache *catalog.Cache,
	activityRepo repositories.ActivityRepository,
	logger *zap.Logger,
) CatalogServiceInterface {
	return &CatalogService{
		client:       client,
		cache:        cache,
		activityRepo: activityRepo,
		logger:       logger,
	}
}

// Search is cache-aside over the places collaborator. Fetched records are
// persisted so scheduled entries keep a resolvable weak reference after the
// cache expires.
func (s *CatalogService) Search(ctx context.Context, destination string, filters catalog.SearchFilters) ([]catalog.Activity, error) {
	if cached, ok := s.cache.GetSearch(ctx, destination, filters); ok {
		return cached, nil
	}

	activities, err := s.client.Search(ctx, destination, filters)
	if err != nil {
		s.logger.Error("places search failed",
			zap.String("destination", destination),
			zap.Error(err))
		return nil, utils.ErrLoadFailed
	}

	if err := s.activityRepo.UpsertMany(ctx, activities); err != nil {
		s.logger.Warn("failed to persist catalog activities", zap.Error(err))
	}
	s.cache.SetSearch(ctx, destination, filters, activities)
	for _, a := range activities {
		s.cache.SetActivity(ctx, a)
	}

	return activities, nil
}

// GetActivity resolves one place record: cache, then database, then the
// collaborator. Returns nil without error when the place does not exist.
func (s *CatalogService) GetActivity(ctx context.Context, placeID string) (*catalog.Activity, error) {
	if a, ok := s.cache.GetActivity(ctx, placeID); ok {
		return &a, nil
	}

	a, err := s.activityRepo.GetByPlaceID(ctx, placeID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if a != nil {
		s.cache.SetActivity(ctx, *a)
		return a, nil
	}

	fetched, err := s.client.Details(ctx, placeID)
	if err != nil {
		s.logger.Warn("place details fetch failed",
			zap.String("place_id", placeID),
			zap.Error(err))
		return nil, nil
	}

	if err := s.activityRepo.UpsertMany(ctx, []catalog.Activity{fetched}); err != nil {
		s.logger.Warn("failed to persist catalog activity", zap.Error(err))
	}
	s.cache.SetActivity(ctx, fetched)
	return &fetched, nil
}
