package services

import (
	"context"

	"go.uber.org/zap"
	"itinero/internal/catalog"
	"itinero/internal/projections"
	"itinero/internal/repositories"
	"itinero/internal/scheduler"
)

// ViewServiceInterface derives the three presentation surfaces from the
// scheduler's current entry collection. Projections are pure; this service
// only supplies them with a snapshot and catalog lookups.
type ViewServiceInterface interface {
	TableView(itineraryID, destinationID string) []projections.TableGroup
	CalendarView(itineraryID, destinationID string) projections.CalendarView
	MapView(ctx context.Context, itineraryID, destinationID string) ([]projections.Marker, error)
}

type ViewService struct {
	registry     *scheduler.Registry
	activityRepo repositories.ActivityRepository
	logger       *zap.Logger
}

func NewViewService(registry *scheduler.Registry, activityRepo repositories.ActivityRepository, logger *zap.Logger) ViewServiceInterface {
	return &ViewService{
		registry:     registry,
		activityRepo: activityRepo,
		logger:       logger,
	}
}

func (v *ViewService) TableView(itineraryID, destinationID string) []projections.TableGroup {
	entries := v.registry.Get(itineraryID, destinationID).Entries()
	return projections.Table(entries)
}

func (v *ViewService) CalendarView(itineraryID, destinationID string) projections.CalendarView {
	entries := v.registry.Get(itineraryID, destinationID).Entries()
	return projections.Calendar(entries)
}

func (v *ViewService) MapView(ctx context.Context, itineraryID, destinationID string) ([]projections.Marker, error) {
	entries := v.registry.Get(itineraryID, destinationID).Entries()

	placeIDs := make([]string, 0, len(entries))
	for _, e := range entries {
		placeIDs = append(placeIDs, e.PlaceID)
	}

	activities, err := v.activityRepo.GetByPlaceIDs(ctx, placeIDs)
	if err != nil {
		v.logger.Warn("map lookup failed", zap.Error(err))
		activities = nil
	}

	byPlace := make(map[string]catalog.Activity, len(activities))
	for _, a := range activities {
		byPlace[a.PlaceID] = a
	}

	markers := projections.Markers(entries, func(placeID string) (catalog.Activity, bool) {
		a, ok := byPlace[placeID]
		return a, ok
	})
	return markers, nil
}
