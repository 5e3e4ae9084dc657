package services

import (
	"context"
	"time"

	"go.uber.org/zap"
	"itinero/internal/repositories"
	"itinero/internal/scheduler"
	mem "itinero/pkg/memcache"
	"itinero/pkg/utils"
)

type SchedulerServiceInterface interface {
	FetchActivities(ctx context.Context, itineraryID, destinationID string) ([]scheduler.Entry, error)
	AddActivity(ctx context.Context, itineraryID, destinationID, placeID string) (scheduler.Entry, error)
	RemoveActivity(ctx context.Context, itineraryID, destinationID, placeID string) error
	SetSchedule(ctx context.Context, itineraryID, destinationID, entryID string, date, startTime, endTime *string) error
	SetNotes(ctx context.Context, itineraryID, destinationID, entryID, notes string) error
	MoveActivity(ctx context.Context, itineraryID, destinationID, entryID string, date *string, order int) error
	IsActivityAdded(itineraryID, destinationID, placeID string) bool
	GetEntryField(ctx context.Context, entryID, column string) (interface{}, error)
	CloseView(itineraryID, destinationID string)
}

type SchedulerService struct {
	registry        *scheduler.Registry
	entryRepo       repositories.EntryRepository
	destinationRepo repositories.DestinationRepository
	dateRanges      *mem.DateRanges
	catalogService  CatalogServiceInterface
	logger          *zap.Logger
}

func NewSchedulerService(
	registry *scheduler.Registry,
	entryRepo repositories.EntryRepository,
	destinationRepo repositories.DestinationRepository,
	dateRanges *mem.DateRanges,
	catalogService CatalogServiceInterface,
	logger *zap.Logger,
) SchedulerServiceInterface {
	return &SchedulerService{
		registry:        registry,
		entryRepo:       entryRepo,
		destinationRepo: destinationRepo,
		dateRanges:      dateRanges,
		catalogService:  catalogService,
		logger:          logger,
	}
}

// ensureDateRange loads the trip bounds into the in-memory context if they
// are not there yet. A destination with no stored bounds is fine; the
// scheduler then skips range validation.
func (s *SchedulerService) ensureDateRange(ctx context.Context, itineraryID, destinationID string) {
	if _, _, ok := s.dateRanges.Current(itineraryID, destinationID); ok {
		return
	}

	from, to, found, err := s.destinationRepo.GetDateRange(ctx, itineraryID, destinationID)
	if err != nil {
		s.logger.Warn("failed to load destination date range",
			zap.String("itinerary_id", itineraryID),
			zap.String("destination_id", destinationID),
			zap.Error(err))
		return
	}
	if found {
		s.dateRanges.Set(itineraryID, destinationID, from, to)
	}
}

func (s *SchedulerService) FetchActivities(ctx context.Context, itineraryID, destinationID string) ([]scheduler.Entry, error) {
	s.ensureDateRange(ctx, itineraryID, destinationID)
	store := s.registry.Get(itineraryID, destinationID)
	return store.FetchForDestination(ctx)
}

func (s *SchedulerService) AddActivity(ctx context.Context, itineraryID, destinationID, placeID string) (scheduler.Entry, error) {
	activity, err := s.catalogService.GetActivity(ctx, placeID)
	if err != nil {
		return scheduler.Entry{}, err
	}
	if activity == nil {
		return scheduler.Entry{}, utils.ErrActivityNotFound
	}

	store := s.registry.Get(itineraryID, destinationID)
	return store.Add(ctx, *activity)
}

func (s *SchedulerService) RemoveActivity(ctx context.Context, itineraryID, destinationID, placeID string) error {
	store := s.registry.Get(itineraryID, destinationID)
	return store.Remove(ctx, placeID)
}

func (s *SchedulerService) SetSchedule(ctx context.Context, itineraryID, destinationID, entryID string, date, startTime, endTime *string) error {
	parsedDate, err := parseOptionalDate(date)
	if err != nil {
		return utils.ErrInvalidInput
	}

	s.ensureDateRange(ctx, itineraryID, destinationID)
	store := s.registry.Get(itineraryID, destinationID)
	return store.SetSchedule(ctx, entryID, parsedDate, startTime, endTime)
}

func (s *SchedulerService) SetNotes(ctx context.Context, itineraryID, destinationID, entryID, notes string) error {
	store := s.registry.Get(itineraryID, destinationID)
	return store.SetNotes(ctx, entryID, notes)
}

func (s *SchedulerService) MoveActivity(ctx context.Context, itineraryID, destinationID, entryID string, date *string, order int) error {
	parsedDate, err := parseOptionalDate(date)
	if err != nil {
		return utils.ErrInvalidInput
	}

	s.ensureDateRange(ctx, itineraryID, destinationID)
	store := s.registry.Get(itineraryID, destinationID)
	return store.Move(ctx, entryID, parsedDate, order)
}

func (s *SchedulerService) IsActivityAdded(itineraryID, destinationID, placeID string) bool {
	return s.registry.Get(itineraryID, destinationID).IsActivityAdded(placeID)
}

func (s *SchedulerService) GetEntryField(ctx context.Context, entryID, column string) (interface{}, error) {
	rows, err := s.entryRepo.QueryField(ctx, "scheduled_entries", column, "id", []string{entryID})
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if len(rows) == 0 {
		return nil, utils.ErrEntryNotFound
	}
	return rows[0][column], nil
}

// CloseView tears down the per-view state when the builder unmounts.
func (s *SchedulerService) CloseView(itineraryID, destinationID string) {
	s.registry.Release(itineraryID, destinationID)
	s.dateRanges.Forget(itineraryID, destinationID)
}

func parseOptionalDate(date *string) (*time.Time, error) {
	if date == nil || *date == "" {
		return nil, nil
	}
	t, err := utils.ParseDateOnly(*date)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
