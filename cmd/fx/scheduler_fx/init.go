package scheduler_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"itinero/internal/repositories"
	"itinero/internal/scheduler"
	"itinero/internal/services"
	mem "itinero/pkg/memcache"
)

var Module = fx.Provide(
	provideEntryRepo,
	provideDestinationRepo,
	provideDateRanges,
	provideRegistry,
	provideSchedulerService,
	provideViewService)

func provideEntryRepo(db *gorm.DB) repositories.EntryRepository {
	return repositories.NewEntryRepository(db)
}

func provideDestinationRepo(db *gorm.DB) repositories.DestinationRepository {
	return repositories.NewDestinationRepository(db)
}

func provideDateRanges() *mem.DateRanges {
	return mem.NewDateRanges()
}

func provideRegistry(entryRepo repositories.EntryRepository, dateRanges *mem.DateRanges, logger *zap.Logger) *scheduler.Registry {
	return scheduler.NewRegistry(entryRepo, dateRanges, logger)
}

func provideSchedulerService(
	registry *scheduler.Registry,
	entryRepo repositories.EntryRepository,
	destinationRepo repositories.DestinationRepository,
	dateRanges *mem.DateRanges,
	catalogService services.CatalogServiceInterface,
	logger *zap.Logger,
) services.SchedulerServiceInterface {
	return services.NewSchedulerService(registry, entryRepo, destinationRepo, dateRanges, catalogService, logger)
}

func provideViewService(
	registry *scheduler.Registry,
	activityRepo repositories.ActivityRepository,
	logger *zap.Logger,
) services.ViewServiceInterface {
	return services.NewViewService(registry, activityRepo, logger)
}
