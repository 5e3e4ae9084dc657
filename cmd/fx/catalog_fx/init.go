package catalog_fx

import (
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"itinero/internal/catalog"
	"itinero/internal/config"
	"itinero/internal/infra"
	"itinero/internal/repositories"
	"itinero/internal/services"
)

var Module = fx.Provide(
	provideRedis,
	providePlacesClient,
	provideCache,
	provideActivityRepo,
	provideCatalogService)

func provideRedis(cfg *config.Config) *redis.Client {
	return infra.InitRedis(cfg)
}

func providePlacesClient(cfg *config.Config, logger *zap.Logger) catalog.SearchClient {
	return catalog.NewPlacesClient(&cfg.Catalog, logger)
}

func provideCache(client *redis.Client, cfg *config.Config, logger *zap.Logger) *catalog.Cache {
	return catalog.NewCache(client, cfg.Catalog.SearchCacheTTL, logger)
}

func provideActivityRepo(db *gorm.DB) repositories.ActivityRepository {
	return repositories.NewActivityRepository(db)
}

func provideCatalogService(
	client catalog.SearchClient,
	cache *catalog.Cache,
	activityRepo repositories.ActivityRepository,
	logger *zap.Logger,
) services.CatalogServiceInterface {
	return services.NewCatalogService(client, cache, activityRepo, logger)
}
