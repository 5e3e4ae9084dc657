package payment_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"itinero/internal/config"
	"itinero/internal/repositories"
	"itinero/internal/services"
)

var Module = fx.Provide(
	provideSubscriptionRepo,
	providePlanRepo,
	providePlanService,
	providePaymentService)

func provideSubscriptionRepo(db *gorm.DB) repositories.SubscriptionRepository {
	return repositories.NewSubscriptionRepository(db)
}

func providePlanRepo(db *gorm.DB) repositories.PlanRepository {
	return repositories.NewPlanRepository(db)
}

func providePlanService(planRepo repositories.PlanRepository) services.PlanServiceInterface {
	return services.NewPlanService(planRepo)
}

func providePaymentService(db *gorm.DB, subRepo repositories.SubscriptionRepository, cfg *config.Config) services.PaymentService {
	return services.NewPaymentService(db, subRepo, cfg.Payment)
}
