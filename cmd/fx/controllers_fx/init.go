package controllers_fx

import (
	"go.uber.org/fx"
	"itinero/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewSchedulerController),
	fx.Provide(controllers.NewViewsController),
	fx.Provide(controllers.NewActivitiesController),
	fx.Provide(controllers.NewPaymentController))
