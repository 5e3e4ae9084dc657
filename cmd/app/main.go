package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"itinero/cmd/fx/catalog_fx"
	"itinero/cmd/fx/controllers_fx"
	"itinero/cmd/fx/db_fx"
	"itinero/cmd/fx/logger_fx"
	"itinero/cmd/fx/payment_fx"
	"itinero/cmd/fx/scheduler_fx"
	"itinero/internal/api/controllers"
	"itinero/internal/config"
	"itinero/pkg/middleware"
)

func main() {
	_ = godotenv.Load()

	app := fx.New(
		fx.Provide(config.Load),
		logger_fx.Module,
		db_fx.Module,
		catalog_fx.Module,
		scheduler_fx.Module,
		payment_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				addr := fmt.Sprintf(":%d", cfg.Server.Port)
				log.Printf("Starting HTTP server at %s", addr)
				if err := engine.Run(addr); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	schedulerController *controllers.SchedulerController,
	viewsController *controllers.ViewsController,
	activitiesController *controllers.ActivitiesController,
	paymentController *controllers.PaymentController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, schedulerController, viewsController, activitiesController, paymentController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	schedulerController *controllers.SchedulerController,
	viewsController *controllers.ViewsController,
	activitiesController *controllers.ActivitiesController,
	paymentController *controllers.PaymentController) {

	itineraries := r.Group("/itineraries")
	itineraries.Use(middleware.JWTAuthMiddleware())
	itineraries.GET("/:itineraryId/destinations/:destinationId/activities", schedulerController.FetchActivities)
	itineraries.GET("/:itineraryId/destinations/:destinationId/activity-added", schedulerController.IsActivityAdded)
	itineraries.DELETE("/:itineraryId/destinations/:destinationId/session", schedulerController.CloseView)
	itineraries.GET("/entries/:entryId/field", schedulerController.GetEntryField)
	itineraries.POST("/add-activity", schedulerController.AddActivity)
	itineraries.POST("/remove-activity", schedulerController.RemoveActivity)
	itineraries.POST("/set-schedule", schedulerController.SetSchedule)
	itineraries.POST("/set-notes", schedulerController.SetNotes)
	itineraries.POST("/move-activity", schedulerController.MoveActivity)

	views := r.Group("/itineraries/:itineraryId/destinations/:destinationId/views")
	views.Use(middleware.JWTAuthMiddleware())
	views.GET("/table", viewsController.GetTableView)
	views.GET("/calendar", viewsController.GetCalendarView)
	views.GET("/map", viewsController.GetMapView)

	activities := r.Group("/activities")
	activities.GET("/search", activitiesController.SearchActivities)
	activities.GET("/:placeId", activitiesController.GetActivityByPlaceId)

	payments := r.Group("/payments")
	payments.POST("/webhook", paymentController.HandleWebhook)
	payments.GET("/plan", middleware.JWTAuthMiddleware(), paymentController.GetPlanFlag)
	payments.GET("/plans", paymentController.ListPlans)
	payments.GET("/plans/:planId", paymentController.GetPlanById)
}
