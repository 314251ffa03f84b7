package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tourvisto/cmd/fx/ai_fx"
	"tourvisto/cmd/fx/controllers_fx"
	"tourvisto/cmd/fx/dashboard_fx"
	"tourvisto/cmd/fx/db_fx"
	"tourvisto/cmd/fx/image_fx"
	"tourvisto/cmd/fx/payment_fx"
	"tourvisto/cmd/fx/trip_fx"
	"tourvisto/cmd/fx/user_fx"
	"tourvisto/internal/api/controllers"
	"tourvisto/internal/config"
	"tourvisto/internal/infra"
	"tourvisto/pkg/middleware"
)

func main() {
	app := fx.New(
		fx.Provide(config.Load),
		db_fx.Module,
		ai_fx.Module,
		image_fx.Module,
		payment_fx.Module,
		trip_fx.Module,
		user_fx.Module,
		dashboard_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config, db *gorm.DB) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server at :%s", cfg.Server.Port)
				if err := engine.Run(":" + cfg.Server.Port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			infra.ClosePostgresql(db)
			return nil
		},
	})
}

func ProvideRouter(
	tripController *controllers.TripController,
	userController *controllers.UserController,
	dashboardController *controllers.DashboardController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Disposition", "X-Trace-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterRoutes(r, tripController, userController, dashboardController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	tripController *controllers.TripController,
	userController *controllers.UserController,
	dashboardController *controllers.DashboardController) {

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	tripGroup := api.Group("/trips")
	tripGroup.POST("/create-trip", middleware.JWTAuthMiddleware(), tripController.CreateTrip)
	tripGroup.GET("", tripController.GetAllTrips)
	tripGroup.GET("/:tripId", tripController.GetTripById)
	tripGroup.GET("/:tripId/download", tripController.DownloadTripPDF)

	userGroup := api.Group("/users")
	userGroup.POST("/sync", middleware.JWTAuthMiddleware(), userController.SyncUser)
	userGroup.GET("/me", middleware.JWTAuthMiddleware(), userController.GetCurrentUser)
	userGroup.GET("", middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("admin"), userController.GetAllUsers)

	dashboardGroup := api.Group("/dashboard")
	dashboardGroup.Use(middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("admin"))
	dashboardGroup.GET("/stats", dashboardController.GetStats)
	dashboardGroup.GET("/user-growth", dashboardController.GetUserGrowth)
	dashboardGroup.GET("/trips-by-travel-style", dashboardController.GetTripsByTravelStyle)
}
