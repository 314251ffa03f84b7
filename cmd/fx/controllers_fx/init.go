package controllers_fx

import (
	"go.uber.org/fx"

	"tourvisto/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewTripController),
	fx.Provide(controllers.NewUserController),
	fx.Provide(controllers.NewDashboardController))
