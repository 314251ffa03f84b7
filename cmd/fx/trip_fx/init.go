package trip_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tourvisto/internal/repositories"
	"tourvisto/internal/services"
	"tourvisto/pkg/utils"
)

var Module = fx.Provide(provideTripRepo, provideTripService, provideExportService)

func provideTripRepo(db *gorm.DB) repositories.TripRepository {
	return repositories.NewTripRepository(db)
}

func provideTripService(
	tripRepo repositories.TripRepository,
	aiClient utils.TextClientInterface,
	imageService services.ImageService,
	paymentService services.PaymentService,
) services.TripService {
	return services.NewTripService(tripRepo, aiClient, imageService, paymentService)
}

func provideExportService() services.ExportService {
	return services.NewExportService()
}
