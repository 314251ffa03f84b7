package dashboard_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tourvisto/internal/repositories"
	"tourvisto/internal/services"
)

var Module = fx.Provide(provideDashboardRepo, provideDashboardService)

func provideDashboardRepo(db *gorm.DB) repositories.DashboardRepository {
	return repositories.NewDashboardRepository(db)
}

func provideDashboardService(repo repositories.DashboardRepository) services.DashboardService {
	return services.NewDashboardService(repo)
}
