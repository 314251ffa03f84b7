package user_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tourvisto/internal/repositories"
	"tourvisto/internal/services"
)

var Module = fx.Provide(provideUserRepo, provideUserService)

func provideUserRepo(db *gorm.DB) repositories.UserRepository {
	return repositories.NewUserRepository(db)
}

func provideUserService(userRepo repositories.UserRepository) services.UserService {
	return services.NewUserService(userRepo)
}
