package db_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tourvisto/internal/config"
	"tourvisto/internal/infra"
)

var Module = fx.Provide(provideDB)

func provideDB(cfg *config.Config) *gorm.DB {
	return infra.InitPostgresql(cfg)
}
