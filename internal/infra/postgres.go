package infra

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"log"

	"tourvisto/internal/config"
	"tourvisto/internal/models/db_models"
)

func InitPostgresql(cfg *config.Config) *gorm.DB {
	dsn := cfg.Database.PostgresURL

	connectionPool, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database")
	}

	if err := connectionPool.AutoMigrate(&db_models.Trip{}, &db_models.User{}); err != nil {
		log.Printf("Error running migrations: %v", err)
	}

	return connectionPool
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("PostgreSQL database connection closed successfully")
	}
}
