package infra

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"itinero/internal/config"
	dbm "itinero/internal/models/db_models"
)

func InitPostgresql(cfg *config.Config) *gorm.DB {
	connectionPool, err := gorm.Open(postgres.Open(cfg.Database.URL), &gorm.Config{})
	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database")
	}

	if err := connectionPool.AutoMigrate(
		&dbm.Itinerary{},
		&dbm.Destination{},
		&dbm.ScheduledEntry{},
		&dbm.CatalogActivity{},
		&dbm.Plan{},
		&dbm.Subscription{},
		&dbm.Transaction{},
	); err != nil {
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
