package database

import (
	"fmt"
	"log"
	"os"

	"guide-app/internal/domain/billing"
	"guide-app/internal/domain/reviews"
	"guide-app/internal/domain/team"
	"guide-app/internal/domain/users"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		log.Fatal("DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	DB = db

	if err := DB.AutoMigrate(
		// accounts
		&users.User{},
		&users.VerificationToken{},

		// purchases
		&billing.CheckoutSession{},
		&billing.Payment{},
		&team.Team{},

		// content
		&reviews.Review{},
		&reviews.Favorite{},
	); err != nil {
		log.Fatal("AutoMigrate error:", err)
	}

	fmt.Println("Connected and migrated successfully")
}
