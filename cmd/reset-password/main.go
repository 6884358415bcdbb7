package main

import (
	"log"

	"chemiflex-backend/internal/config"
	"chemiflex-backend/internal/model"
	"chemiflex-backend/pkg/database"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, relying on system env")
	}
	cfg := config.Load()

	// 2. Setup Database
	db := database.ConnectDB(cfg.DatabaseURL)

	// 3. Find Admin
	var user model.User
	if err := db.Where("email = ?", cfg.AdminEmail).First(&user).Error; err != nil {
		log.Fatalf("User %s not found in database: %v", cfg.AdminEmail, err)
	}

	// 4. Hash new password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	// 5. Update
	if err := db.Model(&user).Update("password", string(hashedPassword)).Error; err != nil {
		log.Fatalf("Failed to update password in DB: %v", err)
	}

	log.Printf("Password for %s has been reset", cfg.AdminEmail)
}
