package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"chemiflex-backend/internal/app"
	"chemiflex-backend/internal/config"
	"chemiflex-backend/internal/model"
	"chemiflex-backend/internal/repository"
	"chemiflex-backend/pkg/database"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}
	cfg := config.Load()

	// 2. Setup Database
	db := database.ConnectDB(cfg.DatabaseURL)
	if err := model.AutoMigrate(db); err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	// 3. Seed default roles and admin user
	seedRolesAndAdmin(db, cfg)

	// 4. Build the application
	srv := app.New(db, cfg)

	// 5. Graceful Shutdown
	go func() {
		if err := srv.Listen(":" + cfg.Port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := srv.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

// seedRolesAndAdmin creates the default roles and the admin user if they don't exist
func seedRolesAndAdmin(db *gorm.DB, cfg config.Config) {
	roleRepo := repository.NewRoleRepo(db)
	userRepo := repository.NewUserRepo(db)

	if err := roleRepo.SeedDefaults(); err != nil {
		log.Printf("Warning: Failed to seed roles: %v", err)
	}

	if _, err := userRepo.FindByEmail(cfg.AdminEmail); err == nil {
		return
	}

	adminRole, err := roleRepo.FindByCode(model.RoleAdmin)
	if err != nil {
		log.Printf("Warning: ADMIN role missing, skipping admin seed: %v", err)
		return
	}

	admin := &model.User{
		Email:    cfg.AdminEmail,
		FullName: "Administrator",
		RoleID:   &adminRole.ID,
	}
	if err := admin.SetPassword(cfg.AdminPassword); err != nil {
		log.Printf("Warning: Failed to hash admin password: %v", err)
		return
	}

	if err := userRepo.Create(admin); err != nil {
		log.Printf("Warning: Failed to create admin user: %v", err)
	} else {
		log.Printf("Admin user created: %s (ADMIN)", cfg.AdminEmail)
	}
}
