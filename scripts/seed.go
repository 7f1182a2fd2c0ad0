//go:build ignore

package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/rsaisankalp/ashram-assert/internal/database"
	"github.com/rsaisankalp/ashram-assert/internal/domain"
	"github.com/rsaisankalp/ashram-assert/internal/inventory"
	"github.com/rsaisankalp/ashram-assert/internal/repository/gormrepo"
	"github.com/rsaisankalp/ashram-assert/pkg/config"
	"github.com/rsaisankalp/ashram-assert/pkg/util"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := util.NewLogger(cfg.Server.Env, "seed")

	db, err := database.Connect(&cfg.Database, logger)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	service := inventory.New(inventory.Config{
		Users:       gormrepo.NewUserRepository(db),
		Ashrams:     gormrepo.NewAshramRepository(db),
		Assignments: gormrepo.NewAssignmentRepository(db),
		Assets:      gormrepo.NewAssetRepository(db),
		Logger:      logger,
	})

	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	name := os.Getenv("ADMIN_NAME")

	if email == "" {
		email = "admin@example.com"
	}
	if password == "" {
		password = "admin123!"
	}
	if name == "" {
		name = "Admin"
	}

	ctx := context.Background()

	admin, err := service.RegisterUser(ctx, inventory.RegisterInput{
		Email:       email,
		Password:    password,
		DisplayName: name,
		Roles:       []domain.Role{domain.RoleAdmin},
	})
	if err != nil {
		log.Fatalf("failed to create admin user: %v", err)
	}

	ashram, err := service.CreateAshram(ctx, inventory.CreateAshramInput{
		Name:      "Demo Ashram",
		Location:  "Vrindavan",
		CreatedBy: admin.ID,
	})
	if err != nil {
		log.Fatalf("failed to create demo ashram: %v", err)
	}

	fmt.Println("Seed data created:")
	fmt.Printf("  Admin:  %s (%s)\n", admin.Email, admin.ID)
	fmt.Printf("  Ashram: %s (%s)\n", ashram.Name, ashram.ID)
	fmt.Println("\nYou can now log in with the admin credentials.")
}
