package main

import (
	"context"
	"log"
	"time"

	"bakeapi/internal/config"
	"bakeapi/internal/model"
	"bakeapi/internal/repository"
	"bakeapi/internal/utils"

	"github.com/joho/godotenv"
)

type seedUser struct {
	email      string
	password   string
	role       string
	bakeryName string
}

var seedUsers = []seedUser{
	{email: "admin@test.com", password: "admin", role: model.RoleAdmin, bakeryName: ""},
	{email: "user@test.com", password: "user", role: model.RoleUser, bakeryName: "Ma Boulangerie Test"},
}

var seedProducts = []struct {
	name   string
	price  float64
	status string
}{
	{name: "Baguette tradition", price: 1.30, status: model.ProductStatusForSale},
	{name: "Croissant au beurre", price: 1.10, status: model.ProductStatusForSale},
	{name: "Pain au chocolat", price: 1.20, status: model.ProductStatusForSale},
	{name: "Tarte aux pommes", price: 12.50, status: model.ProductStatusUnsold},
}

// Seeds the database with a known admin, a known user and a handful of
// products owned by the user. Existing rows are wiped first.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading, relying on environment variables")
	}

	dbCfg, err := config.LoadDBConfig()
	if err != nil {
		log.Fatalf("Failed to load DB config: %v", err)
	}

	dbPool, err := config.ConnectDB(dbCfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	if err := config.AutoMigrate(dbPool); err != nil {
		log.Fatalf("Failed to auto-migrate database: %v", err)
	}

	ctx := context.Background()

	// Products first because of the FK cascade direction
	if _, err := dbPool.Exec(ctx, "DELETE FROM products"); err != nil {
		log.Fatalf("Failed to clear products: %v", err)
	}
	if _, err := dbPool.Exec(ctx, "DELETE FROM users"); err != nil {
		log.Fatalf("Failed to clear users: %v", err)
	}

	userRepo := repository.NewUserRepository(dbPool)
	productRepo := repository.NewProductRepository(dbPool)

	var productOwnerID int
	for _, su := range seedUsers {
		hashedPassword, err := utils.HashPassword(su.password)
		if err != nil {
			log.Fatalf("Failed to hash password for %s: %v", su.email, err)
		}
		user := &model.User{
			Email:        su.email,
			PasswordHash: hashedPassword,
			Role:         su.role,
			BakeryName:   su.bakeryName,
			CreatedAt:    time.Now(),
		}
		if err := userRepo.Create(ctx, user); err != nil {
			log.Fatalf("Failed to create user %s: %v", su.email, err)
		}
		log.Printf("Created user %s (id=%d, role=%s)", user.Email, user.ID, user.Role)
		if su.role == model.RoleUser {
			productOwnerID = user.ID
		}
	}

	for _, sp := range seedProducts {
		product := &model.Product{
			UserID:    productOwnerID,
			Name:      sp.name,
			Price:     sp.price,
			Status:    sp.status,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		if err := productRepo.Create(ctx, product); err != nil {
			log.Fatalf("Failed to create product %s: %v", sp.name, err)
		}
	}
	log.Printf("Created %d products for user id=%d", len(seedProducts), productOwnerID)

	log.Println("All fixtures have been successfully created")
}
