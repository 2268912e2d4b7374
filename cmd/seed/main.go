package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"moviecatalog/internal/database"
	"moviecatalog/internal/domain"
	"moviecatalog/internal/repository"
)

// Seeds the default roles and a bootstrap admin account. Safe to run
// more than once: existing rows are left alone.
func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "moviecatalog.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	ctx := context.Background()

	roleRepo := repository.NewRoleRepository(db)
	if err := roleRepo.EnsureDefaults(ctx); err != nil {
		log.Fatal("role seeding failed:", err)
	}
	log.Println("Roles ensured: USER, ADMIN")

	userRepo := repository.NewUserRepository(db)
	exists, err := userRepo.ExistsByUsername(ctx, "admin")
	if err != nil {
		log.Fatal(err)
	}
	if exists {
		log.Println("Admin already present, nothing to do")
		return
	}

	adminRole, err := roleRepo.GetByName(ctx, domain.RoleAdmin)
	if err != nil {
		log.Fatal(err)
	}
	userRole, err := roleRepo.GetByName(ctx, domain.RoleUser)
	if err != nil {
		log.Fatal(err)
	}

	pass := os.Getenv("SEED_ADMIN_PASSWORD")
	if pass == "" {
		pass = "admin123"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal(err)
	}

	admin := domain.User{
		Username:     "admin",
		Email:        "admin@moviecatalog.local",
		PasswordHash: string(hash),
		Roles:        []domain.Role{*userRole, *adminRole},
	}
	if err := userRepo.Create(ctx, &admin); err != nil {
		log.Fatal("admin creation failed:", err)
	}
	log.Println("Admin created: admin /", pass)
}
