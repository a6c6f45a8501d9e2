// Package main provides a CLI tool for seeding the database with initial data.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/anmds2025/roomify/internal/core/id"
	"github.com/anmds2025/roomify/internal/core/types"
	"github.com/anmds2025/roomify/internal/domain/billing"
	"github.com/anmds2025/roomify/internal/domain/catalogs/home"
	"github.com/anmds2025/roomify/internal/domain/catalogs/renter"
	"github.com/anmds2025/roomify/internal/domain/catalogs/room"
	"github.com/anmds2025/roomify/internal/infrastructure/storage/postgres"
	"github.com/anmds2025/roomify/internal/infrastructure/storage/postgres/catalog_repo"
	"github.com/anmds2025/roomify/pkg/logger"
	"github.com/anmds2025/roomify/pkg/numerator"
)

func main() {
	_ = godotenv.Load()

	log, err := logger.New(logger.Config{
		Level:       "info",
		Development: true,
	})
	if err != nil {
		fmt.Printf("failed to create logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	poolCfg := postgres.DefaultPoolConfig(dbURL)
	pool, err := postgres.NewPool(ctx, poolCfg)
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()

	log.Info("connected to database")

	if err := seedAdminUser(ctx, pool, log); err != nil {
		log.Fatalw("failed to seed admin user", "error", err)
	}

	if os.Getenv("SEED_DEMO_DATA") == "true" {
		if err := seedDemoData(ctx, pool, log); err != nil {
			log.Fatalw("failed to seed demo data", "error", err)
		}
	}

	log.Info("seeding completed successfully")
}

func seedAdminUser(ctx context.Context, pool *postgres.Pool, log *logger.Logger) error {
	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = "admin@roomify.local"
	}

	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "Admin123!"
	}

	var existingID id.ID
	err := pool.QueryRow(ctx,
		`SELECT id FROM users WHERE email = $1 AND deleted_at IS NULL`,
		adminEmail,
	).Scan(&existingID)
	if err == nil {
		log.Infow("admin user already exists", "email", adminEmail, "user_id", existingID)
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("check admin exists: %w", err)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	userID := id.New()
	now := time.Now()

	_, err = pool.Exec(ctx, `
		INSERT INTO users (
			id, email, password_hash, full_name, phone,
			is_active, is_admin, created_at, updated_at, version
		) VALUES ($1, $2, $3, 'System Admin', '', true, true, $4, $4, 1)
	`, userID, adminEmail, string(passwordHash), now)
	if err != nil {
		return fmt.Errorf("insert admin user: %w", err)
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO user_roles (user_id, role_code)
		VALUES ($1, 'admin')
		ON CONFLICT (user_id, role_code) DO NOTHING
	`, userID)
	if err != nil {
		log.Warnw("failed to assign admin role", "error", err)
	}

	log.Infow("admin user created", "email", adminEmail, "user_id", userID)

	return nil
}

// seedDemoData creates a demo home with a few rooms and renters so a
// fresh install has something to bill against. It goes through the
// catalog services, so uniqueness checks and numbering behave exactly
// as they do for API-created records.
func seedDemoData(ctx context.Context, pool *postgres.Pool, log *logger.Logger) error {
	log.Info("seeding demo data...")

	txm := postgres.NewTxManager(pool)
	gen := numerator.New(pool)

	homeService := home.NewService(catalog_repo.NewHomeRepo(txm), txm, gen)
	renterService := renter.NewService(catalog_repo.NewRenterRepo(txm), txm, gen)
	roomService := room.NewService(catalog_repo.NewRoomRepo(txm), txm, gen)

	demoHome, err := homeService.GetByCode(ctx, "NT-120")
	if err != nil {
		demoHome = home.NewHome("NT-120", "120 Nguyen Trai", "120 Nguyen Trai, District 1, Ho Chi Minh City")
		if err := homeService.Create(ctx, demoHome); err != nil {
			return fmt.Errorf("create demo home: %w", err)
		}
		log.Infow("demo home created", "code", demoHome.Code, "home_id", demoHome.ID)
	}

	renters := []struct {
		code, name, phone string
	}{
		{"R-0001", "Nguyen Van An", "+84901234561"},
		{"R-0002", "Tran Thi Binh", "+84901234562"},
	}

	renterIDs := make(map[string]id.ID)
	for _, r := range renters {
		existing, err := renterService.GetByCode(ctx, r.code)
		if err == nil {
			renterIDs[r.code] = existing.ID
			continue
		}
		rec := renter.NewRenter(r.code, r.name, r.phone)
		if err := renterService.Create(ctx, rec); err != nil {
			log.Warnw("failed to seed renter", "code", r.code, "error", err)
			continue
		}
		renterIDs[r.code] = rec.ID
	}

	type roomSeed struct {
		code, name string
		rent       int64
		elecPrice  int64
		metered    bool
		waterPrice int64
		parkingFee int64
		renterCode string
	}

	seeds := []roomSeed{
		{"P101", "Room 101", 3_500_000, 3_500, true, 15_000, 100_000, "R-0001"},
		{"P102", "Room 102", 3_200_000, 3_500, false, 0, 0, "R-0002"},
		{"P201", "Room 201", 4_000_000, 3_500, true, 15_000, 100_000, ""},
	}

	for _, s := range seeds {
		if _, err := roomService.GetByCode(ctx, s.code); err == nil {
			continue
		}
		rm := room.NewRoom(s.code, s.name, demoHome.ID)
		rm.RentAmount = types.NewMoneyFromInt(s.rent)
		rm.ElectricityPrice = types.NewMoneyFromInt(s.elecPrice)
		rm.WaterPrice = types.NewMoneyFromInt(s.waterPrice)
		rm.ParkingFee = types.NewMoneyFromInt(s.parkingFee)
		if !s.metered {
			rm.WaterPolicy = billing.WaterFixed
		}
		if err := roomService.Create(ctx, rm); err != nil {
			log.Warnw("failed to seed room", "code", s.code, "error", err)
			continue
		}

		if s.renterCode == "" {
			continue
		}
		renterID, ok := renterIDs[s.renterCode]
		if !ok {
			continue
		}
		rec, err := renterService.GetByID(ctx, renterID)
		if err != nil {
			continue
		}
		if err := roomService.Occupy(ctx, rm.ID, renterID, rec.Name, 1); err != nil {
			log.Warnw("failed to occupy demo room", "code", s.code, "error", err)
		}
	}

	log.Info("demo data seeded")
	return nil
}
