package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/tutorhub/backend/internal/app/models"
	"github.com/tutorhub/backend/internal/app/repositories"
	"github.com/tutorhub/backend/internal/config"
	"github.com/tutorhub/backend/internal/pkg/auth"
)

// CreateDefaultAdmin ensures the platform has an admin account. Without one
// nobody could approve pending registrations, so the account configured
// under admin.email is created on first start with the ADMIN role already
// assigned.
func CreateDefaultAdmin(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		lgr.Warn().Msg("Admin credentials not configured, skipping default admin creation")
		return nil
	}

	userRepo := repositories.NewUserRepository(dbPool)

	exists, err := userRepo.EmailExists(ctx, cfg.Admin.Email)
	if err != nil {
		return fmt.Errorf("failed to check for existing admin: %w", err)
	}
	if exists {
		lgr.Debug().Str("email", cfg.Admin.Email).Msg("Admin account already exists, skipping creation")
		return nil
	}

	hashed, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := &models.User{
		Email:         cfg.Admin.Email,
		Password:      hashed,
		FullName:      "Platform Administrator",
		RequestedRole: models.RoleAdmin,
	}

	adminID, err := userRepo.CreateUser(ctx, admin)
	if err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	// Accounts start pending; promote the seeded one immediately.
	if err := userRepo.AssignRole(ctx, adminID, models.RoleAdmin); err != nil {
		return fmt.Errorf("failed to assign admin role: %w", err)
	}

	lgr.Info().Int64("adminID", adminID).Str("email", cfg.Admin.Email).Msg("Default admin account created")
	return nil
}
