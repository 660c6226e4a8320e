package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	appauth "github.com/tutorhub/backend/internal/app/auth"
	"github.com/tutorhub/backend/internal/app/models"
	"github.com/tutorhub/backend/internal/app/models/dto"
	"github.com/tutorhub/backend/internal/app/repositories"
	"github.com/tutorhub/backend/internal/pkg/apperrors"
	"github.com/tutorhub/backend/internal/pkg/helpers"
)

// UserService handles user administration and profile operations.
type UserService struct {
	userRepo  *repositories.UserRepository
	tokenRepo *repositories.TokenRepository
	logger    zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(
	userRepo *repositories.UserRepository,
	tokenRepo *repositories.TokenRepository,
	logger zerolog.Logger,
) *UserService {
	return &UserService{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		logger:    logger,
	}
}

// ListUsers returns users with pagination. With pendingOnly set, only
// accounts awaiting role approval are returned.
func (s *UserService) ListUsers(ctx context.Context, pendingOnly bool, page, size int) (*dto.UserListResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	users, total, err := s.userRepo.ListUsers(ctx, pendingOnly, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}

	resp := &dto.UserListResponse{
		Users:      make([]dto.UserResponse, 0, len(users)),
		Pagination: helpers.NewPaginationInfo(total, page, size),
	}
	for _, user := range users {
		resp.Users = append(resp.Users, dto.FromUser(user))
	}
	return resp, nil
}

// GetUser retrieves a single user's public profile
func (s *UserService) GetUser(ctx context.Context, id int64) (*dto.UserResponse, error) {
	user, err := s.userRepo.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dto.FromUser(user)
	return &resp, nil
}

// AssignRole approves a pending account (or re-assigns an existing one)
// with the given role. The role update and the specialization-record swap
// happen in one transaction; a failure leaves the user untouched. Existing
// sessions keep their old role until the next token refresh, so issued
// refresh tokens are revoked.
func (s *UserService) AssignRole(ctx context.Context, userID int64, req *dto.AssignRoleRequest) (*dto.UserResponse, error) {
	role := models.RoleType(strings.ToUpper(req.Role))
	if !models.ValidRole(role) {
		return nil, apperrors.ErrInvalidRole
	}

	if err := s.userRepo.AssignRole(ctx, userID, role); err != nil {
		return nil, err
	}

	if err := s.tokenRepo.RevokeAllForUser(ctx, userID); err != nil {
		s.logger.Warn().Err(err).Int64("userId", userID).
			Msg("Could not revoke refresh tokens after role change")
	}

	s.logger.Info().Int64("userId", userID).Str("role", string(role)).Msg("Assigned role")

	return s.GetUser(ctx, userID)
}

// UpdateProfile updates the caller's own profile fields
func (s *UserService) UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.FullName = req.FullName
	user.Gender = req.Gender
	if req.BirthDate != nil {
		birthDate, ok := helpers.ParseDate(*req.BirthDate)
		if !ok {
			return nil, apperrors.NewBadRequestError("birthDate must be in YYYY-MM-DD format")
		}
		user.BirthDate = &birthDate
	} else {
		user.BirthDate = nil
	}

	if err := s.userRepo.UpdateProfile(ctx, user); err != nil {
		return nil, err
	}

	resp := dto.FromUser(user)
	return &resp, nil
}

// UpdateSpecialization updates the caller's specialization text. Only
// approved tutors and students carry one.
func (s *UserService) UpdateSpecialization(ctx context.Context, identity appauth.Identity, req *dto.UpdateSpecializationRequest) error {
	switch identity.Role {
	case models.RoleTutor:
		return s.userRepo.UpdateTutorSpecialization(ctx, identity.UserID, req.Specialization)
	case models.RoleStudent:
		return s.userRepo.UpdateStudentSpecialization(ctx, identity.UserID, req.Specialization)
	default:
		return apperrors.NewBadRequestError("account has no specialization")
	}
}

// DeleteUser removes a user account. Specialization records, enrollments
// and messages referencing the user cascade in the database.
func (s *UserService) DeleteUser(ctx context.Context, id int64) error {
	if err := s.userRepo.DeleteUser(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("userId", id).Msg("Deleted user")
	return nil
}

// ListTutors returns all approved tutors
func (s *UserService) ListTutors(ctx context.Context) ([]*models.Tutor, error) {
	return s.userRepo.ListTutors(ctx)
}

// ListStudents returns all approved students
func (s *UserService) ListStudents(ctx context.Context) ([]*models.Student, error) {
	return s.userRepo.ListStudents(ctx)
}
