package services

import (
	"context"
	"fmt"

	appauth "github.com/tutorhub/backend/internal/app/auth"
	"github.com/tutorhub/backend/internal/app/models"
	"github.com/tutorhub/backend/internal/app/models/dto"
	"github.com/tutorhub/backend/internal/app/repositories"
	"github.com/tutorhub/backend/internal/pkg/helpers"
)

// ClassService handles class and enrollment operations.
type ClassService struct {
	classRepo *repositories.ClassRepository
	userRepo  *repositories.UserRepository
	authz     *appauth.AuthorizationService
}

// NewClassService creates a new ClassService
func NewClassService(
	classRepo *repositories.ClassRepository,
	userRepo *repositories.UserRepository,
	authz *appauth.AuthorizationService,
) *ClassService {
	return &ClassService{
		classRepo: classRepo,
		userRepo:  userRepo,
		authz:     authz,
	}
}

// CreateClass creates a class. A tutor creating a class becomes its owner;
// an admin may create an unowned class or assign any tutor.
func (s *ClassService) CreateClass(ctx context.Context, identity appauth.Identity, req *dto.CreateClassRequest) (*dto.ClassResponse, error) {
	class := &models.Class{
		Name:        req.Name,
		Description: req.Description,
	}

	switch {
	case identity.Role == models.RoleTutor:
		class.TutorID = identity.SpecializationID
	case req.TutorID != nil:
		// Admin-assigned owner must be an existing tutor record
		if _, err := s.userRepo.GetTutorByID(ctx, *req.TutorID); err != nil {
			return nil, err
		}
		class.TutorID = req.TutorID
	}

	id, err := s.classRepo.Create(ctx, class)
	if err != nil {
		return nil, err
	}

	return s.GetClass(ctx, id)
}

// GetClass retrieves a class by ID
func (s *ClassService) GetClass(ctx context.Context, id int64) (*dto.ClassResponse, error) {
	class, err := s.classRepo.GetClassByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dto.FromClass(class)
	return &resp, nil
}

// ListClasses returns classes with pagination, optionally filtered by
// owning tutor.
func (s *ClassService) ListClasses(ctx context.Context, tutorID *int64, page, size int) (*dto.ClassListResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	classes, total, err := s.classRepo.List(ctx, tutorID, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing classes: %w", err)
	}

	resp := &dto.ClassListResponse{
		Classes:    make([]dto.ClassResponse, 0, len(classes)),
		Pagination: helpers.NewPaginationInfo(total, page, size),
	}
	for _, class := range classes {
		resp.Classes = append(resp.Classes, dto.FromClass(class))
	}
	return resp, nil
}

// UpdateClass modifies a class. Only the owning tutor or an admin may
// update; ownership reassignment is admin-only and validated.
func (s *ClassService) UpdateClass(ctx context.Context, identity appauth.Identity, id int64, req *dto.UpdateClassRequest) (*dto.ClassResponse, error) {
	if err := s.authz.ValidateClassOwnership(ctx, identity, id); err != nil {
		return nil, err
	}

	class, err := s.classRepo.GetClassByID(ctx, id)
	if err != nil {
		return nil, err
	}

	class.Name = req.Name
	class.Description = req.Description
	if identity.IsAdmin() && req.TutorID != nil {
		if _, err := s.userRepo.GetTutorByID(ctx, *req.TutorID); err != nil {
			return nil, err
		}
		class.TutorID = req.TutorID
	}

	if err := s.classRepo.Update(ctx, class); err != nil {
		return nil, err
	}

	return s.GetClass(ctx, id)
}

// DeleteClass removes a class. Enrollments, subjects and timetable entries
// cascade in the database.
func (s *ClassService) DeleteClass(ctx context.Context, identity appauth.Identity, id int64) error {
	if err := s.authz.ValidateClassOwnership(ctx, identity, id); err != nil {
		return err
	}
	return s.classRepo.Delete(ctx, id)
}

// EnrollStudent assigns a student to a class. Enrolling the same student
// twice is rejected.
func (s *ClassService) EnrollStudent(ctx context.Context, identity appauth.Identity, classID int64, req *dto.EnrollStudentRequest) error {
	if err := s.authz.ValidateClassOwnership(ctx, identity, classID); err != nil {
		return err
	}

	if _, err := s.userRepo.GetStudentByID(ctx, req.StudentID); err != nil {
		return err
	}

	return s.classRepo.EnrollStudent(ctx, classID, req.StudentID)
}

// UnenrollStudent removes a student from a class
func (s *ClassService) UnenrollStudent(ctx context.Context, identity appauth.Identity, classID, studentID int64) error {
	if err := s.authz.ValidateClassOwnership(ctx, identity, classID); err != nil {
		return err
	}
	return s.classRepo.UnenrollStudent(ctx, classID, studentID)
}

// ListClassStudents returns the students enrolled in a class
func (s *ClassService) ListClassStudents(ctx context.Context, classID int64) ([]*models.Student, error) {
	if _, err := s.classRepo.GetClassByID(ctx, classID); err != nil {
		return nil, err
	}
	return s.classRepo.ListStudents(ctx, classID)
}

// ListMyClasses returns the classes the calling student is enrolled in
func (s *ClassService) ListMyClasses(ctx context.Context, studentID int64) ([]dto.ClassResponse, error) {
	classes, err := s.classRepo.ListClassesForStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ClassResponse, 0, len(classes))
	for _, class := range classes {
		resp = append(resp, dto.FromClass(class))
	}
	return resp, nil
}
