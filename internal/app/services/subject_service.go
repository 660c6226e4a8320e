package services

import (
	"context"

	appauth "github.com/tutorhub/backend/internal/app/auth"
	"github.com/tutorhub/backend/internal/app/models"
	"github.com/tutorhub/backend/internal/app/models/dto"
	"github.com/tutorhub/backend/internal/app/repositories"
	"github.com/tutorhub/backend/internal/pkg/apperrors"
)

// SubjectService handles subjects and per-student grading.
type SubjectService struct {
	subjectRepo *repositories.SubjectRepository
	classRepo   *repositories.ClassRepository
	userRepo    *repositories.UserRepository
	authz       *appauth.AuthorizationService
}

// NewSubjectService creates a new SubjectService
func NewSubjectService(
	subjectRepo *repositories.SubjectRepository,
	classRepo *repositories.ClassRepository,
	userRepo *repositories.UserRepository,
	authz *appauth.AuthorizationService,
) *SubjectService {
	return &SubjectService{
		subjectRepo: subjectRepo,
		classRepo:   classRepo,
		userRepo:    userRepo,
		authz:       authz,
	}
}

// CreateSubject creates a subject under a class the caller owns
func (s *SubjectService) CreateSubject(ctx context.Context, identity appauth.Identity, req *dto.CreateSubjectRequest) (*models.Subject, error) {
	if err := s.authz.ValidateClassOwnership(ctx, identity, req.ClassID); err != nil {
		return nil, err
	}

	subject := &models.Subject{
		ClassID: req.ClassID,
		Name:    req.Name,
	}
	if _, err := s.subjectRepo.Create(ctx, subject); err != nil {
		return nil, err
	}
	return subject, nil
}

// GetSubject retrieves a subject by ID
func (s *SubjectService) GetSubject(ctx context.Context, id int64) (*models.Subject, error) {
	return s.subjectRepo.GetSubjectByID(ctx, id)
}

// ListSubjectsByClass returns a class's subjects
func (s *SubjectService) ListSubjectsByClass(ctx context.Context, classID int64) ([]*models.Subject, error) {
	if _, err := s.classRepo.GetClassByID(ctx, classID); err != nil {
		return nil, err
	}
	return s.subjectRepo.ListByClass(ctx, classID)
}

// UpdateSubject renames a subject
func (s *SubjectService) UpdateSubject(ctx context.Context, identity appauth.Identity, id int64, req *dto.UpdateSubjectRequest) (*models.Subject, error) {
	subject, err := s.subjectRepo.GetSubjectByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authz.ValidateClassOwnership(ctx, identity, subject.ClassID); err != nil {
		return nil, err
	}

	subject.Name = req.Name
	if err := s.subjectRepo.Update(ctx, subject); err != nil {
		return nil, err
	}
	return subject, nil
}

// DeleteSubject removes a subject and its student records
func (s *SubjectService) DeleteSubject(ctx context.Context, identity appauth.Identity, id int64) error {
	subject, err := s.subjectRepo.GetSubjectByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.authz.ValidateClassOwnership(ctx, identity, subject.ClassID); err != nil {
		return err
	}
	return s.subjectRepo.Delete(ctx, id)
}

// AssignStudent adds a student to a subject with an empty grade record.
// The student must be enrolled in the subject's class; assigning twice is
// rejected.
func (s *SubjectService) AssignStudent(ctx context.Context, identity appauth.Identity, subjectID int64, req *dto.AssignSubjectRequest) error {
	subject, err := s.subjectRepo.GetSubjectByID(ctx, subjectID)
	if err != nil {
		return err
	}
	if err := s.authz.ValidateClassOwnership(ctx, identity, subject.ClassID); err != nil {
		return err
	}

	if _, err := s.userRepo.GetStudentByID(ctx, req.StudentID); err != nil {
		return err
	}
	enrolled, err := s.classRepo.IsStudentEnrolled(ctx, subject.ClassID, req.StudentID)
	if err != nil {
		return err
	}
	if !enrolled {
		return apperrors.NewBadRequestError("student is not enrolled in the subject's class")
	}

	return s.subjectRepo.AssignStudent(ctx, subjectID, req.StudentID)
}

// RemoveStudent drops a student's record for a subject
func (s *SubjectService) RemoveStudent(ctx context.Context, identity appauth.Identity, subjectID, studentID int64) error {
	subject, err := s.subjectRepo.GetSubjectByID(ctx, subjectID)
	if err != nil {
		return err
	}
	if err := s.authz.ValidateClassOwnership(ctx, identity, subject.ClassID); err != nil {
		return err
	}
	return s.subjectRepo.RemoveStudent(ctx, subjectID, studentID)
}

// Grade updates a student's score and attendance for a subject. Fields
// left out of the request keep their stored values.
func (s *SubjectService) Grade(ctx context.Context, identity appauth.Identity, subjectID, studentID int64, req *dto.GradeRequest) error {
	subject, err := s.subjectRepo.GetSubjectByID(ctx, subjectID)
	if err != nil {
		return err
	}
	if err := s.authz.ValidateClassOwnership(ctx, identity, subject.ClassID); err != nil {
		return err
	}
	return s.subjectRepo.UpdateGrade(ctx, subjectID, studentID, req.Score, req.Attendance)
}

// ListMySubjects returns the calling student's subjects with grades
func (s *SubjectService) ListMySubjects(ctx context.Context, studentID int64) ([]*models.StudentSubject, error) {
	return s.subjectRepo.ListForStudent(ctx, studentID)
}

// ListSubjectStudents returns every student record for a subject
func (s *SubjectService) ListSubjectStudents(ctx context.Context, subjectID int64) ([]*models.StudentSubject, error) {
	if _, err := s.subjectRepo.GetSubjectByID(ctx, subjectID); err != nil {
		return nil, err
	}
	return s.subjectRepo.ListStudentsForSubject(ctx, subjectID)
}
