package services

import (
	"context"
	"time"

	appauth "github.com/tutorhub/backend/internal/app/auth"
	"github.com/tutorhub/backend/internal/app/models"
	"github.com/tutorhub/backend/internal/app/models/dto"
	"github.com/tutorhub/backend/internal/app/repositories"
	"github.com/tutorhub/backend/internal/pkg/apperrors"
	"github.com/tutorhub/backend/internal/pkg/helpers"
)

// TimetableService handles scheduled class sessions.
type TimetableService struct {
	timetableRepo *repositories.TimetableRepository
	authz         *appauth.AuthorizationService
}

// NewTimetableService creates a new TimetableService
func NewTimetableService(timetableRepo *repositories.TimetableRepository, authz *appauth.AuthorizationService) *TimetableService {
	return &TimetableService{
		timetableRepo: timetableRepo,
		authz:         authz,
	}
}

// CreateEntry schedules a session for a class the caller owns
func (s *TimetableService) CreateEntry(ctx context.Context, identity appauth.Identity, req *dto.CreateTimetableRequest) (*dto.TimetableResponse, error) {
	if err := s.authz.ValidateClassOwnership(ctx, identity, req.ClassID); err != nil {
		return nil, err
	}

	date, ok := helpers.ParseDate(req.Date)
	if !ok {
		return nil, apperrors.NewBadRequestError("date must be in YYYY-MM-DD format")
	}

	entry := &models.Timetable{
		ClassID:  req.ClassID,
		Date:     date,
		Location: req.Location,
		Schedule: req.Schedule,
	}
	id, err := s.timetableRepo.Create(ctx, entry)
	if err != nil {
		return nil, err
	}

	return s.GetEntry(ctx, id)
}

// GetEntry retrieves a timetable entry by ID
func (s *TimetableService) GetEntry(ctx context.Context, id int64) (*dto.TimetableResponse, error) {
	entry, err := s.timetableRepo.GetTimetableByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dto.FromTimetable(entry)
	return &resp, nil
}

// ListEntries returns timetable entries filtered by class and/or date
// range. Date strings use YYYY-MM-DD; empty filters are ignored.
func (s *TimetableService) ListEntries(ctx context.Context, classID *int64, fromStr, toStr string) ([]dto.TimetableResponse, error) {
	from, to, err := parseDateRange(fromStr, toStr)
	if err != nil {
		return nil, err
	}

	entries, err := s.timetableRepo.List(ctx, classID, from, to)
	if err != nil {
		return nil, err
	}
	return toTimetableResponses(entries), nil
}

// ListMyEntries returns upcoming entries across every class the calling
// student is enrolled in.
func (s *TimetableService) ListMyEntries(ctx context.Context, studentID int64, fromStr string) ([]dto.TimetableResponse, error) {
	from, _, err := parseDateRange(fromStr, "")
	if err != nil {
		return nil, err
	}

	entries, err := s.timetableRepo.ListForStudent(ctx, studentID, from)
	if err != nil {
		return nil, err
	}
	return toTimetableResponses(entries), nil
}

// UpdateEntry modifies a timetable entry for a class the caller owns
func (s *TimetableService) UpdateEntry(ctx context.Context, identity appauth.Identity, id int64, req *dto.UpdateTimetableRequest) (*dto.TimetableResponse, error) {
	entry, err := s.timetableRepo.GetTimetableByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authz.ValidateClassOwnership(ctx, identity, entry.ClassID); err != nil {
		return nil, err
	}

	date, ok := helpers.ParseDate(req.Date)
	if !ok {
		return nil, apperrors.NewBadRequestError("date must be in YYYY-MM-DD format")
	}
	entry.Date = date
	entry.Location = req.Location
	entry.Schedule = req.Schedule

	if err := s.timetableRepo.Update(ctx, entry); err != nil {
		return nil, err
	}
	return s.GetEntry(ctx, id)
}

// DeleteEntry removes a timetable entry
func (s *TimetableService) DeleteEntry(ctx context.Context, identity appauth.Identity, id int64) error {
	entry, err := s.timetableRepo.GetTimetableByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.authz.ValidateClassOwnership(ctx, identity, entry.ClassID); err != nil {
		return err
	}
	return s.timetableRepo.Delete(ctx, id)
}

func parseDateRange(fromStr, toStr string) (from, to *time.Time, err error) {
	if fromStr != "" {
		d, ok := helpers.ParseDate(fromStr)
		if !ok {
			return nil, nil, apperrors.NewBadRequestError("from must be in YYYY-MM-DD format")
		}
		from = &d
	}
	if toStr != "" {
		d, ok := helpers.ParseDate(toStr)
		if !ok {
			return nil, nil, apperrors.NewBadRequestError("to must be in YYYY-MM-DD format")
		}
		to = &d
	}
	return from, to, nil
}

func toTimetableResponses(entries []*models.Timetable) []dto.TimetableResponse {
	resp := make([]dto.TimetableResponse, 0, len(entries))
	for _, entry := range entries {
		resp = append(resp, dto.FromTimetable(entry))
	}
	return resp
}
