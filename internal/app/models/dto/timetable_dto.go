package dto

import (
	"time"

	"github.com/tutorhub/backend/internal/app/models"
)

// CreateTimetableRequest represents a timetable entry creation request
type CreateTimetableRequest struct {
	ClassID  int64  `json:"classId" binding:"required,min=1"`
	Date     string `json:"date" binding:"required" example:"2025-09-15"`
	Location string `json:"location" binding:"required,max=200"`
	Schedule string `json:"schedule" binding:"required,max=200" example:"09:00-11:00"`
}

// UpdateTimetableRequest represents a timetable entry update request
type UpdateTimetableRequest struct {
	Date     string `json:"date" binding:"required" example:"2025-09-15"`
	Location string `json:"location" binding:"required,max=200"`
	Schedule string `json:"schedule" binding:"required,max=200"`
}

// TimetableResponse is the public timetable representation
type TimetableResponse struct {
	ID        int64     `json:"id"`
	ClassID   int64     `json:"classId"`
	ClassName string    `json:"className,omitempty"`
	Date      time.Time `json:"date"`
	Location  string    `json:"location"`
	Schedule  string    `json:"schedule"`
	CreatedAt time.Time `json:"createdAt"`
}

// FromTimetable converts a models.Timetable to a TimetableResponse
func FromTimetable(t *models.Timetable) TimetableResponse {
	if t == nil {
		return TimetableResponse{}
	}
	resp := TimetableResponse{
		ID:        t.ID,
		ClassID:   t.ClassID,
		Date:      t.Date,
		Location:  t.Location,
		Schedule:  t.Schedule,
		CreatedAt: t.CreatedAt,
	}
	if t.Class != nil {
		resp.ClassName = t.Class.Name
	}
	return resp
}
