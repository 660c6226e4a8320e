package dto

import (
	"time"

	"github.com/tutorhub/backend/internal/app/models"
)

// CreateClassRequest represents a class creation request
type CreateClassRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=100"`
	Description string `json:"description" binding:"max=1000"`
	TutorID     *int64 `json:"tutorId,omitempty"`
}

// UpdateClassRequest represents a class update request
type UpdateClassRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=100"`
	Description string `json:"description" binding:"max=1000"`
	TutorID     *int64 `json:"tutorId,omitempty"`
}

// EnrollStudentRequest assigns a student to a class
type EnrollStudentRequest struct {
	StudentID int64 `json:"studentId" binding:"required,min=1"`
}

// ClassResponse is the public class representation
type ClassResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	TutorID     *int64    `json:"tutorId"`
	TutorName   string    `json:"tutorName,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// FromClass converts a models.Class to a ClassResponse
func FromClass(class *models.Class) ClassResponse {
	if class == nil {
		return ClassResponse{}
	}

	resp := ClassResponse{
		ID:          class.ID,
		Name:        class.Name,
		Description: class.Description,
		TutorID:     class.TutorID,
		CreatedAt:   class.CreatedAt,
	}
	if class.Tutor != nil && class.Tutor.User != nil {
		resp.TutorName = class.Tutor.User.FullName
	}
	return resp
}

// ClassListResponse is a paginated class listing
type ClassListResponse struct {
	Classes    []ClassResponse `json:"classes"`
	Pagination PaginationInfo  `json:"pagination"`
}
