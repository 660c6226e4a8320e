package dto

import (
	"time"

	"github.com/tutorhub/backend/internal/app/models"
)

// CreateResourceRequest represents resource metadata sent alongside the
// optional multipart file field.
type CreateResourceRequest struct {
	Title       string `form:"title" binding:"required,min=2,max=200"`
	Description string `form:"description" binding:"max=1000"`
}

// UpdateResourceRequest represents a resource update request
type UpdateResourceRequest struct {
	Title       string `form:"title" binding:"required,min=2,max=200"`
	Description string `form:"description" binding:"max=1000"`
}

// ResourceResponse is the public resource representation
type ResourceResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	HasFile     bool      `json:"hasFile"`
	TutorID     *int64    `json:"tutorId"`
	TutorName   string    `json:"tutorName,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// FromResource converts a models.Resource to a ResourceResponse
func FromResource(resource *models.Resource) ResourceResponse {
	if resource == nil {
		return ResourceResponse{}
	}

	resp := ResourceResponse{
		ID:          resource.ID,
		Title:       resource.Title,
		Description: resource.Description,
		HasFile:     resource.FilePath != nil && *resource.FilePath != "",
		TutorID:     resource.TutorID,
		CreatedAt:   resource.CreatedAt,
	}
	if resource.Tutor != nil && resource.Tutor.User != nil {
		resp.TutorName = resource.Tutor.User.FullName
	}
	return resp
}

// ResourceListResponse is a paginated resource listing
type ResourceListResponse struct {
	Resources  []ResourceResponse `json:"resources"`
	Pagination PaginationInfo     `json:"pagination"`
}
