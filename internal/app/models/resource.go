package models

import "time"

// Resource defines the resource model based on the 'resources' table.
// TutorID is nullable: a null owner means the resource was created by an
// admin and can only be modified by admins.
type Resource struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	FilePath    *string   `json:"filePath,omitempty" db:"file_path"`
	TutorID     *int64    `json:"tutorId" db:"tutor_id"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
	Tutor       *Tutor    `json:"tutor,omitempty"` // Relation, no db tag
}
