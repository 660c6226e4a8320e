package models

import (
	"time"
)

// User defines the user model based on the 'users' table.
// Role is nullable: a freshly registered account carries only a requested
// role and stays pending until an admin approves it.
type User struct {
	ID            int64      `json:"id" db:"id" example:"1"`
	Email         string     `json:"email" db:"email" example:"user@tutorhub.io"`
	Password      string     `json:"-" db:"password"`
	FullName      string     `json:"fullName" db:"full_name" example:"Jane Doe"`
	BirthDate     *time.Time `json:"birthDate,omitempty" db:"birth_date"`
	Gender        *string    `json:"gender,omitempty" db:"gender" example:"female"`
	Role          *RoleType  `json:"role" db:"role" example:"STUDENT"`
	RequestedRole RoleType   `json:"requestedRole" db:"requested_role" example:"STUDENT"`
	CreatedAt     time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time  `json:"updatedAt" db:"updated_at"`
}

// HasRole reports whether the user has been approved with the given role.
func (u *User) HasRole(role RoleType) bool {
	return u.Role != nil && *u.Role == role
}

// Tutor defines the tutor specialization based on the 'tutors' table.
// It exists only while the owning user's role is TUTOR.
type Tutor struct {
	ID             int64  `json:"id" db:"id"`
	UserID         int64  `json:"userId" db:"user_id"`
	Specialization string `json:"specialization" db:"specialization"`
	User           *User  `json:"user,omitempty"` // Relation, no db tag
}

// Student defines the student specialization based on the 'students' table.
type Student struct {
	ID             int64  `json:"id" db:"id"`
	UserID         int64  `json:"userId" db:"user_id"`
	Specialization string `json:"specialization" db:"specialization"`
	User           *User  `json:"user,omitempty"` // Relation, no db tag
}
