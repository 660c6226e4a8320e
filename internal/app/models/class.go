package models

import "time"

// Class defines the class model based on the 'classes' table.
// TutorID is nullable: a class may be created by an admin before a tutor
// is assigned to it.
type Class struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name" example:"COMP1640"`
	Description string    `json:"description" db:"description"`
	TutorID     *int64    `json:"tutorId" db:"tutor_id"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
	Tutor       *Tutor    `json:"tutor,omitempty"` // Relation, no db tag
}

// ClassStudent is the enrollment join between a class and a student.
// The (class_id, student_id) pair is unique.
type ClassStudent struct {
	ID        int64     `json:"id" db:"id"`
	ClassID   int64     `json:"classId" db:"class_id"`
	StudentID int64     `json:"studentId" db:"student_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	Student   *Student  `json:"student,omitempty"` // Relation, no db tag
}
