package models

import "time"

// Subject defines the subject model based on the 'subjects' table.
// Every subject belongs to exactly one class.
type Subject struct {
	ID        int64     `json:"id" db:"id"`
	ClassID   int64     `json:"classId" db:"class_id"`
	Name      string    `json:"name" db:"name" example:"Algebra"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// StudentSubject is the per-student record for a subject, carrying score
// and attendance. The (student_id, subject_id) pair is unique.
type StudentSubject struct {
	ID         int64     `json:"id" db:"id"`
	StudentID  int64     `json:"studentId" db:"student_id"`
	SubjectID  int64     `json:"subjectId" db:"subject_id"`
	Score      *float64  `json:"score" db:"score"`
	Attendance *float64  `json:"attendance" db:"attendance"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at"`
	Subject    *Subject  `json:"subject,omitempty"` // Relation, no db tag
}
