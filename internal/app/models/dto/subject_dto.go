package dto

// CreateSubjectRequest represents a subject creation request
type CreateSubjectRequest struct {
	ClassID int64  `json:"classId" binding:"required,min=1"`
	Name    string `json:"name" binding:"required,min=2,max=100"`
}

// UpdateSubjectRequest represents a subject update request
type UpdateSubjectRequest struct {
	Name string `json:"name" binding:"required,min=2,max=100"`
}

// AssignSubjectRequest assigns a student to a subject
type AssignSubjectRequest struct {
	StudentID int64 `json:"studentId" binding:"required,min=1"`
}

// GradeRequest updates a student's score and attendance for a subject.
type GradeRequest struct {
	Score      *float64 `json:"score,omitempty" binding:"omitempty,min=0,max=100"`
	Attendance *float64 `json:"attendance,omitempty" binding:"omitempty,min=0,max=100"`
}
