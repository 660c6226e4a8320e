package models

import "time"

// Timetable defines a scheduled session based on the 'timetables' table.
type Timetable struct {
	ID        int64     `json:"id" db:"id"`
	ClassID   int64     `json:"classId" db:"class_id"`
	Date      time.Time `json:"date" db:"date"`
	Location  string    `json:"location" db:"location"`
	Schedule  string    `json:"schedule" db:"schedule" example:"09:00-11:00"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
	Class     *Class    `json:"class,omitempty"` // Relation, no db tag
}
