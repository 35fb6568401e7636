package models

import (
	"time"
)

// User defines the user model based on the 'users' table.
// A user may be a student, a college account, a college staff member or a
// company account; college members carry a back-reference to their college.
type User struct {
	ID        int64     `json:"id" db:"id" example:"1"`
	Name      string    `json:"name" db:"name" example:"NIT Surat"`
	Email     string    `json:"email" db:"email" example:"placements@nitsurat.ac.in"`
	Password  string    `json:"-" db:"password"` // hashed, excluded from JSON
	RoleType  RoleType  `json:"role" db:"role" example:"college"`
	CollegeID *int64    `json:"collegeId,omitempty" db:"college_id"` // set for college_member and student accounts
	Branch    *string   `json:"branch,omitempty" db:"branch"`        // department, student accounts only
	CreatedAt time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"`
}
