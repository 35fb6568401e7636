package dto

// RegisterRequest is the payload for account creation.
type RegisterRequest struct {
	Name      string  `json:"name" binding:"required" example:"NIT Surat"`
	Email     string  `json:"email" binding:"required,email" example:"placements@nitsurat.ac.in"`
	Password  string  `json:"password" binding:"required,min=6"`
	Role      string  `json:"role" binding:"required,oneof=student college college_member company" example:"college"`
	CollegeID *int64  `json:"collegeId,omitempty"` // required for college_member and student roles
	Branch    *string `json:"branch,omitempty"`    // students only
}

// LoginRequest is the payload for login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse carries an issued access token.
type TokenResponse struct {
	Token     string       `json:"token"`
	ExpiresIn int          `json:"expiresIn" example:"2592000"`
	User      UserResponse `json:"user"`
}

// UserResponse is the public view of a user account.
type UserResponse struct {
	ID        int64   `json:"id" example:"1"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Role      string  `json:"role" example:"college"`
	CollegeID *int64  `json:"collegeId,omitempty"`
	Branch    *string `json:"branch,omitempty"`
}
