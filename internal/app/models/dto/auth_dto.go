package dto

import "github.com/takeo/dojomaster/internal/app/models"

// LoginRequest carries a credential pair plus the panel role the user chose.
type LoginRequest struct {
	Email    string      `json:"email" binding:"required"`
	Password string      `json:"password" binding:"required"`
	Role     models.Role `json:"role" binding:"required"`
}

// UserResponse is the API view of a user; the stored credential never leaves
// the process.
type UserResponse struct {
	ID    string      `json:"id"`
	Email string      `json:"email"`
	Role  models.Role `json:"role"`
}

// NewUserResponse maps a user to its API view.
func NewUserResponse(u models.User) UserResponse {
	return UserResponse{ID: u.ID, Email: u.Email, Role: u.Role}
}

// LoginResponse is returned on successful login. Student is present only for
// Student-role sessions.
type LoginResponse struct {
	SessionID string          `json:"sessionId"`
	User      UserResponse    `json:"user"`
	Student   *models.Student `json:"student,omitempty"`
}
