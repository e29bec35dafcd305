package models

// Role identifies which panel a user is routed to after login.
type Role string

const (
	RoleStudent       Role = "Student"
	RoleAdministrator Role = "Administrator"
)

// User defines an account able to log in.
//
// The password field round-trips through the record store as-is, the same way
// the persisted collections keep it. Whether the stored value is plaintext or
// a bcrypt hash depends on the auth.hash_passwords setting. API responses use
// dto.UserResponse and never carry this field.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}
