// ABOUTME: Request DTOs for registration and login endpoints
// ABOUTME: Field presence is checked by the auth service so every failure maps to 400

package requests

// RegisterRequest represents the request body for creating an account
type RegisterRequest struct {
	Name     string `json:"name,omitempty" doc:"Display name"`
	Email    string `json:"email,omitempty" doc:"Email address, unique per account"`
	Password string `json:"password,omitempty" doc:"Account password"`
	Role     string `json:"role,omitempty" doc:"Account role: student or mentor (default student)"`
}

// LoginRequest represents the request body for logging in
type LoginRequest struct {
	Email    string `json:"email,omitempty" doc:"Email address"`
	Password string `json:"password,omitempty" doc:"Account password"`
}
