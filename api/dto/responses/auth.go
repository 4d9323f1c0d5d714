// ABOUTME: Response DTOs for health, registration, login and profile endpoints

package responses

// HealthResponse reports service liveness
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

// RegisterResponse is returned after a successful registration
type RegisterResponse struct {
	Message string `json:"message" example:"Registration successful"`
	UserID  string `json:"user_id"`
}

// LoginResponse carries the freshly issued bearer token
type LoginResponse struct {
	Token  string `json:"token"`
	UserID string `json:"user_id"`
}

// ProfileResponse is the public view of an account
type ProfileResponse struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}
