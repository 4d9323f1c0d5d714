// ABOUTME: Account handlers for registration, login and profile lookup
// ABOUTME: Bearer tokens travel in the Authorization header

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"careercompass-api/api/dto/mappers"
	"careercompass-api/api/dto/requests"
	"careercompass-api/api/dto/responses"
	"careercompass-api/core/auth"
	"careercompass-api/core/domain"
	"careercompass-api/pkg/featureflags"
)

// AuthService interface defines the methods needed from the auth service
type AuthService interface {
	Register(ctx context.Context, name, email, password string, role domain.Role) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*auth.Session, error)
	Profile(ctx context.Context, token, userID string) (*domain.Identity, error)
}

// AuthHandler handles account HTTP requests
type AuthHandler struct {
	authService AuthService
	flags       featureflags.Manager
}

// NewAuthHandler creates a new auth handler; a nil flag manager enables everything
func NewAuthHandler(authService AuthService, flags featureflags.Manager) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		flags:       flags,
	}
}

// RegisterRoutes registers all account routes
func (h *AuthHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "register",
		Method:      http.MethodPost,
		Path:        "/api/register",
		Summary:     "Create an account",
		Tags:        []string{"Accounts"},
	}, h.Register)

	huma.Register(api, huma.Operation{
		OperationID: "login",
		Method:      http.MethodPost,
		Path:        "/api/login",
		Summary:     "Log in and receive a bearer token",
		Description: "Issues a fresh token; any previously issued token stops working",
		Tags:        []string{"Accounts"},
	}, h.Login)

	huma.Register(api, huma.Operation{
		OperationID: "getProfile",
		Method:      http.MethodGet,
		Path:        "/api/profile/{user_id}",
		Summary:     "Get the caller's profile",
		Description: "The bearer token must belong to the requested user",
		Tags:        []string{"Accounts"},
	}, h.GetProfile)
}

// RegisterInput defines the input for the Register operation
type RegisterInput struct {
	Body requests.RegisterRequest `required:"false"`
}

// RegisterOutput defines the output for the Register operation
type RegisterOutput struct {
	Body responses.RegisterResponse
}

// Register handles POST /api/register
func (h *AuthHandler) Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error) {
	if !enabled(ctx, h.flags, featureflags.RegistrationEnabled) {
		return nil, huma.Error403Forbidden("Registration is disabled")
	}

	user, err := h.authService.Register(ctx, input.Body.Name, input.Body.Email, input.Body.Password, domain.Role(input.Body.Role))
	if err != nil {
		return nil, toHumaError(err)
	}

	return &RegisterOutput{Body: responses.RegisterResponse{
		Message: "Registration successful",
		UserID:  user.ID,
	}}, nil
}

// LoginInput defines the input for the Login operation
type LoginInput struct {
	Body requests.LoginRequest `required:"false"`
}

// LoginOutput defines the output for the Login operation
type LoginOutput struct {
	Body responses.LoginResponse
}

// Login handles POST /api/login
func (h *AuthHandler) Login(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	session, err := h.authService.Login(ctx, input.Body.Email, input.Body.Password)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &LoginOutput{Body: responses.LoginResponse{
		Token:  session.Token,
		UserID: session.UserID,
	}}, nil
}

// GetProfileInput defines the input for the GetProfile operation
type GetProfileInput struct {
	Authorization string `header:"Authorization" doc:"Bearer token"`
	UserID        string `path:"user_id" doc:"Account ID"`
}

// GetProfileOutput defines the output for the GetProfile operation
type GetProfileOutput struct {
	Body responses.ProfileResponse
}

// GetProfile handles GET /api/profile/{user_id}
func (h *AuthHandler) GetProfile(ctx context.Context, input *GetProfileInput) (*GetProfileOutput, error) {
	identity, err := h.authService.Profile(ctx, input.Authorization, input.UserID)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &GetProfileOutput{Body: *mappers.ToProfileResponse(identity)}, nil
}

// enabled reports a flag's state; without a manager every flag is on
func enabled(ctx context.Context, flags featureflags.Manager, flag featureflags.FeatureFlag) bool {
	if flags == nil {
		return true
	}
	return flags.IsEnabled(ctx, flag)
}
