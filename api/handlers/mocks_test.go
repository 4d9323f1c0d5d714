package handlers

import (
	"context"
	"sync"

	"github.com/danielgtaylor/huma/v2/humatest"

	apiserver "careercompass-api/api"
	"careercompass-api/core/auth"
	"careercompass-api/core/domain"
)

// mockAuthService is a function-field mock of the auth service
type mockAuthService struct {
	registerFunc func(ctx context.Context, name, email, password string, role domain.Role) (*domain.User, error)
	loginFunc    func(ctx context.Context, email, password string) (*auth.Session, error)
	profileFunc  func(ctx context.Context, token, userID string) (*domain.Identity, error)
}

func (m *mockAuthService) Register(ctx context.Context, name, email, password string, role domain.Role) (*domain.User, error) {
	if m.registerFunc != nil {
		return m.registerFunc(ctx, name, email, password, role)
	}
	return &domain.User{ID: "user-1"}, nil
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (*auth.Session, error) {
	if m.loginFunc != nil {
		return m.loginFunc(ctx, email, password)
	}
	return &auth.Session{Token: "token-1", UserID: "user-1"}, nil
}

func (m *mockAuthService) Profile(ctx context.Context, token, userID string) (*domain.Identity, error) {
	if m.profileFunc != nil {
		return m.profileFunc(ctx, token, userID)
	}
	return nil, nil
}

// mockAuthenticator resolves a fixed token
type mockAuthenticator struct {
	authenticateFunc func(ctx context.Context, token string) (*domain.Identity, error)
}

func (m *mockAuthenticator) Authenticate(ctx context.Context, token string) (*domain.Identity, error) {
	if m.authenticateFunc != nil {
		return m.authenticateFunc(ctx, token)
	}
	if token == "Bearer good" {
		return &domain.Identity{UserID: "user-1", Name: "Ada", Role: domain.RoleStudent}, nil
	}
	return nil, nil
}

// mockSearchService records requests
type mockSearchService struct {
	mu       sync.Mutex
	requests []domain.SearchRequest
	result   domain.AggregatedResponse
}

func (m *mockSearchService) Search(ctx context.Context, req domain.SearchRequest) domain.AggregatedResponse {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests = append(m.requests, req)
	return m.result
}

// newTestAPI builds a humatest API that serves plain JSON bodies without $schema links
func newTestAPI(t humatest.TB) humatest.TestAPI {
	_, api := humatest.New(t, apiserver.NewConfig())
	return api
}
