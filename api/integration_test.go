package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"careercompass-api/api"
	"careercompass-api/api/dto/responses"
	"careercompass-api/api/handlers"
	"careercompass-api/core/auth"
	"careercompass-api/core/interfaces"
	"careercompass-api/core/search"
	"careercompass-api/infrastructure/cache/memory"
	"careercompass-api/infrastructure/http/standard"
	"careercompass-api/infrastructure/storage/sqlite"
	"careercompass-api/pkg/featureflags"
)

// newCatalog serves a course search page that lists one course per query
func newCatalog(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")
		if q == "offline" {
			http.Error(w, "unavailable", http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprintf(w, `<html><body><h3><a href="/course/%s/">Learn %s</a></h3></body></html>`, q, q)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newServer(t *testing.T, catalog *httptest.Server) http.Handler {
	t.Helper()

	store, err := sqlite.NewSQLiteStore(filepath.Join(t.TempDir(), "api.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	deps := interfaces.Dependencies{
		Cache:      memory.NewMemoryCache(time.Minute),
		HTTPClient: standard.NewStandardHTTPClient(2*time.Second, ""),
		Logger:     interfaces.NopLogger{},
		Users:      store,
	}

	authService := auth.NewAuthService(deps, auth.WithHashCost(bcrypt.MinCost))
	searchService := search.NewSearchService(deps,
		search.WithPoliteDelay(0),
		search.WithProviders([]search.Provider{{
			Name:        "Catalog",
			URLTemplate: catalog.URL + "/search?q={q}",
			Extractor: &search.SelectorExtractor{
				Platform: "Catalog",
				Origin:   catalog.URL,
				Domain:   "127.0.0.1",
				Primary:  []string{`h3 a[href*="/course/"]`},
			},
		}}),
	)

	flags := featureflags.NewStaticManager(featureflags.Defaults)
	humaAPI, router := api.NewAPI(api.APIConfig{Logger: interfaces.NopLogger{}, Flags: flags})
	handlers.RegisterHealthRoutes(humaAPI)
	handlers.NewAuthHandler(authService, flags).RegisterRoutes(humaAPI)
	handlers.NewSearchHandler(searchService, authService, interfaces.NopLogger{}, flags).RegisterRoutes(humaAPI)

	return router
}

func do(t *testing.T, h http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestAccountAndSearchFlow(t *testing.T) {
	catalog := newCatalog(t)
	h := newServer(t, catalog)

	w := do(t, h, http.MethodGet, "/api/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	w = do(t, h, http.MethodPost, "/api/register", "", map[string]string{
		"name": "Grace", "email": "grace@example.com", "password": "hopper",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var registered responses.RegisterResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &registered))
	require.NotEmpty(t, registered.UserID)

	w = do(t, h, http.MethodPost, "/api/register", "", map[string]string{
		"name": "Grace", "email": "grace@example.com", "password": "again",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = do(t, h, http.MethodPost, "/api/login", "", map[string]string{
		"email": "grace@example.com", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(t, h, http.MethodPost, "/api/login", "", map[string]string{
		"email": "grace@example.com", "password": "hopper",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var session responses.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &session))
	assert.Equal(t, registered.UserID, session.UserID)

	w = do(t, h, http.MethodGet, "/api/profile/"+session.UserID, session.Token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var profile responses.ProfileResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profile))
	assert.Equal(t, "grace@example.com", profile.Email)
	assert.Equal(t, "student", profile.Role)

	w = do(t, h, http.MethodGet, "/api/profile/someone-else", session.Token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(t, h, http.MethodPost, "/api/smart-search", "", map[string]any{"skills": []string{"golang"}})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(t, h, http.MethodPost, "/api/smart-search", session.Token, map[string]any{
		"skills": []any{"golang", 42, "offline"},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var result responses.SmartSearchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))

	require.Len(t, result.Items, 2)
	assert.Equal(t, responses.LinkResponse{
		Title:    "Learn golang",
		URL:      catalog.URL + "/course/golang/",
		Platform: "Catalog",
	}, result.Items[0])
	assert.Equal(t, responses.LinkResponse{
		Title:    "Search results for offline on Catalog",
		URL:      catalog.URL + "/search?q=offline",
		Platform: "Catalog",
	}, result.Items[1])
}

func TestLoginRevokesPreviousToken(t *testing.T) {
	h := newServer(t, newCatalog(t))

	w := do(t, h, http.MethodPost, "/api/register", "", map[string]string{
		"name": "Alan", "email": "alan@example.com", "password": "enigma",
	})
	require.Equal(t, http.StatusOK, w.Code)

	login := func() responses.LoginResponse {
		w := do(t, h, http.MethodPost, "/api/login", "", map[string]string{
			"email": "alan@example.com", "password": "enigma",
		})
		require.Equal(t, http.StatusOK, w.Code)
		var s responses.LoginResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &s))
		return s
	}

	first := login()
	second := login()
	require.NotEqual(t, first.Token, second.Token)

	w = do(t, h, http.MethodGet, "/api/profile/"+first.UserID, first.Token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(t, h, http.MethodGet, "/api/profile/"+second.UserID, second.Token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
