//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/minhvudev/clausecheck-backend/internal/adapter/postgres"
	draftrepo "github.com/minhvudev/clausecheck-backend/internal/adapter/postgres/draft"
	inspectionrepo "github.com/minhvudev/clausecheck-backend/internal/adapter/postgres/inspection"
	templaterepo "github.com/minhvudev/clausecheck-backend/internal/adapter/postgres/template"
	"github.com/minhvudev/clausecheck-backend/internal/adapter/postgres/testhelper"
	"github.com/minhvudev/clausecheck-backend/internal/adapter/postgres/token"
	userrepo "github.com/minhvudev/clausecheck-backend/internal/adapter/postgres/user"
	"github.com/minhvudev/clausecheck-backend/internal/adapter/provider/staticanalyzer"
	authpkg "github.com/minhvudev/clausecheck-backend/internal/auth"
	"github.com/minhvudev/clausecheck-backend/internal/config"
	authsvc "github.com/minhvudev/clausecheck-backend/internal/service/auth"
	draftsvc "github.com/minhvudev/clausecheck-backend/internal/service/draft"
	inspectionsvc "github.com/minhvudev/clausecheck-backend/internal/service/inspection"
	templatesvc "github.com/minhvudev/clausecheck-backend/internal/service/template"
	usersvc "github.com/minhvudev/clausecheck-backend/internal/service/user"
	"github.com/minhvudev/clausecheck-backend/internal/transport/middleware"
	"github.com/minhvudev/clausecheck-backend/internal/transport/rest"
	"github.com/jackc/pgx/v5/pgxpool"
)

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	Mailer *captureMailer
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// captureMailer records reset URLs instead of sending mail, so tests can
// pull the raw token out of the link.
type captureMailer struct {
	mu   sync.Mutex
	sent []string
}

func (m *captureMailer) SendPasswordReset(_ context.Context, _, resetURL string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, resetURL)
	return nil
}

func (m *captureMailer) LastResetURL() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.sent) == 0 {
		return ""
	}
	return m.sent[len(m.sent)-1]
}

// setupTestServer bootstraps the full application stack backed by a real
// PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)

	users := userrepo.New(pool)
	drafts := draftrepo.New(pool)
	inspections := inspectionrepo.New(pool)
	templates := templaterepo.New(pool)
	refreshTokens := token.NewRefresh(pool)
	resetTokens := token.NewReset(pool)

	jwtSecret := "test-secret-at-least-32-chars-long!!"
	jwtMgr := authpkg.NewJWTManager(jwtSecret, "test-issuer", 15*time.Minute)

	mailer := &captureMailer{}

	authCfg := config.AuthConfig{
		JWTSecret:        jwtSecret,
		JWTIssuer:        "test-issuer",
		AccessTokenTTL:   15 * time.Minute,
		RefreshTokenTTL:  720 * time.Hour,
		ResetTokenTTL:    time.Hour,
		ResetRedirectURL: "http://localhost:5173/reset-password",
		PasswordHashCost: 4,
	}
	contractsCfg := config.ContractsConfig{
		MaxDraftsPerUser:      50,
		MaxInspectionsPerUser: 50,
		MaxContentBytes:       1 << 20,
	}

	authService := authsvc.NewService(logger, users, refreshTokens, resetTokens, mailer, txm, jwtMgr, authCfg)
	userService := usersvc.NewService(logger, users, drafts, inspections, txm)
	draftService := draftsvc.NewService(logger, drafts, templates, inspections, txm, contractsCfg)
	inspectionService := inspectionsvc.NewService(logger, inspections, staticanalyzer.New(), contractsCfg)
	templateService := templatesvc.NewService(logger, templates)

	rateLimiter := middleware.NewRateLimiter(time.Minute)
	t.Cleanup(rateLimiter.Stop)

	router := rest.NewRouter(rest.RouterDeps{
		Auth:        rest.NewAuthHandler(authService, logger),
		Profile:     rest.NewProfileHandler(userService, logger),
		Drafts:      rest.NewDraftHandler(draftService, logger),
		Inspections: rest.NewInspectionHandler(inspectionService, logger),
		Templates:   rest.NewTemplateHandler(templateService, logger),
		Health:      rest.NewHealthHandler(pool, "e2e"),

		TokenValidator: authService,
		RateLimiter:    rateLimiter,
		Logger:         logger,
		CORS: config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,PUT,PATCH,DELETE,OPTIONS",
			AllowedHeaders:   "Authorization,Content-Type",
			AllowCredentials: true,
			MaxAge:           86400,
		},
		RateLimit: 10000,
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		Mailer: mailer,
	}
}

// doJSON performs an HTTP request with an optional JSON body and bearer
// token, and decodes the JSON response (if any) into a map.
func (ts *testServer) doJSON(t *testing.T, method, path, bearer string, body any) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	// The auth middleware writes plain-text 401s; everything else is JSON.
	var result map[string]any
	if len(raw) > 0 && json.Valid(raw) {
		require.NoError(t, json.Unmarshal(raw, &result))
	}
	return resp.StatusCode, result
}

// doJSONList is doJSON for endpoints returning a JSON array.
func (ts *testServer) doJSONList(t *testing.T, method, path, bearer string) (int, []any) {
	t.Helper()

	req, err := http.NewRequest(method, ts.URL+path, nil)
	require.NoError(t, err)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var result []any
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &result), "body: %s", raw)
	}
	return resp.StatusCode, result
}

var userCounter int
var userCounterMu sync.Mutex

// registerUser creates a fresh user through the API and returns the access
// token, refresh token, and email.
func registerUser(t *testing.T, ts *testServer) (accessToken, refreshToken, email string) {
	t.Helper()

	userCounterMu.Lock()
	userCounter++
	n := userCounter
	userCounterMu.Unlock()

	email = fmt.Sprintf("e2e-user-%d-%d@example.com", n, time.Now().UnixNano())

	status, result := ts.doJSON(t, http.MethodPost, "/auth/register", "", map[string]any{
		"email":    email,
		"password": "secret-password-123",
		"fullName": "E2E User",
	})
	require.Equal(t, http.StatusCreated, status, "register: %v", result)

	accessToken, _ = result["accessToken"].(string)
	refreshToken, _ = result["refreshToken"].(string)
	require.NotEmpty(t, accessToken)
	require.NotEmpty(t, refreshToken)
	return accessToken, refreshToken, email
}
