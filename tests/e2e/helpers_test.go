//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/claims-backend/internal/adapter/metrics"
	"github.com/heartmarshall/claims-backend/internal/adapter/notify"
	"github.com/heartmarshall/claims-backend/internal/adapter/postgres"
	claimrepo "github.com/heartmarshall/claims-backend/internal/adapter/postgres/claim"
	"github.com/heartmarshall/claims-backend/internal/adapter/postgres/testhelper"
	userrepo "github.com/heartmarshall/claims-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/claims-backend/internal/adapter/provider/fraud"
	"github.com/heartmarshall/claims-backend/internal/adapter/provider/oracle"
	authpkg "github.com/heartmarshall/claims-backend/internal/auth"
	"github.com/heartmarshall/claims-backend/internal/domain"
	claimsvc "github.com/heartmarshall/claims-backend/internal/service/claim"
	"github.com/heartmarshall/claims-backend/internal/transport/middleware"
	"github.com/heartmarshall/claims-backend/internal/transport/rest"
	"github.com/heartmarshall/claims-backend/internal/worker"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	jwt    *authpkg.JWTManager
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the application stack against a real
// PostgreSQL container with the rules screener and an approving oracle.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	rec := metrics.New()

	workers := worker.New(logger, worker.Config{Workers: 2, QueueSize: 32, TaskTimeout: 10 * time.Second}, rec)
	workers.Start()
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = workers.Shutdown(ctx)
	})

	svc := claimsvc.NewService(
		logger,
		claimrepo.New(pool),
		postgres.NewTxManager(pool),
		fraud.NewRulesScreener(logger, 0.7, "rules-e2e"),
		oracle.NewStaticOracle(domain.VerdictApproved),
		notify.NewLogNotifier(logger),
		userrepo.New(pool),
		workers,
		rec,
	)

	jwtMgr := authpkg.NewJWTManager("test-secret-at-least-32-chars-long!!", "test-issuer", 15*time.Minute)

	mux := http.NewServeMux()
	rest.NewClaimHandler(svc, logger).Register(mux)
	rest.NewHealthHandler(pool, svc, "test-version").Register(mux)
	mux.Handle("GET /metrics", rec.Handler())

	handler := middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.Auth(jwtMgr),
	)(rec.Instrument(mux))

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		jwt:    jwtMgr,
	}
}

// createUser inserts a user with role and returns its id and an access token.
func (ts *testServer) createUser(t *testing.T, role domain.UserRole) (uuid.UUID, string) {
	t.Helper()

	owner := testhelper.SeedUser(t, ts.Pool, role)
	tok, err := ts.jwt.GenerateAccessToken(owner.ID, role)
	require.NoError(t, err)
	return owner.ID, tok
}

// do sends a JSON request and decodes the response body into out when out
// is non-nil. It returns the status code.
func (ts *testServer) do(t *testing.T, method, path, token string, body, out any) int {
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
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil && resp.StatusCode != http.StatusNoContent {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

type claimBody struct {
	ID                  string   `json:"id"`
	OwnerID             string   `json:"owner_id"`
	Description         string   `json:"description"`
	Status              string   `json:"status"`
	FraudCheckCompleted bool     `json:"fraud_check_completed"`
	IsFraudulent        bool     `json:"is_fraudulent"`
	FraudConfidence     *float64 `json:"fraud_confidence_score"`
	Verdict             *struct {
		Raw string `json:"raw"`
	} `json:"verdict"`
	Owner *struct {
		Email string `json:"email"`
	} `json:"owner"`
}

type listBody struct {
	Items []claimBody `json:"items"`
	Count int         `json:"count"`
}

type errorBody struct {
	Error  string `json:"error"`
	Fields []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"fields"`
}
