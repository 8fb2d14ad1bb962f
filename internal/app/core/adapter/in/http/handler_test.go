package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoeShih716/go-atm-ledger/internal/app/core/adapter/out/memory"
	"github.com/JoeShih716/go-atm-ledger/internal/app/core/adapter/out/pinhash"
	"github.com/JoeShih716/go-atm-ledger/internal/app/core/adapter/out/session"
	"github.com/JoeShih716/go-atm-ledger/internal/app/core/usecase"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	return NewApp(newTestHandler(t))
}

func newTestHandler(t *testing.T) *TellerHandler {
	t.Helper()
	ledger, err := memory.NewMutexLedger(nil, nil)
	require.NoError(t, err)
	core := usecase.NewCoreUseCase(ledger, pinhash.Plain{},
		usecase.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		usecase.WithSessionTTL(time.Hour),
	)
	require.NoError(t, core.Provision(context.Background(), "1001", "1234", 10000))

	tokens, err := session.NewTokenManager("http-test-secret-0123456789")
	require.NoError(t, err)
	return &TellerHandler{Core: core, Tokens: tokens}
}

func do(t *testing.T, app *fiber.App, method, path, token, body string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	out := map[string]any{}
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(data) > 0 && strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(data, &out))
	} else {
		out["body"] = string(data)
	}
	return resp.StatusCode, out
}

func login(t *testing.T, app *fiber.App) string {
	t.Helper()
	code, body := do(t, app, http.MethodPost, "/v1/sessions", "", `{"account_number":"1001","pin":"1234"}`)
	require.Equal(t, http.StatusCreated, code)
	token, ok := body["token"].(string)
	require.True(t, ok)
	return token
}

func TestHTTPFlow(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app)

	code, body := do(t, app, http.MethodGet, "/v1/balance", token, "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "100.00", body["balance"])

	code, body = do(t, app, http.MethodPost, "/v1/deposit", token, `{"amount":"50.00"}`)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "150.00", body["balance"])

	code, body = do(t, app, http.MethodPost, "/v1/withdraw", token, `{"amount":"200.00"}`)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "150.00", body["balance"])

	code, body = do(t, app, http.MethodPost, "/v1/withdraw", token, `{"amount":"150.00"}`)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "0.00", body["balance"])

	code, body = do(t, app, http.MethodGet, "/v1/history?kind=withdraw", token, "")
	assert.Equal(t, http.StatusOK, code)
	entries, ok := body["entries"].([]any)
	require.True(t, ok)
	assert.Len(t, entries, 1)

	code, body = do(t, app, http.MethodGet, "/v1/history/export", token, "")
	assert.Equal(t, http.StatusOK, code)
	lines := strings.Split(strings.TrimSuffix(body["body"].(string), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "| WITHDRAW | 150.00 | balance 0.00")

	code, _ = do(t, app, http.MethodPut, "/v1/pin", token, `{"new_pin":"5678","confirm_pin":"5678"}`)
	assert.Equal(t, http.StatusNoContent, code)
}

func TestHTTPErrors(t *testing.T) {
	app := newTestApp(t)

	code, _ := do(t, app, http.MethodPost, "/v1/sessions", "", `{"account_number":"1001","pin":"0000"}`)
	assert.Equal(t, http.StatusUnauthorized, code)

	code, _ = do(t, app, http.MethodGet, "/v1/balance", "", "")
	assert.Equal(t, http.StatusUnauthorized, code)

	code, _ = do(t, app, http.MethodGet, "/v1/balance", "not-a-token", "")
	assert.Equal(t, http.StatusUnauthorized, code)

	token := login(t, app)
	code, body := do(t, app, http.MethodPost, "/v1/deposit", token, `{"amount":"0"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "invalid amount", body["error"])

	code, _ = do(t, app, http.MethodPost, "/v1/withdraw", token, `{"amount":"1.001"}`)
	assert.Equal(t, http.StatusBadRequest, code)

	code, body = do(t, app, http.MethodPut, "/v1/pin", token, `{"new_pin":"5678","confirm_pin":"1111"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "pin confirmation does not match", body["error"])

	code, _ = do(t, app, http.MethodGet, "/v1/history?kind=transfer", token, "")
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestHealthz(t *testing.T) {
	h := newTestHandler(t)
	code, body := do(t, NewApp(h), http.MethodGet, "/healthz", "", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", body["status"])

	h.Health = func(ctx context.Context) error { return errors.New("dial tcp: connection refused") }
	code, body = do(t, NewApp(h), http.MethodGet, "/healthz", "", "")
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, "unavailable", body["status"])
}
