package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agent-discovery/config"
	"agent-discovery/internal/discovery"
	"agent-discovery/internal/middleware"
	"agent-discovery/internal/model"
	"agent-discovery/pkg/log"
	"agent-discovery/pkg/response"
)

type mockUseCase struct {
	turnOut  discovery.TurnOutput
	turnErr  error
	sessOut  discovery.SessionOutput
	sessErr  error
	lastSc   model.Scope
	lastIn   discovery.TurnInput
	lastID   string
	resetErr error
}

func (m *mockUseCase) HandleTurn(ctx context.Context, sc model.Scope, in discovery.TurnInput) (discovery.TurnOutput, error) {
	m.lastSc, m.lastIn = sc, in
	return m.turnOut, m.turnErr
}

func (m *mockUseCase) GetSession(ctx context.Context, sc model.Scope, id string) (discovery.SessionOutput, error) {
	m.lastSc, m.lastID = sc, id
	return m.sessOut, m.sessErr
}

func (m *mockUseCase) ResetSession(ctx context.Context, sc model.Scope, id string) (discovery.TurnOutput, error) {
	m.lastSc, m.lastID = sc, id
	return m.turnOut, m.resetErr
}

func newTestRouter(uc discovery.UseCase, perMin int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	mw := middleware.New(log.NewNop(), nil, config.RateLimitConfig{TurnsPerMin: perMin, MaxOwners: 100})
	r.Use(mw.RequestID())
	RegisterRoutes(r.Group("/api/v1/discovery"), New(log.NewNop(), uc), mw)
	return r
}

func do(r *gin.Engine, method, path, body, owner string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if owner != "" {
		req.Header.Set(middleware.HeaderOwnerID, owner)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) (response.Resp, map[string]any) {
	t.Helper()
	var raw struct {
		response.Resp
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	return raw.Resp, raw.Data
}

func TestHandleTurn(t *testing.T) {
	uc := &mockUseCase{turnOut: discovery.TurnOutput{
		Success:          true,
		SessionID:        "s1",
		Message:          "Qui seront les principaux interlocuteurs ?",
		SuggestedReplies: []string{"Touristes"},
		Step:             model.StepTargetAudience,
		Progress:         discovery.Progress{Done: 2, Total: 7},
	}}
	r := newTestRouter(uc, 600)

	w := do(r, http.MethodPost, "/api/v1/discovery/turns", `{"owner_id":"o1","message":"Un restaurant coréen"}`, "hdr-owner")

	require.Equal(t, http.StatusOK, w.Code)
	resp, data := decode(t, w)
	assert.Equal(t, 0, resp.ErrorCode)
	assert.Equal(t, "s1", data["session_id"])
	assert.Equal(t, true, data["success"])
	assert.Equal(t, string(model.StepTargetAudience), data["step"])
	assert.Equal(t, "o1", uc.lastIn.OwnerID)
	assert.Equal(t, "Un restaurant coréen", uc.lastIn.Message)
	assert.Equal(t, "hdr-owner", uc.lastSc.OwnerID)
	assert.NotEmpty(t, uc.lastSc.RequestID)
}

func TestHandleTurn_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
		err  error
		want int
	}{
		{"invalid json", `{`, nil, http.StatusBadRequest},
		{"missing message", `{"owner_id":"o1"}`, nil, http.StatusBadRequest},
		{"empty message", `{"message":" "}`, discovery.ErrEmptyMessage, http.StatusBadRequest},
		{"owner required", `{"message":"hi"}`, discovery.ErrOwnerRequired, http.StatusBadRequest},
		{"unknown session", `{"session_id":"x","message":"hi"}`, discovery.ErrSessionNotFound, http.StatusNotFound},
		{"owner mismatch", `{"session_id":"x","message":"hi"}`, discovery.ErrOwnerMismatch, http.StatusForbidden},
		{"internal", `{"message":"hi"}`, errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := newTestRouter(&mockUseCase{turnErr: tc.err}, 600)
			w := do(r, http.MethodPost, "/api/v1/discovery/turns", tc.body, "o1")
			assert.Equal(t, tc.want, w.Code)
		})
	}
}

func TestHandleTurn_InternalErrorHidesMessage(t *testing.T) {
	r := newTestRouter(&mockUseCase{turnErr: errors.New("database password leaked")}, 600)
	w := do(r, http.MethodPost, "/api/v1/discovery/turns", `{"message":"hi"}`, "o1")

	resp, _ := decode(t, w)
	assert.Equal(t, response.DefaultErrorMessage, resp.Message)
}

func TestHandleTurn_RateLimited(t *testing.T) {
	r := newTestRouter(&mockUseCase{turnOut: discovery.TurnOutput{Success: true}}, 1)

	assert.Equal(t, http.StatusOK, do(r, http.MethodPost, "/api/v1/discovery/turns", `{"message":"hi"}`, "o1").Code)
	assert.Equal(t, http.StatusTooManyRequests, do(r, http.MethodPost, "/api/v1/discovery/turns", `{"message":"hi"}`, "o1").Code)
}

func TestGetSession(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	s := model.NewSession("s1", "o1", now)
	s.AppendTurn(model.RoleUser, "bonjour", now)
	uc := &mockUseCase{sessOut: discovery.SessionOutput{
		Session:  s,
		Step:     model.StepBusinessType,
		Progress: discovery.Progress{Total: 7},
	}}
	r := newTestRouter(uc, 600)

	w := do(r, http.MethodGet, "/api/v1/discovery/sessions/s1", "", "o1")

	require.Equal(t, http.StatusOK, w.Code)
	_, data := decode(t, w)
	assert.Equal(t, "s1", data["session_id"])
	assert.Equal(t, string(model.PhaseDiscovery), data["phase"])
	assert.Equal(t, string(model.StepBusinessType), data["step"])
	turns, ok := data["turns"].([]any)
	require.True(t, ok)
	assert.Len(t, turns, 1)
	assert.Equal(t, "s1", uc.lastID)
	assert.Equal(t, "o1", uc.lastSc.OwnerID)
}

func TestGetSession_NotFound(t *testing.T) {
	r := newTestRouter(&mockUseCase{sessErr: discovery.ErrSessionNotFound}, 600)
	w := do(r, http.MethodGet, "/api/v1/discovery/sessions/missing", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestResetSession(t *testing.T) {
	uc := &mockUseCase{turnOut: discovery.TurnOutput{Success: true, SessionID: "s1", Step: model.StepBusinessType}}
	r := newTestRouter(uc, 600)

	w := do(r, http.MethodDelete, "/api/v1/discovery/sessions/s1", "", "o1")
	require.Equal(t, http.StatusOK, w.Code)
	_, data := decode(t, w)
	assert.Equal(t, string(model.StepBusinessType), data["step"])
	assert.Equal(t, "s1", uc.lastID)

	r = newTestRouter(&mockUseCase{resetErr: discovery.ErrOwnerMismatch}, 600)
	w = do(r, http.MethodDelete, "/api/v1/discovery/sessions/s1", "", "intruder")
	assert.Equal(t, http.StatusForbidden, w.Code)
}
