package v1_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JRossell27/Job-tracker/config"
	v1 "github.com/JRossell27/Job-tracker/internal/delivery/http/v1"
	"github.com/JRossell27/Job-tracker/internal/gitsync"
	"github.com/JRossell27/Job-tracker/internal/repository/csvfile"
	"github.com/JRossell27/Job-tracker/internal/usecase"
	"github.com/JRossell27/Job-tracker/pkg/logger"
	"github.com/JRossell27/Job-tracker/pkg/validation"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger.Init()

	dir := t.TempDir()
	cfg := &config.Config{
		Port:        "0",
		DataDir:     dir,
		FrontendURL: "http://localhost:3000",
		JWTSecret:   "test-secret",
		JWTTTLHours: 1,
	}

	applicationRepo := csvfile.NewApplicationRepository(dir)
	userRepo := csvfile.NewUserRepository(dir)
	syncAgent := gitsync.New(gitsync.Config{RepoPath: dir}) // no settings: sync disabled

	validate := validator.New()
	validation.RegisterValidators(validate)

	return v1.NewRouter(v1.RouterDeps{
		AuthUC:        usecase.NewAuthUsecase(userRepo, applicationRepo, cfg.JWTSecret, time.Duration(cfg.JWTTTLHours)*time.Hour),
		ApplicationUC: usecase.NewApplicationUsecase(applicationRepo, userRepo, syncAgent, validate),
		StatsUC:       usecase.NewStatsUsecase(applicationRepo),
		Config:        cfg,
	})
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func login(t *testing.T, router *gin.Engine, username, password string) string {
	t.Helper()
	w, env := doJSON(t, router, http.MethodPost, "/v1/auth/login", "",
		`{"username":"`+username+`","password":"`+password+`"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var result struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &result))
	require.NotEmpty(t, result.Token)
	return result.Token
}

func TestLoginRegistersThenVerifies(t *testing.T) {
	router := newTestRouter(t)

	w, env := doJSON(t, router, http.MethodPost, "/v1/auth/login", "", `{"username":"dev","password":"pw"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Account created", env.Message)

	w, env = doJSON(t, router, http.MethodPost, "/v1/auth/login", "", `{"username":"dev","password":"pw"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Logged in", env.Message)

	w, env = doJSON(t, router, http.MethodPost, "/v1/auth/login", "", `{"username":"dev","password":"nope"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, env.Success)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	router := newTestRouter(t)

	w, env := doJSON(t, router, http.MethodGet, "/v1/applications", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, env.Success)

	w, _ = doJSON(t, router, http.MethodGet, "/v1/applications", "not-a-token", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestApplicationCRUDOverHTTP(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router, "dev", "pw")

	// Add
	w, env := doJSON(t, router, http.MethodPost, "/v1/applications", token,
		`{"company":"Acme","job_title":"Engineer","application_status":"Applied","application_date":"2025-06-01"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, env.Message, "remote sync disabled")

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	require.NotEmpty(t, created.ID)

	// List
	w, env = doJSON(t, router, http.MethodGet, "/v1/applications", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	var apps []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &apps))
	require.Len(t, apps, 1)
	assert.Equal(t, "Acme", apps[0]["company"])

	// Filter misses
	w, env = doJSON(t, router, http.MethodGet, "/v1/applications?status=Offer", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(env.Data, &apps))
	assert.Empty(t, apps)

	// Edit
	w, _ = doJSON(t, router, http.MethodPatch, "/v1/applications/"+created.ID, token,
		`{"application_status":"Interview","interview_stage":"Screening"}`)
	require.Equal(t, http.StatusOK, w.Code)

	// Stats see the edit
	w, env = doJSON(t, router, http.MethodGet, "/v1/stats", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	var stats struct {
		Total         int    `json:"total"`
		Interviews    int    `json:"interviews"`
		InterviewRate string `json:"interview_rate"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &stats))
	assert.Equal(t, 1, stats.Total)
	assert.Equal(t, 1, stats.Interviews)
	assert.Equal(t, "100.0%", stats.InterviewRate)

	// Delete
	w, _ = doJSON(t, router, http.MethodDelete, "/v1/applications/"+created.ID, token, "")
	require.Equal(t, http.StatusOK, w.Code)

	w, env = doJSON(t, router, http.MethodGet, "/v1/applications", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(env.Data, &apps))
	assert.Empty(t, apps)

	// Editing the deleted record is a 404, not a crash
	w, _ = doJSON(t, router, http.MethodPatch, "/v1/applications/"+created.ID, token, `{"notes":"?"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUsernameSpellingsResolveToOneAccount(t *testing.T) {
	router := newTestRouter(t)

	// "Alice" and "alice" derive the same data file, so they must be the
	// same account rather than two credentials over one tracker.
	w, env := doJSON(t, router, http.MethodPost, "/v1/auth/login", "", `{"username":"Alice","password":"pw"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Account created", env.Message)

	w, env = doJSON(t, router, http.MethodPost, "/v1/auth/login", "", `{"username":"alice","password":"pw"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Logged in", env.Message)

	w, _ = doJSON(t, router, http.MethodPost, "/v1/auth/login", "", `{"username":"ALICE","password":"other"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, env = doJSON(t, router, http.MethodPost, "/v1/auth/login", "", `{"username":"a/b c","password":"pw"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)
}

func TestUsersSeeOnlyTheirOwnRows(t *testing.T) {
	router := newTestRouter(t)
	aliceToken := login(t, router, "alice", "pw-a")
	bobToken := login(t, router, "bob", "pw-b")

	w, _ := doJSON(t, router, http.MethodPost, "/v1/applications", aliceToken, `{"company":"Acme"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	_, env := doJSON(t, router, http.MethodGet, "/v1/applications", bobToken, "")
	var apps []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &apps))
	assert.Empty(t, apps)

	_, env = doJSON(t, router, http.MethodGet, "/v1/applications", aliceToken, "")
	require.NoError(t, json.Unmarshal(env.Data, &apps))
	assert.Len(t, apps, 1)
}

func TestManualSyncReportsDisabled(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router, "dev", "pw")

	w, env := doJSON(t, router, http.MethodPost, "/v1/sync", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, env.Message, "remote sync disabled")

	var data struct {
		Outcome string `json:"outcome"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "disabled", data.Outcome)
}
