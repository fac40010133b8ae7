package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prasadt1/photocoach/internal/config"
	"github.com/prasadt1/photocoach/internal/core"
	"github.com/prasadt1/photocoach/internal/service/coach"
	"github.com/prasadt1/photocoach/internal/service/session"
	"github.com/prasadt1/photocoach/internal/storage/memory"
)

type fakeRunner struct {
	lastUserID    string
	lastImagePath string
	lastQuery     string
}

func (f *fakeRunner) Run(ctx context.Context, userID, imagePath, query string) *coach.Result {
	f.lastUserID = userID
	f.lastImagePath = imagePath
	f.lastQuery = query
	return &coach.Result{
		Coach:          core.CoachingResult{Text: "Shift the subject to a third.", Tier: core.TierNone},
		SessionUpdated: true,
	}
}

func newTestServer(t *testing.T) (*Server, *fakeRunner, *session.Store) {
	t.Helper()
	runner := &fakeRunner{}
	sessions := session.NewStore(memory.NewSessionRepo())
	cfg := &config.AppConfig{RuntimePath: t.TempDir(), HTTPAddr: ":0"}
	return NewServer(cfg, runner, sessions), runner, sessions
}

func TestCoachJSONRequest(t *testing.T) {
	srv, runner, _ := newTestServer(t)

	body := `{"user_id":"u1","query":"how do I frame this?"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/coach", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	srv.Routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u1", runner.lastUserID)
	assert.Equal(t, "how do I frame this?", runner.lastQuery)
	assert.Empty(t, runner.lastImagePath)

	var result coach.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "Shift the subject to a third.", result.Coach.Text)
	assert.True(t, result.SessionUpdated)
}

func TestCoachMultipartUpload(t *testing.T) {
	srv, runner, _ := newTestServer(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("user_id", "u1"))
	require.NoError(t, mw.WriteField("query", "is this exposure right?"))
	part, err := mw.CreateFormFile("image", "shot.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("not-really-a-jpeg"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/v1/coach", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()

	srv.Routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, runner.lastImagePath)
	assert.Contains(t, runner.lastImagePath, "shot.jpg")

	data, err := os.ReadFile(runner.lastImagePath)
	require.NoError(t, err)
	assert.Equal(t, "not-really-a-jpeg", string(data))
}

func TestCoachMultipartWithoutImage(t *testing.T) {
	srv, runner, _ := newTestServer(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("user_id", "u1"))
	require.NoError(t, mw.WriteField("query", "follow-up question"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/v1/coach", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()

	srv.Routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, runner.lastImagePath)
}

func TestCoachAppliesSkillLevel(t *testing.T) {
	srv, _, sessions := newTestServer(t)

	body := `{"user_id":"u1","query":"hi","skill_level":"advanced"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/coach", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	srv.Routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	sess := sessions.GetOrCreate(context.Background(), "u1")
	assert.Equal(t, core.SkillAdvanced, sess.SkillLevel)
}

func TestCoachRejectsUnknownSkillLevel(t *testing.T) {
	srv, _, _ := newTestServer(t)

	body := `{"user_id":"u1","query":"hi","skill_level":"wizard"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/coach", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	srv.Routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCoachRejectsMissingFields(t *testing.T) {
	srv, _, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/coach", strings.NewReader(`{"query":"hi"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	srv.Routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCoachRejectsInvalidJSON(t *testing.T) {
	srv, _, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/coach", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	srv.Routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSessionKeys(t *testing.T) {
	srv, _, sessions := newTestServer(t)

	sess := core.NewSession("u1")
	sess.History = []core.Turn{{Role: core.RoleUser, Text: "hi"}}
	require.True(t, sessions.Save(context.Background(), sess))

	req := httptest.NewRequest(http.MethodGet, "/v1/sessions/u1/keys", nil)
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		UserID string   `json:"user_id"`
		Keys   []string `json:"keys"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "u1", body.UserID)
	assert.Contains(t, body.Keys, "history")
	assert.Contains(t, body.Keys, "skill_level")
}

func TestSessionKeysUnknownUser(t *testing.T) {
	srv, _, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/sessions/nobody/keys", nil)
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Keys []string `json:"keys"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Empty(t, body.Keys)
}

func TestDebugLogs(t *testing.T) {
	srv, _, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/debug/logs", nil)
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Entries []string `json:"entries"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
}
