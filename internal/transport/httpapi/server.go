// Package httpapi is the HTTP surface: one coaching endpoint plus two
// diagnostic ones. Handlers translate between wire shapes and the
// orchestrator; all coaching semantics live below this layer.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/prasadt1/photocoach/internal/config"
	"github.com/prasadt1/photocoach/internal/core"
	"github.com/prasadt1/photocoach/internal/service/coach"
	"github.com/prasadt1/photocoach/internal/service/session"
	"github.com/prasadt1/photocoach/pkg/log"
)

const maxUploadBytes = 20 << 20

// Runner is the slice of the orchestrator the handlers need.
type Runner interface {
	Run(ctx context.Context, userID, imagePath, query string) *coach.Result
}

type Server struct {
	cfg      *config.AppConfig
	runner   Runner
	sessions *session.Store
	httpSrv  *http.Server
}

func NewServer(cfg *config.AppConfig, runner Runner, sessions *session.Store) *Server {
	s := &Server{
		cfg:      cfg,
		runner:   runner,
		sessions: sessions,
	}
	s.httpSrv = &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

func (s *Server) Routes() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/v1/coach", s.handleCoach).Methods(http.MethodPost)
	r.HandleFunc("/v1/sessions/{user_id}/keys", s.handleSessionKeys).Methods(http.MethodGet)
	r.HandleFunc("/v1/debug/logs", s.handleDebugLogs).Methods(http.MethodGet)
	return r
}

func (s *Server) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Str("addr", s.httpSrv.Addr).Msg("http api listening")
	if err := s.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpSrv.Shutdown(ctx)
}

type coachRequest struct {
	UserID    string `json:"user_id"`
	Query     string `json:"query"`
	ImagePath string `json:"image_path,omitempty"`
	// Optional; when set it is applied to the session before the turn runs.
	SkillLevel string `json:"skill_level,omitempty"`
}

// handleCoach accepts either a JSON body, or multipart/form-data carrying
// the photo itself in the "image" part. Uploaded photos land in the runtime
// directory before analysis.
func (s *Server) handleCoach(w http.ResponseWriter, r *http.Request) {
	req, err := s.decodeCoachRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if req.UserID == "" || req.Query == "" {
		writeError(w, http.StatusBadRequest, errors.New("user_id and query are required"))
		return
	}

	if req.SkillLevel != "" {
		level := core.SkillLevel(req.SkillLevel)
		if !level.Valid() {
			writeError(w, http.StatusBadRequest, fmt.Errorf("unknown skill_level %q", req.SkillLevel))
			return
		}
		sess := s.sessions.GetOrCreate(r.Context(), req.UserID)
		sess.SkillLevel = level
		s.sessions.Save(r.Context(), sess)
	}

	result := s.runner.Run(r.Context(), req.UserID, req.ImagePath, req.Query)
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) decodeCoachRequest(r *http.Request) (coachRequest, error) {
	var req coachRequest

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			return req, fmt.Errorf("invalid multipart body: %w", err)
		}
		req.UserID = r.FormValue("user_id")
		req.Query = r.FormValue("query")
		req.SkillLevel = r.FormValue("skill_level")

		file, header, err := r.FormFile("image")
		switch {
		case err == nil:
			defer file.Close()
			path, saveErr := s.saveUpload(file, header.Filename)
			if saveErr != nil {
				return req, saveErr
			}
			req.ImagePath = path
		case errors.Is(err, http.ErrMissingFile):
			// Follow-up question without a new photo.
		default:
			return req, fmt.Errorf("invalid image upload: %w", err)
		}
		return req, nil
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return req, fmt.Errorf("invalid json body: %w", err)
	}
	return req, nil
}

func (s *Server) saveUpload(file io.Reader, filename string) (string, error) {
	dir := filepath.Join(s.cfg.RuntimePath, "uploads")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	name := fmt.Sprintf("%d_%s", time.Now().UnixNano(), filepath.Base(filename))
	path := filepath.Join(dir, name)

	out, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to store upload: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, io.LimitReader(file, maxUploadBytes)); err != nil {
		return "", fmt.Errorf("failed to write upload: %w", err)
	}
	return path, nil
}

func (s *Server) handleSessionKeys(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["user_id"]

	keys, err := s.sessions.ListKeys(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if keys == nil {
		keys = []string{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"user_id": userID, "keys": keys})
}

func (s *Server) handleDebugLogs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"entries": log.Recent().Entries()})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
