// Package server exposes the task operations over HTTP for external clients.
// Errors are reported as non-2xx statuses with a JSON body carrying a
// "message" field, the contract the web client parses.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"petrack/internal/engine"
)

type Server struct {
	engine *engine.Service
	logger *slog.Logger
	http   *http.Server
}

func New(addr string, eng *engine.Service, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{engine: eng, logger: logger}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /fetchtask", s.handleFetchTasks)
	mux.HandleFunc("POST /addsubject", s.handleAddSubject)
	mux.HandleFunc("POST /addtask", s.handleAddTask)
	mux.HandleFunc("PUT /updatetask", s.handleUpdateTask)
	mux.HandleFunc("DELETE /deletetask", s.handleDeleteTask)

	s.http = &http.Server{
		Addr:         addr,
		Handler:      s.logRequests(mux),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}
	return s
}

// Handler exposes the routed handler, mainly for tests.
func (s *Server) Handler() http.Handler { return s.http.Handler }

// ListenAndServe blocks until the server stops.
func (s *Server) ListenAndServe() error {
	s.logger.Info("task api listening", "addr", s.http.Addr)
	err := s.http.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

type addSubjectRequest struct {
	Title string `json:"title"`
	Color string `json:"color"`
}

type addTaskRequest struct {
	SubjectID  int64  `json:"subject_id"`
	Content    string `json:"content"`
	Difficulty string `json:"difficulty"`
}

type updateTaskRequest struct {
	SubjectID int64   `json:"subject_id"`
	ID        int64   `json:"id"`
	Content   *string `json:"content"`
	Completed *bool   `json:"completed"`
}

type deleteTaskRequest struct {
	SubjectID int64 `json:"subject_id"`
	ID        int64 `json:"id"`
}

func (s *Server) handleFetchTasks(w http.ResponseWriter, r *http.Request) {
	subjects, err := s.engine.Subjects().List(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, subjects)
}

func (s *Server) handleAddSubject(w http.ResponseWriter, r *http.Request) {
	var req addSubjectRequest
	if !s.decode(w, r, &req) {
		return
	}
	subject, err := s.engine.CreateSubject(r.Context(), req.Title, req.Color)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, subject)
}

func (s *Server) handleAddTask(w http.ResponseWriter, r *http.Request) {
	var req addTaskRequest
	if !s.decode(w, r, &req) {
		return
	}
	task, err := s.engine.AddTask(r.Context(), req.SubjectID, req.Content, engine.ParseDifficulty(req.Difficulty))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, task)
}

// handleUpdateTask covers both edits and completion toggles. Toggling to
// completed runs the full reward pipeline; toggling back only clears the
// flag.
func (s *Server) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	var req updateTaskRequest
	if !s.decode(w, r, &req) {
		return
	}
	ctx := r.Context()

	if req.Content != nil {
		if err := s.engine.EditTask(ctx, req.SubjectID, req.ID, *req.Content); err != nil {
			s.writeError(w, err)
			return
		}
	}

	if req.Completed != nil {
		if *req.Completed {
			res, err := s.engine.CompleteTask(ctx, req.SubjectID, req.ID)
			if err != nil {
				s.writeError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, res)
			return
		}
		if err := s.engine.ReopenTask(ctx, req.SubjectID, req.ID); err != nil {
			s.writeError(w, err)
			return
		}
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "task updated"})
}

func (s *Server) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	var req deleteTaskRequest
	if !s.decode(w, r, &req) {
		return
	}
	if err := s.engine.DeleteTask(r.Context(), req.SubjectID, req.ID); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "task deleted"})
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, engine.ErrEmptyTitle):
		writeMessage(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, engine.ErrSubjectNotFound), errors.Is(err, engine.ErrTaskNotFound):
		writeMessage(w, http.StatusNotFound, err.Error())
	case errors.Is(err, engine.ErrAlreadyCompleted):
		writeMessage(w, http.StatusConflict, err.Error())
	default:
		s.logger.Error("request failed", "error", err)
		writeMessage(w, http.StatusInternalServerError, err.Error())
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}
