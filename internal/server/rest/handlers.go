package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/taskhub/internal/common"
	"github.com/dmitrijs2005/taskhub/internal/server/models"
	"github.com/gorilla/mux"
)

var errBadRequest = errors.New("bad request")

func (s *RESTServer) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeError maps an error kind to an HTTP status. Unknown errors are
// reported as a generic 500 without leaking details.
func (s *RESTServer) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var status int
	var msg string

	switch {
	case errors.Is(err, errBadRequest):
		status, msg = http.StatusBadRequest, "bad request"
	case errors.Is(err, common.ErrEmailInUse):
		status, msg = http.StatusBadRequest, "Email already in use"
	case errors.Is(err, common.ErrInvalidCredentials):
		status, msg = http.StatusBadRequest, "Invalid credentials"
	case errors.Is(err, common.ErrInvalidToken):
		status, msg = http.StatusUnauthorized, "Unauthorized"
	case errors.Is(err, common.ErrNotOwner):
		status, msg = http.StatusForbidden, "Not allowed"
	case errors.Is(err, common.ErrNotFound):
		status, msg = http.StatusNotFound, "Not found"
	default:
		s.logger.Error(r.Context(), "request failed", "method", r.Method, "path", r.URL.Path, "error", err.Error())
		status, msg = http.StatusInternalServerError, "Internal server error"
	}

	s.writeJSON(w, status, errorResponse{Error: msg})
}

func (s *RESTServer) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, errBadRequest)
		return
	}
	if req.Email == "" || req.Password == "" {
		s.writeError(w, r, errBadRequest)
		return
	}

	user, err := s.auth.Signup(r.Context(), req.Email, req.FirstName, req.LastName, req.Password)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, newUserResponse(user))
}

func (s *RESTServer) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, errBadRequest)
		return
	}

	token, user, err := s.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, loginResponse{AccessToken: token, User: newUserResponse(user)})
}

func (s *RESTServer) handleGetTasks(w http.ResponseWriter, r *http.Request) {
	result, err := s.tasks.GetAll(r.Context(), callerID(r))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, result)
}

func (s *RESTServer) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	var req createTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, errBadRequest)
		return
	}
	if req.Name == "" || req.DueDate == "" {
		s.writeError(w, r, errBadRequest)
		return
	}

	task, err := s.tasks.Create(r.Context(), callerID(r), req.Name, req.DueDate, req.Priority)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, task)
}

func (s *RESTServer) handleGetTask(w http.ResponseWriter, r *http.Request) {
	task, err := s.tasks.GetByID(r.Context(), callerID(r), mux.Vars(r)["id"])
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, task)
}

func (s *RESTServer) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	var req updateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, errBadRequest)
		return
	}

	upd := &models.TaskUpdate{Name: req.Name, DueDate: req.DueDate, Priority: req.Priority}

	task, err := s.tasks.Update(r.Context(), callerID(r), mux.Vars(r)["id"], upd)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, task)
}

func (s *RESTServer) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	if err := s.tasks.Delete(r.Context(), callerID(r), mux.Vars(r)["id"]); err != nil {
		s.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
