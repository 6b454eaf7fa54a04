// Package rest exposes the application services as a JSON HTTP API:
// open signup/login endpoints and bearer-token protected task CRUD.
package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/dmitrijs2005/taskhub/internal/logging"
	"github.com/dmitrijs2005/taskhub/internal/server/services"
	"github.com/gorilla/mux"
)

type RESTServer struct {
	address string
	logger  logging.Logger
	auth    *services.AuthService
	tasks   *services.TaskService
}

func NewRESTServer(a string, l logging.Logger, as *services.AuthService, ts *services.TaskService) (*RESTServer, error) {
	return &RESTServer{
		address: a,
		logger:  l.With("module", "rest_server"),
		auth:    as,
		tasks:   ts,
	}, nil
}

func (s *RESTServer) router() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/auth/signup", s.handleSignup).Methods(http.MethodPost)
	r.HandleFunc("/auth/login", s.handleLogin).Methods(http.MethodPost)

	tasks := r.PathPrefix("/tasks").Subrouter()
	tasks.Use(s.authMiddleware)
	tasks.HandleFunc("", s.handleGetTasks).Methods(http.MethodGet)
	tasks.HandleFunc("", s.handleCreateTask).Methods(http.MethodPost)
	tasks.HandleFunc("/{id}", s.handleGetTask).Methods(http.MethodGet)
	tasks.HandleFunc("/{id}", s.handleUpdateTask).Methods(http.MethodPut)
	tasks.HandleFunc("/{id}", s.handleDeleteTask).Methods(http.MethodDelete)

	return r
}

func (s *RESTServer) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}
