package fixture

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/evcraddock/image-comments/internal/comment"
	"github.com/evcraddock/image-comments/internal/feedapi"
	"github.com/evcraddock/image-comments/internal/logging"
)

// Server serves one comments feed for every image.
type Server struct {
	router *mux.Router
	body   []byte
	status int
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithStatus makes the feed endpoint answer with code instead of 200.
func WithStatus(code int) ServerOption {
	return func(s *Server) {
		s.status = code
	}
}

// NewServer creates a Server for comments.
func NewServer(comments []comment.Comment, opts ...ServerOption) (*Server, error) {
	body, err := feedapi.Encode(comments)
	if err != nil {
		return nil, err
	}

	s := &Server{
		router: mux.NewRouter(),
		body:   body,
		status: http.StatusOK,
	}
	for _, o := range opts {
		o(s)
	}

	s.router.HandleFunc("/image/{id}/comments", s.handleComments).Methods(http.MethodGet)
	s.router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet).Name(logging.SkipRoute)
	s.router.Use(logging.RequestLogger)

	return s, nil
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe(port int) error {
	addr := fmt.Sprintf(":%d", port)
	slog.Info("serving comments feed", "url", fmt.Sprintf("http://localhost%s/image/1/comments", addr))
	return http.ListenAndServe(addr, s)
}

func (s *Server) handleComments(w http.ResponseWriter, r *http.Request) {
	slog.Debug("serving feed", "image", mux.Vars(r)["id"], "status", s.status)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(s.status)
	if _, err := w.Write(s.body); err != nil {
		slog.Warn("writing feed", "error", err)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}
