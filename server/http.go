// Package server exposes the agent over HTTP: POST /run executes a
// task description, GET /read returns a file from the sandbox. All
// responses are plain text.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"opsagent/internal/dispatch"
	"opsagent/internal/fault"
	"opsagent/pkg/sandbox"
)

const httpShutdownTimeout = 5 * time.Second

// Server translates HTTP requests into dispatcher runs and sandbox
// reads, and outcomes back into status codes.
type Server struct {
	dispatcher *dispatch.Dispatcher
	box        *sandbox.Box
	authorizer Authorizer
	log        *zap.Logger
}

// New builds the HTTP façade. A nil authorizer allows all clients.
func New(dispatcher *dispatch.Dispatcher, box *sandbox.Box, authorizer Authorizer, logger *zap.Logger) *Server {
	if authorizer == nil {
		authorizer = NoopAuthorizer{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{dispatcher: dispatcher, box: box, authorizer: authorizer, log: logger}
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/run", s.handleRun)
	mux.HandleFunc("/read", s.handleRead)
	return s.authorize(mux)
}

func (s *Server) authorize(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := s.authorizer.Allow(r.Context(), r.RemoteAddr); err != nil {
			s.log.Warn("client denied", zap.String("remote", r.RemoteAddr), zap.Error(err))
			writeText(w, http.StatusForbidden, "Forbidden.")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleRun(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeText(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	task := strings.TrimSpace(r.URL.Query().Get("task"))
	if task == "" {
		writeText(w, http.StatusBadRequest, "Task description is required.")
		return
	}

	out := s.dispatcher.Run(r.Context(), task)
	if out.OK {
		writeText(w, http.StatusOK, out.Message)
		return
	}

	switch out.Kind {
	case fault.Unrecognized:
		writeText(w, http.StatusBadRequest, out.Message)
	case fault.OutOfSandbox:
		writeText(w, http.StatusBadRequest, out.Message)
	default:
		writeText(w, http.StatusInternalServerError, "Error: "+out.Message)
	}
}

func (s *Server) handleRead(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeText(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	path := strings.TrimSpace(r.URL.Query().Get("path"))
	if path == "" {
		writeText(w, http.StatusBadRequest, "File path is required.")
		return
	}

	resolved, err := s.box.Resolve(path)
	if err != nil {
		writeText(w, http.StatusInternalServerError, "Error: "+err.Error())
		return
	}

	content, err := os.ReadFile(resolved)
	if err != nil {
		if os.IsNotExist(err) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		writeText(w, http.StatusInternalServerError, "Error: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(content)
}

func writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

// Start serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) Start(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:    addr,
		Handler: s.Handler(),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), httpShutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			s.log.Error("http shutdown", zap.Error(err))
		}
	}()

	s.log.Info("listening", zap.String("addr", addr))
	if err := httpServer.ListenAndServe(); err != nil {
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve %s: %w", addr, err)
	}
	return nil
}
