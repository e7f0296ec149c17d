package web

import (
	"context"
	"crypto/tls"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"
)

const defaultReadHeaderTimeout = 10 * time.Second

// Server serves the blackjack web UI on a listener.
type Server struct {
	server    *http.Server
	tlsConfig *tls.Config
	logger    *slog.Logger
}

type ServerOption func(*Server)

// NewServer creates a Server for handler. It does not listen until Start.
func NewServer(addr string, handler http.Handler, opts ...ServerOption) *Server {
	s := &Server{
		server: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: defaultReadHeaderTimeout,
		},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func WithCertificate(cert tls.Certificate) ServerOption {
	return func(s *Server) {
		if s.tlsConfig == nil {
			s.tlsConfig = &tls.Config{MinVersion: tls.VersionTLS12}
		}
		s.tlsConfig.Certificates = append(s.tlsConfig.Certificates, cert)
	}
}

func WithReadHeaderTimeout(timeout time.Duration) ServerOption {
	return func(s *Server) {
		s.server.ReadHeaderTimeout = timeout
	}
}

func WithServerLogger(logger *slog.Logger) ServerOption {
	return func(s *Server) {
		s.logger = logger
	}
}

// Scheme returns "https" when a certificate was configured.
func (s *Server) Scheme() string {
	if s.tlsConfig != nil {
		return "https"
	}
	return "http"
}

// Start serves on l in a new goroutine. The returned channel receives the
// serve error, or nil once the server is closed, and is then closed.
func (s *Server) Start(l net.Listener) <-chan error {
	if s.tlsConfig != nil {
		l = tls.NewListener(l, s.tlsConfig)
	}
	errChan := make(chan error, 1)
	s.logger.Info("serving", "address", l.Addr().String(), "scheme", s.Scheme())
	go func() {
		defer close(errChan)
		err := s.server.Serve(l)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
			return
		}
		errChan <- nil
	}()
	return errChan
}

// Close gracefully shuts the server down, waiting for in-flight requests
// until ctx expires.
func (s *Server) Close(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
