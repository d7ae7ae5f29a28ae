package metrics

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server exposes the global Registry over HTTP for Prometheus to scrape
type Server struct {
	httpServer *http.Server
	listener   net.Listener
}

// NewServer binds host:port and serves the registry at path.
// Returns an error if metrics are not initialized.
func NewServer(host string, port int, path string) (*Server, error) {
	if Registry == nil {
		return nil, errors.New("metrics registry not initialized")
	}

	mux := http.NewServeMux()
	mux.Handle(path, promhttp.HandlerFor(Registry, promhttp.HandlerOpts{}))

	listener, err := net.Listen("tcp", net.JoinHostPort(host, fmt.Sprint(port)))
	if err != nil {
		return nil, fmt.Errorf("failed to listen for metrics: %w", err)
	}

	return &Server{
		httpServer: &http.Server{
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
		listener: listener,
	}, nil
}

// Addr is the bound address
func (s *Server) Addr() string {
	return s.listener.Addr().String()
}

// Start serves in the background
func (s *Server) Start() {
	go func() {
		_ = s.httpServer.Serve(s.listener)
	}()
}

// Shutdown stops accepting scrapes and waits for in-flight ones
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
