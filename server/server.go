package server

import (
	"context"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

const shutdownTimeout = 3 * time.Second

// Server serves the spectator API and runs the hub
type Server struct {
	hub  *Hub
	http *http.Server
}

// New creates a server for addr. Nothing runs until Start.
func New(addr string, hub *Hub, cfg RouterConfig) *Server {
	cfg.Hub = hub
	return &Server{
		hub: hub,
		http: &http.Server{
			Addr:              addr,
			Handler:           NewRouter(cfg),
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// Start listens on the configured address and serves until ctx is done.
// It returns once the listener is bound; the bound address is returned.
func (s *Server) Start(ctx context.Context) (net.Addr, error) {
	ln, err := net.Listen("tcp", s.http.Addr)
	if err != nil {
		return nil, errors.Wrapf(err, "listen on %s", s.http.Addr)
	}

	go s.hub.Run(ctx)

	go func() {
		if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("server: serve: %v", err)
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.http.Shutdown(shutdownCtx); err != nil {
			log.Printf("server: shutdown: %v", err)
		}
	}()

	log.Printf("server: spectator API listening on %s", ln.Addr())
	return ln.Addr(), nil
}
