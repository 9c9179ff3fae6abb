// Package server owns the listening socket and the per-connection
// request pipeline of a static file server.
package server

import (
	"fmt"
	"io"
	"net"
	"os"
	"sync/atomic"
)

// Server serves files from a configured webroot, one goroutine per
// accepted connection.
type Server struct {
	cfg      Config
	listener net.Listener
	closed   atomic.Bool
	logger   Logger
	access   *AccessLog
	metrics  *Metrics
}

// New binds the configured port and returns a server that is not yet
// accepting. The split from Serve lets the caller drop privileges or
// chroot between bind and accept.
func New(cfg Config, logger Logger) (*Server, error) {
	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Port))
	if err != nil {
		return nil, fmt.Errorf("listen on port %d: %w", cfg.Port, err)
	}

	return &Server{
		cfg:      cfg,
		listener: listener,
		logger:   logger,
		access:   NewAccessLog(os.Stderr),
		metrics:  NewMetrics(),
	}, nil
}

// Serve starts the accept loop in its own goroutine and returns.
func (s *Server) Serve() {
	s.logger.Info("listening", Field{"addr", s.listener.Addr().String()})
	go s.acceptLoop()
}

func (s *Server) acceptLoop() {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if s.closed.Load() {
				return
			}
			s.logger.Error("accept failed", Field{"error", err})
			continue
		}

		// Each connection gets an independent goroutine; the loop goes
		// straight back to Accept and never waits on a worker.
		go s.serveConn(conn)
	}
}

// Addr returns the bound listener address, useful when Port was 0.
func (s *Server) Addr() net.Addr {
	return s.listener.Addr()
}

// Metrics exposes the server's runtime counters.
func (s *Server) Metrics() *Metrics {
	return s.metrics
}

// SetAccessLog redirects the per-request log lines, default stderr.
func (s *Server) SetAccessLog(w io.Writer) {
	s.access = NewAccessLog(w)
}

// Close stops accepting and closes the listener. In-flight connections
// finish on their own goroutines.
func (s *Server) Close() error {
	s.closed.Store(true)
	return s.listener.Close()
}
