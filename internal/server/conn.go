package server

import (
	"errors"
	"net"
	"time"

	"github.com/nareshv/http-server/internal/fsprobe"
	"github.com/nareshv/http-server/internal/request"
	"github.com/nareshv/http-server/internal/response"
)

// serveConn runs one connection end-to-end: read, dispatch, respond,
// log, close. Every exit path releases the connection via the deferred
// Close; opened files are scoped to transferFile.
func (s *Server) serveConn(conn net.Conn) {
	defer conn.Close()

	start := time.Now()
	s.metrics.ConnOpened()
	defer s.metrics.ConnClosed()

	if s.cfg.ReadTimeout > 0 {
		conn.SetReadDeadline(time.Now().Add(s.cfg.ReadTimeout))
	}

	req, err := request.Parse(conn)
	if err != nil && !errors.Is(err, request.ErrMissingHost) {
		// Read failed; there is nobody to answer.
		s.logger.Debug("request read failed", Field{"error", err})
		return
	}

	if s.cfg.WriteTimeout > 0 {
		conn.SetWriteDeadline(time.Now().Add(s.cfg.WriteTimeout))
	}

	var sent int64
	var status response.StatusCode

	switch {
	case err != nil:
		// Missing host header rejects the request before any method
		// dispatch; virtual hosting requires it.
		s.writeError(conn, response.OutcomeBadRequest)
		sent = int64(len(response.OutcomeBadRequest.Body()))
		status = response.StatusBadRequest

	case req.Method == "GET" || req.Method == "HEAD":
		path := fsprobe.Resolve(s.cfg.Root, req.Target)
		var outcome response.Outcome
		sent, outcome = s.transferFile(conn, path, req.Method == "GET")
		status = outcome.Status()

	default:
		// Only GET and HEAD are supported; no filesystem lookup happens
		// for anything else.
		s.writeError(conn, response.OutcomeMethodNotAllowed)
		sent = int64(len(response.OutcomeMethodNotAllowed.Body()))
		status = response.StatusMethodNotAllowed
	}

	s.access.Record(req.Proto, req.Method, req.Target, sent)
	s.metrics.RecordRequest(status, time.Since(start))
}
