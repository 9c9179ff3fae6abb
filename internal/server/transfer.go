package server

import (
	"io"
	"os"
	"time"

	"github.com/nareshv/http-server/internal/fsprobe"
	"github.com/nareshv/http-server/internal/response"
)

// copyFailed is returned as the byte count when the body copy errors
// after the 200 headers already went out. The connection still closes
// normally; the value surfaces in the access log.
const copyFailed int64 = -1

// transferFile probes path and writes the matching response to w.
//
// Regular file: 200 headers, then the full content for GET (none for
// HEAD). Open failure: 503. Directory: one index-file fallback when
// enabled, else 403; a missing index is 404. Anything else: 404. Every
// non-200 branch writes its fixed HTML body, HEAD included.
//
// The returned count covers body bytes of a successful transfer only;
// error branches report 0. When w is a *net.TCPConn the copy goes
// through sendfile via io.Copy's ReadFrom path.
func (s *Server) transferFile(w io.Writer, path string, includeBody bool) (int64, response.Outcome) {
	probe := fsprobe.Probe(path)

	switch probe.Kind {
	case fsprobe.RegularFile:
		f, err := os.Open(path)
		if err != nil {
			// Likely descriptor exhaustion: the file exists but we
			// cannot serve it right now.
			s.writeError(w, response.OutcomeServiceUnavailable)
			return 0, response.OutcomeServiceUnavailable
		}
		defer f.Close()

		rw := response.NewWriter(w)
		if err := rw.WriteStatusLine(response.StatusOK); err != nil {
			return 0, response.OutcomeOK
		}
		hdrs := response.OKHeaders(time.Now(), probe.ModTime, probe.Size, s.cfg.ServerName)
		if err := rw.WriteHeaders(hdrs); err != nil {
			return 0, response.OutcomeOK
		}
		if !includeBody {
			return 0, response.OutcomeOK
		}

		sent, err := io.Copy(w, f)
		if err != nil {
			s.logger.Error("file copy failed", Field{"path", path}, Field{"error", err})
			return copyFailed, response.OutcomeOK
		}
		return sent, response.OutcomeOK

	case fsprobe.Directory:
		if !s.cfg.ServeIndex {
			s.writeError(w, response.OutcomeForbidden)
			return 0, response.OutcomeForbidden
		}
		index := fsprobe.IndexPath(path, s.cfg.IndexFile)
		if fsprobe.Probe(index).Kind == fsprobe.RegularFile {
			s.logger.Debug("serving index file", Field{"path", index})
			// One level only: the index path is a regular file here, so
			// the recursive call cannot hit the directory branch again.
			return s.transferFile(w, index, includeBody)
		}
		s.writeError(w, response.OutcomeNotFound)
		return 0, response.OutcomeNotFound

	default:
		s.writeError(w, response.OutcomeNotFound)
		return 0, response.OutcomeNotFound
	}
}

// writeError sends a complete non-200 response. Write failures are not
// actionable beyond closing the connection, which the caller always does.
func (s *Server) writeError(w io.Writer, o response.Outcome) {
	if err := response.WriteError(w, o, s.cfg.ServerName); err != nil {
		s.logger.Debug("error response write failed", Field{"status", int(o.Status())}, Field{"error", err})
	}
}
