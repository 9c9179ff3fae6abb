package response

import (
	"io"
	"strconv"
	"time"

	"github.com/nareshv/http-server/internal/headers"
	"github.com/nareshv/http-server/internal/httpdate"
)

// OKHeaders builds the header block for a 200 response: Date,
// Last-Modified, Content-Length and Server, in that order.
func OKHeaders(now, modTime time.Time, size int64, serverName string) *headers.Headers {
	h := headers.New()
	h.Add("Date", httpdate.Format(now))
	h.Add("Last-Modified", httpdate.Format(modTime))
	h.Add("Content-Length", strconv.FormatInt(size, 10))
	h.Add("Server", serverName)
	return h
}

// ErrorHeaders builds the header block shared by every non-200 outcome:
// Connection: close and Server. No Date, no Content-Length.
func ErrorHeaders(serverName string) *headers.Headers {
	h := headers.New()
	h.Add("Connection", "close")
	h.Add("Server", serverName)
	return h
}

// WriteError emits a complete non-200 response for the outcome: status
// line, error headers and the fixed HTML body. The body is written even
// for HEAD requests.
func WriteError(w io.Writer, o Outcome, serverName string) error {
	rw := NewWriter(w)
	if err := rw.WriteStatusLine(o.Status()); err != nil {
		return err
	}
	if err := rw.WriteHeaders(ErrorHeaders(serverName)); err != nil {
		return err
	}
	_, err := rw.WriteBody(o.Body())
	return err
}
