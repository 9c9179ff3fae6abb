// Package response composes and writes HTTP/1.1 responses for the fixed
// set of outcomes this server produces.
package response

import (
	"fmt"
	"io"

	"github.com/nareshv/http-server/internal/headers"
)

// writerState tracks what's been written so far
type writerState int

const (
	stateStart writerState = iota
	stateStatusWritten
	stateHeadersWritten
	stateBodyWritten
)

// Writer writes an HTTP response to an io.Writer, enforcing the
// status line -> headers -> body write order.
type Writer struct {
	w     io.Writer
	state writerState
}

// NewWriter creates a new response writer
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		w:     w,
		state: stateStart,
	}
}

// WriteStatusLine writes the HTTP status line
func (w *Writer) WriteStatusLine(code StatusCode) error {
	if w.state != stateStart {
		return fmt.Errorf("status line already written")
	}

	reason, ok := statusText[code]
	if !ok {
		reason = "Unknown"
	}

	_, err := fmt.Fprintf(w.w, "HTTP/1.1 %d %s\r\n", code, reason)
	if err != nil {
		return err
	}

	w.state = stateStatusWritten
	return nil
}

// WriteHeaders writes the header block plus the terminating blank line.
func (w *Writer) WriteHeaders(h *headers.Headers) error {
	if w.state != stateStatusWritten {
		return fmt.Errorf("must write status line before headers")
	}

	if _, err := h.WriteTo(w.w); err != nil {
		return err
	}

	w.state = stateHeadersWritten
	return nil
}

// WriteBody writes the complete response body.
func (w *Writer) WriteBody(p []byte) (int, error) {
	if w.state != stateHeadersWritten {
		return 0, fmt.Errorf("must write status line and headers before body")
	}

	n, err := w.w.Write(p)
	if err != nil {
		return n, err
	}

	w.state = stateBodyWritten
	return n, nil
}
