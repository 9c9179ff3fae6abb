// Package request turns the first read off a connection into the tokens
// this server cares about: method, URL, protocol version and host.
package request

import (
	"bytes"
	"errors"
	"io"
)

// MaxHeaderLen bounds the single read that covers the request line and
// headers. Requests whose headers exceed it (huge cookies), or that
// arrive split across segments before the first read returns, are parsed
// from whatever landed in the buffer.
const MaxHeaderLen = 4096

// ErrMissingHost reports that no host header was found anywhere in the
// read buffer. The caller answers 400 without dispatching on the method.
var ErrMissingHost = errors.New("missing host header")

var hostMarker = []byte("host:")

// Request holds the parsed tokens of one HTTP request.
type Request struct {
	Method string
	Target string // raw URL; a query component stays attached
	Proto  string
	Host   string
}

// Parse performs exactly one bounded read from r and extracts the
// request tokens. It never loops to fill the buffer.
//
// A read error is returned as-is; the connection is closed without a
// response. A buffer with no case-insensitive "host:" token returns the
// partially parsed request together with ErrMissingHost.
func Parse(r io.Reader) (*Request, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	n, err := r.Read(buf)
	if err != nil && n == 0 {
		return nil, err
	}
	data := buf[:n]

	req := &Request{}
	var pos int
	req.Method, pos = nextToken(data, 0)
	req.Target, pos = nextToken(data, pos)
	req.Proto, _ = nextToken(data, pos)

	hostIdx := bytes.Index(bytes.ToLower(data), hostMarker)
	if hostIdx == -1 {
		return req, ErrMissingHost
	}
	req.Host, _ = nextToken(data, hostIdx+len(hostMarker))

	return req, nil
}

// nextToken skips whitespace from pos and returns the following run of
// non-whitespace bytes plus the position just past it.
func nextToken(data []byte, pos int) (string, int) {
	for pos < len(data) && isSpace(data[pos]) {
		pos++
	}
	start := pos
	for pos < len(data) && !isSpace(data[pos]) {
		pos++
	}
	return string(data[start:pos]), pos
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\n', '\v', '\f':
		return true
	}
	return false
}
