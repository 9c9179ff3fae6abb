package server

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nareshv/http-server/internal/response"
)

func newBufferServer(cfg Config) *Server {
	return &Server{
		cfg:     cfg,
		logger:  &NullLogger{},
		access:  NewAccessLog(io.Discard),
		metrics: NewMetrics(),
	}
}

func splitResponse(t *testing.T, raw string) (head, body string) {
	t.Helper()
	parts := strings.SplitN(raw, "\r\n\r\n", 2)
	require.Len(t, parts, 2)
	return parts[0], parts[1]
}

func TestTransferRegularFile(t *testing.T) {
	dir := t.TempDir()
	content := "Hello, World!"
	path := filepath.Join(dir, "hello.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg := DefaultConfig()
	cfg.Root = dir
	s := newBufferServer(cfg)

	var buf bytes.Buffer
	sent, outcome := s.transferFile(&buf, path, true)

	assert.Equal(t, response.OutcomeOK, outcome)
	assert.Equal(t, int64(len(content)), sent)

	head, body := splitResponse(t, buf.String())
	assert.True(t, strings.HasPrefix(head, "HTTP/1.1 200 OK\r\n"))
	assert.Contains(t, head, "Content-Length: 13\r\n")
	assert.Contains(t, head, "Server: Route5/1.0")
	assert.Contains(t, head, "Date: ")
	assert.Contains(t, head, "Last-Modified: ")
	assert.Equal(t, content, body)
}

func TestTransferHEADOmitsBody(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hello.txt")
	require.NoError(t, os.WriteFile(path, []byte("Hello, World!"), 0o644))

	cfg := DefaultConfig()
	cfg.Root = dir
	s := newBufferServer(cfg)

	var buf bytes.Buffer
	sent, outcome := s.transferFile(&buf, path, false)

	assert.Equal(t, response.OutcomeOK, outcome)
	assert.Equal(t, int64(0), sent)

	head, body := splitResponse(t, buf.String())
	// Headers still advertise the real size.
	assert.Contains(t, head, "Content-Length: 13\r\n")
	assert.Empty(t, body)
}

func TestTransferEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.txt")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	cfg := DefaultConfig()
	cfg.Root = dir
	s := newBufferServer(cfg)

	var buf bytes.Buffer
	sent, outcome := s.transferFile(&buf, path, true)

	assert.Equal(t, response.OutcomeOK, outcome)
	assert.Equal(t, int64(0), sent)

	head, _ := splitResponse(t, buf.String())
	assert.Contains(t, head, "Content-Length: 0\r\n")
}

func TestTransferMissingFileIs404(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Root = t.TempDir()
	s := newBufferServer(cfg)

	var buf bytes.Buffer
	sent, outcome := s.transferFile(&buf, filepath.Join(cfg.Root, "nope"), true)

	assert.Equal(t, response.OutcomeNotFound, outcome)
	assert.Equal(t, int64(0), sent)
	assert.True(t, strings.HasPrefix(buf.String(), "HTTP/1.1 404 Not Found\r\n"))
}

func TestTransferErrorBodyWrittenForHEAD(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Root = t.TempDir()
	s := newBufferServer(cfg)

	var buf bytes.Buffer
	_, outcome := s.transferFile(&buf, filepath.Join(cfg.Root, "nope"), false)

	assert.Equal(t, response.OutcomeNotFound, outcome)
	// Error bodies are not suppressed for HEAD.
	_, body := splitResponse(t, buf.String())
	assert.Equal(t, string(response.OutcomeNotFound.Body()), body)
}

func TestTransferDirectoryServesIndex(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "docs")
	require.NoError(t, os.Mkdir(sub, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(sub, "index.html"), []byte("<h1>docs</h1>"), 0o644))

	cfg := DefaultConfig()
	cfg.Root = dir
	s := newBufferServer(cfg)

	var buf bytes.Buffer
	sent, outcome := s.transferFile(&buf, sub, true)

	assert.Equal(t, response.OutcomeOK, outcome)
	assert.Equal(t, int64(len("<h1>docs</h1>")), sent)

	_, body := splitResponse(t, buf.String())
	assert.Equal(t, "<h1>docs</h1>", body)
}

func TestTransferDirectoryMissingIndexIs404(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "docs")
	require.NoError(t, os.Mkdir(sub, 0o755))

	cfg := DefaultConfig()
	cfg.Root = dir
	s := newBufferServer(cfg)

	var buf bytes.Buffer
	_, outcome := s.transferFile(&buf, sub, true)

	assert.Equal(t, response.OutcomeNotFound, outcome)
	assert.True(t, strings.HasPrefix(buf.String(), "HTTP/1.1 404 Not Found\r\n"))
}

func TestTransferDirectoryIndexDisabledIs403(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "docs")
	require.NoError(t, os.Mkdir(sub, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(sub, "index.html"), []byte("ignored"), 0o644))

	cfg := DefaultConfig()
	cfg.Root = dir
	cfg.ServeIndex = false
	s := newBufferServer(cfg)

	var buf bytes.Buffer
	_, outcome := s.transferFile(&buf, sub, true)

	assert.Equal(t, response.OutcomeForbidden, outcome)
	assert.True(t, strings.HasPrefix(buf.String(), "HTTP/1.1 403 Forbidden\r\n"))
}

func TestTransferIndexThatIsADirectoryIs404(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "docs")
	require.NoError(t, os.MkdirAll(filepath.Join(sub, "index.html"), 0o755))

	cfg := DefaultConfig()
	cfg.Root = dir
	s := newBufferServer(cfg)

	// The index fallback re-probes exactly once and requires a regular
	// file; a directory named like the index does not recurse again.
	var buf bytes.Buffer
	_, outcome := s.transferFile(&buf, sub, true)

	assert.Equal(t, response.OutcomeNotFound, outcome)
}
