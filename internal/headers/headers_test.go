package headers

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteToPreservesOrder(t *testing.T) {
	h := New()
	h.Add("Date", "Tue, 15 Jan 2013 10:30:05 GMT")
	h.Add("Content-Length", "42")
	h.Add("Server", "Route5/1.0")

	var buf bytes.Buffer
	n, err := h.WriteTo(&buf)
	require.NoError(t, err)

	want := "Date: Tue, 15 Jan 2013 10:30:05 GMT\r\n" +
		"Content-Length: 42\r\n" +
		"Server: Route5/1.0\r\n" +
		"\r\n"
	assert.Equal(t, want, buf.String())
	assert.Equal(t, int64(len(want)), n)
}

func TestGetIsCaseInsensitive(t *testing.T) {
	h := New()
	h.Add("Content-Length", "7")

	val, ok := h.Get("content-length")
	assert.True(t, ok)
	assert.Equal(t, "7", val)

	_, ok = h.Get("date")
	assert.False(t, ok)
}

func TestGetReturnsFirstValue(t *testing.T) {
	h := New()
	h.Add("X-Thing", "a")
	h.Add("X-Thing", "b")

	val, ok := h.Get("x-thing")
	assert.True(t, ok)
	assert.Equal(t, "a", val)
	assert.Equal(t, 2, h.Len())
}

func TestEmptyBlockWritesBlankLineOnly(t *testing.T) {
	var buf bytes.Buffer
	_, err := New().WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, "\r\n", buf.String())
}
