// Package headers holds an ordered response header block.
//
// Order matters on the wire (Date before Server for 200s, and so on), so
// this is a field list rather than a map.
package headers

import (
	"io"
	"strings"
)

// Field is a single header name/value pair.
type Field struct {
	Name  string
	Value string
}

// Headers is an ordered sequence of header fields.
type Headers struct {
	fields []Field
}

// New returns an empty header block.
func New() *Headers {
	return &Headers{}
}

// Add appends a field, preserving insertion order.
func (h *Headers) Add(name, value string) {
	h.fields = append(h.fields, Field{Name: name, Value: value})
}

// Get returns the first value for name (case-insensitive).
func (h *Headers) Get(name string) (string, bool) {
	for _, f := range h.fields {
		if strings.EqualFold(f.Name, name) {
			return f.Value, true
		}
	}
	return "", false
}

// Fields returns the fields in insertion order.
func (h *Headers) Fields() []Field {
	return h.fields
}

// Len returns the number of fields.
func (h *Headers) Len() int {
	return len(h.fields)
}

// WriteTo serializes the block as "Name: value\r\n" lines followed by the
// blank line that terminates the header section.
func (h *Headers) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, f := range h.fields {
		n, err := io.WriteString(w, f.Name+": "+f.Value+"\r\n")
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	n, err := io.WriteString(w, "\r\n")
	total += int64(n)
	return total, err
}
