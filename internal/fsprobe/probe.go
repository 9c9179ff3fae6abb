// Package fsprobe answers one question per request: what is at this path?
package fsprobe

import (
	"os"
	"time"
)

// Kind classifies a probed path.
type Kind int

const (
	// NotFound covers missing paths, permission errors and anything that
	// is neither a regular file nor a directory. The client never learns
	// which of those it was.
	NotFound Kind = iota
	RegularFile
	Directory
)

// Result is the outcome of a single metadata lookup. It is created fresh
// per request and never cached.
type Result struct {
	Kind    Kind
	Size    int64
	ModTime time.Time
}

// Probe performs one lstat-style lookup on path. Symlinks are not
// followed, so a symlink probes as NotFound.
func Probe(path string) Result {
	info, err := os.Lstat(path)
	if err != nil {
		return Result{Kind: NotFound}
	}
	switch {
	case info.Mode().IsRegular():
		return Result{Kind: RegularFile, Size: info.Size(), ModTime: info.ModTime()}
	case info.IsDir():
		return Result{Kind: Directory}
	default:
		return Result{Kind: NotFound}
	}
}
