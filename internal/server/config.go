package server

import (
	"errors"
	"fmt"
	"time"

	"github.com/nareshv/http-server/internal/fsprobe"
)

// Config carries everything the server needs to run. It is built once at
// startup, validated, and never mutated afterwards; workers only read it.
type Config struct {
	Port       uint16
	Root       string // webroot directory, no trailing slash required
	IndexFile  string // served when a URL resolves to a directory
	ServeIndex bool   // directory hits are 403 when false
	ServerName string // Server header value

	// Per-connection deadlines. Zero means no deadline, matching the
	// original behavior; a stalled client then blocks its worker.
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// DefaultConfig returns the stock configuration, minus the required
// webroot.
func DefaultConfig() Config {
	return Config{
		Port:       8080,
		IndexFile:  "index.html",
		ServeIndex: true,
		ServerName: "Route5/1.0",
	}
}

// Validate checks the parts of the configuration the core trusts as
// pre-validated: the webroot must be an existing directory and the
// identification strings must be non-empty.
func (c Config) Validate() error {
	if c.Root == "" {
		return errors.New("webroot is required")
	}
	if fsprobe.Probe(c.Root).Kind != fsprobe.Directory {
		return fmt.Errorf("webroot %q is not a directory", c.Root)
	}
	if c.IndexFile == "" {
		return errors.New("index filename is required")
	}
	if c.ServerName == "" {
		return errors.New("server name is required")
	}
	return nil
}
