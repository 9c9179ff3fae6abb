package server

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/nareshv/http-server/internal/httpdate"
)

// Logger interface for structured logging
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
}

// Field represents a structured log field
type Field struct {
	Key   string
	Value interface{}
}

// DefaultLogger writes leveled diagnostics to stderr.
type DefaultLogger struct {
	logger *log.Logger
}

// NewDefaultLogger creates a logger backed by stderr.
func NewDefaultLogger() *DefaultLogger {
	return &DefaultLogger{logger: log.New(os.Stderr, "", 0)}
}

func (l *DefaultLogger) Debug(msg string, fields ...Field) {
	l.log("debug", msg, fields...)
}

func (l *DefaultLogger) Info(msg string, fields ...Field) {
	l.log("info", msg, fields...)
}

func (l *DefaultLogger) Error(msg string, fields ...Field) {
	l.log("error", msg, fields...)
}

func (l *DefaultLogger) Warn(msg string, fields ...Field) {
	l.log("warn", msg, fields...)
}

func (l *DefaultLogger) log(level, msg string, fields ...Field) {
	output := fmt.Sprintf("[%s] %s", level, msg)

	if len(fields) > 0 {
		output += " |"
		for _, f := range fields {
			output += fmt.Sprintf(" %s=%v", f.Key, f.Value)
		}
	}

	if l.logger == nil {
		l.logger = log.New(os.Stderr, "", 0)
	}

	l.logger.Println(output)
}

// NullLogger discards all logs (for testing)
type NullLogger struct{}

func (n *NullLogger) Debug(msg string, fields ...Field) {}
func (n *NullLogger) Info(msg string, fields ...Field)  {}
func (n *NullLogger) Error(msg string, fields ...Field) {}
func (n *NullLogger) Warn(msg string, fields ...Field)  {}

// AccessLog is the per-request sink. Exactly one line is recorded per
// handled request:
//
//	[<HTTP-date, UTC>] <protocol> <method> <url> <bytesSent>
type AccessLog struct {
	logger *log.Logger
}

// NewAccessLog creates an access log writing to w.
func NewAccessLog(w io.Writer) *AccessLog {
	return &AccessLog{logger: log.New(w, "", 0)}
}

// Record emits one access-log line.
func (a *AccessLog) Record(proto, method, url string, bytesSent int64) {
	a.logger.Printf("[%s] %s %s %s %d", httpdate.Format(time.Now()), proto, method, url, bytesSent)
}
