package response

// StatusCode represents HTTP status codes
type StatusCode int

const (
	StatusOK                 StatusCode = 200
	StatusBadRequest         StatusCode = 400
	StatusForbidden          StatusCode = 403
	StatusNotFound           StatusCode = 404
	StatusMethodNotAllowed   StatusCode = 405
	StatusServiceUnavailable StatusCode = 503
)

// statusText maps status codes to reason phrases
var statusText = map[StatusCode]string{
	StatusOK:                 "OK",
	StatusBadRequest:         "Bad Request",
	StatusForbidden:          "Forbidden",
	StatusNotFound:           "Not Found",
	StatusMethodNotAllowed:   "Method Not Allowed",
	StatusServiceUnavailable: "Service Unavailable",
}

// Outcome classifies a request into one of the fixed response categories.
type Outcome int

const (
	// OutcomeOK serves file content (GET) or just headers (HEAD).
	OutcomeOK Outcome = iota
	// OutcomeBadRequest is produced when the host header is missing,
	// before any method dispatch happens.
	OutcomeBadRequest
	// OutcomeForbidden is a directory hit with index serving disabled.
	OutcomeForbidden
	// OutcomeNotFound covers a missing file, a missing index file, and
	// any stat failure.
	OutcomeNotFound
	// OutcomeMethodNotAllowed is any method other than GET or HEAD.
	OutcomeMethodNotAllowed
	// OutcomeServiceUnavailable means the file exists but could not be
	// opened, typically descriptor exhaustion.
	OutcomeServiceUnavailable
)

// Status returns the status code for the outcome.
func (o Outcome) Status() StatusCode {
	switch o {
	case OutcomeOK:
		return StatusOK
	case OutcomeBadRequest:
		return StatusBadRequest
	case OutcomeForbidden:
		return StatusForbidden
	case OutcomeMethodNotAllowed:
		return StatusMethodNotAllowed
	case OutcomeServiceUnavailable:
		return StatusServiceUnavailable
	default:
		return StatusNotFound
	}
}

// Fixed HTML bodies for the non-200 outcomes. Clients depend on the
// exact bytes, so they stay as-is, typos included.
const (
	body400 = "<!doctype html><html><head><meta charset='utf-8'><title>400</title></head><body style='background-color:#9800cf;color:#fff;'>" +
		"<h1>400 - Bad Request</h1><hr style='border: 1px solid #fff; height: 0'></body></html>"
	body403 = "<!doctype html><html><head><meta charset='utf-8'><title>403</title></head><body style='background-color:#0098cf;color:#fff;'>" +
		"<h1>404 - Forbidden</h1><hr style='border: 1px solid #fff; height: 0'></body></html>"
	body404 = "<!doctype html><html><head><meta charset='utf-8'><title>404</title></head><body style='background-color:#0098cf;color:#fff;'>" +
		"<h1>404 - Page Not Found</h1><hr style='border: 1px solid #fff; height: 0'></body></html>"
	body405 = "<!doctype html><html><head><meta charset='utf-8'><title>405</title></head><body style='background-color:#0098cf;color:#fff;'>" +
		"<h1>405 - Method Not Allowed<h1><hr style='border: 1px solid #fff; height: 0'></body></html>"
	body503 = "<!doctype html><html><head><meta charset='utf-8'><title>503</title></head><body style='background-color:#cf9800;color:#fff;'>" +
		"<h1>503 - Service Unavailable</h1><hr style='border: 1px solid #fff; height: 0'></body></html>"
)

// Body returns the fixed HTML body for a non-200 outcome, or nil for
// OutcomeOK (file content is the body there).
func (o Outcome) Body() []byte {
	switch o {
	case OutcomeBadRequest:
		return []byte(body400)
	case OutcomeForbidden:
		return []byte(body403)
	case OutcomeNotFound:
		return []byte(body404)
	case OutcomeMethodNotAllowed:
		return []byte(body405)
	case OutcomeServiceUnavailable:
		return []byte(body503)
	default:
		return nil
	}
}
