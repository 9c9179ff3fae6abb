// Package urlutil splits a request URL into its path and query string.
//
// The serving path deliberately does not use it: files are resolved from
// the raw URL, query component and all. It exists for callers that need
// the split, such as future CGI-style handlers.
package urlutil

import "strings"

// Split separates url at the first '?'. A trailing '?' yields an empty
// query; no '?' yields the whole url as path and an empty query.
func Split(url string) (path, query string) {
	if idx := strings.IndexByte(url, '?'); idx != -1 {
		return url[:idx], url[idx+1:]
	}
	return url, ""
}
