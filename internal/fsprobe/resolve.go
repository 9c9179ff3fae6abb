package fsprobe

// Resolve combines the server root with a request URL to produce a
// candidate filesystem path. The concatenation is verbatim: no cleaning,
// no rejection of ".." segments. Escapes above the root are possible by
// design of the wire contract; the chroot option in cmd/httpserver is the
// layer meant to contain them.
func Resolve(root, url string) string {
	return root + "/" + url
}

// IndexPath appends the configured index filename to a directory path.
// Callers re-probe the result exactly once; the index file is never
// itself treated as a directory.
func IndexPath(dir, index string) string {
	return dir + "/" + index
}
