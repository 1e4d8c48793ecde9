package nosvault

import "strings"

// Segments splits a request path on "/" and discards empty segments,
// so leading, trailing and doubled slashes do not count.
func Segments(path string) []string {
	parts := strings.Split(path, "/")
	segments := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			segments = append(segments, p)
		}
	}
	return segments
}

// OwnsNamespace reports whether pubkey owns the given request path.
//
// The namespace is flat: a path is owned iff it consists of exactly one
// non-empty segment and that segment equals pubkey (case-sensitive).
// Nested paths under a key's directory are never writable.
func OwnsNamespace(path, pubkey string) bool {
	segments := Segments(path)
	return len(segments) == 1 && segments[0] == pubkey
}
