package nosvault

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsValidRequestPath validates that a path string is safe to hand to
// storage. It checks that the path:
//   - is not empty after discarding empty segments
//   - does not contain ".." (path traversal) or "." segments
//   - does not contain invalid characters: \ ? # ~
//   - is valid UTF-8
//   - does not contain null bytes, control characters, or whitespace
//
// The storage sandbox enforces containment independently; this check
// exists so hostile paths are rejected before any disk access.
func IsValidRequestPath(p string) bool {
	segments := Segments(p)
	if len(segments) == 0 {
		return false
	}

	for _, s := range segments {
		if s == "." || s == ".." {
			return false
		}
	}

	if strings.Contains(p, "..") {
		return false
	}

	if strings.ContainsAny(p, `\?#~`) {
		return false
	}

	if !utf8.ValidString(p) {
		return false
	}

	for _, r := range p {
		if r == '/' {
			continue
		}
		if r == 0 || r < 0x20 || r == 0x7f || unicode.IsSpace(r) {
			return false
		}
	}

	return true
}
