package nosvault

import "path/filepath"

// contentTypes is the closed extension table served on reads. Anything
// outside it is an opaque byte payload.
var contentTypes = map[string]string{
	".txt":  "text/plain",
	".html": "text/html",
	".json": "application/json",
}

// ContentTypeFor returns the content type served for a stored path,
// derived solely from its extension.
func ContentTypeFor(path string) string {
	if ct, ok := contentTypes[filepath.Ext(path)]; ok {
		return ct
	}
	return "application/octet-stream"
}
