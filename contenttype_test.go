package nosvault_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"nosvault"
)

func TestContentTypeFor(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"notes.txt", "text/plain"},
		{"index.html", "text/html"},
		{"data.json", "application/json"},
		{"abc123/data.json", "application/json"},
		{"image.png", "application/octet-stream"},
		{"noextension", "application/octet-stream"},
		{"archive.tar.gz", "application/octet-stream"},
		{"UPPER.JSON", "application/octet-stream"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, nosvault.ContentTypeFor(tt.path))
		})
	}
}
