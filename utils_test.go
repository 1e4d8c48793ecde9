package nosvault_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"nosvault"
)

func TestIsValidRequestPath(t *testing.T) {
	tests := []struct {
		name string
		path string
		want bool
	}{
		{"simple file", "abc123", true},
		{"nested file", "abc123/notes.json", true},
		{"leading slash", "/abc123", true},
		{"empty", "", false},
		{"root", "/", false},
		{"dot segment", "abc/./def", false},
		{"dotdot traversal", "../etc/passwd", false},
		{"embedded dotdot", "abc/../def", false},
		{"backslash", `abc\def`, false},
		{"query char", "abc?x=1", false},
		{"fragment char", "abc#frag", false},
		{"tilde", "~root", false},
		{"null byte", "abc\x00def", false},
		{"control char", "abc\x01def", false},
		{"whitespace", "a b", false},
		{"invalid utf8", "abc\xff", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, nosvault.IsValidRequestPath(tt.path))
		})
	}
}
