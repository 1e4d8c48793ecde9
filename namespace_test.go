package nosvault_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"nosvault"
)

const testPubKey = "abc123abc123abc123abc123abc123abc123abc123abc123abc123abc123abcd"

func TestOwnsNamespace(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		pubkey string
		want   bool
	}{
		{"exact match", testPubKey, testPubKey, true},
		{"leading slash", "/" + testPubKey, testPubKey, true},
		{"trailing slash", testPubKey + "/", testPubKey, true},
		{"doubled slashes", "//" + testPubKey + "//", testPubKey, true},
		{"empty path", "", testPubKey, false},
		{"only slashes", "///", testPubKey, false},
		{"different key", "def456", testPubKey, false},
		{"case sensitive", "ABC123", "abc123", false},
		{"nested under own key", testPubKey + "/notes.json", testPubKey, false},
		{"own key as second segment", "files/" + testPubKey, testPubKey, false},
		{"prefix of key", testPubKey[:32], testPubKey, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, nosvault.OwnsNamespace(tt.path, tt.pubkey))
		})
	}
}

func TestSegments(t *testing.T) {
	tests := []struct {
		name string
		path string
		want []string
	}{
		{"empty", "", []string{}},
		{"single", "abc", []string{"abc"}},
		{"leading slash", "/abc", []string{"abc"}},
		{"nested", "/abc/def/x.txt", []string{"abc", "def", "x.txt"}},
		{"doubled slashes", "abc//def", []string{"abc", "def"}},
		{"only slashes", "//", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, nosvault.Segments(tt.path))
		})
	}
}
