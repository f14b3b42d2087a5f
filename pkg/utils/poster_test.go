package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPosterURL(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		ref     string
		want    string
	}{
		{"plain file", "/posters/", "matrix.jpg", "/posters/matrix.jpg"},
		{"base without slash", "/posters", "matrix.jpg", "/posters/matrix.jpg"},
		{"backslash separators", "/posters/", `classics\casablanca.jpg`, "/posters/classics/casablanca.jpg"},
		{"parent segments stay inside base", "/posters/", "../secret.jpg", "/posters/secret.jpg"},
		{"absolute base", "https://cdn.example.com/p", "a.png", "https://cdn.example.com/p/a.png"},
		{"empty base", "", "a.png", "/a.png"},
		{"empty ref", "/posters/", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PosterURL(tt.baseURL, tt.ref))
		})
	}
}
