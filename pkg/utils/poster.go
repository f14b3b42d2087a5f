package utils

import (
	"path"
	"strings"
)

// PosterURL is the public URL of a poster, e.g. "/posters/" + "matrix.jpg".
// Backslash separators from the legacy catalog are normalised.
func PosterURL(baseURL, ref string) string {
	if ref == "" {
		return ""
	}
	if baseURL == "" {
		baseURL = "/"
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return baseURL + strings.TrimPrefix(path.Clean("/"+normalisePosterRef(ref)), "/")
}

func normalisePosterRef(ref string) string {
	return strings.ReplaceAll(ref, `\`, "/")
}
