package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyFile(t *testing.T) {
	cases := []struct {
		contentType string
		filename    string
		want        string
	}{
		{"image/jpeg", "poster.jpg", FileTypeImage},
		{"image/jpeg", "poster.JPEG", FileTypeImage},
		{"image/png", "still.png", FileTypeImage},
		{"application/pdf", "script.pdf", FileTypeDocument},
		{"text/plain", "notes.txt", FileTypeDocument},
		{"application/vnd.ms-excel", "budget.xls", FileTypeDocument},
		{"application/octet-stream", "deck.pptx", FileTypeDocument},
	}
	for _, tc := range cases {
		got, err := ClassifyFile(tc.contentType, tc.filename)
		require.NoError(t, err, "%s %s", tc.contentType, tc.filename)
		assert.Equal(t, tc.want, got)
	}
}

func TestClassifyFileUnsupported(t *testing.T) {
	cases := []struct {
		contentType string
		filename    string
	}{
		// image content type routes to the image allow-list regardless of
		// whether the extension is a valid document one
		{"image/bmp", "photo.bmp"},
		{"image/jpeg", "script.pdf"},
		{"application/octet-stream", "tool.exe"},
		{"text/plain", "archive.zip"},
		{"application/pdf", "noextension"},
	}
	for _, tc := range cases {
		_, err := ClassifyFile(tc.contentType, tc.filename)
		assert.ErrorIs(t, err, ErrUnsupportedFile, "%s %s", tc.contentType, tc.filename)
	}
}
