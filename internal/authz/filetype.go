package authz

import (
	"path/filepath"
	"strings"
)

// File types decide the storage sub-bucket and are persisted on the record.
const (
	FileTypeImage    = "image"
	FileTypeDocument = "document"
)

var imageExts = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true,
}

var documentExts = map[string]bool{
	".pdf": true, ".txt": true, ".ppt": true, ".pptx": true,
	".doc": true, ".docx": true, ".xls": true,
}

// ClassifyFile routes by the declared content type: image/* content types
// must carry an image extension, everything else a document extension. A
// mismatch fails with ErrUnsupportedFile.
func ClassifyFile(contentType, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if strings.HasPrefix(contentType, "image/") {
		if !imageExts[ext] {
			return "", ErrUnsupportedFile
		}
		return FileTypeImage, nil
	}
	if !documentExts[ext] {
		return "", ErrUnsupportedFile
	}
	return FileTypeDocument, nil
}
