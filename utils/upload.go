// utils/upload.go
package utils

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// UploadDir resolves the blob-storage root, creating it on first use.
// Subdir separates service photos from guest uploads.
func UploadDir(subdir string) (string, error) {
	root := os.Getenv("UPLOAD_DIR")
	if root == "" {
		root = "uploads"
	}
	dir := filepath.Join(root, subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

// UniqueFilename keeps the original extension but replaces the name, so
// two guests uploading "IMG_0001.jpg" never collide.
func UniqueFilename(original string) string {
	return uuid.NewString() + filepath.Ext(original)
}
