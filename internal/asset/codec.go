// Package asset converts locally selected binary files into the
// transport-safe text encoding the backend stores, and back into
// displayable references.
package asset

import (
	"encoding/base64"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"

	"github.com/jolidon/olyst/internal/models"
)

// EncodeFile reads the file at path once and returns its encoded payload
// together with the name and mime type the backend needs to serve it back.
// The read is single-shot: it either fully succeeds or fails.
func EncodeFile(path string) (*models.FileAsset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return &models.FileAsset{
		Data:     base64.StdEncoding.EncodeToString(data),
		Name:     filepath.Base(path),
		MimeType: detectMimeType(path, data),
	}, nil
}

// EncodeImage reads an image file and returns only the encoded payload.
// Name and mime type are not captured: the image is displayed inline.
func EncodeImage(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// Decode reverses the transport encoding back into raw bytes.
func Decode(encoded string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(encoded)
}

// DataURI builds a displayable data reference for an encoded payload.
// Pure string composition; it never fails for well-formed input.
func DataURI(encoded, mimeType string) string {
	return fmt.Sprintf("data:%s;base64,%s", mimeType, encoded)
}

// detectMimeType resolves the mime type from the file extension, falling
// back to content sniffing for unknown extensions.
func detectMimeType(path string, data []byte) string {
	if t := mime.TypeByExtension(filepath.Ext(path)); t != "" {
		return t
	}
	return http.DetectContentType(data)
}
