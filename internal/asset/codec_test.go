package asset

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestEncodeFile_RoundTrip(t *testing.T) {
	original := []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	path := writeTempFile(t, "guide.pdf", original)

	fa, err := EncodeFile(path)
	require.NoError(t, err)
	assert.Equal(t, "guide.pdf", fa.Name)
	assert.Equal(t, "application/pdf", fa.MimeType)

	decoded, err := Decode(fa.Data)
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
}

func TestEncodeFile_UnknownExtensionSniffsContent(t *testing.T) {
	path := writeTempFile(t, "payload.weirdext", []byte("plain text content here"))

	fa, err := EncodeFile(path)
	require.NoError(t, err)
	assert.Contains(t, fa.MimeType, "text/plain")
}

func TestEncodeFile_MissingFile(t *testing.T) {
	_, err := EncodeFile(filepath.Join(t.TempDir(), "nope.bin"))
	require.Error(t, err)
}

func TestEncodeImage_PayloadOnly(t *testing.T) {
	data := []byte{0xFF, 0xD8, 0xFF, 0xE0}
	path := writeTempFile(t, "cover.jpg", data)

	encoded, err := EncodeImage(path)
	require.NoError(t, err)
	assert.Equal(t, base64.StdEncoding.EncodeToString(data), encoded)
}

func TestDataURI(t *testing.T) {
	assert.Equal(t, "data:image/jpeg;base64,QUJD", DataURI("QUJD", "image/jpeg"))
}
