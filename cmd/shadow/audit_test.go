package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadProof(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name     string
		file     string
		mimeType string
	}{
		{name: "png", file: "proof.png", mimeType: "image/png"},
		{name: "jpeg", file: "proof.jpg", mimeType: "image/jpeg"},
		{name: "webp", file: "proof.webp", mimeType: "image/webp"},
		{name: "unknown defaults to jpeg", file: "proof.bin", mimeType: "image/jpeg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.file)
			require.NoError(t, os.WriteFile(path, []byte{0x01, 0x02}, 0o644))

			proof, err := loadProof(path)
			require.NoError(t, err)
			require.NotNil(t, proof)
			assert.Equal(t, tt.mimeType, proof.MIMEType)
			assert.Equal(t, []byte{0x01, 0x02}, proof.Data)
		})
	}
}

func TestLoadProof_NoPath(t *testing.T) {
	proof, err := loadProof("")
	require.NoError(t, err)
	assert.Nil(t, proof)
}

func TestLoadProof_MissingFile(t *testing.T) {
	_, err := loadProof(filepath.Join(t.TempDir(), "missing.png"))
	assert.ErrorContains(t, err, "failed to read proof image")
}
