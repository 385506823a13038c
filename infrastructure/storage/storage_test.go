package storage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCastImageKey(t *testing.T) {
	tests := []struct {
		name           string
		castID         string
		filename       string
		expectedPrefix string
		expectedExt    string
	}{
		{
			name:           "Cast existente",
			castID:         "c1",
			filename:       "foto.JPG",
			expectedPrefix: "casts/c1/",
			expectedExt:    ".jpg",
		},
		{
			name:           "Cast ainda não criada",
			castID:         "",
			filename:       "perfil.png",
			expectedPrefix: "casts/new/",
			expectedExt:    ".png",
		},
		{
			name:           "Arquivo sem extensão",
			castID:         "c2",
			filename:       "imagem",
			expectedPrefix: "casts/c2/",
			expectedExt:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := CastImageKey(tt.castID, tt.filename)
			require.NoError(t, err)

			assert.True(t, strings.HasPrefix(key, tt.expectedPrefix), key)
			assert.True(t, strings.HasSuffix(key, tt.expectedExt), key)
			assert.Len(t, key, len(tt.expectedPrefix)+16+len(tt.expectedExt))
		})
	}
}

func TestKeyFromURL(t *testing.T) {
	base := "https://bucket.s3.ap-northeast-1.amazonaws.com"

	tests := []struct {
		name     string
		url      string
		expected string
		ok       bool
	}{
		{name: "URL do bucket", url: base + "/casts/c1/abc.jpg", expected: "casts/c1/abc.jpg", ok: true},
		{name: "Remove query string", url: base + "/casts/c1/abc.jpg?X-Amz-Signature=1", expected: "casts/c1/abc.jpg", ok: true},
		{name: "CDN com outro host", url: "https://cdn.example.com/casts/c1/abc.jpg", expected: "casts/c1/abc.jpg", ok: true},
		{name: "Endpoint path-style", url: "http://localhost:9000/castnavi/casts/new/abc.png", expected: "casts/new/abc.png", ok: true},
		{name: "Bucket chamado casts", url: "http://localhost:9000/casts/casts/c1/abc.png", expected: "casts/c1/abc.png", ok: true},
		{name: "Caminho codificado", url: base + "/casts/c1/foto%20perfil.jpg", expected: "casts/c1/foto perfil.jpg", ok: true},
		{name: "Imagem fora da pasta de casts", url: "https://cdn.example.com/avatar.jpg", ok: false},
		{name: "Somente a base", url: base + "/", ok: false},
		{name: "Somente a pasta", url: base + "/casts/", ok: false},
		{name: "URL inválida", url: "http://[::1", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, ok := KeyFromURL(tt.url)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, key)
		})
	}
}

func TestReferencesCastImage(t *testing.T) {
	assert.True(t, ReferencesCastImage("https://cdn.example.com/casts/c1/abc.jpg"))
	assert.True(t, ReferencesCastImage("https://cdn.example.com/casts/"))
	assert.False(t, ReferencesCastImage("https://cdn.example.com/avatar.jpg"))
}
