package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/vfg2006/castnavi-api/pkg/utils"
)

//go:generate mockgen -source=storage.go -destination=mocks/storage.go -package=mocks

// CastImagesPrefix é o prefixo de todas as imagens de cast no bucket
const CastImagesPrefix = "casts/"

// newCastFolder é usado quando a imagem é enviada antes da cast existir
const newCastFolder = "new"

type ObjectInfo struct {
	Key          string
	LastModified time.Time
	Size         int64
}

type ImageStore interface {
	// Upload grava o objeto e retorna a URL pública
	Upload(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error)
	// ResolveURL converte a URL gravada na URL entregue ao cliente
	ResolveURL(ctx context.Context, storedURL string) (string, error)
	Delete(ctx context.Context, key string) error
	List(ctx context.Context, prefix string) ([]ObjectInfo, error)
}

// CastImageKey monta a chave "casts/{castID}/{id}{ext}"
func CastImageKey(castID, filename string) (string, error) {
	folder := strings.TrimSpace(castID)
	if folder == "" {
		folder = newCastFolder
	}

	id, err := utils.GenerateID()
	if err != nil {
		return "", fmt.Errorf("erro ao gerar id da imagem: %w", err)
	}

	return fmt.Sprintf("%s%s/%s%s", CastImagesPrefix, folder, id, strings.ToLower(filepath.Ext(filename))), nil
}

// KeyFromURL extrai a chave do objeto do caminho de uma URL gravada. O host é
// ignorado, então URLs do bucket, de endpoint path-style ou de CDN levam à
// mesma chave. A chave começa no último segmento "casts" do caminho.
func KeyFromURL(rawURL string) (string, bool) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return "", false
	}

	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	folder := strings.TrimSuffix(CastImagesPrefix, "/")

	for i := len(segments) - 2; i >= 0; i-- {
		if segments[i] != folder {
			continue
		}

		rest := segments[i+1:]
		if slices.Contains(rest, "") {
			return "", false
		}

		return CastImagesPrefix + strings.Join(rest, "/"), true
	}

	return "", false
}

// ReferencesCastImage indica se a URL aponta para a pasta de imagens de cast
func ReferencesCastImage(rawURL string) bool {
	return strings.Contains(rawURL, "/"+CastImagesPrefix)
}
