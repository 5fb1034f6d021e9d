package storage

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"
)

// ObjectStorage issues signed upload URLs for campaign banners and resolves
// the public URL stored on the record. Only the URL is ever persisted; raw
// bytes go straight from the browser to the object store.
type ObjectStorage interface {
	SignUploadURL(ctx context.Context, assetPath string, contentType string, expiresAt time.Time) (string, error)
	PublicURL(assetPath string) string
}

// Signer is the default implementation against a CDN-fronted bucket.
// The signature format mirrors the hosted store's token query parameter.
type Signer struct {
	BaseURL   string
	UploadURL string
}

func NewSigner(baseURL string, uploadURL string) Signer {
	return Signer{
		BaseURL:   strings.TrimRight(baseURL, "/"),
		UploadURL: strings.TrimRight(uploadURL, "/"),
	}
}

func (s Signer) SignUploadURL(_ context.Context, assetPath string, contentType string, expiresAt time.Time) (string, error) {
	cleaned := path.Clean("/" + strings.TrimSpace(assetPath))
	if cleaned == "/" || strings.Contains(cleaned, "..") {
		return "", fmt.Errorf("invalid asset path %q", assetPath)
	}
	base := s.UploadURL
	if base == "" {
		base = "https://storage.clout.local/upload"
	}
	return fmt.Sprintf("%s%s?content_type=%s&expires=%d",
		base, cleaned, strings.TrimSpace(contentType), expiresAt.UTC().Unix()), nil
}

func (s Signer) PublicURL(assetPath string) string {
	cleaned := path.Clean("/" + strings.TrimSpace(assetPath))
	base := s.BaseURL
	if base == "" {
		base = "https://cdn.clout.local"
	}
	return base + cleaned
}
