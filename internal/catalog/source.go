package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/spf13/afero"

	"github.com/techstore/storefront/internal/config"
	"github.com/techstore/storefront/internal/models"
)

// Source fetches the full product list from wherever the catalog document
// lives. Implementations perform a single fetch per call; caching is the
// accessor's job.
type Source interface {
	Fetch(ctx context.Context) ([]models.Product, error)
}

// catalogDocument matches the products.json document shape.
type catalogDocument struct {
	Products []models.Product `json:"products"`
}

// NewSource creates a catalog source based on configuration.
func NewSource(cfg *config.CatalogConfig, fs afero.Fs) (Source, error) {
	switch cfg.Source {
	case "file":
		return NewFileSource(fs, cfg.Path), nil
	case "http":
		return NewHTTPSource(cfg.URL), nil
	default:
		return nil, fmt.Errorf("unsupported catalog source: %s", cfg.Source)
	}
}

// FileSource reads the catalog document from the local filesystem.
type FileSource struct {
	fs   afero.Fs
	path string
}

func NewFileSource(fs afero.Fs, path string) *FileSource {
	return &FileSource{fs: fs, path: path}
}

func (s *FileSource) Fetch(ctx context.Context) ([]models.Product, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var doc catalogDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}
	return doc.Products, nil
}

// HTTPSource fetches the catalog document over HTTP.
type HTTPSource struct {
	url    string
	client *http.Client
}

func NewHTTPSource(url string) *HTTPSource {
	return &HTTPSource{
		url: url,
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

func (s *HTTPSource) Fetch(ctx context.Context) ([]models.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("catalog fetch error %d: %s", resp.StatusCode, string(body))
	}

	var doc catalogDocument
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	return doc.Products, nil
}

// Compile-time interface checks
var (
	_ Source = (*FileSource)(nil)
	_ Source = (*HTTPSource)(nil)
)
