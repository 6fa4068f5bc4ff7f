package images

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	errx "github.com/ReganLema/M-CONNECT-sub001/internal/core/error"
)

// SearchProvider looks up imagery for all canonical categories in one
// best-effort batch. It returns a possibly-partial mapping or fails as a
// unit; it never powers anything critical, so implementations are free to
// be slow or flaky and the engine will degrade around them.
type SearchProvider interface {
	CategoryImages(ctx context.Context) (map[Category]string, error)
}

// NoopProvider always reports the remote source as unavailable. It is the
// default when no image-search integration is configured.
type NoopProvider struct{}

func (NoopProvider) CategoryImages(ctx context.Context) (map[Category]string, error) {
	return nil, errx.New(nil, errx.KindRemoteImageProvider, "no image provider configured")
}

// HTTPProviderConfig configures the image-search integration.
type HTTPProviderConfig struct {
	// BaseURL of the image-search API.
	BaseURL string `envconfig:"IMAGE_SEARCH_BASE_URL" default:"https://pixabay.com/api/"`
	// APIKey; the provider stays disabled without one.
	APIKey string `envconfig:"IMAGE_SEARCH_API_KEY"`
	// TimeoutSeconds bounds the provider's own HTTP client.
	TimeoutSeconds int `envconfig:"IMAGE_SEARCH_TIMEOUT_SECONDS" default:"8"`
}

// Enabled reports whether the config is complete enough to build a provider.
func (c HTTPProviderConfig) Enabled() bool {
	return c.APIKey != ""
}

// HTTPProvider queries a keyword image-search API once per canonical
// category. Any request failure fails the whole batch; missing results for
// individual categories just leave those keys out of the map.
type HTTPProvider struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewHTTPProvider(cfg HTTPProviderConfig) *HTTPProvider {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 8 * time.Second
	}
	return &HTTPProvider{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (p *HTTPProvider) CategoryImages(ctx context.Context) (map[Category]string, error) {
	results := make(map[Category]string, len(CanonicalCategories))

	for _, cat := range CanonicalCategories {
		imageURL, err := p.search(ctx, string(cat)+" farm")
		if err != nil {
			return nil, errx.New(err, errx.KindRemoteImageProvider, "image search failed")
		}
		if imageURL != "" {
			results[cat] = imageURL
		}
	}

	return results, nil
}

func (p *HTTPProvider) search(ctx context.Context, query string) (string, error) {
	params := url.Values{}
	params.Set("key", p.apiKey)
	params.Set("q", query)
	params.Set("image_type", "photo")
	params.Set("per_page", "3")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("image search returned status %d", resp.StatusCode)
	}

	var payload struct {
		Hits []struct {
			WebformatURL string `json:"webformatURL"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decode image search response: %w", err)
	}

	if len(payload.Hits) == 0 {
		return "", nil
	}
	return payload.Hits[0].WebformatURL, nil
}

var (
	_ SearchProvider = NoopProvider{}
	_ SearchProvider = (*HTTPProvider)(nil)
)
