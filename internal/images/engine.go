// Package images resolves category and product imagery through an ordered
// fallback chain: remote image-search provider, then the bundled static
// catalog, then a keyword heuristic, then a random generic image. The chain
// is fail-open end to end; no provider failure ever reaches a caller.
package images

import (
	"context"
	"math/rand"
	"strings"
	"time"

	logx "github.com/ReganLema/M-CONNECT-sub001/pkg/logger"
	"github.com/rs/zerolog"
)

type EngineConfig struct {
	// ProviderTimeoutSeconds bounds the remote step of a category load,
	// independent of whatever timeout the provider carries itself.
	ProviderTimeoutSeconds int `envconfig:"IMAGE_PROVIDER_TIMEOUT_SECONDS" default:"5"`
}

type Engine struct {
	provider SearchProvider
	timeout  time.Duration
	rng      *rand.Rand
	log      zerolog.Logger
}

// NewEngine builds an engine around the given provider. A nil provider
// means no remote integration is configured and the static catalog is used
// directly. A nil rng gets a time-seeded source; tests inject a fixed seed
// to pin the generic fallback selection.
func NewEngine(cfg EngineConfig, provider SearchProvider, rng *rand.Rand) *Engine {
	if provider == nil {
		provider = NoopProvider{}
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	timeout := time.Duration(cfg.ProviderTimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Engine{
		provider: provider,
		timeout:  timeout,
		rng:      rng,
		log:      logx.With("images"),
	}
}

// CategoryImages resolves an image for every canonical category. The remote
// provider is tried once under a bounded wait; its entries overlay the
// static catalog key by key, and the static value stands in wherever the
// remote set is partial or entirely absent. The result always covers all
// canonical categories.
func (e *Engine) CategoryImages(ctx context.Context) map[Category]string {
	merged := StaticCatalog()

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	remote, err := e.provider.CategoryImages(ctx)
	if err != nil {
		e.log.Warn().Err(err).Msg("remote image provider unavailable, using static catalog")
		return merged
	}

	for _, cat := range CanonicalCategories {
		if imageURL, ok := remote[cat]; ok && imageURL != "" {
			merged[cat] = imageURL
		}
	}
	return merged
}

// FallbackImageForCategory maps a free-text category label to an image.
// Matching is case-insensitive substring search over an ordered keyword
// table; the first match wins. Labels matching nothing get a uniformly
// random member of the generic pool, so repeated calls are deliberately not
// reproducible unless the engine's randomness source was pinned.
func (e *Engine) FallbackImageForCategory(label string) string {
	lowered := strings.ToLower(label)

	for _, rule := range keywordRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lowered, kw) {
				return staticCatalog[rule.category]
			}
		}
	}

	return GenericPool[e.rng.Intn(len(GenericPool))]
}
