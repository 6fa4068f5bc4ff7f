package credentials

import "context"

// Source is one strategy in the token priority chain. An empty token with a
// nil error means the source had nothing to offer.
type Source interface {
	Name() string
	Token(ctx context.Context) (string, error)
}

// KeySource reads a single storage key from a Store.
type KeySource struct {
	store Store
	key   string
}

func NewKeySource(store Store, key string) *KeySource {
	return &KeySource{store: store, key: key}
}

func (s *KeySource) Name() string {
	return "key:" + s.key
}

func (s *KeySource) Token(ctx context.Context) (string, error) {
	return s.store.Get(ctx, s.key)
}

// StaticSource carries a fixed token. Configured in development builds so
// the data layer can run against a backend without a full login flow.
type StaticSource struct {
	token string
}

func NewStaticSource(token string) *StaticSource {
	return &StaticSource{token: token}
}

func (s *StaticSource) Name() string {
	return "static"
}

func (s *StaticSource) Token(ctx context.Context) (string, error) {
	return s.token, nil
}

// KeySources builds one KeySource per key, preserving order.
func KeySources(store Store, keys ...string) []Source {
	sources := make([]Source, 0, len(keys))
	for _, k := range keys {
		sources = append(sources, NewKeySource(store, k))
	}
	return sources
}

var (
	_ Source = (*KeySource)(nil)
	_ Source = (*StaticSource)(nil)
)
