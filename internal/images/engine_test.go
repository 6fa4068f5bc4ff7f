package images

import (
	"context"
	"errors"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// fakeProvider returns a canned batch result.
type fakeProvider struct {
	result map[Category]string
	err    error
	delay  time.Duration
}

func (f fakeProvider) CategoryImages(ctx context.Context) (map[Category]string, error) {
	if f.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(f.delay):
		}
	}
	return f.result, f.err
}

func newTestEngine(provider SearchProvider) *Engine {
	return NewEngine(EngineConfig{ProviderTimeoutSeconds: 1}, provider, rand.New(rand.NewSource(1)))
}

func TestCategoryImages_EmptyRemoteIsIdentity(t *testing.T) {
	engine := newTestEngine(fakeProvider{result: map[Category]string{}})

	got := engine.CategoryImages(context.Background())
	require.Equal(t, StaticCatalog(), got)
}

func TestCategoryImages_FullRemoteWinsEverywhere(t *testing.T) {
	remote := make(map[Category]string, len(CanonicalCategories))
	for _, cat := range CanonicalCategories {
		remote[cat] = "https://img.example/" + string(cat) + ".jpg"
	}
	engine := newTestEngine(fakeProvider{result: remote})

	got := engine.CategoryImages(context.Background())
	require.Equal(t, remote, got)
}

func TestCategoryImages_PartialRemoteFallsBackPerKey(t *testing.T) {
	engine := newTestEngine(fakeProvider{result: map[Category]string{
		Fruits: "https://img.example/fruits.jpg",
	}})

	got := engine.CategoryImages(context.Background())
	require.Equal(t, "https://img.example/fruits.jpg", got[Fruits])
	for _, cat := range CanonicalCategories {
		require.NotEmpty(t, got[cat], "category %s lost its image in the merge", cat)
		if cat != Fruits {
			require.Equal(t, StaticCatalog()[cat], got[cat])
		}
	}
}

func TestCategoryImages_ProviderErrorDegradesToStatic(t *testing.T) {
	engine := newTestEngine(fakeProvider{err: errors.New("provider exploded")})

	require.NotPanics(t, func() {
		got := engine.CategoryImages(context.Background())
		require.Equal(t, StaticCatalog(), got)
	})
}

func TestCategoryImages_SlowProviderIsBounded(t *testing.T) {
	engine := newTestEngine(fakeProvider{
		result: map[Category]string{Fruits: "https://late.example/fruits.jpg"},
		delay:  3 * time.Second,
	})

	start := time.Now()
	got := engine.CategoryImages(context.Background())
	require.Less(t, time.Since(start), 2*time.Second)
	require.Equal(t, StaticCatalog(), got)
}

func TestCategoryImages_NilProviderUsesStatic(t *testing.T) {
	engine := NewEngine(EngineConfig{}, nil, nil)

	got := engine.CategoryImages(context.Background())
	require.Equal(t, StaticCatalog(), got)
}

func TestFallbackImage_KeywordMatchIsDeterministic(t *testing.T) {
	engine := newTestEngine(NoopProvider{})

	tests := []struct {
		label string
		want  Category
	}{
		{"Fresh Vegetables", Vegetables},
		{"vegetable basket", Vegetables},
		{"Tropical Fruits", Fruits},
		{"Whole Grain Cereal", Cereals},
		{"grain sack", Cereals},
		{"Livestock Feed", Livestock},
		{"fresh meat", Livestock},
		{"Poultry", Poultry},
		{"free-range chicken", Poultry},
		{"Seed Packets", Seeds},
	}

	for _, tc := range tests {
		t.Run(tc.label, func(t *testing.T) {
			want := StaticCatalog()[tc.want]
			for i := 0; i < 5; i++ {
				require.Equal(t, want, engine.FallbackImageForCategory(tc.label))
			}
		})
	}
}

func TestFallbackImage_UnmatchedLabelDrawsFromGenericPool(t *testing.T) {
	engine := newTestEngine(NoopProvider{})

	for i := 0; i < 20; i++ {
		got := engine.FallbackImageForCategory("Assorted")
		require.Contains(t, GenericPool, got)
	}
}

func TestFallbackImage_PinnedSeedIsReproducible(t *testing.T) {
	first := NewEngine(EngineConfig{}, NoopProvider{}, rand.New(rand.NewSource(7)))
	second := NewEngine(EngineConfig{}, NoopProvider{}, rand.New(rand.NewSource(7)))

	for i := 0; i < 10; i++ {
		require.Equal(t,
			first.FallbackImageForCategory("Assorted"),
			second.FallbackImageForCategory("Assorted"))
	}
}

func TestHTTPProvider_BatchQueriesEveryCategory(t *testing.T) {
	var queries []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		queries = append(queries, r.URL.Query().Get("q"))
		require.Equal(t, "test-key", r.URL.Query().Get("key"))
		w.Write([]byte(`{"hits":[{"webformatURL":"https://img.example/hit.jpg"}]}`))
	}))
	defer srv.Close()

	provider := NewHTTPProvider(HTTPProviderConfig{BaseURL: srv.URL, APIKey: "test-key", TimeoutSeconds: 1})

	got, err := provider.CategoryImages(context.Background())
	require.NoError(t, err)
	require.Len(t, queries, len(CanonicalCategories))
	require.Len(t, got, len(CanonicalCategories))
	for _, cat := range CanonicalCategories {
		require.Equal(t, "https://img.example/hit.jpg", got[cat])
	}
}

func TestHTTPProvider_FailsAsAUnit(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	provider := NewHTTPProvider(HTTPProviderConfig{BaseURL: srv.URL, APIKey: "test-key", TimeoutSeconds: 1})

	got, err := provider.CategoryImages(context.Background())
	require.Error(t, err)
	require.Nil(t, got)
	require.Equal(t, 1, calls)
}

func TestHTTPProvider_NoHitsLeavesKeyOut(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"hits":[]}`))
	}))
	defer srv.Close()

	provider := NewHTTPProvider(HTTPProviderConfig{BaseURL: srv.URL, APIKey: "test-key", TimeoutSeconds: 1})

	got, err := provider.CategoryImages(context.Background())
	require.NoError(t, err)
	require.Empty(t, got)
}
