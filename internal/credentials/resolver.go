package credentials

import (
	"context"
	"errors"
	"time"

	errx "github.com/ReganLema/M-CONNECT-sub001/internal/core/error"
	logx "github.com/ReganLema/M-CONNECT-sub001/pkg/logger"
	"github.com/rs/zerolog"
)

// resolveTimeout bounds a full pass over the chain so a hung store cannot
// stall the request the token was resolved for.
const resolveTimeout = 2 * time.Second

// Resolver walks an ordered list of token sources and returns the first
// non-empty token. Source failures are treated as "nothing there" and the
// walk continues; anonymous is a valid outcome, never an error.
type Resolver struct {
	sources []Source
	log     zerolog.Logger
}

func NewResolver(sources ...Source) *Resolver {
	return &Resolver{
		sources: sources,
		log:     logx.With("credentials"),
	}
}

// NewDefaultResolver builds the canonical chain over a store: the current
// access-token key followed by the legacy keys.
func NewDefaultResolver(store Store) *Resolver {
	return NewResolver(KeySources(store, DefaultKeys...)...)
}

// Resolve returns the first token found and true, or ("", false) when the
// whole chain comes up empty. It never returns an error: a storage failure
// degrades to an anonymous request.
func (r *Resolver) Resolve(ctx context.Context) (string, bool) {
	ctx, cancel := context.WithTimeout(ctx, resolveTimeout)
	defer cancel()

	for _, src := range r.sources {
		token, err := src.Token(ctx)
		if err != nil {
			if errx.KindOf(err) != errx.KindNotFound && !errors.Is(err, context.DeadlineExceeded) {
				r.log.Debug().Err(err).Str("source", src.Name()).Msg("token source read failed")
			}
			continue
		}
		if token != "" {
			return token, true
		}
	}

	// Observability only, callers proceed unauthenticated.
	r.log.Warn().Msg("no credential found, sending request anonymously")
	return "", false
}
