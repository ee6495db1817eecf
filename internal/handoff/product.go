package handoff

import (
	"context"
	"errors"

	"github.com/festivepros/inquiry/internal/inquiry"
	"github.com/festivepros/inquiry/internal/logger"
)

// LoadProduct performs the one-shot mount-time read of the selected product.
// An absent key and an unparseable value are treated the same way: the
// problem is logged and nil is returned, which leaves the form on its
// loading view.
func LoadProduct(ctx context.Context, store Store, key string, log *logger.Logger) *inquiry.ProductSnapshot {
	raw, err := store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Error().Err(err).Str("key", key).Msg("failed to read selected product")
		}
		return nil
	}

	p, err := inquiry.ParseProduct(raw)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to parse selected product")
		return nil
	}
	return p
}
