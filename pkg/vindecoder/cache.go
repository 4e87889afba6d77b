package vindecoder

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
)

// Cached memoizes successful decodes per VIN. Failures are not cached.
type Cached struct {
	next  Client
	cache *cache.Cache
}

var _ Client = (*Cached)(nil)

// NewCached wraps next with a cache whose entries live for ttl.
func NewCached(next Client, ttl time.Duration) *Cached {
	return &Cached{
		next:  next,
		cache: cache.New(ttl, 2*ttl),
	}
}

func (c *Cached) Decode(ctx context.Context, vin string) (*Decoded, error) {
	vin, err := ValidateVIN(vin)
	if err != nil {
		return nil, err
	}

	if v, ok := c.cache.Get(vin); ok {
		d := *v.(*Decoded) //nolint: forcetypeassert

		return &d, nil
	}

	decoded, err := c.next.Decode(ctx, vin)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}
	stored := *decoded
	c.cache.SetDefault(vin, &stored)

	return decoded, nil
}
