package compound

import (
	"time"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/base/log"
	"github.com/x-xyz/marketcore/service/cache/provider"
)

type impl struct {
	layers []provider.Provider
}

// New stacks layers from nearest to farthest. A hit in a farther layer is
// copied into the nearer ones with the ttl it has left.
func New(layers ...provider.Provider) provider.Provider {
	return &impl{layers: layers}
}

func (im *impl) Get(c ctx.Ctx, key string) ([]byte, time.Duration, error) {
	for depth, layer := range im.layers {
		val, ttl, err := layer.Get(c, key)
		if err == provider.ErrNotFound {
			continue
		} else if err != nil {
			return nil, 0, err
		}

		for _, near := range im.layers[:depth] {
			if err := near.Set(c, key, val, ttl); err != nil {
				c.WithFields(log.Fields{"err": err, "key": key}).Warn("backfill failed")
			}
		}
		return val, ttl, nil
	}
	return nil, 0, provider.ErrNotFound
}

// Set and Del work from the farthest layer inwards so a nearer layer is never
// fresher than the ones behind it
func (im *impl) Set(c ctx.Ctx, key string, val []byte, ttl time.Duration) error {
	for i := len(im.layers) - 1; i >= 0; i-- {
		if err := im.layers[i].Set(c, key, val, ttl); err != nil {
			return err
		}
	}
	return nil
}

func (im *impl) Del(c ctx.Ctx, key string) error {
	for i := len(im.layers) - 1; i >= 0; i-- {
		if err := im.layers[i].Del(c, key); err != nil {
			return err
		}
	}
	return nil
}
