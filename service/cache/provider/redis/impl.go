package redis

import (
	"time"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/service/cache/provider"
	"github.com/x-xyz/marketcore/service/redis"
)

type impl struct {
	svc redis.Service
}

// New shares cached entries across processes through svc
func New(svc redis.Service) provider.Provider {
	return &impl{svc: svc}
}

func (im *impl) Get(c ctx.Ctx, key string) ([]byte, time.Duration, error) {
	val, ttl, err := im.svc.GetTTL(c, key)
	if err == redis.ErrNotFound {
		return nil, 0, provider.ErrNotFound
	} else if err != nil {
		return nil, 0, err
	}
	if ttl == redis.Forever {
		ttl = 0
	}
	return val, ttl, nil
}

func (im *impl) Set(c ctx.Ctx, key string, val []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = redis.Forever
	}
	return im.svc.Set(c, key, val, ttl)
}

func (im *impl) Del(c ctx.Ctx, key string) error {
	_, err := im.svc.Del(c, key)
	return err
}
