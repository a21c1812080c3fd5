package primitive

import (
	"time"

	"github.com/coocood/freecache"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/service/cache/provider"
)

var timeNow = time.Now

type impl struct {
	cache *freecache.Cache
}

// New is an in-process provider holding up to sizeMB megabytes
func New(sizeMB int) provider.Provider {
	return &impl{cache: freecache.NewCache(sizeMB * 1024 * 1024)}
}

func (im *impl) Get(c ctx.Ctx, key string) ([]byte, time.Duration, error) {
	val, expireAt, err := im.cache.GetWithExpiration([]byte(key))
	if err == freecache.ErrNotFound {
		return nil, 0, provider.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).WithField("key", key).Error("freecache.Get failed")
		return nil, 0, err
	}
	if expireAt == 0 {
		return val, 0, nil
	}
	return val, time.Unix(int64(expireAt), 0).Sub(timeNow()), nil
}

// Set keeps entries without a ttl until evicted. Sub-second ttls round up
// since freecache counts whole seconds.
func (im *impl) Set(c ctx.Ctx, key string, val []byte, ttl time.Duration) error {
	secs := 0
	if ttl > 0 {
		secs = int((ttl + time.Second - 1) / time.Second)
	}
	if err := im.cache.Set([]byte(key), val, secs); err != nil {
		c.WithField("err", err).WithField("key", key).Error("freecache.Set failed")
		return err
	}
	return nil
}

func (im *impl) Del(c ctx.Ctx, key string) error {
	im.cache.Del([]byte(key))
	return nil
}
