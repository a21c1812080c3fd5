package cache

import (
	"errors"
	"time"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/service/cache/provider"
)

var ErrNotFound = errors.New("cache miss")

// Loader produces the value for a key that missed
type Loader func() (interface{}, error)

// Codec converts values to and from the bytes a provider stores
type Codec struct {
	Marshal   func(interface{}) ([]byte, error)
	Unmarshal func([]byte, interface{}) error
}

// Service is a read-through cache of typed values over a byte provider.
// Keys are namespaced by the configured prefix.
type Service interface {
	// Load fills out from the cache, falling back to load on a miss and
	// storing what it returns
	Load(c ctx.Ctx, key string, out interface{}, load Loader) error
	Get(c ctx.Ctx, key string, out interface{}) error
	Set(c ctx.Ctx, key string, val interface{}) error
	Del(c ctx.Ctx, key string) error
}

type ServiceConfig struct {
	Ttl      time.Duration
	Pfx      string
	Provider provider.Provider
	// Codec defaults to encoding/json
	Codec *Codec
}
