// Package provider holds the byte stores a cache.Service sits on
package provider

import (
	"errors"
	"time"

	"github.com/x-xyz/marketcore/base/ctx"
)

var ErrNotFound = errors.New("key not found")

// Provider stores raw bytes with a ttl. Get reports the ttl left.
type Provider interface {
	Get(c ctx.Ctx, key string) ([]byte, time.Duration, error)
	Set(c ctx.Ctx, key string, val []byte, ttl time.Duration) error
	Del(c ctx.Ctx, key string) error
}
