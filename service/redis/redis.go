package redis

import (
	"errors"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/x-xyz/marketcore/base/ctx"
)

// Forever means the key never expires
const Forever = time.Duration(-1)

var (
	// ErrNotFound is returned when the key does not exist
	ErrNotFound = redis.ErrNil
	// ErrNotSet is returned by SetNX when the key already exists
	ErrNotSet = errors.New("key already exists")
)

// Service is the subset of redis commands the service needs
type Service interface {
	Get(context ctx.Ctx, key string) ([]byte, error)
	Set(context ctx.Ctx, key string, val []byte, expire time.Duration) error
	// SetNX sets key only when it does not exist yet, ErrNotSet otherwise
	SetNX(context ctx.Ctx, key string, val []byte, expire time.Duration) error
	// GetDel returns the value and removes the key in one round trip
	GetDel(context ctx.Ctx, key string) ([]byte, error)
	Del(context ctx.Ctx, keys ...string) (int, error)
	// GetTTL returns the value with the time it has left, Forever when the
	// key has no expire
	GetTTL(context ctx.Ctx, key string) ([]byte, time.Duration, error)
	Ping(context ctx.Ctx) error
}
