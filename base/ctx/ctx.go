package ctx

import (
	"context"
	"time"

	log "github.com/x-xyz/marketcore/base/log"
)

// Ctx is a context.Context that also carries the request scoped logger
type Ctx struct {
	context.Context
	log.Logger
}

// key keeps values set here apart from other packages' string keys
type key string

func Background() Ctx {
	return Ctx{Context: context.Background(), Logger: log.Log()}
}

// WithValue stores val under k and also tags the logger with it
func WithValue(parent Ctx, k string, val interface{}) Ctx {
	return Ctx{
		Context: context.WithValue(parent.Context, key(k), val),
		Logger:  parent.Logger.WithField(k, val),
	}
}

func WithValues(parent Ctx, kvs map[string]interface{}) Ctx {
	for k, v := range kvs {
		parent = WithValue(parent, k, v)
	}
	return parent
}

// Value reads what WithValue stored under k
func Value(c Ctx, k string) interface{} {
	return c.Context.Value(key(k))
}

// Detach keeps the logger of parent but drops its deadline and cancellation,
// for work that outlives the request which started it
func Detach(parent Ctx) Ctx {
	return Ctx{Context: context.Background(), Logger: parent.Logger}
}

func WithCancel(parent Ctx) (Ctx, context.CancelFunc) {
	c, cancel := context.WithCancel(parent.Context)
	return Ctx{Context: c, Logger: parent.Logger}, cancel
}

func WithTimeout(parent Ctx, timeout time.Duration) (Ctx, context.CancelFunc) {
	c, cancel := context.WithTimeout(parent.Context, timeout)
	return Ctx{Context: c, Logger: parent.Logger}, cancel
}
