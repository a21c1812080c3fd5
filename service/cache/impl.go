package cache

import (
	"encoding/json"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/base/log"
	"github.com/x-xyz/marketcore/base/metrics"
	"github.com/x-xyz/marketcore/domain/keys"
	"github.com/x-xyz/marketcore/service/cache/provider"
)

var jsonCodec = Codec{Marshal: json.Marshal, Unmarshal: json.Unmarshal}

type impl struct {
	cfg   ServiceConfig
	codec Codec
	met   metrics.Service
}

func New(cfg ServiceConfig) Service {
	codec := jsonCodec
	if cfg.Codec != nil {
		codec = *cfg.Codec
	}
	return &impl{
		cfg:   cfg,
		codec: codec,
		met:   metrics.New("cache"),
	}
}

func (im *impl) key(key string) string {
	return keys.RedisKey(im.cfg.Pfx, key)
}

func (im *impl) Load(c ctx.Ctx, key string, out interface{}, load Loader) error {
	switch err := im.Get(c, key, out); err {
	case nil:
		im.met.BumpSum("hit", 1, "pfx", im.cfg.Pfx)
		return nil
	case ErrNotFound:
		im.met.BumpSum("miss", 1, "pfx", im.cfg.Pfx)
	default:
		return err
	}

	val, err := load()
	if err != nil {
		return err
	}
	raw, err := im.codec.Marshal(val)
	if err != nil {
		c.WithFields(log.Fields{"err": err, "key": key}).Error("marshal failed")
		return err
	}
	// a failed write still answers from the loaded value
	if err := im.cfg.Provider.Set(c, im.key(key), raw, im.cfg.Ttl); err != nil {
		c.WithFields(log.Fields{"err": err, "key": key}).Warn("provider.Set failed")
	}
	return im.codec.Unmarshal(raw, out)
}

func (im *impl) Get(c ctx.Ctx, key string, out interface{}) error {
	raw, _, err := im.cfg.Provider.Get(c, im.key(key))
	if err == provider.ErrNotFound {
		return ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{"err": err, "key": key}).Error("provider.Get failed")
		return err
	}
	if err := im.codec.Unmarshal(raw, out); err != nil {
		c.WithFields(log.Fields{"err": err, "key": key}).Error("unmarshal failed")
		return err
	}
	return nil
}

func (im *impl) Set(c ctx.Ctx, key string, val interface{}) error {
	raw, err := im.codec.Marshal(val)
	if err != nil {
		c.WithFields(log.Fields{"err": err, "key": key}).Error("marshal failed")
		return err
	}
	return im.cfg.Provider.Set(c, im.key(key), raw, im.cfg.Ttl)
}

func (im *impl) Del(c ctx.Ctx, key string) error {
	return im.cfg.Provider.Del(c, im.key(key))
}
