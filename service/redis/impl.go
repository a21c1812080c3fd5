package redis

import (
	"fmt"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/base/metrics"
	"github.com/x-xyz/marketcore/domain/keys"
)

const (
	// PTTL replies for a missing key and a key without expire
	retTTLNoKey    = -2
	retTTLNoExpire = -1

	delBatchSize = 100
)

// GET and DEL in one script, GETDEL needs redis 6.2
var getDelScript = redis.NewScript(1, `
local v = redis.call("GET", KEYS[1])
if v then redis.call("DEL", KEYS[1]) end
return v`)

type redImpl struct {
	name string
	met  metrics.Service
	pool *redis.Pool
}

// New redis service on top of pool, name tags the metrics
func New(name string, met metrics.Service, pool *redis.Pool) Service {
	return &redImpl{
		name: name,
		met:  met,
		pool: pool,
	}
}

func (r *redImpl) getConn() (redis.Conn, error) {
	defer r.met.BumpTime("getconn.time", "cluster", r.name).End()

	conn := r.pool.Get()
	if err := conn.Err(); err != nil {
		r.met.BumpSum("getConn.err", 1, "cluster", r.name, "reason", err.Error())
		return nil, err
	}
	return conn, nil
}

func (r *redImpl) connDo(commandName string, args ...interface{}) (interface{}, error) {
	conn, err := r.getConn()
	if err != nil {
		return nil, err
	}

	reply, err := conn.Do(commandName, args...)

	// close asap so the pool does not have to hold more connections than needed
	if err := conn.Close(); err != nil {
		r.met.BumpSum("conn.Close.err", 1, "cluster", r.name)
	}
	return reply, err
}

func (r *redImpl) tags(fn, key string) []string {
	return []string{"func", fn, "cluster", r.name, "prefix", keys.GetPrefix(key)}
}

func (r *redImpl) Get(context ctx.Ctx, key string) ([]byte, error) {
	tags := r.tags("get", key)
	defer r.met.BumpTime("time", tags...).End()

	val, err := redis.Bytes(r.connDo("GET", key))
	if err != nil {
		if err != ErrNotFound {
			context.WithField("err", err).Error("GET redis failed")
		}
		return nil, err
	}
	r.met.BumpHistogram("bytes", float64(len(val)), tags...)
	return val, nil
}

func (r *redImpl) Set(context ctx.Ctx, key string, val []byte, expire time.Duration) error {
	tags := r.tags("set", key)
	defer r.met.BumpTime("time", tags...).End()
	r.met.BumpHistogram("bytes", float64(len(val)), tags...)

	var err error
	if expire == Forever {
		_, err = r.connDo("SET", key, val)
	} else {
		_, err = r.connDo("SET", key, val, "PX", int(expire/time.Millisecond))
	}
	if err != nil {
		context.WithField("err", err).Error("SET redis failed")
	}
	return err
}

func (r *redImpl) SetNX(context ctx.Ctx, key string, val []byte, expire time.Duration) error {
	defer r.met.BumpTime("time", r.tags("setnx", key)...).End()

	args := redis.Args{key, val, "NX"}
	if expire != Forever {
		args = args.Add("PX", int(expire/time.Millisecond))
	}
	if _, err := redis.String(r.connDo("SET", args...)); err == ErrNotFound {
		return ErrNotSet
	} else if err != nil {
		context.WithField("err", err).Error("SET NX redis failed")
		return err
	}
	return nil
}

func (r *redImpl) GetDel(context ctx.Ctx, key string) ([]byte, error) {
	defer r.met.BumpTime("time", r.tags("getdel", key)...).End()

	conn, err := r.getConn()
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	val, err := redis.Bytes(getDelScript.Do(conn, key))
	if err != nil && err != ErrNotFound {
		context.WithField("err", err).Error("GETDEL redis failed")
	}
	return val, err
}

func (r *redImpl) Del(context ctx.Ctx, ks ...string) (int, error) {
	if len(ks) == 0 {
		return 0, fmt.Errorf("length of keys is 0")
	}

	tags := r.tags("del", ks[0])
	defer r.met.BumpTime("time", tags...).End()
	r.met.BumpHistogram("elements", float64(len(ks)), tags...)

	affected := 0
	for start := 0; start < len(ks); start += delBatchSize {
		end := start + delBatchSize
		if end > len(ks) {
			end = len(ks)
		}
		res, err := redis.Int(r.connDo("DEL", redis.Args{}.AddFlat(ks[start:end])...))
		if err != nil {
			context.WithField("err", err).Error("DEL redis failed")
			return 0, err
		}
		affected += res
	}
	return affected, nil
}

func (r *redImpl) GetTTL(context ctx.Ctx, key string) ([]byte, time.Duration, error) {
	defer r.met.BumpTime("time", r.tags("getttl", key)...).End()

	conn, err := r.getConn()
	if err != nil {
		return nil, 0, err
	}
	defer conn.Close()

	conn.Send("MULTI")
	conn.Send("GET", key)
	conn.Send("PTTL", key)
	replies, err := redis.Values(conn.Do("EXEC"))
	if err != nil {
		context.WithField("err", err).Error("GET PTTL redis failed")
		return nil, 0, err
	}

	ms, err := redis.Int64(replies[1], nil)
	if err != nil {
		return nil, 0, err
	} else if ms == retTTLNoKey {
		return nil, 0, ErrNotFound
	}
	val, err := redis.Bytes(replies[0], nil)
	if err != nil {
		return nil, 0, err
	}
	if ms == retTTLNoExpire {
		return val, Forever, nil
	}
	return val, time.Duration(ms) * time.Millisecond, nil
}

func (r *redImpl) Ping(context ctx.Ctx) error {
	if _, err := r.connDo("PING"); err != nil {
		context.WithField("err", err).Error("PING redis failed")
		return err
	}
	return nil
}
