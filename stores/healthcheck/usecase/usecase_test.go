package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/x-xyz/marketcore/base/ctx"
	hcdomain "github.com/x-xyz/marketcore/domain/healthcheck"
)

type fakeRepo struct {
	mongoErr error
	redisErr error
}

func (r *fakeRepo) PingMongo(ctx.Ctx) error { return r.mongoErr }
func (r *fakeRepo) PingRedis(ctx.Ctx) error { return r.redisErr }

func TestCheck(t *testing.T) {
	st := New(&fakeRepo{}).Check(ctx.Background())
	assert.True(t, st.Healthy())
	assert.Equal(t, &hcdomain.Status{Mongo: "ok", Redis: "ok"}, st)

	st = New(&fakeRepo{redisErr: errors.New("dial tcp: refused")}).Check(ctx.Background())
	assert.False(t, st.Healthy())
	assert.Equal(t, "dial tcp: refused", st.Redis)
}
