package usecase

import (
	"github.com/x-xyz/marketcore/base/ctx"
	hcdomain "github.com/x-xyz/marketcore/domain/healthcheck"
)

type impl struct {
	repo hcdomain.HealthCheckRepo
}

// New creates new healthCheckUsecase object representation of HealthCheckUsecase interface
func New(repo hcdomain.HealthCheckRepo) hcdomain.HealthCheckUsecase {
	return &impl{
		repo: repo,
	}
}

func (im *impl) Check(context ctx.Ctx) *hcdomain.Status {
	return &hcdomain.Status{
		Mongo: statusOf(im.repo.PingMongo(context)),
		Redis: statusOf(im.repo.PingRedis(context)),
	}
}

func statusOf(err error) string {
	if err != nil {
		return err.Error()
	}
	return hcdomain.StatusOK
}
