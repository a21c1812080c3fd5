package healthcheck

import (
	"github.com/x-xyz/marketcore/base/ctx"
)

// Status is the answer of one dependency, "ok" or the error text
type Status struct {
	Mongo string `json:"mongo"`
	Redis string `json:"redis"`
}

func (s *Status) Healthy() bool {
	return s.Mongo == StatusOK && s.Redis == StatusOK
}

const StatusOK = "ok"

// HealthCheckUsecase represents the healthCheck's usecases
type HealthCheckUsecase interface {
	Check(context ctx.Ctx) *Status
}

// HealthCheckRepo is repository layer of healthCheck
type HealthCheckRepo interface {
	PingMongo(context ctx.Ctx) error
	PingRedis(context ctx.Ctx) error
}
