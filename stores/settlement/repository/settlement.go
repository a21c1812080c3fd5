package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/domain"
	"github.com/x-xyz/marketcore/domain/settlement"
	"github.com/x-xyz/marketcore/service/query"
)

const configId = "settlement"

type configDoc struct {
	Id     string            `bson:"_id"`
	Config settlement.Config `bson:",inline"`
}

type impl struct {
	q query.Mongo
}

func New(q query.Mongo) settlement.Repo {
	return &impl{q}
}

func (im *impl) Get(c ctx.Ctx) (*settlement.Config, error) {
	res := &configDoc{}
	if err := im.q.FindOne(c, domain.TableMarketConfigs, bson.M{"_id": configId}, res); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	return &res.Config, nil
}

func (im *impl) Upsert(c ctx.Ctx, cfg *settlement.Config) error {
	doc := &configDoc{Id: configId, Config: *cfg}
	if err := im.q.Upsert(c, domain.TableMarketConfigs, bson.M{"_id": configId}, doc); err != nil {
		c.WithField("err", err).Error("q.Upsert failed")
		return err
	}
	return nil
}
