package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/domain"
	"github.com/x-xyz/marketcore/domain/event"
	"github.com/x-xyz/marketcore/service/query"
)

type impl struct {
	q query.Mongo
}

func New(q query.Mongo) event.Repo {
	return &impl{q}
}

// EnsureIndex backs the per listing history query
func EnsureIndex(c ctx.Ctx, q query.Mongo) error {
	return q.EnsureIndex(c, domain.TableMarketEvents, query.Index{
		Keys: bson.D{{Key: "listingIndex", Value: 1}, {Key: "createdAt", Value: 1}},
	})
}

func (im *impl) Insert(c ctx.Ctx, evts []*event.Event) error {
	for _, evt := range evts {
		if err := im.q.Insert(c, domain.TableMarketEvents, evt); err != nil {
			c.WithField("err", err).WithField("event", evt.Name).Error("q.Insert failed")
			return err
		}
	}
	return nil
}

func (im *impl) FindByListing(c ctx.Ctx, index uint64, offset, limit int) ([]*event.Event, error) {
	res := []*event.Event{}
	qry := bson.M{"listingIndex": index}
	if err := im.q.Search(c, domain.TableMarketEvents, offset, limit, "createdAt", qry, &res); err != nil {
		c.WithField("err", err).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}
