package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/domain"
	"github.com/x-xyz/marketcore/domain/moderator"
	"github.com/x-xyz/marketcore/service/query"
)

type impl struct {
	q query.Mongo
}

func New(q query.Mongo) moderator.Repo {
	return &impl{q}
}

// EnsureIndex makes address unique so Create reports duplicates
func EnsureIndex(c ctx.Ctx, q query.Mongo) error {
	return q.EnsureIndex(c, domain.TableModerators, query.Index{Keys: bson.D{{Key: "address", Value: 1}}, Unique: true})
}

func byAddress(address domain.Address) bson.M {
	return bson.M{"address": address.ToLower()}
}

// FindAll returns the whole roster ordered by address
func (im *impl) FindAll(c ctx.Ctx) ([]*moderator.Moderator, error) {
	res := []*moderator.Moderator{}
	// $exists keeps the query on the address index
	filter := bson.M{"address": bson.M{"$exists": true}}
	if err := im.q.Search(c, domain.TableModerators, 0, 0, "address", filter, &res); err != nil {
		c.WithField("err", err).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}

func (im *impl) FindOne(c ctx.Ctx, address domain.Address) (*moderator.Moderator, error) {
	res := &moderator.Moderator{}
	switch err := im.q.FindOne(c, domain.TableModerators, byAddress(address), res); err {
	case nil:
		return res, nil
	case query.ErrNotFound:
		return nil, nil
	default:
		c.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
}

func (im *impl) Create(c ctx.Ctx, value moderator.Moderator) error {
	value.Address = value.Address.ToLower()
	switch err := im.q.Insert(c, domain.TableModerators, value); err {
	case nil:
		return nil
	case query.ErrDuplicateKey:
		return domain.ErrConflict
	default:
		c.WithField("err", err).Error("q.Insert failed")
		return err
	}
}

func (im *impl) Delete(c ctx.Ctx, address domain.Address) error {
	switch err := im.q.Remove(c, domain.TableModerators, byAddress(address)); err {
	case nil:
		return nil
	case query.ErrNotFound:
		return domain.ErrNotFound
	default:
		c.WithField("err", err).Error("q.Remove failed")
		return err
	}
}
