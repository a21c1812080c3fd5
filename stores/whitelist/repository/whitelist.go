package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/base/database/mongoclient"
	"github.com/x-xyz/marketcore/domain"
	"github.com/x-xyz/marketcore/domain/whitelist"
	"github.com/x-xyz/marketcore/service/query"
)

type impl struct {
	q query.Mongo
}

func New(q query.Mongo) whitelist.Repo {
	return &impl{q}
}

// EnsureIndex makes (token, tokenId) unique
func EnsureIndex(c ctx.Ctx, q query.Mongo) error {
	return q.EnsureIndex(c, domain.TableWhitelist, query.Index{
		Keys:   bson.D{{Key: "token", Value: 1}, {Key: "tokenId", Value: 1}},
		Unique: true,
	})
}

func (im *impl) FindOne(c ctx.Ctx, token domain.Address, tokenId domain.TokenId) (*whitelist.Entry, error) {
	res := &whitelist.Entry{}

	if qry, err := mongoclient.MakeBsonM(&whitelist.Entry{Token: token.ToLower(), TokenId: tokenId}); err != nil {
		c.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return nil, err
	} else if err := im.q.FindOne(c, domain.TableWhitelist, qry, res); err == query.ErrNotFound {
		return nil, nil
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	return res, nil
}

// FindAll lists every entry when token is empty
func (im *impl) FindAll(c ctx.Ctx, token domain.Address, offset, limit int) ([]*whitelist.Entry, error) {
	res := []*whitelist.Entry{}

	// to prevent scancol error
	qry := bson.M{"token": bson.M{"$exists": true}}
	if !token.IsEmpty() {
		qry = bson.M{"token": token.ToLower()}
	}

	if err := im.q.SearchNSorts(c, domain.TableWhitelist, offset, limit, []string{"token", "tokenId"}, qry, &res); err != nil {
		c.WithField("err", err).Error("q.SearchNSorts failed")
		return nil, err
	}
	return res, nil
}

func (im *impl) Create(c ctx.Ctx, value whitelist.Entry) error {
	value.Token = value.Token.ToLower()
	value.AddedBy = value.AddedBy.ToLower()
	if err := im.q.Insert(c, domain.TableWhitelist, value); err == query.ErrDuplicateKey {
		return domain.ErrConflict
	} else if err != nil {
		c.WithField("err", err).Error("q.Insert failed")
		return err
	}
	return nil
}

func (im *impl) Delete(c ctx.Ctx, token domain.Address, tokenId domain.TokenId) error {
	if slr, err := mongoclient.MakeBsonM(whitelist.Entry{Token: token.ToLower(), TokenId: tokenId}); err != nil {
		c.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return err
	} else if err := im.q.Remove(c, domain.TableWhitelist, slr); err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("q.Remove failed")
		return err
	}
	return nil
}
