package repository

import (
	"math/big"

	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/xerrors"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/domain"
	"github.com/x-xyz/marketcore/domain/listing"
	"github.com/x-xyz/marketcore/service/query"
)

const listingIndexCounter = "saleListingIndex"

// amounts are kept as base 10 strings, they can exceed int64
type listingDoc struct {
	Index     uint64           `bson:"index"`
	Kind      listing.Kind     `bson:"kind"`
	Token     domain.Address   `bson:"token"`
	TokenId   domain.TokenId   `bson:"tokenId"`
	Standard  domain.TokenType `bson:"standard"`
	Owner     domain.Address   `bson:"owner"`
	Price     string           `bson:"price"`
	StartTime int64            `bson:"startTime"`
	EndTime   int64            `bson:"endTime"`
	Quantity  uint64           `bson:"quantity"`
}

type bidDoc struct {
	Index    uint64         `bson:"index"`
	Bidder   domain.Address `bson:"bidder"`
	Amount   string         `bson:"amount"`
	Escrowed bool           `bson:"escrowed"`
}

type counterDoc struct {
	Id    string `bson:"_id"`
	Value uint64 `bson:"value"`
}

func toListingDoc(l *listing.SaleListing) *listingDoc {
	return &listingDoc{
		Index:     l.Index,
		Kind:      l.Kind,
		Token:     l.Token.ToLower(),
		TokenId:   l.TokenId,
		Standard:  l.Standard,
		Owner:     l.Owner.ToLower(),
		Price:     l.Price.String(),
		StartTime: l.StartTime,
		EndTime:   l.EndTime,
		Quantity:  l.Quantity,
	}
}

func (d *listingDoc) toListing() (*listing.SaleListing, error) {
	price, err := domain.ParseAmount(d.Price)
	if err != nil {
		return nil, xerrors.Errorf("listing %d price: %w", d.Index, err)
	}
	return &listing.SaleListing{
		Index:     d.Index,
		Kind:      d.Kind,
		Token:     d.Token,
		TokenId:   d.TokenId,
		Standard:  d.Standard,
		Owner:     d.Owner,
		Price:     price,
		StartTime: d.StartTime,
		EndTime:   d.EndTime,
		Quantity:  d.Quantity,
	}, nil
}

func toBidDoc(b *listing.HighestBid) *bidDoc {
	amount := "0"
	if b.Amount != nil {
		amount = b.Amount.String()
	}
	return &bidDoc{
		Index:    b.Index,
		Bidder:   b.Bidder.ToLower(),
		Amount:   amount,
		Escrowed: b.Escrowed,
	}
}

func (d *bidDoc) toBid() (*listing.HighestBid, error) {
	amount, ok := new(big.Int).SetString(d.Amount, 10)
	if !ok {
		return nil, xerrors.Errorf("bid %d amount %q: %w", d.Index, d.Amount, domain.ErrInvalidNumberFormat)
	}
	return &listing.HighestBid{
		Index:    d.Index,
		Bidder:   d.Bidder,
		Amount:   amount,
		Escrowed: d.Escrowed,
	}, nil
}

type impl struct {
	q query.Mongo
}

func New(q query.Mongo) listing.Repo {
	return &impl{q}
}

// EnsureIndex creates the unique index lookups and upserts rely on
func EnsureIndex(c ctx.Ctx, q query.Mongo) error {
	byIndex := query.Index{Keys: bson.D{{Key: "index", Value: 1}}, Unique: true}
	if err := q.EnsureIndex(c, domain.TableSaleListings, byIndex); err != nil {
		return err
	}
	return q.EnsureIndex(c, domain.TableHighestBids, byIndex)
}

func (im *impl) Load(c ctx.Ctx) (*listing.Snapshot, error) {
	snap := &listing.Snapshot{}

	listings := []*listingDoc{}
	if err := im.q.Search(c, domain.TableSaleListings, 0, 0, "index", bson.M{}, &listings); err != nil {
		c.WithField("err", err).Error("q.Search failed")
		return nil, err
	}
	for _, d := range listings {
		l, err := d.toListing()
		if err != nil {
			c.WithField("err", err).Error("listingDoc.toListing failed")
			return nil, err
		}
		snap.Listings = append(snap.Listings, l)
	}

	bids := []*bidDoc{}
	if err := im.q.Search(c, domain.TableHighestBids, 0, 0, "index", bson.M{}, &bids); err != nil {
		c.WithField("err", err).Error("q.Search failed")
		return nil, err
	}
	for _, d := range bids {
		b, err := d.toBid()
		if err != nil {
			c.WithField("err", err).Error("bidDoc.toBid failed")
			return nil, err
		}
		snap.Bids = append(snap.Bids, b)
	}

	counter := &counterDoc{}
	if err := im.q.FindOne(c, domain.TableCounters, bson.M{"_id": listingIndexCounter}, counter); err != nil && err != query.ErrNotFound {
		c.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	snap.NextIndex = counter.Value

	return snap, nil
}

func (im *impl) SaveListing(c ctx.Ctx, l *listing.SaleListing) error {
	if err := im.q.Upsert(c, domain.TableSaleListings, bson.M{"index": l.Index}, toListingDoc(l)); err != nil {
		c.WithField("err", err).Error("q.Upsert failed")
		return err
	}
	return nil
}

func (im *impl) RemoveListing(c ctx.Ctx, index uint64) error {
	if err := im.q.Remove(c, domain.TableSaleListings, bson.M{"index": index}); err != nil && err != query.ErrNotFound {
		c.WithField("err", err).Error("q.Remove failed")
		return err
	}
	return nil
}

func (im *impl) SaveBid(c ctx.Ctx, b *listing.HighestBid) error {
	if err := im.q.Upsert(c, domain.TableHighestBids, bson.M{"index": b.Index}, toBidDoc(b)); err != nil {
		c.WithField("err", err).Error("q.Upsert failed")
		return err
	}
	return nil
}

func (im *impl) RemoveBid(c ctx.Ctx, index uint64) error {
	if err := im.q.Remove(c, domain.TableHighestBids, bson.M{"index": index}); err != nil && err != query.ErrNotFound {
		c.WithField("err", err).Error("q.Remove failed")
		return err
	}
	return nil
}

func (im *impl) SaveNextIndex(c ctx.Ctx, next uint64) error {
	doc := &counterDoc{Id: listingIndexCounter, Value: next}
	if err := im.q.Upsert(c, domain.TableCounters, bson.M{"_id": listingIndexCounter}, doc); err != nil {
		c.WithField("err", err).Error("q.Upsert failed")
		return err
	}
	return nil
}

func (im *impl) RunInTransaction(c ctx.Ctx, run func(ctx.Ctx) error) error {
	return im.q.RunWithTransaction(c, run)
}
