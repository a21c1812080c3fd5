package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/domain"
	"github.com/x-xyz/marketcore/domain/event"
	mQuery "github.com/x-xyz/marketcore/service/query/mocks"
)

var mockCtx = ctx.Background()

func TestInsertStopsAtFirstFailure(t *testing.T) {
	req := require.New(t)
	q := mQuery.NewMongo(t)
	im := New(q)

	at := time.Unix(100, 0)
	e1 := event.New(event.BidPlaced, 1, at)
	e2 := event.New(event.AuctionEnded, 1, at)
	e3 := event.New(event.ListedFixedSale, 2, at)

	dbErr := errors.New("db down")
	q.On("Insert", mockCtx, domain.TableMarketEvents, e1).Return(nil).Once()
	q.On("Insert", mockCtx, domain.TableMarketEvents, e2).Return(dbErr).Once()

	req.ErrorIs(im.Insert(mockCtx, []*event.Event{e1, e2, e3}), dbErr)
}

func TestFindByListing(t *testing.T) {
	req := require.New(t)
	q := mQuery.NewMongo(t)
	im := New(q)

	evt := event.New(event.BidPlaced, 3, time.Unix(100, 0))
	q.On("Search", mockCtx, domain.TableMarketEvents, 0, 20, "createdAt", bson.M{"listingIndex": uint64(3)}, mock.Anything).Run(func(args mock.Arguments) {
		*args.Get(6).(*[]*event.Event) = []*event.Event{evt}
	}).Return(nil).Once()

	res, err := im.FindByListing(mockCtx, 3, 0, 20)
	req.NoError(err)
	req.Equal([]*event.Event{evt}, res)
}
