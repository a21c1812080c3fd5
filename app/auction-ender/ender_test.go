package main

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/domain/listing"
	"github.com/x-xyz/marketcore/domain/market"
	"github.com/x-xyz/marketcore/service/marketclient"
	mClient "github.com/x-xyz/marketcore/service/marketclient/mocks"
)

var mockCtx = ctx.Background()

type enderSuite struct {
	suite.Suite

	client *mClient.Client
	ender  *ender
}

func TestEnderSuite(t *testing.T) {
	suite.Run(t, new(enderSuite))
}

func (s *enderSuite) SetupTest() {
	s.client = mClient.NewClient(s.T())
	s.ender = newEnder(&enderCfg{
		Client:   s.client,
		Interval: time.Second,
		PageSize: 2,
		Workers:  2,
		Now:      func() time.Time { return time.Unix(1000, 0) },
	})
}

func auction(endTime int64, hasBids bool) *marketclient.Listing {
	return &marketclient.Listing{
		Listing:       &listing.ListingView{Kind: listing.KindAuctionSale, EndTime: endTime},
		AuctionListed: true,
		HasBids:       hasBids,
	}
}

func fixedSale(endTime int64, listed bool) *marketclient.Listing {
	return &marketclient.Listing{
		Listing:     &listing.ListingView{Kind: listing.KindFixedSale, EndTime: endTime},
		FixedListed: listed,
	}
}

func (s *enderSuite) noFixedSales(times int) {
	s.client.On("FixedSales", mockCtx, 0, 2).Return(0, []uint64{}, nil).Times(times)
}

func (s *enderSuite) TestSweep() {
	s.client.On("Login", mockCtx).Return(nil).Once()
	s.client.On("Auctions", mockCtx, 0, 2).Return(3, []uint64{1, 2}, nil).Once()
	s.client.On("Auctions", mockCtx, 2, 2).Return(3, []uint64{3}, nil).Once()
	// due with a bid
	s.client.On("Listing", mockCtx, uint64(1)).Return(auction(900, true), nil).Once()
	// due without bids, left to the seller
	s.client.On("Listing", mockCtx, uint64(2)).Return(auction(900, false), nil).Once()
	// still running
	s.client.On("Listing", mockCtx, uint64(3)).Return(auction(1100, true), nil).Once()
	s.client.On("EndAuction", mockCtx, uint64(1)).Return(nil).Once()
	s.noFixedSales(2)

	ended, err := s.ender.sweep(mockCtx)
	s.NoError(err)
	s.Equal(1, ended)

	// already logged in
	s.client.On("Auctions", mockCtx, 0, 2).Return(0, []uint64{}, nil).Once()
	ended, err = s.ender.sweep(mockCtx)
	s.NoError(err)
	s.Equal(0, ended)
}

func (s *enderSuite) TestSweepSkipsRejected() {
	s.client.On("Login", mockCtx).Return(nil).Once()
	s.client.On("Auctions", mockCtx, 0, 2).Return(2, []uint64{4, 5}, nil).Once()
	s.client.On("Listing", mockCtx, uint64(4)).Return(auction(1000, true), nil).Once()
	s.client.On("Listing", mockCtx, uint64(5)).Return(auction(999, true), nil).Once()
	s.client.On("EndAuction", mockCtx, uint64(4)).Return(market.ErrNotListedInAuctionSale).Once()
	s.client.On("EndAuction", mockCtx, uint64(5)).Return(nil).Once()
	s.noFixedSales(1)

	ended, err := s.ender.sweep(mockCtx)
	s.NoError(err)
	s.Equal(1, ended)
}

func (s *enderSuite) TestSweepRelogin() {
	s.client.On("Login", mockCtx).Return(nil).Twice()
	s.client.On("Auctions", mockCtx, 0, 2).Return(1, []uint64{6}, nil).Twice()
	s.client.On("Listing", mockCtx, uint64(6)).Return(auction(10, true), nil).Twice()
	s.client.On("EndAuction", mockCtx, uint64(6)).Return(marketclient.ErrUnauthorized).Once()

	_, err := s.ender.sweep(mockCtx)
	s.ErrorIs(err, marketclient.ErrUnauthorized)

	s.client.On("EndAuction", mockCtx, uint64(6)).Return(nil).Once()
	s.noFixedSales(1)
	ended, err := s.ender.sweep(mockCtx)
	s.NoError(err)
	s.Equal(1, ended)
}

func (s *enderSuite) TestSweepUnlistsExpiredFixedSales() {
	s.client.On("Login", mockCtx).Return(nil).Once()
	s.client.On("Auctions", mockCtx, 0, 2).Return(0, []uint64{}, nil).Once()
	s.client.On("FixedSales", mockCtx, 0, 2).Return(4, []uint64{7, 8}, nil).Once()
	s.client.On("FixedSales", mockCtx, 2, 2).Return(4, []uint64{9, 10}, nil).Once()
	// expired
	s.client.On("Listing", mockCtx, uint64(7)).Return(fixedSale(1000, true), nil).Once()
	// still open
	s.client.On("Listing", mockCtx, uint64(8)).Return(fixedSale(1001, true), nil).Once()
	// gone since the page was read
	s.client.On("Listing", mockCtx, uint64(9)).Return(fixedSale(0, false), nil).Once()
	s.client.On("Listing", mockCtx, uint64(10)).Return(fixedSale(500, true), nil).Once()
	s.client.On("UnlistFixedSale", mockCtx, uint64(7)).Return(nil).Once()
	s.client.On("UnlistFixedSale", mockCtx, uint64(10)).Return(market.ErrNotListedInFixedSale).Once()

	unlisted, err := s.ender.sweep(mockCtx)
	s.NoError(err)
	s.Equal(1, unlisted)
}

func (s *enderSuite) TestSweepFixedSaleFailure() {
	s.client.On("Login", mockCtx).Return(nil).Once()
	s.client.On("Auctions", mockCtx, 0, 2).Return(1, []uint64{1}, nil).Once()
	s.client.On("Listing", mockCtx, uint64(1)).Return(auction(900, true), nil).Once()
	s.client.On("EndAuction", mockCtx, uint64(1)).Return(nil).Once()
	s.client.On("FixedSales", mockCtx, 0, 2).Return(1, []uint64{2}, nil).Once()
	s.client.On("Listing", mockCtx, uint64(2)).Return(fixedSale(900, true), nil).Once()
	s.client.On("UnlistFixedSale", mockCtx, uint64(2)).Return(errors.New("connection reset")).Once()

	settled, err := s.ender.sweep(mockCtx)
	s.Error(err)
	s.Equal(1, settled)
}

func (s *enderSuite) TestSweepLoginFailure() {
	s.client.On("Login", mockCtx).Return(errors.New("connection refused")).Once()

	_, err := s.ender.sweep(mockCtx)
	s.Error(err)
}

func (s *enderSuite) TestRunStopsOnCancel() {
	c, cancel := ctx.WithCancel(mockCtx)
	s.client.On("Login", c).Return(errors.New("connection refused")).Once()

	done := make(chan struct{})
	go func() {
		defer close(done)
		s.ender.run(c)
	}()
	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		s.Fail("run did not stop")
	}
}
