package usecase

import (
	"math/big"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/domain"
	"github.com/x-xyz/marketcore/domain/event"
	"github.com/x-xyz/marketcore/domain/listing"
	"github.com/x-xyz/marketcore/domain/market"
	"github.com/x-xyz/marketcore/domain/settlement"
)

func (im *impl) ListAuctionSale(c ctx.Ctx, caller domain.Address, p listing.AuctionSaleParams) (uint64, error) {
	var index uint64
	err := im.apply(c, "listAuctionSale", func(c ctx.Ctx, t *txn) error {
		caller, token := caller.ToLower(), p.Token.ToLower()

		if err := im.checkWhitelisted(c, token, p.TokenId); err != nil {
			return err
		}
		if p.Price == nil || p.Price.Sign() <= 0 {
			return market.ErrPriceTooLow
		}
		if p.StartTime >= p.EndTime || p.EndTime <= t.now {
			return market.ErrAuctionWrongTime
		}
		cu, err := im.custodian(c, token)
		if err != nil {
			return err
		}
		if err := im.checkListable(c, t, cu, caller, p.TokenId, p.Quantity); err != nil {
			return err
		}

		sl := &listing.SaleListing{
			Index:     t.allocIndex(),
			Kind:      listing.KindAuctionSale,
			Token:     token,
			TokenId:   p.TokenId,
			Standard:  cu.Standard(),
			Owner:     caller,
			Price:     new(big.Int).Set(p.Price),
			StartTime: p.StartTime,
			EndTime:   p.EndTime,
			Quantity:  p.Quantity,
		}
		t.putListing(sl)
		t.putBid(&listing.HighestBid{
			Index:  sl.Index,
			Bidder: domain.EmptyAddress,
			Amount: im.settlementUC.MinBid(c, sl.Price),
		})

		evt := newEvent(event.ListedAuctionSale, sl, t.at)
		evt.Price = sl.Price.String()
		evt.StartTime = sl.StartTime
		evt.EndTime = sl.EndTime
		evt.Quantity = sl.Quantity
		t.emit(evt)

		index = sl.Index
		return nil
	})
	if err != nil {
		return 0, err
	}
	return index, nil
}

func (im *impl) UnlistAuctionSale(c ctx.Ctx, caller domain.Address, index uint64) error {
	return im.apply(c, "unlistAuctionSale", func(c ctx.Ctx, t *txn) error {
		sl := t.listing(index)
		if sl == nil || sl.Kind != listing.KindAuctionSale {
			return market.ErrNotListedInAuctionSale
		}
		if !caller.Equals(sl.Owner) && !im.isOperator(caller) {
			return market.ErrNotOwnerOrOperator
		}
		if t.bid(index).HasBidder() {
			return market.ErrListingHasBids
		}

		t.deleteListing(index)
		t.deleteBid(index)

		evt := newEvent(event.UnlistedAuctionSale, sl, t.at)
		evt.Actor = caller.ToLower()
		t.emit(evt)
		return nil
	})
}

func (im *impl) PlaceBid(c ctx.Ctx, bidder domain.Address, index uint64, value *big.Int) error {
	return im.apply(c, "placeBid", func(c ctx.Ctx, t *txn) error {
		bidder := bidder.ToLower()

		sl := t.listing(index)
		if sl == nil || sl.Kind != listing.KindAuctionSale {
			return market.ErrNotListedInAuctionSale
		}
		if err := im.checkWhitelisted(c, sl.Token, sl.TokenId); err != nil {
			return err
		}
		if t.now < sl.StartTime {
			return market.ErrAuctionNotStarted
		}
		if t.now >= sl.EndTime {
			return market.ErrAuctionEnded
		}
		if bidder.Equals(sl.Owner) {
			return market.ErrSellerCannotBid
		}
		prev := t.bid(index)
		if prev == nil {
			return market.ErrNotListedInAuctionSale
		}
		if value == nil || value.Cmp(prev.Amount) <= 0 {
			return market.ErrBidTooLow
		}
		cu, err := im.custodian(c, sl.Token)
		if err != nil {
			return err
		}

		// effects
		t.putBid(&listing.HighestBid{
			Index:    index,
			Bidder:   bidder,
			Amount:   new(big.Int).Set(value),
			Escrowed: true,
		})
		evt := newEvent(event.BidPlaced, sl, t.at)
		evt.Actor = bidder
		evt.Amount = value.String()
		t.emit(evt)

		// interactions
		if err := im.pay(c, t, bidder, im.market, value); err != nil {
			return err
		}
		if prev.HasBidder() {
			if err := im.pay(c, t, im.market, prev.Bidder, prev.Amount); err != nil {
				return err
			}
		}
		if !prev.Escrowed {
			return im.move(c, t, cu, sl.Owner, im.market, sl.TokenId, sl.Quantity)
		}
		return nil
	})
}

func (im *impl) EndAuction(c ctx.Ctx, caller domain.Address, index uint64) error {
	return im.apply(c, "endAuction", func(c ctx.Ctx, t *txn) error {
		sl := t.listing(index)
		if sl == nil || sl.Kind != listing.KindAuctionSale {
			return market.ErrNotListedInAuctionSale
		}
		if err := im.checkWhitelisted(c, sl.Token, sl.TokenId); err != nil {
			return err
		}
		bid := t.bid(index)
		if !bid.HasBidder() {
			return market.ErrNobodyPlacedBid
		}
		if t.now < sl.EndTime && !im.isOperator(caller) {
			return market.ErrAuctionInProgress
		}
		cu, err := im.custodian(c, sl.Token)
		if err != nil {
			return err
		}
		shares, err := im.split(c, settlement.ChannelAuctionSale, cu, sl.TokenId, bid.Amount)
		if err != nil {
			return err
		}

		// effects
		t.deleteListing(index)
		t.deleteBid(index)
		evt := newEvent(event.AuctionEnded, sl, t.at)
		evt.Actor = bid.Bidder
		evt.Amount = bid.Amount.String()
		evt.Quantity = sl.Quantity
		t.emit(evt)

		// interactions
		if err := im.payout(c, t, shares, sl.Owner); err != nil {
			return err
		}
		return im.move(c, t, cu, im.market, bid.Bidder, sl.TokenId, sl.Quantity)
	})
}
