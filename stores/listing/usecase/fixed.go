package usecase

import (
	"math/big"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/domain"
	"github.com/x-xyz/marketcore/domain/custody"
	"github.com/x-xyz/marketcore/domain/event"
	"github.com/x-xyz/marketcore/domain/listing"
	"github.com/x-xyz/marketcore/domain/market"
	"github.com/x-xyz/marketcore/domain/settlement"
)

func (im *impl) ListFixedSale(c ctx.Ctx, caller domain.Address, p listing.FixedSaleParams) (uint64, error) {
	var index uint64
	err := im.apply(c, "listFixedSale", func(c ctx.Ctx, t *txn) error {
		caller, token := caller.ToLower(), p.Token.ToLower()

		if err := im.checkWhitelisted(c, token, p.TokenId); err != nil {
			return err
		}
		if p.Price == nil || p.Price.Sign() <= 0 {
			return market.ErrPriceTooLow
		}
		if p.Expiration <= t.now {
			return market.ErrListingExpired
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
			Kind:      listing.KindFixedSale,
			Token:     token,
			TokenId:   p.TokenId,
			Standard:  cu.Standard(),
			Owner:     caller,
			Price:     new(big.Int).Set(p.Price),
			StartTime: 0,
			EndTime:   p.Expiration,
			Quantity:  p.Quantity,
		}
		t.putListing(sl)

		evt := newEvent(event.ListedFixedSale, sl, t.at)
		evt.Price = sl.Price.String()
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

// checkListable verifies caller may put quantity more units of tokenId up for sale
func (im *impl) checkListable(c ctx.Ctx, t *txn, cu custody.Custodian, caller domain.Address, tokenId domain.TokenId, quantity uint64) error {
	key := assetKey{token: cu.Address(), tokenId: tokenId}

	switch cu.Standard() {
	case domain.TokenType721:
		if quantity != 1 {
			return market.ErrQuantityNotListed
		}
		owner, err := cu.OwnerOf(c, tokenId)
		if err != nil {
			c.WithField("err", err).Error("custodian.OwnerOf failed")
			return err
		}
		if !owner.Equals(caller) {
			return market.ErrNotOwnerOrAlreadyListed
		}
		if _, listed := t.l.byAsset[key]; listed {
			return market.ErrNotOwnerOrAlreadyListed
		}
	case domain.TokenType1155:
		if quantity == 0 {
			return market.ErrQuantityNotListed
		}
		balance, err := cu.BalanceOf(c, caller, tokenId)
		if err != nil {
			c.WithField("err", err).Error("custodian.BalanceOf failed")
			return err
		}
		// units in escrow still belong to the seller but no longer show in its balance
		held := balance + t.l.escrowed(key, caller)
		listed := uint64(0)
		if s, ok := t.l.slices[ownerKey{key, caller}]; ok {
			listed = s.TotalQuantity
		}
		if listed > held || quantity > held-listed {
			return market.ErrNotOwnerOrAlreadyListed
		}
	default:
		return custody.ErrUnsupported
	}

	approved, err := cu.IsApprovedForAll(c, caller, im.market)
	if err != nil {
		c.WithField("err", err).Error("custodian.IsApprovedForAll failed")
		return err
	}
	if !approved {
		return market.ErrMarketNotApproved
	}
	return nil
}

func (im *impl) UnlistFixedSale(c ctx.Ctx, caller domain.Address, index uint64) error {
	return im.apply(c, "unlistFixedSale", func(c ctx.Ctx, t *txn) error {
		sl := t.listing(index)
		if sl == nil || sl.Kind != listing.KindFixedSale {
			return market.ErrNotListedInFixedSale
		}
		if !caller.Equals(sl.Owner) && !im.isOperator(caller) {
			return market.ErrNotOwnerOrOperator
		}

		t.deleteListing(index)

		evt := newEvent(event.UnlistedFixedSale, sl, t.at)
		evt.Actor = caller.ToLower()
		t.emit(evt)
		return nil
	})
}

func (im *impl) BuyFixedSale(c ctx.Ctx, buyer domain.Address, index uint64, quantity uint64, value *big.Int) error {
	return im.apply(c, "buyFixedSale", func(c ctx.Ctx, t *txn) error {
		buyer := buyer.ToLower()

		sl := t.listing(index)
		if sl == nil || sl.Kind != listing.KindFixedSale {
			return market.ErrNotListedInFixedSale
		}
		if err := im.checkWhitelisted(c, sl.Token, sl.TokenId); err != nil {
			return err
		}
		if t.now > sl.EndTime {
			return market.ErrListingExpired
		}
		if quantity == 0 {
			quantity = sl.Quantity
		}
		if quantity > sl.Quantity {
			return market.ErrQuantityNotListed
		}
		cost := sl.Cost(quantity)
		if value == nil || value.Cmp(cost) < 0 {
			return market.ErrInsufficientPayment
		}
		cu, err := im.custodian(c, sl.Token)
		if err != nil {
			return err
		}
		shares, err := im.split(c, settlement.ChannelFixedSale, cu, sl.TokenId, cost)
		if err != nil {
			return err
		}

		// effects
		if quantity == sl.Quantity {
			t.deleteListing(index)
		} else {
			rest := sl.Clone()
			rest.Quantity -= quantity
			t.putListing(rest)
		}
		evt := newEvent(event.BoughtFixedSale, sl, t.at)
		evt.Actor = buyer
		evt.Price = sl.Price.String()
		evt.Amount = cost.String()
		evt.Quantity = quantity
		t.emit(evt)

		// interactions, only the cost is taken from the buyer
		if err := im.pay(c, t, buyer, im.market, cost); err != nil {
			return err
		}
		if err := im.payout(c, t, shares, sl.Owner); err != nil {
			return err
		}
		return im.move(c, t, cu, sl.Owner, buyer, sl.TokenId, quantity)
	})
}
