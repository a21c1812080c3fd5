package usecase

import (
	"math/big"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/domain"
	"github.com/x-xyz/marketcore/domain/listing"
)

// visible finds an active listing of kind whose asset is still whitelisted.
// A revoked asset reads as not listed even before it is pruned.
func (im *impl) visible(c ctx.Ctx, l *ledger, index uint64, kind listing.Kind) (*listing.SaleListing, error) {
	sl, ok := l.listings[index]
	if !ok || (kind != listing.KindNone && sl.Kind != kind) {
		return nil, nil
	}
	if ok, err := im.isWhitelisted(c, sl.Token, sl.TokenId); err != nil {
		return nil, err
	} else if !ok {
		return nil, nil
	}
	return sl, nil
}

func (im *impl) IsFixedSaleListed(c ctx.Ctx, index uint64) (bool, error) {
	var res bool
	err := im.view(c, func(l *ledger) error {
		sl, err := im.visible(c, l, index, listing.KindFixedSale)
		res = sl != nil
		return err
	})
	return res, err
}

func (im *impl) IsAuctionSaleListed(c ctx.Ctx, index uint64) (bool, error) {
	var res bool
	err := im.view(c, func(l *ledger) error {
		sl, err := im.visible(c, l, index, listing.KindAuctionSale)
		res = sl != nil
		return err
	})
	return res, err
}

// SaleListing returns listing.Empty() for absent and hidden listings
func (im *impl) SaleListing(c ctx.Ctx, index uint64) (*listing.SaleListing, error) {
	res := listing.Empty()
	err := im.view(c, func(l *ledger) error {
		sl, err := im.visible(c, l, index, listing.KindNone)
		if err != nil {
			return err
		}
		if sl != nil {
			res = sl.Clone()
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (im *impl) HasBids(c ctx.Ctx, index uint64) (bool, error) {
	var res bool
	err := im.view(c, func(l *ledger) error {
		sl, err := im.visible(c, l, index, listing.KindAuctionSale)
		res = sl != nil && l.bids[index].HasBidder()
		return err
	})
	return res, err
}

// HighestBid returns a zero bid when index is not a visible auction
func (im *impl) HighestBid(c ctx.Ctx, index uint64) (*listing.HighestBid, error) {
	res := &listing.HighestBid{Index: index, Bidder: domain.EmptyAddress, Amount: new(big.Int)}
	err := im.view(c, func(l *ledger) error {
		sl, err := im.visible(c, l, index, listing.KindAuctionSale)
		if err != nil {
			return err
		}
		if b, ok := l.bids[index]; ok && sl != nil {
			res = b.Clone()
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// visibleOf returns the visible listings of kind in index order
func (im *impl) visibleOf(c ctx.Ctx, l *ledger, kind listing.Kind) ([]uint64, error) {
	res := []uint64{}
	for _, index := range *l.byKind(kind) {
		sl, err := im.visible(c, l, index, kind)
		if err != nil {
			return nil, err
		}
		if sl != nil {
			res = append(res, index)
		}
	}
	return res, nil
}

func (im *impl) count(c ctx.Ctx, kind listing.Kind) (int, error) {
	var res int
	err := im.view(c, func(l *ledger) error {
		indices, err := im.visibleOf(c, l, kind)
		res = len(indices)
		return err
	})
	return res, err
}

// page returns at most count visible listings of kind starting at offset
func (im *impl) page(c ctx.Ctx, kind listing.Kind, offset, count int) ([]uint64, error) {
	if offset < 0 || count < 0 {
		return nil, domain.ErrBadParamInput
	}
	res := []uint64{}
	err := im.view(c, func(l *ledger) error {
		indices, err := im.visibleOf(c, l, kind)
		if err != nil {
			return err
		}
		if offset >= len(indices) {
			return nil
		}
		end := len(indices)
		if count < end-offset {
			end = offset + count
		}
		res = append(res, indices[offset:end]...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (im *impl) CountFixedSaleListings(c ctx.Ctx) (int, error) {
	return im.count(c, listing.KindFixedSale)
}

// ListFixedSaleListings pages through visible fixed sales in index order
func (im *impl) ListFixedSaleListings(c ctx.Ctx, offset, count int) ([]uint64, error) {
	return im.page(c, listing.KindFixedSale, offset, count)
}

func (im *impl) CountAuctionSaleListings(c ctx.Ctx) (int, error) {
	return im.count(c, listing.KindAuctionSale)
}

// ListAuctionSaleListings pages through visible auctions in index order
func (im *impl) ListAuctionSaleListings(c ctx.Ctx, offset, count int) ([]uint64, error) {
	return im.page(c, listing.KindAuctionSale, offset, count)
}

// AssetListing returns the index of the listing of an ERC-721 asset, 0 when there is none
func (im *impl) AssetListing(c ctx.Ctx, token domain.Address, tokenId domain.TokenId) (uint64, error) {
	var res uint64
	err := im.view(c, func(l *ledger) error {
		index, ok := l.byAsset[assetKey{token: token.ToLower(), tokenId: tokenId}]
		if !ok {
			return nil
		}
		sl, err := im.visible(c, l, index, listing.KindNone)
		if sl != nil {
			res = index
		}
		return err
	})
	return res, err
}

func (im *impl) SaleListingOwners(c ctx.Ctx, token domain.Address, tokenId domain.TokenId) ([]domain.Address, error) {
	token = token.ToLower()
	res := []domain.Address{}
	err := im.view(c, func(l *ledger) error {
		owners, ok := l.owners[assetKey{token: token, tokenId: tokenId}]
		if !ok {
			return nil
		}
		if ok, err := im.isWhitelisted(c, token, tokenId); err != nil || !ok {
			return err
		}
		res = append(res, owners...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (im *impl) OwnerSlice(c ctx.Ctx, token domain.Address, tokenId domain.TokenId, owner domain.Address) (*listing.OwnerSlice, error) {
	token = token.ToLower()
	res := &listing.OwnerSlice{Indices: []uint64{}}
	err := im.view(c, func(l *ledger) error {
		s, ok := l.slices[ownerKey{assetKey{token: token, tokenId: tokenId}, owner.ToLower()}]
		if !ok {
			return nil
		}
		if ok, err := im.isWhitelisted(c, token, tokenId); err != nil || !ok {
			return err
		}
		res = s.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
