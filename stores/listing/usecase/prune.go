package usecase

import (
	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/base/log"
	"github.com/x-xyz/marketcore/domain"
	"github.com/x-xyz/marketcore/domain/event"
	"github.com/x-xyz/marketcore/domain/listing"
)

// PruneAsset is a no-op while the asset is still whitelisted
func (im *impl) PruneAsset(c ctx.Ctx, token domain.Address, tokenId domain.TokenId) error {
	return im.apply(c, "pruneAsset", func(c ctx.Ctx, t *txn) error {
		token := token.ToLower()

		if ok, err := im.isWhitelisted(c, token, tokenId); err != nil {
			return err
		} else if ok {
			return nil
		}

		indices := t.l.assetIndices(assetKey{token: token, tokenId: tokenId})
		if len(indices) == 0 {
			return nil
		}
		cu, err := im.custodian(c, token)
		if err != nil {
			return err
		}

		for _, index := range indices {
			sl := t.listing(index)
			bid := t.bid(index)

			t.deleteListing(index)
			name := event.UnlistedFixedSale
			if sl.Kind == listing.KindAuctionSale {
				name = event.UnlistedAuctionSale
				t.deleteBid(index)
			}
			evt := newEvent(name, sl, t.at)
			evt.Actor = im.operator
			t.emit(evt)

			if bid.HasBidder() {
				if err := im.pay(c, t, im.market, bid.Bidder, bid.Amount); err != nil {
					return err
				}
			}
			if bid != nil && bid.Escrowed {
				if err := im.move(c, t, cu, im.market, sl.Owner, sl.TokenId, sl.Quantity); err != nil {
					return err
				}
			}
		}

		c.WithFields(log.Fields{
			"token":    token,
			"tokenId":  tokenId,
			"listings": len(indices),
		}).Info("asset pruned")
		return nil
	})
}

// PruneDelisted prunes every listed asset that is no longer whitelisted and
// returns how many were pruned. It picks up removals whose hooks failed.
func (im *impl) PruneDelisted(c ctx.Ctx) (int, error) {
	keys := []assetKey{}
	if err := im.view(c, func(l *ledger) error {
		seen := map[assetKey]bool{}
		for _, index := range l.sortedIndices() {
			key := keyOf(l.listings[index])
			if !seen[key] {
				seen[key] = true
				keys = append(keys, key)
			}
		}
		return nil
	}); err != nil {
		return 0, err
	}

	pruned := 0
	for _, key := range keys {
		if ok, err := im.isWhitelisted(c, key.token, key.tokenId); err != nil {
			return pruned, err
		} else if ok {
			continue
		}
		if err := im.PruneAsset(c, key.token, key.tokenId); err != nil {
			c.WithFields(log.Fields{
				"err":     err,
				"token":   key.token,
				"tokenId": key.tokenId,
			}).Error("PruneAsset failed")
			return pruned, err
		}
		pruned++
	}
	return pruned, nil
}
