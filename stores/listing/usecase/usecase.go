package usecase

import (
	"errors"
	"math/big"
	"sync"
	"time"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/base/log"
	"github.com/x-xyz/marketcore/base/metrics"
	"github.com/x-xyz/marketcore/domain"
	"github.com/x-xyz/marketcore/domain/custody"
	"github.com/x-xyz/marketcore/domain/event"
	"github.com/x-xyz/marketcore/domain/listing"
	"github.com/x-xyz/marketcore/domain/market"
	"github.com/x-xyz/marketcore/domain/settlement"
	"github.com/x-xyz/marketcore/domain/vault"
	"github.com/x-xyz/marketcore/domain/whitelist"
)

// ctx key marking a call chain that is inside a market operation
const opKey = "marketOp"

type ListingUseCaseCfg struct {
	Repo         listing.Repo
	WhitelistUC  whitelist.Usecase
	Custody      custody.Registry
	Vault        vault.Vault
	SettlementUC settlement.Usecase
	EventUC      event.Usecase

	// MarketAddress holds escrowed tokens and bids
	MarketAddress domain.Address
	Operator      domain.Address

	// Now defaults to time.Now
	Now func() time.Time
}

type impl struct {
	repo         listing.Repo
	whitelistUC  whitelist.Usecase
	custody      custody.Registry
	vault        vault.Vault
	settlementUC settlement.Usecase
	eventUC      event.Usecase

	market   domain.Address
	operator domain.Address
	now      func() time.Time
	met      metrics.Service

	// mu serializes every operation: one writer applies at a time
	mu     sync.RWMutex
	ledger *ledger
}

// New loads the persisted ledger and rebuilds its indices
func New(c ctx.Ctx, cfg *ListingUseCaseCfg) (listing.Usecase, error) {
	snap, err := cfg.Repo.Load(c)
	if err != nil {
		c.WithField("err", err).Error("repo.Load failed")
		return nil, err
	}

	l := newLedger()
	l.load(snap)

	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	c.WithFields(log.Fields{
		"listings":  len(l.listings),
		"fixed":     len(l.fixed),
		"auctions":  len(l.auctions),
		"nextIndex": l.nextIndex,
	}).Info("listing ledger loaded")

	return &impl{
		repo:         cfg.Repo,
		whitelistUC:  cfg.WhitelistUC,
		custody:      cfg.Custody,
		vault:        cfg.Vault,
		settlementUC: cfg.SettlementUC,
		eventUC:      cfg.EventUC,
		market:       cfg.MarketAddress.ToLower(),
		operator:     cfg.Operator.ToLower(),
		now:          now,
		met:          metrics.New("listing"),
		ledger:       l,
	}, nil
}

// apply runs fn as one atomic operation. fn does its checks, then mutates the
// ledger through t, then moves value and custody. Any failure, including one
// while persisting, reverts the interactions and the ledger.
func (im *impl) apply(c ctx.Ctx, op string, fn func(c ctx.Ctx, t *txn) error) error {
	if ctx.Value(c, opKey) != nil {
		im.met.BumpSum("apply.err", 1, "op", op, "code", string(market.ErrReentrantCall.Code))
		return market.ErrReentrantCall
	}
	defer im.met.BumpTime("apply.time", "op", op).End()

	im.mu.Lock()
	defer im.mu.Unlock()

	c = ctx.WithValue(c, opKey, op)
	t := newTxn(im.ledger, im.now())

	if err := fn(c, t); err != nil {
		im.abort(c, t)
		im.met.BumpSum("apply.err", 1, "op", op, "code", errCode(err))
		return err
	}

	if err := im.repo.RunInTransaction(c, func(c ctx.Ctx) error {
		return im.persist(c, t)
	}); err != nil {
		c.WithField("err", err).Error("repo.RunInTransaction failed")
		im.abort(c, t)
		im.met.BumpSum("apply.err", 1, "op", op, "code", errCode(err))
		return err
	}

	if len(t.events) > 0 {
		im.eventUC.Publish(c, t.events)
	}
	return nil
}

func (im *impl) abort(c ctx.Ctx, t *txn) {
	for i := len(t.compensations) - 1; i >= 0; i-- {
		comp := t.compensations[i]
		if err := comp.run(); err != nil {
			// nothing left to fall back on, the operator has to reconcile by hand
			c.WithFields(log.Fields{
				"err":          err,
				"compensation": comp.name,
			}).Error("compensation failed")
			im.met.BumpSum("compensation.err", 1, "name", comp.name)
		}
	}
	t.rollback()
}

func (im *impl) persist(c ctx.Ctx, t *txn) error {
	for _, index := range t.dirtyListings() {
		if sl, ok := t.l.listings[index]; ok {
			if err := im.repo.SaveListing(c, sl); err != nil {
				c.WithField("err", err).Error("repo.SaveListing failed")
				return err
			}
		} else if err := im.repo.RemoveListing(c, index); err != nil {
			c.WithField("err", err).Error("repo.RemoveListing failed")
			return err
		}
	}
	for _, index := range t.dirtyBids() {
		if b, ok := t.l.bids[index]; ok {
			if err := im.repo.SaveBid(c, b); err != nil {
				c.WithField("err", err).Error("repo.SaveBid failed")
				return err
			}
		} else if err := im.repo.RemoveBid(c, index); err != nil {
			c.WithField("err", err).Error("repo.RemoveBid failed")
			return err
		}
	}
	if t.allocated {
		if err := im.repo.SaveNextIndex(c, t.l.nextIndex); err != nil {
			c.WithField("err", err).Error("repo.SaveNextIndex failed")
			return err
		}
	}
	if len(t.events) > 0 {
		if err := im.eventUC.Store(c, t.events); err != nil {
			c.WithField("err", err).Error("eventUC.Store failed")
			return err
		}
	}
	return nil
}

// view runs fn under the read lock
func (im *impl) view(c ctx.Ctx, fn func(l *ledger) error) error {
	if ctx.Value(c, opKey) != nil {
		return market.ErrReentrantCall
	}
	im.mu.RLock()
	defer im.mu.RUnlock()
	return fn(im.ledger)
}

func (im *impl) isWhitelisted(c ctx.Ctx, token domain.Address, tokenId domain.TokenId) (bool, error) {
	ok, err := im.whitelistUC.IsWhitelisted(c, token, tokenId)
	if err != nil {
		c.WithField("err", err).Error("whitelistUC.IsWhitelisted failed")
		return false, err
	}
	return ok, nil
}

func (im *impl) checkWhitelisted(c ctx.Ctx, token domain.Address, tokenId domain.TokenId) error {
	if ok, err := im.isWhitelisted(c, token, tokenId); err != nil {
		return err
	} else if !ok {
		return market.ErrNotWhitelisted
	}
	return nil
}

func (im *impl) custodian(c ctx.Ctx, token domain.Address) (custody.Custodian, error) {
	cu, err := im.custody.Custodian(c, token)
	if err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"token": token,
		}).Error("custody.Custodian failed")
		return nil, err
	}
	return cu, nil
}

func (im *impl) isOperator(addr domain.Address) bool {
	return !im.operator.IsEmpty() && addr.Equals(im.operator)
}

// pay moves amount and registers the reverse transfer. Zero amounts are skipped.
func (im *impl) pay(c ctx.Ctx, t *txn, from, to domain.Address, amount *big.Int) error {
	if amount == nil || amount.Sign() == 0 {
		return nil
	}
	if err := im.vault.Transfer(c, from, to, amount); err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"from":   from,
			"to":     to,
			"amount": amount.String(),
		}).Error("vault.Transfer failed")
		return err
	}
	t.compensate("vault.Transfer", func() error {
		return im.vault.Transfer(c, to, from, amount)
	})
	return nil
}

// move transfers tokens with the market as operator. The reverse transfer is
// issued by the receiver itself, so it never depends on approvals.
func (im *impl) move(c ctx.Ctx, t *txn, cu custody.Custodian, from, to domain.Address, tokenId domain.TokenId, quantity uint64) error {
	if err := cu.Transfer(c, im.market, from, to, tokenId, quantity); err != nil {
		c.WithFields(log.Fields{
			"err":      err,
			"token":    cu.Address(),
			"tokenId":  tokenId,
			"from":     from,
			"to":       to,
			"quantity": quantity,
		}).Error("custodian.Transfer failed")
		return err
	}
	t.compensate("custodian.Transfer", func() error {
		return cu.Transfer(c, to, to, from, tokenId, quantity)
	})
	return nil
}

// payout pays every share out of the market
func (im *impl) payout(c ctx.Ctx, t *txn, shares *settlement.Shares, seller domain.Address) error {
	if err := im.pay(c, t, im.market, shares.CommissionReceiver, shares.Commission); err != nil {
		return err
	}
	if err := im.pay(c, t, im.market, shares.RoyaltyReceiver, shares.Royalty); err != nil {
		return err
	}
	return im.pay(c, t, im.market, seller, shares.Seller)
}

func (im *impl) split(c ctx.Ctx, channel settlement.Channel, cu custody.Custodian, tokenId domain.TokenId, gross *big.Int) (*settlement.Shares, error) {
	shares, err := im.settlementUC.Split(c, channel, gross, func(net *big.Int) (domain.Address, *big.Int, error) {
		return cu.RoyaltyInfo(c, tokenId, net)
	})
	if err != nil {
		c.WithField("err", err).Error("settlementUC.Split failed")
		return nil, err
	}
	return shares, nil
}

func newEvent(name event.Name, sl *listing.SaleListing, at time.Time) *event.Event {
	evt := event.New(name, sl.Index, at)
	evt.Token = sl.Token
	evt.TokenId = sl.TokenId
	evt.Owner = sl.Owner
	return evt
}

func errCode(err error) string {
	var e *market.Error
	if errors.As(err, &e) {
		return string(e.Code)
	}
	return "internal"
}
