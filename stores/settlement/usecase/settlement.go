package usecase

import (
	"errors"
	"math/big"
	"sync"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/domain"
	"github.com/x-xyz/marketcore/domain/market"
	"github.com/x-xyz/marketcore/domain/settlement"
)

type SettlementUseCaseCfg struct {
	Repo     settlement.Repo
	Operator domain.Address
	// Defaults apply until the operator changes a setting for the first time
	Defaults settlement.Config
}

type impl struct {
	repo     settlement.Repo
	operator domain.Address

	mu  sync.RWMutex
	cfg settlement.Config
}

func New(c ctx.Ctx, cfg *SettlementUseCaseCfg) (settlement.Usecase, error) {
	current, err := cfg.Repo.Get(c)
	if errors.Is(err, domain.ErrNotFound) {
		current = &cfg.Defaults
	} else if err != nil {
		c.WithField("err", err).Error("repo.Get failed")
		return nil, err
	}

	res := *current
	if res.FixedComPercent > 100 || res.AuctionComPercent > 100 {
		return nil, market.ErrInvalidPercent
	}
	res.CommissionAddress = res.CommissionAddress.ToLower()
	if res.CommissionAddress.IsEmpty() {
		res.CommissionAddress = cfg.Operator.ToLower()
	}

	return &impl{
		repo:     cfg.Repo,
		operator: cfg.Operator.ToLower(),
		cfg:      res,
	}, nil
}

func (im *impl) Config(c ctx.Ctx) settlement.Config {
	im.mu.RLock()
	defer im.mu.RUnlock()
	return im.cfg
}

func (im *impl) MinBid(c ctx.Ctx, reserve *big.Int) *big.Int {
	cfg := im.Config(c)
	inc := percentOf(reserve, cfg.MinBidIncrementPercent)
	return inc.Add(inc, reserve)
}

func (im *impl) Split(c ctx.Ctx, channel settlement.Channel, gross *big.Int, royalty settlement.RoyaltyFunc) (*settlement.Shares, error) {
	if gross == nil || gross.Sign() < 0 {
		return nil, domain.ErrBadParamInput
	}
	cfg := im.Config(c)

	var percent uint64
	switch channel {
	case settlement.ChannelFixedSale:
		percent = cfg.FixedComPercent
	case settlement.ChannelAuctionSale:
		percent = cfg.AuctionComPercent
	default:
		return nil, domain.ErrBadParamInput
	}

	res := &settlement.Shares{
		Gross:              new(big.Int).Set(gross),
		Commission:         percentOf(gross, percent),
		CommissionReceiver: cfg.CommissionAddress,
		Royalty:            new(big.Int),
		RoyaltyReceiver:    domain.EmptyAddress,
	}
	net := new(big.Int).Sub(gross, res.Commission)

	if royalty != nil {
		receiver, amount, err := royalty(net)
		if err != nil {
			c.WithField("err", err).Error("royalty failed")
			return nil, err
		}
		if amount != nil && amount.Sign() > 0 && !receiver.IsEmpty() {
			if amount.Cmp(net) > 0 {
				return nil, market.ErrRoyaltyExceedsProceed
			}
			res.Royalty.Set(amount)
			res.RoyaltyReceiver = receiver.ToLower()
		}
	}

	res.Seller = net.Sub(net, res.Royalty)
	return res, nil
}

func (im *impl) SetFixedComPercent(c ctx.Ctx, caller domain.Address, percent uint64) error {
	return im.update(c, caller, func(cfg *settlement.Config) error {
		if percent > 100 {
			return market.ErrInvalidPercent
		}
		cfg.FixedComPercent = percent
		return nil
	})
}

func (im *impl) SetAuctionComPercent(c ctx.Ctx, caller domain.Address, percent uint64) error {
	return im.update(c, caller, func(cfg *settlement.Config) error {
		if percent > 100 {
			return market.ErrInvalidPercent
		}
		cfg.AuctionComPercent = percent
		return nil
	})
}

func (im *impl) SetMinBidIncrementPercent(c ctx.Ctx, caller domain.Address, percent uint64) error {
	return im.update(c, caller, func(cfg *settlement.Config) error {
		if percent > 100 {
			return market.ErrInvalidPercent
		}
		cfg.MinBidIncrementPercent = percent
		return nil
	})
}

func (im *impl) SetCommissionAddress(c ctx.Ctx, caller domain.Address, address domain.Address) error {
	return im.update(c, caller, func(cfg *settlement.Config) error {
		if !address.IsValid() || address.IsEmpty() {
			return domain.ErrInvalidAddress
		}
		cfg.CommissionAddress = address.ToLower()
		return nil
	})
}

// update applies change to a copy and only swaps it in once it is stored
func (im *impl) update(c ctx.Ctx, caller domain.Address, change func(*settlement.Config) error) error {
	if !caller.Equals(im.operator) {
		return market.ErrNotOperator
	}

	im.mu.Lock()
	defer im.mu.Unlock()

	next := im.cfg
	if err := change(&next); err != nil {
		return err
	}
	if err := im.repo.Upsert(c, &next); err != nil {
		c.WithField("err", err).Error("repo.Upsert failed")
		return err
	}
	im.cfg = next
	return nil
}

func percentOf(amount *big.Int, percent uint64) *big.Int {
	res := new(big.Int).Mul(amount, new(big.Int).SetUint64(percent))
	return res.Quo(res, domain.Big100)
}
