package settlement

import (
	"math/big"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/domain"
)

// Channel selects which commission percent applies
type Channel string

const (
	ChannelFixedSale   Channel = "fixed"
	ChannelAuctionSale Channel = "auction"
)

type Config struct {
	FixedComPercent        uint64         `json:"fixedComPercent" bson:"fixedComPercent"`
	AuctionComPercent      uint64         `json:"auctionComPercent" bson:"auctionComPercent"`
	MinBidIncrementPercent uint64         `json:"minBidIncrementPercent" bson:"minBidIncrementPercent"`
	CommissionAddress      domain.Address `json:"commissionAddress" bson:"commissionAddress"`
}

// Shares is how a gross amount is paid out. Seller + Commission + Royalty
// always equals Gross.
type Shares struct {
	Gross              *big.Int
	Commission         *big.Int
	CommissionReceiver domain.Address
	Royalty            *big.Int
	RoyaltyReceiver    domain.Address
	Seller             *big.Int
}

// RoyaltyFunc quotes the creator royalty owed on the proceeds left after commission
type RoyaltyFunc func(net *big.Int) (receiver domain.Address, amount *big.Int, err error)

type Repo interface {
	// Get returns domain.ErrNotFound before the first Upsert
	Get(c ctx.Ctx) (*Config, error)
	Upsert(c ctx.Ctx, cfg *Config) error
}

type Usecase interface {
	Config(c ctx.Ctx) Config
	// MinBid is the amount a first bid on an auction with this reserve has to beat
	MinBid(c ctx.Ctx, reserve *big.Int) *big.Int
	Split(c ctx.Ctx, channel Channel, gross *big.Int, royalty RoyaltyFunc) (*Shares, error)

	SetFixedComPercent(c ctx.Ctx, caller domain.Address, percent uint64) error
	SetAuctionComPercent(c ctx.Ctx, caller domain.Address, percent uint64) error
	SetMinBidIncrementPercent(c ctx.Ctx, caller domain.Address, percent uint64) error
	SetCommissionAddress(c ctx.Ctx, caller domain.Address, address domain.Address) error
}
