package listing

import (
	"math/big"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/domain"
)

type Kind string

const (
	KindNone        Kind = "NONE"
	KindFixedSale   Kind = "FIXED_SALE"
	KindAuctionSale Kind = "AUCTION_SALE"
)

// SaleListing is one offer to sell Quantity units of (Token, TokenId).
// For a fixed sale Price is per unit and EndTime is the expiration, for an
// auction Price is the reserve. Times are unix seconds.
type SaleListing struct {
	Index     uint64
	Kind      Kind
	Token     domain.Address
	TokenId   domain.TokenId
	Standard  domain.TokenType
	Owner     domain.Address
	Price     *big.Int
	StartTime int64
	EndTime   int64
	Quantity  uint64
}

// Empty is what every query returns for an absent or hidden listing
func Empty() *SaleListing {
	return &SaleListing{Kind: KindNone, Price: new(big.Int)}
}

func (l *SaleListing) IsNone() bool {
	return l == nil || l.Kind == KindNone || l.Kind == ""
}

func (l *SaleListing) Clone() *SaleListing {
	res := *l
	if l.Price != nil {
		res.Price = new(big.Int).Set(l.Price)
	}
	return &res
}

// Cost is the payment due for quantity units
func (l *SaleListing) Cost(quantity uint64) *big.Int {
	return new(big.Int).Mul(l.Price, new(big.Int).SetUint64(quantity))
}

// HighestBid tracks the leading bid of an auction. Amount starts at the
// minimum a first bid has to beat and Bidder stays empty until then.
// Escrowed is set once the market holds the auctioned units.
type HighestBid struct {
	Index    uint64
	Bidder   domain.Address
	Amount   *big.Int
	Escrowed bool
}

func (b *HighestBid) HasBidder() bool {
	return b != nil && !b.Bidder.IsEmpty()
}

func (b *HighestBid) Clone() *HighestBid {
	res := *b
	if b.Amount != nil {
		res.Amount = new(big.Int).Set(b.Amount)
	}
	return &res
}

// OwnerSlice aggregates the active listings one owner has for one asset
type OwnerSlice struct {
	TotalQuantity uint64   `json:"totalQuantity"`
	Indices       []uint64 `json:"indices"`
}

func (s *OwnerSlice) Clone() *OwnerSlice {
	return &OwnerSlice{
		TotalQuantity: s.TotalQuantity,
		Indices:       append([]uint64{}, s.Indices...),
	}
}

type FixedSaleParams struct {
	Token      domain.Address
	TokenId    domain.TokenId
	Price      *big.Int
	Expiration int64
	Quantity   uint64
}

type AuctionSaleParams struct {
	Token     domain.Address
	TokenId   domain.TokenId
	Price     *big.Int
	StartTime int64
	EndTime   int64
	Quantity  uint64
}

// Snapshot is the persisted ledger as loaded at startup
type Snapshot struct {
	NextIndex uint64
	Listings  []*SaleListing
	Bids      []*HighestBid
}

type Repo interface {
	Load(c ctx.Ctx) (*Snapshot, error)
	SaveListing(c ctx.Ctx, l *SaleListing) error
	RemoveListing(c ctx.Ctx, index uint64) error
	SaveBid(c ctx.Ctx, b *HighestBid) error
	RemoveBid(c ctx.Ctx, index uint64) error
	SaveNextIndex(c ctx.Ctx, next uint64) error
	RunInTransaction(c ctx.Ctx, run func(ctx.Ctx) error) error
}

type Usecase interface {
	ListFixedSale(c ctx.Ctx, caller domain.Address, p FixedSaleParams) (uint64, error)
	ListAuctionSale(c ctx.Ctx, caller domain.Address, p AuctionSaleParams) (uint64, error)
	UnlistFixedSale(c ctx.Ctx, caller domain.Address, index uint64) error
	UnlistAuctionSale(c ctx.Ctx, caller domain.Address, index uint64) error

	// BuyFixedSale buys quantity units, or all of them when quantity is 0.
	// value is what the buyer is willing to pay; only the cost is charged.
	BuyFixedSale(c ctx.Ctx, buyer domain.Address, index uint64, quantity uint64, value *big.Int) error
	PlaceBid(c ctx.Ctx, bidder domain.Address, index uint64, value *big.Int) error
	EndAuction(c ctx.Ctx, caller domain.Address, index uint64) error

	// PruneAsset clears every listing of an asset that is no longer
	// whitelisted, refunding bids and returning escrowed units.
	PruneAsset(c ctx.Ctx, token domain.Address, tokenId domain.TokenId) error
	// PruneDelisted runs PruneAsset for every listed asset that is no longer
	// whitelisted and returns how many assets were pruned.
	PruneDelisted(c ctx.Ctx) (int, error)

	IsFixedSaleListed(c ctx.Ctx, index uint64) (bool, error)
	IsAuctionSaleListed(c ctx.Ctx, index uint64) (bool, error)
	SaleListing(c ctx.Ctx, index uint64) (*SaleListing, error)
	HasBids(c ctx.Ctx, index uint64) (bool, error)
	HighestBid(c ctx.Ctx, index uint64) (*HighestBid, error)
	CountFixedSaleListings(c ctx.Ctx) (int, error)
	ListFixedSaleListings(c ctx.Ctx, offset, count int) ([]uint64, error)
	CountAuctionSaleListings(c ctx.Ctx) (int, error)
	ListAuctionSaleListings(c ctx.Ctx, offset, count int) ([]uint64, error)
	AssetListing(c ctx.Ctx, token domain.Address, tokenId domain.TokenId) (uint64, error)
	SaleListingOwners(c ctx.Ctx, token domain.Address, tokenId domain.TokenId) ([]domain.Address, error)
	OwnerSlice(c ctx.Ctx, token domain.Address, tokenId domain.TokenId, owner domain.Address) (*OwnerSlice, error)
}
