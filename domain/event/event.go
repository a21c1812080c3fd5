package event

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/google/uuid"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/domain"
)

type Name string

const (
	ListedFixedSale     Name = "ListedFixedSale"
	UnlistedFixedSale   Name = "UnlistedFixedSale"
	BoughtFixedSale     Name = "BoughtFixedSale"
	ListedAuctionSale   Name = "ListedAuctionSale"
	UnlistedAuctionSale Name = "UnlistedAuctionSale"
	BidPlaced           Name = "BidPlaced"
	AuctionEnded        Name = "AuctionEnded"
)

var signatures = map[Name]string{
	ListedFixedSale:     "ListedFixedSale(address,uint256,address,uint256,uint256,uint256,uint256)",
	UnlistedFixedSale:   "UnlistedFixedSale(address,uint256,address,uint256)",
	BoughtFixedSale:     "BoughtFixedSale(address,uint256,address,uint256,uint256)",
	ListedAuctionSale:   "ListedAuctionSale(address,uint256,address,uint256,uint256,uint256,uint256,uint256)",
	UnlistedAuctionSale: "UnlistedAuctionSale(address,uint256,address,uint256)",
	BidPlaced:           "BidPlaced(uint256,address,uint256)",
	AuctionEnded:        "AuctionEnded(uint256,address,uint256)",
}

// Signature is the solidity style event signature indexers match on
func (n Name) Signature() string {
	return signatures[n]
}

// Topic is keccak256 of the signature, the topic0 an indexer would filter by
func (n Name) Topic() common.Hash {
	return crypto.Keccak256Hash([]byte(n.Signature()))
}

// Event records one ledger transition. Amounts are base 10 strings;
// Price is the listing price and Amount the value moved by a bid, a sale or a settlement.
type Event struct {
	Id           string         `json:"id" bson:"_id"`
	Name         Name           `json:"name" bson:"name"`
	Topic        string         `json:"topic" bson:"topic"`
	ListingIndex uint64         `json:"listingIndex" bson:"listingIndex"`
	Token        domain.Address `json:"token,omitempty" bson:"token,omitempty"`
	TokenId      domain.TokenId `json:"tokenId,omitempty" bson:"tokenId,omitempty"`
	Owner        domain.Address `json:"owner,omitempty" bson:"owner,omitempty"`
	Actor        domain.Address `json:"actor,omitempty" bson:"actor,omitempty"`
	Price        string         `json:"price,omitempty" bson:"price,omitempty"`
	Amount       string         `json:"amount,omitempty" bson:"amount,omitempty"`
	Quantity     uint64         `json:"quantity,omitempty" bson:"quantity,omitempty"`
	StartTime    int64          `json:"startTime,omitempty" bson:"startTime,omitempty"`
	EndTime      int64          `json:"endTime,omitempty" bson:"endTime,omitempty"`
	CreatedAt    time.Time      `json:"createdAt" bson:"createdAt"`
}

// New returns an event with a fresh id and its topic filled in
func New(name Name, index uint64, at time.Time) *Event {
	return &Event{
		Id:           uuid.New().String(),
		Name:         name,
		Topic:        name.Topic().Hex(),
		ListingIndex: index,
		CreatedAt:    at,
	}
}

type Repo interface {
	Insert(c ctx.Ctx, evts []*Event) error
	FindByListing(c ctx.Ctx, index uint64, offset, limit int) ([]*Event, error)
}

// Notifier pushes an event somewhere outside the service
type Notifier interface {
	Notify(c ctx.Ctx, evt *Event) error
}

type Usecase interface {
	// Store persists events as part of the ledger transaction running in c
	Store(c ctx.Ctx, evts []*Event) error
	// Publish fans committed events out to the notifiers without blocking
	Publish(c ctx.Ctx, evts []*Event)
	FindByListing(c ctx.Ctx, index uint64, offset, limit int) ([]*Event, error)
}
