package marketclient

import (
	"crypto/ecdsa"
	"errors"
	"net/http"
	"time"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/domain/listing"
)

var (
	ErrStatusCodeNotOk = errors.New("unexpected http status")
	// ErrUnauthorized means the access token is missing or expired, Login again
	ErrUnauthorized = errors.New("unauthorized")
)

// Client talks to the market api as one signer
type Client interface {
	// Login runs the nonce, sign, login round trip and keeps the access token
	Login(c ctx.Ctx) error
	Auctions(c ctx.Ctx, offset, count int) (total int, indices []uint64, err error)
	FixedSales(c ctx.Ctx, offset, count int) (total int, indices []uint64, err error)
	Listing(c ctx.Ctx, index uint64) (*Listing, error)
	// EndAuction returns the *market.Error sentinel when the market rejects it
	EndAuction(c ctx.Ctx, index uint64) error
	// UnlistFixedSale needs the operator signer to remove listings of others
	UnlistFixedSale(c ctx.Ctx, index uint64) error
}

type ClientCfg struct {
	HttpClient http.Client
	Timeout    time.Duration
	// BaseUrl of the api, without trailing slash
	BaseUrl string
	Key     *ecdsa.PrivateKey
}

type Listing struct {
	Listing       *listing.ListingView `json:"listing"`
	FixedListed   bool                 `json:"fixedListed"`
	AuctionListed bool                 `json:"auctionListed"`
	HasBids       bool                 `json:"hasBids"`
	HighestBid    *listing.BidView     `json:"highestBid"`
}
