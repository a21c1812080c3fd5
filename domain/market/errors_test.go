package market

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/xerrors"
)

func TestErrorIs(t *testing.T) {
	wrapped := xerrors.Errorf("buy listing 3: %w", ErrListingExpired)
	assert.True(t, errors.Is(wrapped, ErrListingExpired))
	assert.False(t, errors.Is(wrapped, ErrAuctionEnded))
	assert.True(t, errors.Is(&Error{Code: "BidTooLow", Reason: "remote"}, ErrBidTooLow))
}

func TestFromCode(t *testing.T) {
	e, ok := FromCode("NobodyPlacedBid")
	assert.True(t, ok)
	assert.Equal(t, ErrNobodyPlacedBid, e)

	_, ok = FromCode("Unknown")
	assert.False(t, ok)
}

func TestStructural(t *testing.T) {
	assert.True(t, Structural(ErrNobodyPlacedBid))
	assert.True(t, Structural(xerrors.Errorf("end auction: %w", ErrNotListedInAuctionSale)))
	assert.False(t, Structural(ErrReentrantCall))
	assert.False(t, Structural(errors.New("connection reset")))
}
