package event

import (
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
)

func TestTopic(t *testing.T) {
	for name, sig := range signatures {
		assert.Equal(t, crypto.Keccak256Hash([]byte(sig)), name.Topic(), name)
	}
	assert.NotEqual(t, BidPlaced.Topic(), AuctionEnded.Topic())
}

func TestNew(t *testing.T) {
	now := time.Unix(1700000000, 0)
	a := New(BidPlaced, 4, now)
	b := New(BidPlaced, 4, now)
	assert.NotEqual(t, a.Id, b.Id)
	assert.Equal(t, BidPlaced.Topic().Hex(), a.Topic)
	assert.Equal(t, uint64(4), a.ListingIndex)
	assert.Equal(t, now, a.CreatedAt)
}
