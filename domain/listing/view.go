package listing

import (
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/x-xyz/marketcore/domain"
)

// ListingView is how a listing is rendered to clients. Amounts are base 10
// strings in the smallest unit, the *Display fields are scaled by the
// currency decimals.
type ListingView struct {
	Index        uint64           `json:"index"`
	Kind         Kind             `json:"kind"`
	Token        domain.Address   `json:"token"`
	TokenId      domain.TokenId   `json:"tokenId"`
	Standard     domain.TokenType `json:"standard"`
	Owner        domain.Address   `json:"owner"`
	Price        string           `json:"price"`
	PriceDisplay string           `json:"priceDisplay"`
	StartTime    int64            `json:"startTime"`
	EndTime      int64            `json:"endTime"`
	Quantity     uint64           `json:"quantity"`
}

type BidView struct {
	Bidder        domain.Address `json:"bidder"`
	Amount        string         `json:"amount"`
	AmountDisplay string         `json:"amountDisplay"`
}

// FormatAmount scales amount down by decimals, "0" for nil
func FormatAmount(amount *big.Int, decimals int32) string {
	if amount == nil {
		return "0"
	}
	return decimal.NewFromBigInt(amount, -decimals).String()
}

func amountString(amount *big.Int) string {
	if amount == nil {
		return "0"
	}
	return amount.String()
}

func (l *SaleListing) View(decimals int32) *ListingView {
	if l.IsNone() {
		l = Empty()
	}
	return &ListingView{
		Index:        l.Index,
		Kind:         l.Kind,
		Token:        l.Token,
		TokenId:      l.TokenId,
		Standard:     l.Standard,
		Owner:        l.Owner,
		Price:        amountString(l.Price),
		PriceDisplay: FormatAmount(l.Price, decimals),
		StartTime:    l.StartTime,
		EndTime:      l.EndTime,
		Quantity:     l.Quantity,
	}
}

func (b *HighestBid) View(decimals int32) *BidView {
	if b == nil {
		return &BidView{Amount: "0", AmountDisplay: "0"}
	}
	return &BidView{
		Bidder:        b.Bidder,
		Amount:        amountString(b.Amount),
		AmountDisplay: FormatAmount(b.Amount, decimals),
	}
}
