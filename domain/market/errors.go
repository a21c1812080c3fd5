package market

import "errors"

// Code identifies a rejected market operation
type Code string

// Error is returned when a market operation is rejected. Nothing the
// operation touched has changed when it is returned.
type Error struct {
	Code   Code
	Reason string
}

func (e *Error) Error() string {
	return e.Reason
}

// Is matches any *Error with the same code, so wrapped errors still compare
// equal to the sentinels below with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

var byCode = map[Code]*Error{}

func newError(code Code, reason string) *Error {
	e := &Error{Code: code, Reason: reason}
	byCode[code] = e
	return e
}

// FromCode returns the sentinel registered for code
func FromCode(code Code) (*Error, bool) {
	e, ok := byCode[code]
	return e, ok
}

var (
	ErrNotWhitelisted          = newError("NotWhitelisted", "not whitelisted")
	ErrPriceTooLow             = newError("PriceTooLow", "price too low")
	ErrNotOwnerOrAlreadyListed = newError("NotOwnerOrAlreadyListed", "not the nft owner or quantity already listed")
	ErrNotListedInFixedSale    = newError("NotListedInFixedSale", "not listed in fixed sale")
	ErrNotListedInAuctionSale  = newError("NotListedInAuctionSale", "not listed in auction sale")
	ErrListingExpired          = newError("ListingExpired", "listing expired")
	ErrInsufficientPayment     = newError("InsufficientPayment", "not enough payment")
	ErrAuctionWrongTime        = newError("AuctionWrongTime", "auction wrong time")
	ErrAuctionNotStarted       = newError("AuctionNotStarted", "auction not started")
	ErrAuctionEnded            = newError("AuctionEnded", "auction ended")
	ErrBidTooLow               = newError("BidTooLow", "bid is too low")
	ErrListingHasBids          = newError("ListingHasBids", "listing has bids")
	ErrNobodyPlacedBid         = newError("NobodyPlacedBid", "nobody placed bid")
	ErrNotOwnerOrOperator      = newError("NotOwnerOrOperator", "not the nft owner or contract operator")
	ErrQuantityNotListed       = newError("QuantityNotListed", "quantity not listed")

	ErrMarketNotApproved     = newError("MarketNotApproved", "market is not approved for the token")
	ErrAuctionInProgress     = newError("AuctionInProgress", "auction has not reached its end time")
	ErrSellerCannotBid       = newError("SellerCannotBid", "seller cannot bid on own listing")
	ErrNotOperator           = newError("NotOperator", "not the contract operator")
	ErrInvalidPercent        = newError("InvalidPercent", "percent must be between 0 and 100")
	ErrRoyaltyExceedsProceed = newError("RoyaltyExceedsProceed", "royalty exceeds seller proceeds")
	ErrReentrantCall         = newError("ReentrantCall", "reentrant call")
)

// Structural reports whether retrying err without changing the ledger can
// never succeed, which is true for every rejection except a reentrant call.
func Structural(err error) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Code != ErrReentrantCall.Code
}
