package custody

import (
	"errors"
	"math/big"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/domain"
)

var (
	ErrUnknownToken        = errors.New("unknown token contract")
	ErrTokenExists         = errors.New("token contract already registered")
	ErrNotTokenOwner       = errors.New("not the token owner")
	ErrInsufficientBalance = errors.New("insufficient token balance")
	ErrNotApproved         = errors.New("caller is not owner nor approved")
	ErrInvalidQuantity     = errors.New("invalid quantity")
	ErrUnsupported         = errors.New("operation not supported by token standard")
)

// Custodian is the narrow view of one token contract the market relies on.
// BalanceOf is 0 or 1 for an ERC-721 token.
type Custodian interface {
	Address() domain.Address
	Standard() domain.TokenType
	OwnerOf(c ctx.Ctx, id domain.TokenId) (domain.Address, error)
	BalanceOf(c ctx.Ctx, owner domain.Address, id domain.TokenId) (uint64, error)
	IsApprovedForAll(c ctx.Ctx, owner, operator domain.Address) (bool, error)
	// Transfer moves quantity units from -> to. operator must be from or approved by from.
	Transfer(c ctx.Ctx, operator, from, to domain.Address, id domain.TokenId, quantity uint64) error
	// RoyaltyInfo returns the empty address and zero when the token pays no royalty
	RoyaltyInfo(c ctx.Ctx, id domain.TokenId, salePrice *big.Int) (domain.Address, *big.Int, error)
}

type Registry interface {
	Custodian(c ctx.Ctx, token domain.Address) (Custodian, error)
}

type Collection struct {
	Address         domain.Address   `json:"address"`
	Standard        domain.TokenType `json:"standard"`
	RoyaltyReceiver domain.Address   `json:"royaltyReceiver"`
	RoyaltyPercent  uint64           `json:"royaltyPercent"`
}

// Usecase is the devnet token ledger: an in-process stand in for the token
// contracts, able to deploy, mint and approve.
type Usecase interface {
	Registry
	Deploy(c ctx.Ctx, col Collection) error
	Collections(c ctx.Ctx) ([]Collection, error)
	Mint(c ctx.Ctx, token domain.Address, to domain.Address, id domain.TokenId, quantity uint64) error
	SetApprovalForAll(c ctx.Ctx, token domain.Address, owner, operator domain.Address, approved bool) error
}
