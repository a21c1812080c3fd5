package vault

import (
	"errors"
	"math/big"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/domain"
)

var (
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInvalidAmount       = errors.New("invalid amount")
)

// Vault holds native currency balances
type Vault interface {
	BalanceOf(c ctx.Ctx, owner domain.Address) (*big.Int, error)
	Transfer(c ctx.Ctx, from, to domain.Address, amount *big.Int) error
}

// Usecase is the devnet balance ledger
type Usecase interface {
	Vault
	Deposit(c ctx.Ctx, to domain.Address, amount *big.Int) error
	Withdraw(c ctx.Ctx, from domain.Address, amount *big.Int) error
}
