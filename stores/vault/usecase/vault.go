package usecase

import (
	"math/big"
	"sync"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/domain"
	"github.com/x-xyz/marketcore/domain/vault"
)

// impl is the devnet native currency ledger
type impl struct {
	mu       sync.RWMutex
	balances map[domain.Address]*big.Int
}

func New() vault.Usecase {
	return &impl{
		balances: make(map[domain.Address]*big.Int),
	}
}

func (im *impl) BalanceOf(c ctx.Ctx, owner domain.Address) (*big.Int, error) {
	im.mu.RLock()
	defer im.mu.RUnlock()
	return new(big.Int).Set(im.balanceOf(owner.ToLower())), nil
}

func (im *impl) Transfer(c ctx.Ctx, from, to domain.Address, amount *big.Int) error {
	if amount == nil || amount.Sign() < 0 {
		return vault.ErrInvalidAmount
	}
	if to.IsEmpty() {
		return domain.ErrInvalidAddress
	}
	from, to = from.ToLower(), to.ToLower()

	im.mu.Lock()
	defer im.mu.Unlock()

	if im.balanceOf(from).Cmp(amount) < 0 {
		return vault.ErrInsufficientBalance
	}
	im.balances[from] = new(big.Int).Sub(im.balanceOf(from), amount)
	im.balances[to] = new(big.Int).Add(im.balanceOf(to), amount)
	return nil
}

func (im *impl) Deposit(c ctx.Ctx, to domain.Address, amount *big.Int) error {
	if amount == nil || amount.Sign() <= 0 {
		return vault.ErrInvalidAmount
	}
	if !to.IsValid() || to.IsEmpty() {
		return domain.ErrInvalidAddress
	}
	to = to.ToLower()

	im.mu.Lock()
	defer im.mu.Unlock()

	im.balances[to] = new(big.Int).Add(im.balanceOf(to), amount)
	return nil
}

func (im *impl) Withdraw(c ctx.Ctx, from domain.Address, amount *big.Int) error {
	if amount == nil || amount.Sign() <= 0 {
		return vault.ErrInvalidAmount
	}
	from = from.ToLower()

	im.mu.Lock()
	defer im.mu.Unlock()

	if im.balanceOf(from).Cmp(amount) < 0 {
		return vault.ErrInsufficientBalance
	}
	im.balances[from] = new(big.Int).Sub(im.balanceOf(from), amount)
	return nil
}

func (im *impl) balanceOf(owner domain.Address) *big.Int {
	if b, ok := im.balances[owner]; ok {
		return b
	}
	return domain.Big0
}
