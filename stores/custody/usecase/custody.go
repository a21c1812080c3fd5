package usecase

import (
	"math/big"
	"sort"
	"sync"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/domain"
	"github.com/x-xyz/marketcore/domain/custody"
)

type collection struct {
	custody.Collection

	// ERC-721 holders
	owners map[domain.TokenId]domain.Address
	// ERC-1155 balances
	balances  map[domain.TokenId]map[domain.Address]uint64
	approvals map[domain.Address]map[domain.Address]bool
}

// impl keeps every deployed collection in memory. It stands in for the token
// contracts on devnet, where the whole market runs in one process.
type impl struct {
	mu          sync.RWMutex
	collections map[domain.Address]*collection
}

func New() custody.Usecase {
	return &impl{
		collections: make(map[domain.Address]*collection),
	}
}

func (im *impl) Deploy(c ctx.Ctx, col custody.Collection) error {
	if !col.Address.IsValid() || col.Address.IsEmpty() {
		return domain.ErrInvalidAddress
	}
	if !col.Standard.IsValid() || col.RoyaltyPercent > 100 {
		return domain.ErrBadParamInput
	}
	if !col.RoyaltyReceiver.IsEmpty() && !col.RoyaltyReceiver.IsValid() {
		return domain.ErrInvalidAddress
	}
	col.Address = col.Address.ToLower()
	col.RoyaltyReceiver = col.RoyaltyReceiver.ToLower()

	im.mu.Lock()
	defer im.mu.Unlock()

	if _, ok := im.collections[col.Address]; ok {
		return custody.ErrTokenExists
	}
	im.collections[col.Address] = &collection{
		Collection: col,
		owners:     make(map[domain.TokenId]domain.Address),
		balances:   make(map[domain.TokenId]map[domain.Address]uint64),
		approvals:  make(map[domain.Address]map[domain.Address]bool),
	}
	c.WithField("collection", col).Info("collection deployed")
	return nil
}

func (im *impl) Collections(c ctx.Ctx) ([]custody.Collection, error) {
	im.mu.RLock()
	defer im.mu.RUnlock()

	res := make([]custody.Collection, 0, len(im.collections))
	for _, col := range im.collections {
		res = append(res, col.Collection)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Address < res[j].Address })
	return res, nil
}

func (im *impl) Mint(c ctx.Ctx, token domain.Address, to domain.Address, id domain.TokenId, quantity uint64) error {
	if !id.IsValid() {
		return domain.ErrBadParamInput
	}
	if !to.IsValid() || to.IsEmpty() {
		return domain.ErrInvalidAddress
	}
	to = to.ToLower()

	im.mu.Lock()
	defer im.mu.Unlock()

	col, ok := im.collections[token.ToLower()]
	if !ok {
		return custody.ErrUnknownToken
	}

	switch col.Standard {
	case domain.TokenType721:
		if quantity != 1 {
			return custody.ErrInvalidQuantity
		}
		if _, ok := col.owners[id]; ok {
			return custody.ErrTokenExists
		}
		col.owners[id] = to
	case domain.TokenType1155:
		if quantity == 0 {
			return custody.ErrInvalidQuantity
		}
		col.credit(id, to, quantity)
	}
	return nil
}

func (im *impl) SetApprovalForAll(c ctx.Ctx, token domain.Address, owner, operator domain.Address, approved bool) error {
	im.mu.Lock()
	defer im.mu.Unlock()

	col, ok := im.collections[token.ToLower()]
	if !ok {
		return custody.ErrUnknownToken
	}
	owner, operator = owner.ToLower(), operator.ToLower()
	if col.approvals[owner] == nil {
		col.approvals[owner] = make(map[domain.Address]bool)
	}
	col.approvals[owner][operator] = approved
	return nil
}

func (im *impl) Custodian(c ctx.Ctx, token domain.Address) (custody.Custodian, error) {
	im.mu.RLock()
	defer im.mu.RUnlock()

	col, ok := im.collections[token.ToLower()]
	if !ok {
		return nil, custody.ErrUnknownToken
	}
	return &custodian{im: im, col: col}, nil
}

func (col *collection) credit(id domain.TokenId, to domain.Address, quantity uint64) {
	if col.balances[id] == nil {
		col.balances[id] = make(map[domain.Address]uint64)
	}
	col.balances[id][to] += quantity
}

func (col *collection) balanceOf(owner domain.Address, id domain.TokenId) uint64 {
	if col.Standard == domain.TokenType721 {
		if holder, ok := col.owners[id]; ok && holder == owner {
			return 1
		}
		return 0
	}
	return col.balances[id][owner]
}

// custodian is the view of one collection handed out to the market
type custodian struct {
	im  *impl
	col *collection
}

func (cu *custodian) Address() domain.Address {
	return cu.col.Address
}

func (cu *custodian) Standard() domain.TokenType {
	return cu.col.Standard
}

// OwnerOf returns the empty address for a token that was never minted
func (cu *custodian) OwnerOf(c ctx.Ctx, id domain.TokenId) (domain.Address, error) {
	if cu.col.Standard != domain.TokenType721 {
		return "", custody.ErrUnsupported
	}
	cu.im.mu.RLock()
	defer cu.im.mu.RUnlock()

	if owner, ok := cu.col.owners[id]; ok {
		return owner, nil
	}
	return domain.EmptyAddress, nil
}

func (cu *custodian) BalanceOf(c ctx.Ctx, owner domain.Address, id domain.TokenId) (uint64, error) {
	cu.im.mu.RLock()
	defer cu.im.mu.RUnlock()
	return cu.col.balanceOf(owner.ToLower(), id), nil
}

func (cu *custodian) IsApprovedForAll(c ctx.Ctx, owner, operator domain.Address) (bool, error) {
	cu.im.mu.RLock()
	defer cu.im.mu.RUnlock()
	return cu.col.approvals[owner.ToLower()][operator.ToLower()], nil
}

func (cu *custodian) Transfer(c ctx.Ctx, operator, from, to domain.Address, id domain.TokenId, quantity uint64) error {
	operator, from, to = operator.ToLower(), from.ToLower(), to.ToLower()
	if to.IsEmpty() {
		return domain.ErrInvalidAddress
	}

	cu.im.mu.Lock()
	defer cu.im.mu.Unlock()

	col := cu.col
	if operator != from && !col.approvals[from][operator] {
		return custody.ErrNotApproved
	}

	switch col.Standard {
	case domain.TokenType721:
		if quantity != 1 {
			return custody.ErrInvalidQuantity
		}
		if col.owners[id] != from {
			return custody.ErrNotTokenOwner
		}
		col.owners[id] = to
	case domain.TokenType1155:
		if quantity == 0 {
			return custody.ErrInvalidQuantity
		}
		if col.balances[id][from] < quantity {
			return custody.ErrInsufficientBalance
		}
		col.balances[id][from] -= quantity
		col.credit(id, to, quantity)
	}
	return nil
}

func (cu *custodian) RoyaltyInfo(c ctx.Ctx, id domain.TokenId, salePrice *big.Int) (domain.Address, *big.Int, error) {
	if cu.col.RoyaltyReceiver.IsEmpty() || cu.col.RoyaltyPercent == 0 {
		return domain.EmptyAddress, new(big.Int), nil
	}
	amount := new(big.Int).Mul(salePrice, new(big.Int).SetUint64(cu.col.RoyaltyPercent))
	return cu.col.RoyaltyReceiver, amount.Quo(amount, domain.Big100), nil
}
