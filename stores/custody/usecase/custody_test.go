package usecase

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/x-xyz/marketcore/base/ctx"
	"github.com/x-xyz/marketcore/domain"
	"github.com/x-xyz/marketcore/domain/custody"
)

var (
	nft     = domain.Address("0x0000000000000000000000000000000000000721")
	multi   = domain.Address("0x0000000000000000000000000000000000001155")
	alice   = domain.Address("0x00000000000000000000000000000000000000a1")
	bob     = domain.Address("0x00000000000000000000000000000000000000b0")
	market  = domain.Address("0x00000000000000000000000000000000000000ee")
	creator = domain.Address("0x00000000000000000000000000000000000000cc")
)

func setup(t *testing.T) (ctx.Ctx, custody.Usecase) {
	c := ctx.Background()
	uc := New()
	require.NoError(t, uc.Deploy(c, custody.Collection{Address: nft, Standard: domain.TokenType721, RoyaltyReceiver: creator, RoyaltyPercent: 5}))
	require.NoError(t, uc.Deploy(c, custody.Collection{Address: multi, Standard: domain.TokenType1155}))
	return c, uc
}

func TestDeploy(t *testing.T) {
	req := require.New(t)
	c, uc := setup(t)

	req.ErrorIs(uc.Deploy(c, custody.Collection{Address: nft, Standard: domain.TokenType721}), custody.ErrTokenExists)
	req.ErrorIs(uc.Deploy(c, custody.Collection{Address: "0x12", Standard: domain.TokenType721}), domain.ErrInvalidAddress)
	req.ErrorIs(uc.Deploy(c, custody.Collection{Address: bob, Standard: domain.TokenType(20)}), domain.ErrBadParamInput)
	req.ErrorIs(uc.Deploy(c, custody.Collection{Address: bob, Standard: domain.TokenType721, RoyaltyPercent: 101}), domain.ErrBadParamInput)

	cols, err := uc.Collections(c)
	req.NoError(err)
	req.Len(cols, 2)
	req.Equal(nft, cols[0].Address)
	req.Equal(multi, cols[1].Address)

	_, err = uc.Custodian(c, bob)
	req.ErrorIs(err, custody.ErrUnknownToken)
}

func TestErc721(t *testing.T) {
	req := require.New(t)
	c, uc := setup(t)

	req.ErrorIs(uc.Mint(c, nft, alice, "1", 2), custody.ErrInvalidQuantity)
	req.NoError(uc.Mint(c, nft, alice, "1", 1))
	req.ErrorIs(uc.Mint(c, nft, bob, "1", 1), custody.ErrTokenExists)

	cu, err := uc.Custodian(c, nft)
	req.NoError(err)
	req.Equal(domain.TokenType721, cu.Standard())

	owner, err := cu.OwnerOf(c, "1")
	req.NoError(err)
	req.Equal(alice, owner)
	owner, err = cu.OwnerOf(c, "2")
	req.NoError(err)
	req.True(owner.IsEmpty())

	req.ErrorIs(cu.Transfer(c, market, alice, bob, "1", 1), custody.ErrNotApproved)
	req.NoError(uc.SetApprovalForAll(c, nft, alice, market, true))
	approved, err := cu.IsApprovedForAll(c, alice, market)
	req.NoError(err)
	req.True(approved)

	req.ErrorIs(cu.Transfer(c, market, alice, bob, "1", 2), custody.ErrInvalidQuantity)
	req.NoError(cu.Transfer(c, market, alice, bob, "1", 1))
	req.ErrorIs(cu.Transfer(c, market, alice, bob, "1", 1), custody.ErrNotTokenOwner)

	balance, err := cu.BalanceOf(c, bob, "1")
	req.NoError(err)
	req.Equal(uint64(1), balance)
	balance, err = cu.BalanceOf(c, alice, "1")
	req.NoError(err)
	req.Equal(uint64(0), balance)

	// a holder may always move its own tokens
	req.NoError(cu.Transfer(c, bob, bob, alice, "1", 1))
}

func TestErc1155(t *testing.T) {
	req := require.New(t)
	c, uc := setup(t)

	req.ErrorIs(uc.Mint(c, multi, alice, "1", 0), custody.ErrInvalidQuantity)
	req.NoError(uc.Mint(c, multi, alice, "1", 10))
	req.NoError(uc.Mint(c, multi, alice, "1", 5))

	cu, err := uc.Custodian(c, multi)
	req.NoError(err)

	_, err = cu.OwnerOf(c, "1")
	req.ErrorIs(err, custody.ErrUnsupported)

	req.ErrorIs(cu.Transfer(c, alice, alice, bob, "1", 16), custody.ErrInsufficientBalance)
	req.NoError(cu.Transfer(c, alice, alice, bob, "1", 4))

	balance, err := cu.BalanceOf(c, alice, "1")
	req.NoError(err)
	req.Equal(uint64(11), balance)
	balance, err = cu.BalanceOf(c, bob, "1")
	req.NoError(err)
	req.Equal(uint64(4), balance)
}

func TestRoyaltyInfo(t *testing.T) {
	req := require.New(t)
	c, uc := setup(t)

	cu, err := uc.Custodian(c, nft)
	req.NoError(err)
	receiver, amount, err := cu.RoyaltyInfo(c, "1", big.NewInt(1000))
	req.NoError(err)
	req.Equal(creator, receiver)
	req.Equal(big.NewInt(50), amount)

	cu, err = uc.Custodian(c, multi)
	req.NoError(err)
	receiver, amount, err = cu.RoyaltyInfo(c, "1", big.NewInt(1000))
	req.NoError(err)
	req.True(receiver.IsEmpty())
	req.Equal(0, amount.Sign())
}
