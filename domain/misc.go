package domain

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/xerrors"
)

var (
	Big0   = big.NewInt(0)
	Big100 = big.NewInt(100)
)

// TokenType is the token standard of a collection
type TokenType int

const (
	TokenType721  TokenType = 721
	TokenType1155 TokenType = 1155
)

func (t TokenType) IsValid() bool {
	return t == TokenType721 || t == TokenType1155
}

type Address string

const EmptyAddress = Address("0x0000000000000000000000000000000000000000")

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

// IsEmpty is true for the empty string and for the zero address
func (a Address) IsEmpty() bool {
	return len(a) == 0 || a.ToLower() == EmptyAddress
}

func (a Address) Equals(b Address) bool {
	return a.ToLowerStr() == b.ToLowerStr()
}

func (a Address) IsValid() bool {
	return common.IsHexAddress(string(a))
}

// ToAddress validates s and returns it lower cased
func ToAddress(s string) (Address, error) {
	if !common.IsHexAddress(s) {
		return "", xerrors.Errorf("%w: %s", ErrInvalidAddress, s)
	}
	return Address(s).ToLower(), nil
}

// TokenId is the decimal string form of a uint256 token id
type TokenId string

func (i TokenId) String() string {
	return string(i)
}

func (i TokenId) BigInt() (*big.Int, error) {
	id, ok := new(big.Int).SetString(i.String(), 10)
	if !ok || id.Sign() < 0 {
		return nil, xerrors.Errorf("%w: token id %s", ErrInvalidNumberFormat, i)
	}
	return id, nil
}

func (i TokenId) IsValid() bool {
	_, err := i.BigInt()
	return err == nil
}

// ParseAmount parses a non negative base 10 integer amount
func ParseAmount(s string) (*big.Int, error) {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok || n.Sign() < 0 {
		return nil, xerrors.Errorf("%w: %q", ErrInvalidNumberFormat, s)
	}
	return n, nil
}
