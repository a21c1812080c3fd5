package ethereum

import (
	"errors"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/xerrors"
)

var ErrInvalidSignature = errors.New("invalid signature")

// ValidateMsgSignature reports whether signature is signer's personal_sign
// of message. Both 0/1 and 27/28 recovery ids are accepted.
func ValidateMsgSignature(message []byte, signature, signer string) (bool, error) {
	raw, err := hexutil.Decode(signature)
	if err != nil {
		return false, xerrors.Errorf("decode signature: %w", err)
	}
	sig, err := normalizeV(raw)
	if err != nil {
		return false, err
	}
	pub, err := crypto.SigToPub(accounts.TextHash(message), sig)
	if err != nil {
		return false, xerrors.Errorf("recover signer: %w", err)
	}
	return crypto.PubkeyToAddress(*pub) == common.HexToAddress(signer), nil
}

// normalizeV returns a copy of sig with the recovery id as 0 or 1
func normalizeV(sig []byte) ([]byte, error) {
	if len(sig) != crypto.SignatureLength {
		return nil, xerrors.Errorf("%w: want %d bytes, got %d", ErrInvalidSignature, crypto.SignatureLength, len(sig))
	}
	out := make([]byte, len(sig))
	copy(out, sig)

	v := out[crypto.RecoveryIDOffset]
	if v >= 27 {
		v -= 27
	}
	if v > 1 {
		return nil, xerrors.Errorf("%w: recovery id %d", ErrInvalidSignature, sig[crypto.RecoveryIDOffset])
	}
	out[crypto.RecoveryIDOffset] = v
	return out, nil
}
