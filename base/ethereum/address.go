package ethereum

import (
	"crypto/ecdsa"
	"strings"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/crypto"
)

// GenerateKey creates a new secp256k1 key pair
func GenerateKey() (*ecdsa.PrivateKey, *ecdsa.PublicKey, error) {
	key, err := crypto.GenerateKey()
	if err != nil {
		return nil, nil, err
	}
	return key, &key.PublicKey, nil
}

// AddressOf is the lower case hex address of key
func AddressOf(key *ecdsa.PublicKey) string {
	return strings.ToLower(crypto.PubkeyToAddress(*key).Hex())
}

// SignMsg signs message the way personal_sign does, recovery id 27 or 28
func SignMsg(key *ecdsa.PrivateKey, message []byte) ([]byte, error) {
	sig, err := crypto.Sign(accounts.TextHash(message), key)
	if err != nil {
		return nil, err
	}
	sig[crypto.RecoveryIDOffset] += 27
	return sig, nil
}
