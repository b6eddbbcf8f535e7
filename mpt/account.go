package mpt

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/holiman/uint256"
)

// Account is an Ethereum state account, RLP encoded as the four item list
// of nonce, balance, storage root and code hash.
type Account struct {
	Nonce       uint64
	Balance     *uint256.Int
	StorageRoot common.Hash
	CodeHash    common.Hash
}

// NewBurnAccount returns the account stored at a burn address: zero nonce,
// the given balance, and the storage root and code hash of an account that
// holds no storage and no code.
func NewBurnAccount(balance *uint256.Int) Account {
	return Account{
		Nonce:       0,
		Balance:     balance,
		StorageRoot: types.EmptyRootHash,
		CodeHash:    types.EmptyCodeHash,
	}
}

// Bytes returns the RLP encoding of a.
//
// Panics when RLP encoding fails.
func (a Account) Bytes() []byte {
	encoded, err := rlp.EncodeToBytes(a)
	if err != nil {
		panic(err)
	}
	return encoded
}
