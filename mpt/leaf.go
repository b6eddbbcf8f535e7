package mpt

import (
	"github.com/ethereum/go-ethereum/rlp"
)

// leafPathPrefix marks an even-length terminating path in the hex prefix
// encoding of trie nodes.
const leafPathPrefix = 0x20

// Leaf is a trie leaf node holding an account, RLP encoded as the two item
// list of the prefixed path nibbles and the account encoding.
type Leaf struct {
	PathNibbles []byte
	Account     Account
}

// Bytes returns the RLP encoding of l.
//
// Panics when RLP encoding fails.
func (l Leaf) Bytes() []byte {
	path := make([]byte, 0, len(l.PathNibbles)+1)
	path = append(path, leafPathPrefix)
	path = append(path, l.PathNibbles...)

	encoded, err := rlp.EncodeToBytes([]interface{}{path, l.Account.Bytes()})
	if err != nil {
		panic(err)
	}
	return encoded
}
