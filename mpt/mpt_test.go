package mpt_test

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"

	"github.com/sp301415/ember-stark/csprng"
	"github.com/sp301415/ember-stark/mpt"
)

func TestNibbles(t *testing.T) {
	t.Run("Split", func(t *testing.T) {
		assert.Equal(t, []byte{0x0a, 0x0b, 0x0c, 0x0d}, mpt.BytesToNibbles([]byte{0xab, 0xcd}))
	})

	t.Run("Pack", func(t *testing.T) {
		assert.Equal(t, []byte{0xab, 0xcd}, mpt.NibblesToBytes([]byte{0x0a, 0x0b, 0x0c, 0x0d}))
	})

	t.Run("RoundTrip", func(t *testing.T) {
		oracle := csprng.NewUniformSamplerWithSeed([]byte("nibbles-test"))

		b := make([]byte, 32)
		oracle.Read(b)
		assert.Equal(t, b, mpt.NibblesToBytes(mpt.BytesToNibbles(b)))
	})
}

func TestAccount(t *testing.T) {
	account := mpt.NewBurnAccount(uint256.NewInt(1000000000000000000))

	expected := common.FromHex(
		"0xf84c80880de0b6b3a7640000" +
			"a056e81f171bcc55a6ff8345e692c0f86e5b48e01b996cadc001622fb5e363b421" +
			"a0c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470")
	assert.Equal(t, expected, account.Bytes())
}

func TestVerify(t *testing.T) {
	oracle := csprng.NewUniformSamplerWithSeed([]byte("mpt-test"))

	balance := uint256.NewInt(1000000000000000000)

	var addr common.Address
	oracle.Read(addr[:])
	addressHash := crypto.Keccak256Hash(addr[:])

	leaf := mpt.Leaf{
		PathNibbles: mpt.BytesToNibbles(addressHash[:])[14:],
		Account:     mpt.NewBurnAccount(balance),
	}.Bytes()
	leafHash := crypto.Keccak256Hash(leaf)

	branch := make([]byte, 83)
	oracle.Read(branch)
	copy(branch[17:49], leafHash[:])

	stateRoot := crypto.Keccak256Hash(branch)
	layers := [][]byte{branch, leaf}

	t.Run("Accept", func(t *testing.T) {
		assert.NoError(t, mpt.Verify(layers, stateRoot, addressHash, balance))
	})

	t.Run("SingleLayer", func(t *testing.T) {
		assert.NoError(t, mpt.Verify([][]byte{leaf}, leafHash, addressHash, balance))
	})

	t.Run("EmptyProof", func(t *testing.T) {
		assert.ErrorIs(t, mpt.Verify(nil, stateRoot, addressHash, balance), mpt.ErrEmptyProof)
	})

	t.Run("RootMismatch", func(t *testing.T) {
		badRoot := stateRoot
		badRoot[0] ^= 1

		err := mpt.Verify(layers, badRoot, addressHash, balance)
		var rootErr mpt.RootMismatchError
		assert.ErrorAs(t, err, &rootErr)
		assert.Equal(t, badRoot, rootErr.Expected)
		assert.Equal(t, stateRoot, rootErr.Computed)
	})

	t.Run("MissingChild", func(t *testing.T) {
		branchOut := make([]byte, len(branch))
		copy(branchOut, branch)
		branchOut[17] ^= 1

		err := mpt.Verify([][]byte{branchOut, leaf}, crypto.Keccak256Hash(branchOut), addressHash, balance)
		var childErr mpt.MissingChildError
		assert.ErrorAs(t, err, &childErr)
		assert.Equal(t, 1, childErr.Layer)
		assert.Equal(t, leafHash, childErr.Hash)
	})

	t.Run("LeafMismatch", func(t *testing.T) {
		err := mpt.Verify(layers, stateRoot, addressHash, uint256.NewInt(42))
		var leafErr mpt.LeafMismatchError
		assert.ErrorAs(t, err, &leafErr)
		assert.Equal(t, mpt.NewBurnAccount(uint256.NewInt(42)).Bytes(), leafErr.Account)
	})
}
