package ember_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"

	"github.com/sp301415/ember-stark/circuit"
	"github.com/sp301415/ember-stark/ember"
	"github.com/sp301415/ember-stark/m31"
	"github.com/sp301415/ember-stark/mpt"
	"github.com/sp301415/ember-stark/protocol"
	"github.com/sp301415/ember-stark/stark"
)

var (
	params      = protocol.ParamsEIP7503.Compile()
	starkParams = stark.ParamsLogN8.Compile()
)

// newBurnInputs returns burn inputs with a mined key, a synthetic two-layer
// inclusion proof for its burn address, and a header carrying the state root.
func newBurnInputs(t *testing.T) circuit.BurnInputs {
	inputs := circuit.BurnInputs{
		ActualBalance:         uint256.NewInt(1000000000000000000),
		IntendedBalance:       uint256.NewInt(1000000000000000000),
		RevealAmount:          uint256.NewInt(500000000000000000),
		BurnExtraCommitment:   m31.New(0),
		NumLeafAddressNibbles: 50,
		ByteSecurityRelax:     0,
		ProofExtraCommitment:  m31.New(0),
	}

	key, ok := protocol.MineBurnKey(params, inputs.RevealAmount, inputs.BurnExtraCommitment, params.PowMinZeroBytes(), 1<<20)
	assert.True(t, ok)
	inputs.BurnKey = key

	addressHash := protocol.BurnAddressHash(params, key, inputs.RevealAmount, inputs.BurnExtraCommitment)
	leaf := mpt.Leaf{
		PathNibbles: mpt.BytesToNibbles(addressHash[:])[14:],
		Account:     mpt.NewBurnAccount(inputs.ActualBalance),
	}.Bytes()

	branch := make([]byte, 83)
	copy(branch[17:], crypto.Keccak256(leaf))

	header := make(hexutil.Bytes, 643)
	copy(header[91:], crypto.Keccak256(branch))

	inputs.Layers = []hexutil.Bytes{branch, leaf}
	inputs.BlockHeader = header
	return inputs
}

func TestArtifact(t *testing.T) {
	t.Run("PublicCommitment", func(t *testing.T) {
		blockHash := crypto.Keccak256Hash(bytes.Repeat([]byte{0xab}, 32))
		nullifier := new(uint256.Int).SetBytes(bytes.Repeat([]byte{0x12}, 32))
		commitment := new(uint256.Int).SetBytes(bytes.Repeat([]byte{0x34}, 32))
		revealAmount := uint256.NewInt(500000000000000000)

		pc := ember.PublicCommitment(blockHash, nullifier, commitment, revealAmount)
		assert.Equal(t,
			new(uint256.Int).SetBytes(common.FromHex("0x7f3efa11a3601ff4488fca730751aefabbd29bb9651349c4658aa67a64c550")),
			pc)

		proofID := ember.ProofID(pc, nullifier, commitment)
		assert.Equal(t,
			common.HexToHash("0xaf19dffbe9939dedd30df03d7100b38fe1ef8eccf4544889a2ca1fcd907beeac"),
			proofID)
	})

	t.Run("Truncated", func(t *testing.T) {
		pc := ember.PublicCommitment(common.Hash{}, uint256.NewInt(1), uint256.NewInt(2), uint256.NewInt(3))
		assert.True(t, pc.Lt(new(uint256.Int).Lsh(uint256.NewInt(1), 248)))
	})
}

func TestBurn(t *testing.T) {
	inputs := newBurnInputs(t)

	pf, err := ember.ProveBurn(params, starkParams, inputs)
	assert.NoError(t, err)

	t.Run("Verify", func(t *testing.T) {
		assert.NoError(t, ember.VerifyBurn(params, starkParams, pf))
	})

	t.Run("Artifact", func(t *testing.T) {
		assert.Equal(t, pf.Proof.TraceRoot, pf.Simple.TraceCommitment)
		assert.Equal(t, pf.Proof.CompositionRoot, pf.Simple.CompositionCommitment)
		assert.NotEqual(t, common.Hash{}, pf.Simple.ProofID)
	})

	t.Run("Tampered", func(t *testing.T) {
		pfBad := pf
		pfBad.Proof.TraceRoot[0] ^= 1

		assert.Error(t, ember.VerifyBurn(params, starkParams, pfBad))
	})

	t.Run("JSONRoundTrip", func(t *testing.T) {
		data, err := json.Marshal(pf)
		assert.NoError(t, err)

		var pfDec ember.BurnProof
		assert.NoError(t, json.Unmarshal(data, &pfDec))
		assert.NoError(t, ember.VerifyBurn(params, starkParams, pfDec))
		assert.Equal(t, pf.Outputs, pfDec.Outputs)
	})

	t.Run("RejectsInvalidInputs", func(t *testing.T) {
		badInputs := inputs
		badInputs.RevealAmount = new(uint256.Int).AddUint64(inputs.IntendedBalance, 1)

		_, err := ember.ProveBurn(params, starkParams, badInputs)
		var wantErr circuit.RevealAmountError
		assert.ErrorAs(t, err, &wantErr)
	})
}

func TestSpend(t *testing.T) {
	inputs := circuit.SpendInputs{
		BurnKey:          m31.New(4242),
		Balance:          uint256.NewInt(1000000),
		WithdrawnBalance: uint256.NewInt(250000),
		ExtraCommitment:  m31.New(9),
	}

	pf, err := ember.ProveSpend(params, starkParams, inputs)
	assert.NoError(t, err)

	t.Run("Verify", func(t *testing.T) {
		assert.NoError(t, ember.VerifySpend(params, starkParams, pf))
	})

	t.Run("Outputs", func(t *testing.T) {
		assert.Equal(t, protocol.Coin(params, inputs.BurnKey, inputs.Balance), pf.Outputs.Coin)
		assert.Equal(t, protocol.Coin(params, inputs.BurnKey, uint256.NewInt(750000)), pf.Outputs.RemainingCoin)
	})

	t.Run("Tampered", func(t *testing.T) {
		pfBad := pf
		pfBad.Proof.CompositionRoot[0] ^= 1

		assert.Error(t, ember.VerifySpend(params, starkParams, pfBad))
	})

	t.Run("JSONRoundTrip", func(t *testing.T) {
		data, err := json.Marshal(pf)
		assert.NoError(t, err)

		var pfDec ember.SpendProof
		assert.NoError(t, json.Unmarshal(data, &pfDec))
		assert.NoError(t, ember.VerifySpend(params, starkParams, pfDec))
	})
}
