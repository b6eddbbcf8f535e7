package ember

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"

	"github.com/sp301415/ember-stark/m31"
)

// PublicCommitment derives the public commitment of an accepted burn:
// the Keccak-256 digest of the block hash, nullifier, commitment and reveal
// amount as 32-byte big-endian words, truncated to its top 31 bytes.
func PublicCommitment(blockHash common.Hash, nullifier, commitment, revealAmount *uint256.Int) *uint256.Int {
	buf := make([]byte, 0, 4*common.HashLength)
	buf = append(buf, blockHash[:]...)

	word := nullifier.Bytes32()
	buf = append(buf, word[:]...)
	word = commitment.Bytes32()
	buf = append(buf, word[:]...)
	word = revealAmount.Bytes32()
	buf = append(buf, word[:]...)

	pc := new(uint256.Int).SetBytes(crypto.Keccak256(buf))
	return pc.Rsh(pc, 8)
}

// ProofID derives the 32-byte identifier of an accepted proof from its
// public commitment, nullifier and commitment.
func ProofID(publicCommitment, nullifier, commitment *uint256.Int) common.Hash {
	buf := make([]byte, 0, 3*common.HashLength)

	word := publicCommitment.Bytes32()
	buf = append(buf, word[:]...)
	word = nullifier.Bytes32()
	buf = append(buf, word[:]...)
	word = commitment.Bytes32()
	buf = append(buf, word[:]...)

	return crypto.Keccak256Hash(buf)
}

// SimpleProof is the minimal persisted record of an accepted burn proof.
type SimpleProof struct {
	// TraceCommitment is the Merkle root of the main trace.
	TraceCommitment common.Hash `json:"trace_commitment"`
	// CompositionCommitment is the Merkle root of the composition column.
	CompositionCommitment common.Hash `json:"composition_commitment"`
	// ProofID identifies the proof.
	ProofID common.Hash `json:"proof_id"`
}

func elemToUint256(x m31.Elem) *uint256.Int {
	return uint256.NewInt(x.Uint64())
}
