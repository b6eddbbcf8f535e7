package stark

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Proof is a STARK proof.
type Proof struct {
	// TraceRoot is the Merkle root of the main trace.
	TraceRoot common.Hash `json:"trace_root"`
	// CompositionRoot is the Merkle root of the composition column.
	CompositionRoot common.Hash `json:"composition_root"`
	// PowNonce is the grinding nonce.
	PowNonce uint64 `json:"pow_nonce"`
	// Openings are the row openings at the sampled query positions,
	// in ascending query order.
	Openings []RowOpening `json:"openings"`
}

// RowOpening is a Merkle opening of one trace row and the matching
// composition cell. The first element of each proof set is the row data.
type RowOpening struct {
	// TraceProof is the Merkle proof set of the main trace row.
	TraceProof []hexutil.Bytes `json:"trace_proof"`
	// CompositionProof is the Merkle proof set of the composition cell.
	CompositionProof []hexutil.Bytes `json:"composition_proof"`
}

// VerificationError is returned when a proof fails verification.
type VerificationError struct {
	// Reason describes the failed check.
	Reason string
	// Query is the index of the failed query,
	// or -1 for transcript level checks.
	Query int
}

func (e VerificationError) Error() string {
	if e.Query < 0 {
		return fmt.Sprintf("stark: verification failed: %s", e.Reason)
	}
	return fmt.Sprintf("stark: verification failed at query %d: %s", e.Query, e.Reason)
}

func toByteSlices(s []hexutil.Bytes) [][]byte {
	out := make([][]byte, len(s))
	for i := range s {
		out[i] = s[i]
	}
	return out
}

func toHexSlices(s [][]byte) []hexutil.Bytes {
	out := make([]hexutil.Bytes, len(s))
	for i := range s {
		out[i] = s[i]
	}
	return out
}
