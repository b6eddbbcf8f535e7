package stark

import (
	"bytes"
	"encoding/binary"
	"hash"

	"github.com/consensys/gnark-crypto/accumulator/merkletree"
	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/crypto/blake2b"

	"github.com/sp301415/ember-stark/m31"
	"github.com/sp301415/ember-stark/num"
)

// emptyRoot is the transcript marker for a commitment to an empty trace.
var emptyRoot = common.Hash(blake2b.Sum256(nil))

func newMerkleHasher() hash.Hash {
	h, err := blake2b.New256(nil)
	if err != nil {
		panic(err)
	}
	return h
}

// serializeTrace serializes t row by row, with rows in bit-reversed order
// and cells as big-endian 4-byte words.
func serializeTrace(t Trace) []byte {
	rows := make([][]byte, t.NumRows())
	for i := range rows {
		row := make([]byte, 4*t.NumColumns())
		for j := range t {
			binary.BigEndian.PutUint32(row[4*j:], t[j][i].Uint32())
		}
		rows[i] = row
	}
	num.BitReverseInPlace(rows)

	return bytes.Join(rows, nil)
}

// serializeColumn serializes a single column in bit-reversed order.
func serializeColumn(v m31.Vec) []byte {
	rows := make([][]byte, len(v))
	for i := range rows {
		row := make([]byte, 4)
		binary.BigEndian.PutUint32(row, v[i].Uint32())
		rows[i] = row
	}
	num.BitReverseInPlace(rows)

	return bytes.Join(rows, nil)
}

// commitRows returns the Merkle root of data split into segmentSize-byte rows.
func commitRows(data []byte, segmentSize int) common.Hash {
	root, _, _, err := merkletree.BuildReaderProof(bytes.NewReader(data), newMerkleHasher(), segmentSize, 0)
	if err != nil {
		panic(err)
	}
	return common.BytesToHash(root)
}

// openRow returns the Merkle proof set for row index of data.
// The first element of the proof set is the row itself.
func openRow(data []byte, segmentSize int, index int) [][]byte {
	_, proofSet, _, err := merkletree.BuildReaderProof(bytes.NewReader(data), newMerkleHasher(), segmentSize, uint64(index))
	if err != nil {
		panic(err)
	}
	return proofSet
}

// verifyRow checks a Merkle proof set against root for row index out of numRows.
func verifyRow(root common.Hash, proofSet [][]byte, index, numRows int) bool {
	return merkletree.VerifyProof(newMerkleHasher(), root.Bytes(), proofSet, uint64(index), uint64(numRows))
}

// decodeRow decodes a serialized row back to field elements.
// Returns false if the row is malformed or any cell is out of range.
func decodeRow(data []byte) (m31.Vec, bool) {
	if len(data)%4 != 0 {
		return nil, false
	}

	row := m31.NewVec(len(data) / 4)
	for i := range row {
		c := binary.BigEndian.Uint32(data[4*i:])
		if c >= m31.P {
			return nil, false
		}
		row[i] = m31.Elem(c)
	}
	return row, true
}
