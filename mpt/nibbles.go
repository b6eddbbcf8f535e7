package mpt

// BytesToNibbles splits each byte of b into its high and low nibble.
func BytesToNibbles(b []byte) []byte {
	nibbles := make([]byte, 0, 2*len(b))
	for _, v := range b {
		nibbles = append(nibbles, v>>4, v&0x0f)
	}
	return nibbles
}

// NibblesToBytes packs pairs of nibbles back into bytes.
// A trailing unpaired nibble is dropped.
func NibblesToBytes(nibbles []byte) []byte {
	b := make([]byte, 0, len(nibbles)/2)
	for i := 0; i+1 < len(nibbles); i += 2 {
		b = append(b, nibbles[i]<<4|nibbles[i+1])
	}
	return b
}
