package m31

// Vec is a vector of field elements, used for trace columns.
type Vec []Elem

// NewVec creates a new zero Vec of length n.
func NewVec(n int) Vec {
	return make(Vec, n)
}

// Copy returns a copy of v.
func (v Vec) Copy() Vec {
	w := make(Vec, len(v))
	copy(w, v)
	return w
}

// CopyFrom copies w into v.
func (v Vec) CopyFrom(w Vec) {
	copy(v, w)
}

// Clear clears the Vec.
func (v Vec) Clear() {
	for i := range v {
		v[i] = 0
	}
}
