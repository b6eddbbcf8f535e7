// Package poseidon2 implements the Poseidon2 permutation over the M31 field,
// with state width 16, S-box x^5, 8 full rounds and 26 partial rounds.
package poseidon2

import "github.com/sp301415/ember-stark/m31"

// Width is the permutation state size.
const Width = 16

const (
	halfFullRounds = 4
	partialRounds  = 26
)

// State is a Poseidon2 permutation state.
type State [Width]m31.Elem

// Permute applies the Poseidon2 permutation to state.
func Permute(state State) State {
	permuteInPlace(&state)
	return state
}

// Hash2 hashes two field elements, with rate 2 and capacity 14.
func Hash2(x0, x1 m31.Elem) m31.Elem {
	var state State
	state[0], state[1] = x0, x1
	permuteInPlace(&state)
	return state[0]
}

// Hash3 hashes three field elements, with rate 3 and capacity 13.
func Hash3(x0, x1, x2 m31.Elem) m31.Elem {
	var state State
	state[0], state[1], state[2] = x0, x1, x2
	permuteInPlace(&state)
	return state[0]
}

// Hash4 hashes four field elements, with rate 4 and capacity 12.
func Hash4(x0, x1, x2, x3 m31.Elem) m31.Elem {
	var state State
	state[0], state[1], state[2], state[3] = x0, x1, x2, x3
	permuteInPlace(&state)
	return state[0]
}

// CriticalStates runs the permutation while exposing the intermediate states
// committed to the trace. It returns the untouched input state, the state
// after the first full round (including its S-box layer), and slot 0 after
// running the full permutation on that intermediate state.
func CriticalStates(input State) (initial, afterFirstRound State, final m31.Elem) {
	initial = input

	state := input
	fullRound(&state, 0)
	afterFirstRound = state

	permuteInPlace(&state)
	return initial, afterFirstRound, state[0]
}

func permuteInPlace(state *State) {
	for r := 0; r < halfFullRounds; r++ {
		fullRound(state, r)
	}
	for r := 0; r < partialRounds; r++ {
		partialRound(state, r)
	}
	for r := 0; r < halfFullRounds; r++ {
		fullRound(state, halfFullRounds+r)
	}
}

// fullRound applies round constants, the external linear layer,
// and the S-box to every element.
func fullRound(state *State, r int) {
	for i := 0; i < Width; i++ {
		state[i] = state[i].Add(externalRoundConsts[r][i])
	}
	externalLayer(state)
	for i := 0; i < Width; i++ {
		state[i] = pow5(state[i])
	}
}

// partialRound applies the round constant to element 0, the internal linear
// layer, and the S-box to element 0 only.
func partialRound(state *State, r int) {
	state[0] = state[0].Add(internalRoundConsts[r])
	internalLayer(state)
	state[0] = pow5(state[0])
}

// externalLayer applies the block-circulant matrix circ(2*M4, M4, M4, M4).
func externalLayer(state *State) {
	for i := 0; i < 4; i++ {
		applyM4(state[4*i : 4*i+4])
	}
	for j := 0; j < 4; j++ {
		s := state[j].Add(state[j+4]).Add(state[j+8]).Add(state[j+12])
		for i := 0; i < 4; i++ {
			state[4*i+j] = state[4*i+j].Add(s)
		}
	}
}

// applyM4 multiplies a 4-element block by the M4 MDS matrix.
func applyM4(x []m31.Elem) {
	t0 := x[0].Add(x[1])
	t02 := t0.Add(t0)
	t1 := x[2].Add(x[3])
	t12 := t1.Add(t1)
	t2 := x[1].Add(x[1]).Add(t1)
	t3 := x[3].Add(x[3]).Add(t0)
	t4 := t12.Add(t12).Add(t3)
	t5 := t02.Add(t02).Add(t2)
	t6 := t3.Add(t5)
	t7 := t2.Add(t4)
	x[0], x[1], x[2], x[3] = t6, t5, t7, t4
}

// internalLayer multiplies element i by its diagonal weight and adds the
// sum of all 16 elements to every element.
func internalLayer(state *State) {
	sum := state[0]
	for i := 1; i < Width; i++ {
		sum = sum.Add(state[i])
	}
	for i := 0; i < Width; i++ {
		state[i] = state[i].Mul(internalDiag[i]).Add(sum)
	}
}

func pow5(x m31.Elem) m31.Elem {
	x2 := x.Mul(x)
	x4 := x2.Mul(x2)
	return x4.Mul(x)
}
