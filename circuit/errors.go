package circuit

import (
	"errors"
	"fmt"

	"github.com/holiman/uint256"
)

// ErrHeaderTooShort is returned when a block header is too short to carry
// a state root.
var ErrHeaderTooShort = errors.New("circuit: block header too short for state root")

// IntendedBalanceError is returned when the intended balance exceeds the
// protocol ceiling.
type IntendedBalanceError struct {
	Balance *uint256.Int
	Max     *uint256.Int
}

func (e IntendedBalanceError) Error() string {
	return fmt.Sprintf("circuit: intended balance %v exceeds maximum %v", e.Balance, e.Max)
}

// ActualBalanceError is returned when the actual balance exceeds the
// protocol ceiling.
type ActualBalanceError struct {
	Balance *uint256.Int
	Max     *uint256.Int
}

func (e ActualBalanceError) Error() string {
	return fmt.Sprintf("circuit: actual balance %v exceeds maximum %v", e.Balance, e.Max)
}

// BalanceOrderError is returned when the intended balance exceeds the
// actual balance.
type BalanceOrderError struct {
	Intended *uint256.Int
	Actual   *uint256.Int
}

func (e BalanceOrderError) Error() string {
	return fmt.Sprintf("circuit: intended balance %v exceeds actual balance %v", e.Intended, e.Actual)
}

// RevealAmountError is returned when the reveal amount exceeds the
// intended balance.
type RevealAmountError struct {
	Reveal   *uint256.Int
	Intended *uint256.Int
}

func (e RevealAmountError) Error() string {
	return fmt.Sprintf("circuit: reveal amount %v exceeds intended balance %v", e.Reveal, e.Intended)
}

// NibbleCountError is returned when the claimed leaf address nibble count
// is below the security floor.
type NibbleCountError struct {
	Provided int
	Required int
}

func (e NibbleCountError) Error() string {
	return fmt.Sprintf("circuit: %d leaf address nibbles, at least %d required", e.Provided, e.Required)
}

// LayerCountError is returned when an inclusion proof has too many layers.
type LayerCountError struct {
	Provided int
	Max      int
}

func (e LayerCountError) Error() string {
	return fmt.Sprintf("circuit: %d proof layers exceed maximum %d", e.Provided, e.Max)
}

// HeaderSizeError is returned when a block header exceeds the maximum size.
type HeaderSizeError struct {
	Size int
	Max  int
}

func (e HeaderSizeError) Error() string {
	return fmt.Sprintf("circuit: block header of %d bytes exceeds maximum %d", e.Size, e.Max)
}

// InclusionError wraps a state inclusion failure.
type InclusionError struct {
	Err error
}

func (e InclusionError) Error() string {
	return fmt.Sprintf("circuit: state inclusion rejected: %v", e.Err)
}

func (e InclusionError) Unwrap() error {
	return e.Err
}

// PowError is returned when the burn key does not meet the proof-of-work
// requirement.
type PowError struct {
	RequiredZeroBytes int
}

func (e PowError) Error() string {
	return fmt.Sprintf("circuit: burn key does not meet %d zero byte proof of work", e.RequiredZeroBytes)
}

// InsufficientBalanceError is returned when the withdrawn amount exceeds
// the coin balance.
type InsufficientBalanceError struct {
	Balance   *uint256.Int
	Withdrawn *uint256.Int
}

func (e InsufficientBalanceError) Error() string {
	return fmt.Sprintf("circuit: withdrawn amount %v exceeds balance %v", e.Withdrawn, e.Balance)
}

// AmountTooLargeError is returned when an amount does not fit the field
// encoding bound.
type AmountTooLargeError struct {
	Amount *uint256.Int
	Max    *uint256.Int
}

func (e AmountTooLargeError) Error() string {
	return fmt.Sprintf("circuit: amount %v exceeds encoding maximum %v", e.Amount, e.Max)
}
