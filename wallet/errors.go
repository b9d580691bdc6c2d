package wallet

import (
	"errors"
	"fmt"
)

// InvalidMnemonicError is returned when a phrase fails checksum or word count
type InvalidMnemonicError struct{}

func (e *InvalidMnemonicError) Error() string {
	return "invalid mnemonic phrase"
}

// IsInvalidMnemonicError checks if error is InvalidMnemonicError
func IsInvalidMnemonicError(err error) bool {
	var ime *InvalidMnemonicError
	return errors.As(err, &ime)
}

// NoWalletError is returned when an operation needs a stored wallet
type NoWalletError struct{}

func (e *NoWalletError) Error() string {
	return "no wallet found"
}

// IsNoWalletError checks if error is NoWalletError
func IsNoWalletError(err error) bool {
	var nwe *NoWalletError
	return errors.As(err, &nwe)
}

// NoAccountError is returned when there is no current account to sign with
type NoAccountError struct{}

func (e *NoAccountError) Error() string {
	return "no account available"
}

// IsNoAccountError checks if error is NoAccountError
func IsNoAccountError(err error) bool {
	var nae *NoAccountError
	return errors.As(err, &nae)
}

// InvalidIndexError is returned when switching to an account that does not exist
type InvalidIndexError struct {
	Index int
	Count int
}

func (e *InvalidIndexError) Error() string {
	return fmt.Sprintf("invalid account index %d (have %d accounts)", e.Index, e.Count)
}

// IsInvalidIndexError checks if error is InvalidIndexError
func IsInvalidIndexError(err error) bool {
	var iie *InvalidIndexError
	return errors.As(err, &iie)
}
