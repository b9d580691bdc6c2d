package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"
)

// PromptForPassword reads the vault password from the terminal without echo.
// Caller must zero the returned slice after use.
func PromptForPassword(prompt string) ([]byte, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, errors.New("stdin is not a terminal: run the app interactively to enter password")
	}
	fmt.Fprint(os.Stderr, prompt)
	defer fmt.Fprintln(os.Stderr)

	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return nil, fmt.Errorf("failed to read password: %w", err)
	}
	if len(raw) == 0 {
		return nil, errors.New("password cannot be empty")
	}
	return raw, nil
}

// PromptForNewPassword asks twice and fails if the entries differ
func PromptForNewPassword(prompt string) ([]byte, error) {
	first, err := PromptForPassword(prompt)
	if err != nil {
		return nil, err
	}
	second, err := PromptForPassword("Repeat password: ")
	if err != nil {
		clear(first)
		return nil, err
	}
	defer clear(second)

	if !bytes.Equal(first, second) {
		clear(first)
		return nil, errors.New("passwords do not match")
	}
	return first, nil
}
