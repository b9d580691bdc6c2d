// Package device reports battery and thermal state to the mining monitor.
package device

import "context"

// State is one reading of the device
type State struct {
	BatteryLevel int     // percent, 0..100
	IsCharging   bool
	Temperature  float64 // Celsius, 0 when the device does not report one
}

// Reader reads the current device state
type Reader interface {
	Read(ctx context.Context) (State, error)
}

// ReaderFunc adapts a function to Reader
type ReaderFunc func(ctx context.Context) (State, error)

func (f ReaderFunc) Read(ctx context.Context) (State, error) {
	return f(ctx)
}

// Static always reports the same state
type Static State

func (s Static) Read(context.Context) (State, error) {
	return State(s), nil
}
