package client

import (
	"errors"
	"fmt"
)

// RPCError is a failure reported by the node in the response error field
type RPCError struct {
	Method  string
	Code    int
	Message string
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("RPC error %d in %s: %s", e.Code, e.Method, e.Message)
}

// IsRPCError checks if error is RPCError
func IsRPCError(err error) bool {
	var re *RPCError
	return errors.As(err, &re)
}

// NetworkError is a transport failure: timeout, DNS, TLS, bad HTTP status or
// an undecodable body.
type NetworkError struct {
	Method string
	Err    error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error in %s: %v", e.Method, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// IsNetworkError checks if error is NetworkError
func IsNetworkError(err error) bool {
	var ne *NetworkError
	return errors.As(err, &ne)
}
