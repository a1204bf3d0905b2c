// Package gateways defines the external-collaborator interfaces the core
// consumes: calendar sync, SMS, and web push. The real transports live
// behind these interfaces; stubs for tests and local development are in
// stub.go.
package gateways

import (
	"errors"
	"fmt"
)

// GatewayError wraps a transport or protocol failure from an external
// gateway. Commands treat these as best-effort: the failure is logged and
// local state still commits.
type GatewayError struct {
	Gateway string
	Op      string
	Err     error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("%s gateway: %s: %v", e.Gateway, e.Op, e.Err)
}

func (e *GatewayError) Unwrap() error { return e.Err }

// NewGatewayError wraps err with the gateway and operation names.
func NewGatewayError(gateway, op string, err error) *GatewayError {
	return &GatewayError{Gateway: gateway, Op: op, Err: err}
}

// TokenExpiredError signals that refreshing a stored credential failed
// permanently. The calendar is marked needing re-auth and the sync aborts.
type TokenExpiredError struct {
	Platform string
	Err      error
}

func (e *TokenExpiredError) Error() string {
	return fmt.Sprintf("%s auth token expired and refresh failed: %v", e.Platform, e.Err)
}

func (e *TokenExpiredError) Unwrap() error { return e.Err }

// IsTokenExpired reports whether err is (or wraps) a TokenExpiredError.
func IsTokenExpired(err error) bool {
	var te *TokenExpiredError
	return errors.As(err, &te)
}
