// Package controller holds what the page state machines share.
package controller

import "errors"

var (
	// ErrRejected marks a validation failure. The state is returned unchanged.
	ErrRejected      = errors.New("action rejected")
	ErrUnknownAction = errors.New("unknown action")
)
