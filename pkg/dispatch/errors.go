// pkg/dispatch/errors.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package dispatch

import "errors"

// Sentinel errors returned across the Service's public surface. Call
// sites wrap these with fmt.Errorf("%w: ...", ErrX, ...) to attach
// context; callers compare with errors.Is against the bare sentinel.
var (
	ErrNotReady           = errors.New("dispatch: service not initialized")
	ErrAlreadyInitialized = errors.New("dispatch: service already initialized")
	ErrInvalidArgument    = errors.New("dispatch: invalid argument")
	ErrNotFound           = errors.New("dispatch: site not found")
	ErrUnroutable         = errors.New("dispatch: no route between requested sites")
	ErrWindowTooSmall     = errors.New("dispatch: window too small for one flight block")
	ErrNoFeasibleSlot     = errors.New("dispatch: no feasible departure slot in window")
)
