// pkg/geodesy/errors.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package geodesy

import "errors"

// ErrInvalidCoordinate is returned by NewLocation when a coordinate is
// NaN or out of its valid range.
var ErrInvalidCoordinate = errors.New("invalid coordinate")
