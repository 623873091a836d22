// pkg/dispatch/default.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package dispatch

import "github.com/Arrow-air/flight-router/pkg/log"

// Default is the process-wide Service for hosts that want the classic
// single-process global instead of threading a *Service through their
// own call graph, mirroring the teacher's exported DB *StaticDatabase
// global. It is a thin wrapper over an ordinary Service: the one-shot
// InitFromSites discipline still applies, and Default is not a second
// source of truth — it is simply a Service a host chooses to reach
// through a package-level variable.
var Default = NewService(DefaultConfig(), log.Discard())
