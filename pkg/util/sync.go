// pkg/util/sync.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package util

import (
	"log/slog"
	"runtime"
	"time"

	"github.com/Arrow-air/flight-router/pkg/log"

	"github.com/shirou/gopsutil/v3/cpu"
)

// LogSlowOperation returns a stop function that, when called, logs CPU and
// memory diagnostics if the operation it brackets took longer than
// threshold. This carries forward vice's LoggingMutex diagnostic (logged
// when a lock is held or waited on for an unexpectedly long time), applied
// here to one-shot router construction over a large site catalogue instead
// of mutex contention.
func LogSlowOperation(lg *log.Logger, name string, threshold time.Duration) (stop func()) {
	start := time.Now()
	return func() {
		elapsed := time.Since(start)
		if elapsed < threshold {
			return
		}

		var m runtime.MemStats
		runtime.ReadMemStats(&m)
		usage, _ := cpu.Percent(0, false)

		attrs := []any{
			slog.Duration("elapsed", elapsed),
			slog.Uint64("alloc_mb", m.Alloc/(1024*1024)),
			slog.Uint64("sys_mb", m.Sys/(1024*1024)),
			slog.Int("goroutines", runtime.NumGoroutine()),
		}
		if len(usage) > 0 {
			attrs = append(attrs, slog.Float64("cpu_percent", usage[0]))
		}
		lg.Warn("slow operation: "+name, attrs...)
	}
}
