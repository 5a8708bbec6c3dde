package core

import (
	"context"
	"log/slog"

	"github.com/sarchlab/rnspim/dma"
)

// LevelTrace is below Debug so that per-unit events stay out of normal logs.
const LevelTrace slog.Level = slog.LevelDebug - 4

// Trace logs a simulation event at LevelTrace.
func Trace(msg string, args ...any) {
	slog.Log(context.Background(), LevelTrace, msg, args...)
}

// LogState dumps the unit state at debug level.
func LogState(u *Unit) {
	slog.Debug("UnitState",
		"Unit", u.Name(),
		"Stage", u.state.Stage.String(),
		"Cursor", u.state.Cursor,
		"Length", u.state.Length,
		"Modulus", u.state.Modulus,
		"Windows", u.state.Stats.Windows,
		"BytesIn", u.dma.Bytes(dma.BulkToScratch),
		"BytesOut", u.dma.Bytes(dma.ScratchToBulk),
	)
}
