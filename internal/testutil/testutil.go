package testutil

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"cleangenerics.dev/generics/internal/alloc"
)

// ObserveAllocs routes allocation events into an in-memory log for the rest of the test.
// Tests calling it must not run in parallel, since the allocation logger is package state.
func ObserveAllocs(t testing.TB) *observer.ObservedLogs {
	core, logs := observer.New(zapcore.DebugLevel)
	prev := alloc.Logger()
	alloc.SetLogger(zap.New(core))
	t.Cleanup(func() { alloc.SetLogger(prev) })
	return logs
}

// Reallocs counts the growth events of one kind of slab.
func Reallocs(logs *observer.ObservedLogs, kind string) int {
	n := 0
	for _, e := range logs.FilterMessage("realloc").All() {
		if e.ContextMap()["kind"] == kind {
			n++
		}
	}
	return n
}
