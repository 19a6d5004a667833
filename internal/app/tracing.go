package app

import (
	"io"
	"strings"
	"sync"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/npillmayer/sarf/internal/config"
)

// TraceKey selects the tracer shared by the engine packages.
const TraceKey = "sarf"

// traceSelector hands out one Go-logger tracer per key. Engine packages call
// tracing.Select on every trace, so tracers are kept to retain their output
// and level.
type traceSelector struct {
	mu      sync.Mutex
	tracers map[string]tracing.Trace
}

func (sel *traceSelector) Select(key string) tracing.Trace {
	sel.mu.Lock()
	defer sel.mu.Unlock()
	t, ok := sel.tracers[key]
	if !ok {
		t = gologadapter.New()
		sel.tracers[key] = t
	}
	return t
}

// SetupTracing installs a Go-logger backed trace selector for the engine
// packages, writing to w at the level named by cfg.Trace.
func SetupTracing(cfg config.LogConfig, w io.Writer) tracing.Trace {
	tracing.SetTraceSelector(&traceSelector{tracers: make(map[string]tracing.Trace)})
	t := tracing.Select(TraceKey)
	t.SetOutput(w)
	t.SetTraceLevel(traceLevel(cfg.Trace))
	return t
}

func traceLevel(s string) tracing.TraceLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return tracing.LevelDebug
	case "info":
		return tracing.LevelInfo
	default:
		return tracing.LevelError
	}
}
