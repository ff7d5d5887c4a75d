// Package observability provides hooks for metrics, tracing, and logging.
//
// Instrumentation is optional: the pipeline and report packages emit events
// through the registered hooks, and the defaults do nothing. Consumers that
// want metrics or traces register their own implementations at startup.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetPipelineHooks(&myPipelineHooks{})
//	    observability.SetReportHooks(&myReportHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Pipeline().OnLoadStart(ctx, path)
//	// ... scan records ...
//	observability.Pipeline().OnLoadComplete(ctx, path, records, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Pipeline Hooks
// =============================================================================

// PipelineHooks receives events from the analysis pipeline.
type PipelineHooks interface {
	// Load events
	OnLoadStart(ctx context.Context, source string)
	OnLoadComplete(ctx context.Context, source string, records int, duration time.Duration, err error)

	// OnReconcile reports the node counts before and after reconciliation.
	OnReconcile(ctx context.Context, rawNodes, reconciledNodes int, duration time.Duration)

	// Statistic events
	OnStatisticStart(ctx context.Context, name string)
	OnStatisticComplete(ctx context.Context, name string, duration time.Duration, err error)
}

// =============================================================================
// Report Hooks
// =============================================================================

// ReportHooks receives events from report rendering.
type ReportHooks interface {
	OnReportStart(ctx context.Context, format string)
	OnReportComplete(ctx context.Context, format string, bytes int, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnLoadStart(context.Context, string) {}
func (NoopPipelineHooks) OnLoadComplete(context.Context, string, int, time.Duration, error) {
}
func (NoopPipelineHooks) OnReconcile(context.Context, int, int, time.Duration)            {}
func (NoopPipelineHooks) OnStatisticStart(context.Context, string)                        {}
func (NoopPipelineHooks) OnStatisticComplete(context.Context, string, time.Duration, error) {}

// NoopReportHooks is a no-op implementation of ReportHooks.
type NoopReportHooks struct{}

func (NoopReportHooks) OnReportStart(context.Context, string)                             {}
func (NoopReportHooks) OnReportComplete(context.Context, string, int, time.Duration, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	reportHooks   ReportHooks   = NoopReportHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks.
// This should be called once at application startup before any pipeline operations.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// SetReportHooks registers custom report hooks.
func SetReportHooks(h ReportHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		reportHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Report returns the registered report hooks.
func Report() ReportHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return reportHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
	reportHooks = NoopReportHooks{}
}
