package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	p := NoopPipelineHooks{}
	p.OnLoadStart(ctx, "amazon-meta.txt")
	p.OnLoadComplete(ctx, "amazon-meta.txt", 100, time.Second, nil)
	p.OnReconcile(ctx, 120, 100, time.Millisecond)
	p.OnStatisticStart(ctx, "average_degree")
	p.OnStatisticComplete(ctx, "average_degree", time.Second, nil)

	r := NoopReportHooks{}
	r.OnReportStart(ctx, "svg")
	r.OnReportComplete(ctx, "svg", 2048, time.Second, nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Pipeline() should return NoopPipelineHooks by default")
	}
	if _, ok := Report().(NoopReportHooks); !ok {
		t.Error("Report() should return NoopReportHooks by default")
	}

	customPipeline := &testPipelineHooks{}
	SetPipelineHooks(customPipeline)
	if Pipeline() != customPipeline {
		t.Error("SetPipelineHooks should set custom hooks")
	}

	customReport := &testReportHooks{}
	SetReportHooks(customReport)
	if Report() != customReport {
		t.Error("SetReportHooks should set custom hooks")
	}

	Reset()
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Reset() should restore NoopPipelineHooks")
	}
	if _, ok := Report().(NoopReportHooks); !ok {
		t.Error("Reset() should restore NoopReportHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testPipelineHooks{}
	SetPipelineHooks(custom)
	SetPipelineHooks(nil)

	if Pipeline() != custom {
		t.Error("SetPipelineHooks(nil) should be ignored")
	}

	Reset()
}

type testPipelineHooks struct{ NoopPipelineHooks }
type testReportHooks struct{ NoopReportHooks }
