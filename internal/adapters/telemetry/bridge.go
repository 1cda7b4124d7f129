package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// RunSpanName is the span the orchestrator opens around a job run.
const RunSpanName = "job.run"

// Summary describes a finished job run.
type Summary struct {
	Job      string
	Status   string
	Duration time.Duration
	Err      string
}

// Bridge implements sdktrace.SpanProcessor and reports finished run spans.
type Bridge struct {
	report func(Summary)
}

// NewBridge returns a Bridge calling report for every finished run span.
func NewBridge(report func(Summary)) *Bridge {
	return &Bridge{report: report}
}

// OnStart does nothing.
func (b *Bridge) OnStart(context.Context, sdktrace.ReadWriteSpan) {}

// OnEnd reports run spans.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.report == nil || s.Name() != RunSpanName || !s.SpanContext().IsValid() {
		return
	}

	sum := Summary{Duration: s.EndTime().Sub(s.StartTime())}
	for _, kv := range s.Attributes() {
		switch kv.Key {
		case attribute.Key("job"):
			sum.Job = kv.Value.AsString()
		case attribute.Key("status"):
			sum.Status = kv.Value.AsString()
		}
	}
	if s.Status().Code == codes.Error {
		sum.Err = s.Status().Description
		if sum.Err == "" {
			sum.Err = "run failed"
		}
	}
	b.report(sum)
}

// ForceFlush does nothing.
func (b *Bridge) ForceFlush(context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *Bridge) Shutdown(context.Context) error {
	return nil
}
