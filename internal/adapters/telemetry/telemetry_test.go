package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/localci/internal/adapters/telemetry"
	"go.trai.ch/localci/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestOTelTracer_Span(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	defer func() { _ = tp.Shutdown(context.Background()) }()

	tracer := telemetry.NewOTelTracer(tp)
	_, span := tracer.Start(context.Background(), telemetry.RunSpanName)
	span.SetAttribute("job", "build")
	span.SetAttribute("attempt", 2)
	span.SetAttribute("shell", true)
	span.SetAttribute("other", 1.5)
	span.AddEvent("running")
	span.RecordError(errors.New("no container"))
	span.End()

	ended := sr.Ended()
	require.Len(t, ended, 1)
	s := ended[0]
	assert.Equal(t, telemetry.RunSpanName, s.Name())
	assert.Contains(t, s.Attributes(), attribute.String("job", "build"))
	assert.Contains(t, s.Attributes(), attribute.Int("attempt", 2))
	assert.Contains(t, s.Attributes(), attribute.Bool("shell", true))
	assert.Contains(t, s.Attributes(), attribute.String("other", "1.5"))
	assert.Equal(t, codes.Error, s.Status().Code)
	assert.Equal(t, "no container", s.Status().Description)

	var names []string
	for _, e := range s.Events() {
		names = append(names, e.Name)
	}
	assert.Contains(t, names, "running")
}

func TestBridge_ReportsRunSpans(t *testing.T) {
	var got []telemetry.Summary
	tp := telemetry.NewProvider(telemetry.NewBridge(func(s telemetry.Summary) { got = append(got, s) }))
	defer func() { _ = tp.Shutdown(context.Background()) }()
	tracer := telemetry.NewOTelTracer(tp)

	_, other := tracer.Start(context.Background(), "unrelated")
	other.End()

	_, run := tracer.Start(context.Background(), telemetry.RunSpanName)
	run.SetAttribute("job", "build")
	run.SetAttribute("status", "succeeded")
	run.End()

	_, failed := tracer.Start(context.Background(), telemetry.RunSpanName)
	failed.SetAttribute("job", "lint")
	failed.RecordError(errors.New("license is invalid"))
	failed.End()

	require.Len(t, got, 2)
	assert.Equal(t, "build", got[0].Job)
	assert.Equal(t, "succeeded", got[0].Status)
	assert.Empty(t, got[0].Err)
	assert.Equal(t, "lint", got[1].Job)
	assert.Equal(t, "license is invalid", got[1].Err)
}

func TestLogSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info("job build succeeded after 0s")
	log.EXPECT().Info("job lint stopped after 0s")

	report := telemetry.LogSummary(log)
	report(telemetry.Summary{Job: "build", Status: "succeeded"})
	report(telemetry.Summary{Job: "lint"})
	report(telemetry.Summary{Job: "x", Err: "boom"})
}
