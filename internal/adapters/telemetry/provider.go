package telemetry

import (
	"fmt"
	"time"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/localci/internal/core/ports"
)

// NewProvider returns a tracer provider that reports finished runs through bridge.
func NewProvider(bridge *Bridge) *sdktrace.TracerProvider {
	return sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(bridge))
}

// LogSummary returns a report function writing run summaries to logger.
func LogSummary(logger ports.Logger) func(Summary) {
	return func(s Summary) {
		if s.Err != "" {
			return
		}
		status := s.Status
		if status == "" {
			status = "stopped"
		}
		logger.Info(fmt.Sprintf("job %s %s after %s", s.Job, status, s.Duration.Round(time.Second)))
	}
}
