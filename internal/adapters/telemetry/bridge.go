package telemetry

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/kmak/internal/core/ports"
)

// CommandAttribute is the span attribute holding a launched command line.
const CommandAttribute = "command"

// Bridge implements sdktrace.SpanProcessor and reports finished spans
// through a Logger.
type Bridge struct {
	logger ports.Logger
}

// NewBridge returns a new Bridge.
func NewBridge(logger ports.Logger) *Bridge {
	return &Bridge{
		logger: logger,
	}
}

// OnStart is called when a span starts.
func (b *Bridge) OnStart(_ context.Context, s sdktrace.ReadWriteSpan) {
	if b.logger == nil || !s.SpanContext().IsValid() {
		return
	}
	b.logger.Debug("trace: " + label(s) + " started")
}

// OnEnd is called when a span ends.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.logger == nil || !s.SpanContext().IsValid() {
		return
	}

	elapsed := s.EndTime().Sub(s.StartTime()).Round(time.Millisecond)
	if s.Status().Code == codes.Error {
		desc := s.Status().Description
		if desc == "" {
			desc = "failed"
		}
		b.logger.Info(fmt.Sprintf("trace: %s failed after %s: %s", label(s), elapsed, desc))
		return
	}
	b.logger.Info(fmt.Sprintf("trace: %s took %s", label(s), elapsed))
}

// ForceFlush does nothing.
func (b *Bridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *Bridge) Shutdown(_ context.Context) error {
	return nil
}

type attributed interface {
	Name() string
	Attributes() []attribute.KeyValue
}

func label(s attributed) string {
	for _, kv := range s.Attributes() {
		if string(kv.Key) == CommandAttribute {
			return s.Name() + " " + strconv.Quote(kv.Value.AsString())
		}
	}
	return s.Name()
}
