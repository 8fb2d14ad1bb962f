package usecase

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/JoeShih716/go-atm-ledger/internal/app/core/usecase"

// telemetry 使用全域的 OpenTelemetry provider，未安裝 SDK 時為 no-op
type telemetry struct {
	tracer   trace.Tracer
	count    metric.Int64Counter
	errors   metric.Int64Counter
	duration metric.Float64Histogram
}

func newTelemetry() *telemetry {
	meter := otel.Meter(instrumentationName)

	count, _ := meter.Int64Counter("atm.operation.count",
		metric.WithDescription("Total number of ledger operations"),
		metric.WithUnit("{operation}"),
	)
	errs, _ := meter.Int64Counter("atm.operation.errors",
		metric.WithDescription("Total number of ledger operations that returned an error"),
		metric.WithUnit("{error}"),
	)
	duration, _ := meter.Float64Histogram("atm.operation.duration",
		metric.WithDescription("Ledger operation duration in milliseconds"),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000),
	)

	return &telemetry{
		tracer:   otel.Tracer(instrumentationName),
		count:    count,
		errors:   errs,
		duration: duration,
	}
}

type operation struct {
	t     *telemetry
	name  string
	span  trace.Span
	start time.Time
}

func (t *telemetry) start(ctx context.Context, name string) (context.Context, *operation) {
	ctx, span := t.tracer.Start(ctx, "CoreUseCase."+name)
	return ctx, &operation{t: t, name: name, span: span, start: time.Now()}
}

// end 結束 span 並記錄指標，result 為 ok / rejected / error
func (op *operation) end(ctx context.Context, result string, err error) {
	attrs := metric.WithAttributes(
		attribute.String("atm.operation", op.name),
		attribute.String("atm.result", result),
	)
	op.t.count.Add(ctx, 1, attrs)
	op.t.duration.Record(ctx, float64(time.Since(op.start).Milliseconds()), attrs)

	op.span.SetAttributes(attribute.String("atm.result", result))
	if err != nil {
		op.t.errors.Add(ctx, 1, attrs)
		op.span.RecordError(err)
		op.span.SetStatus(codes.Error, err.Error())
	}
	op.span.End()
}
