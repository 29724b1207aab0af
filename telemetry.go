package incremental

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var tracer = otel.Tracer("github.com/go-incremental/go-incremental")
var meter = otel.Meter("github.com/go-incremental/go-incremental")

const (
	// inputNodeName is the attribute key used to associate each record with
	// the input node that received the update. This enables both collective
	// examination across all streamed inputs and individual analysis per
	// node.
	inputNodeName = "node"
)

var (
	// updateDuration measures the duration of handling a single streamed
	// update message: decoding it and applying it to the input node. The
	// commit that follows is not included.
	//
	// Each record is associated with the inputNodeName.
	updateDuration metric.Float64Histogram
	// updateFailures measures the number of streamed update messages that
	// could not be handled.
	//
	// Each record is associated with the inputNodeName.
	updateFailures metric.Int64Counter
)

func init() {
	var err error
	updateDuration, err = meter.Float64Histogram(
		"inputUpdate.apply.duration",
		metric.WithDescription("The duration of handling a single streamed update message, including decoding and applying it to the input node."),
		metric.WithUnit("ms"),
	)
	if err != nil {
		panic("incremental: failed to init 'inputUpdate.apply.duration' instrument")
	}

	updateFailures, err = meter.Int64Counter(
		"inputUpdate.apply.failures",
		metric.WithDescription("The number of streamed update messages that could not be handled."),
	)
	if err != nil {
		panic("incremental: failed to init 'inputUpdate.apply.failures' instrument")
	}
}

// measureUpdate measures the handling of one streamed update using the
// updateDuration and updateFailures instruments. If handling succeeded, we
// record its duration. If it failed, we increment the failure counter.
//
// Each record is labelled with the receiving input node's name, allowing
// collective analysis of all update streams as well as detailed individual
// analysis per node.
func measureUpdate(ctx context.Context, node string, succeeded bool, d time.Duration) {
	// According to go.opentelemetry.io/otel/attribute package documentation,
	// attribute.Set should be used instead of attribute.KeyValue directly for
	// performance optimization.
	attrs := attribute.NewSet(attribute.String(inputNodeName, node))
	if succeeded {
		// We use floating-point division here for higher precision (instead
		// of the Millisecond method).
		duration := float64(d) / float64(time.Millisecond)
		updateDuration.Record(ctx, duration, metric.WithAttributeSet(attrs))
	} else {
		updateFailures.Add(ctx, 1, metric.WithAttributeSet(attrs))
	}
}
