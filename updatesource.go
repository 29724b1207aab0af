package incremental

import (
	"bytes"
	"context"
	"encoding/gob"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/danielorbach/go-component"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gocloud.dev/pubsub"
)

// A CommitFunc is invoked after each streamed update has been applied to its
// input node. Typical commits resolve the graph root and hand the result to
// the rest of the application:
//
//	commit := func(ctx context.Context) error {
//		res, err := incremental.ResolveRoot(root, visitor)
//		if err != nil {
//			return err
//		}
//		defer res.Release()
//		return publish(ctx, res.Value())
//	}
type CommitFunc func(ctx context.Context) error

// An UpdateSource wraps a pubsub subscription and decodes incoming messages
// into typed deltas for a single input node. It is the bridge between event
// streams and graph leaves: producers publish gob-encoded values of the
// node's update type, and the source applies them in arrival order.
//
// Graph access stays single-threaded because one source owns one receive
// loop; run the procs of several sources under one component only if they
// feed disjoint graphs.
type UpdateSource[T InputValue[U], U any] struct {
	node         *InputNode[T, U]
	subscription *pubsub.Subscription
}

// NewUpdateSource returns an update source feeding the given node from the
// given subscription. As with [NewInput], name the update type explicitly:
//
//	source := incremental.NewUpdateSource[int](counter, subscription)
func NewUpdateSource[U any, T InputValue[U]](node *InputNode[T, U], sub *pubsub.Subscription) *UpdateSource[T, U] {
	return &UpdateSource[T, U]{node: node, subscription: sub}
}

// Stream returns a component.Proc that continuously receives messages from
// the subscription, applies each decoded update to the input node, and then
// invokes commit.
//
// Messages are acknowledged before handling: a message that cannot be decoded
// or applied would fail identically on redelivery, so redelivering it would
// only wedge the stream.
func (s *UpdateSource[T, U]) Stream(commit CommitFunc) component.Proc {
	return func(l *component.L) {
		logger := component.Logger(l.Context())
		for l.Continue() {
			msg, err := s.subscription.Receive(l.Context())
			if err != nil {
				if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
					// we're shutting down
					return
				}
				// Based on the pubsub Receive documentation, any other error
				// is non-retryable and the subscription must be recreated.
				// We lack a mechanism to recreate it, so terminate.
				l.Fatal(fmt.Errorf("receive: %w", err))
			}
			msg.Ack()

			if err := s.handleMessage(l.Context(), logger, msg); err != nil {
				l.Fatal(fmt.Errorf("handle update: %w", err))
			}

			if err := commit(l.Context()); err != nil {
				l.Fatal(fmt.Errorf("commit: %w", err))
			}
		}
	}
}

// handleMessage decodes a single message into the node's update type and
// applies it.
func (s *UpdateSource[T, U]) handleMessage(ctx context.Context, logger *slog.Logger, msg *pubsub.Message) (err error) {
	ctx, span := tracer.Start(ctx, "UpdateSource.handleMessage", trace.WithAttributes(
		attribute.String("msg.id", msg.LoggableID),
		attribute.String(inputNodeName, s.node.Name()),
	))
	defer span.End()

	defer func(start time.Time) {
		measureUpdate(ctx, s.node.Name(), err == nil, time.Since(start))
	}(time.Now())

	var update U
	if err := gob.NewDecoder(bytes.NewReader(msg.Body)).Decode(&update); err != nil {
		err := fmt.Errorf("decode gob: %w", err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	if err := s.node.Update(update); err != nil {
		// A held read reference means the application is still consuming the
		// previous result; surfacing the borrow error is preferable to
		// silently dropping the update.
		err := fmt.Errorf("apply update: %w", err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	logger.Debug("Applied streamed update to input node",
		slog.String("node", s.node.Name()),
		slog.Uint64("id", s.node.ID()),
	)
	return nil
}
