package incremental

import (
	"bytes"
	"context"
	"encoding/gob"
	"errors"
	"fmt"
	"hash"
	"log/slog"
	"testing"
	"time"

	"github.com/danielorbach/go-component"
	"golang.org/x/sync/errgroup"

	"gocloud.dev/pubsub"
	"gocloud.dev/pubsub/mempubsub"
)

// A tickerBook accumulates streamed price ticks per symbol.
type tickerBook struct {
	NoClean
	Prices map[string]int64
}

type priceTick struct {
	Symbol string
	Price  int64
}

func (b *tickerBook) Name() string { return "tickerBook" }

func (b *tickerBook) HashValue(h hash.Hash64) NodeHash {
	// Streamed books change on every tick; fingerprinting the map in a stable
	// order is costlier than recomputing the few dependents they have.
	return NotHashed
}

func (b *tickerBook) UpdateMut(tick priceTick) {
	if b.Prices == nil {
		b.Prices = make(map[string]int64)
	}
	b.Prices[tick.Symbol] = tick.Price
}

func TestPriceTickGobMarshalling(t *testing.T) {
	want := priceTick{Symbol: "INCR", Price: 4212}

	var p bytes.Buffer
	if err := gob.NewEncoder(&p).Encode(want); err != nil {
		t.Fatalf("Encode() = %v", err)
	}
	var got priceTick
	if err := gob.NewDecoder(&p).Decode(&got); err != nil {
		t.Fatalf("Decode() = %v", err)
	}
	if got != want {
		t.Errorf("reconstructed tick = %+v, want %+v", got, want)
	}
}

func TestUpdateSourceHandleMessage(t *testing.T) {
	ctx := context.Background()
	topic := mempubsub.NewTopic()
	defer topic.Shutdown(ctx)
	sub := mempubsub.NewSubscription(topic, time.Second)
	defer sub.Shutdown(ctx)

	node := NewInput[priceTick](&tickerBook{})
	source := NewUpdateSource[priceTick](node, sub)
	logger := slog.New(slog.DiscardHandler)

	// Publish a few ticks concurrently, the way independent producers would.
	ticks := []priceTick{
		{Symbol: "AAA", Price: 1},
		{Symbol: "BBB", Price: 2},
		{Symbol: "CCC", Price: 3},
	}
	g, gctx := errgroup.WithContext(ctx)
	for _, tick := range ticks {
		g.Go(func() error {
			var body bytes.Buffer
			if err := gob.NewEncoder(&body).Encode(tick); err != nil {
				return fmt.Errorf("encode %s: %w", tick.Symbol, err)
			}
			return topic.Send(gctx, &pubsub.Message{Body: body.Bytes()})
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("publish ticks: %v", err)
	}

	// Receive and apply each message on the single graph-owning goroutine.
	for range ticks {
		msg, err := sub.Receive(ctx)
		if err != nil {
			t.Fatalf("Receive() = %v", err)
		}
		msg.Ack()
		if err := source.handleMessage(ctx, logger, msg); err != nil {
			t.Fatalf("handleMessage() = %v", err)
		}
	}

	ref, err := node.Value()
	if err != nil {
		t.Fatalf("Value() = %v", err)
	}
	defer ref.Release()
	book := ref.Value()
	for _, tick := range ticks {
		if got := book.Prices[tick.Symbol]; got != tick.Price {
			t.Errorf("Prices[%q] = %d, want %d", tick.Symbol, got, tick.Price)
		}
	}
}

func TestUpdateSourceHandleMessageDecodeError(t *testing.T) {
	node := NewInput[priceTick](&tickerBook{})
	source := &UpdateSource[*tickerBook, priceTick]{node: node}
	logger := slog.New(slog.DiscardHandler)

	err := source.handleMessage(context.Background(), logger, &pubsub.Message{Body: []byte("not gob")})
	if err == nil {
		t.Fatalf("handleMessage() with garbage body = nil, want error")
	}
}

func TestUpdateSourceHandleMessageBusyNode(t *testing.T) {
	node := NewInput[priceTick](&tickerBook{})
	source := &UpdateSource[*tickerBook, priceTick]{node: node}
	logger := slog.New(slog.DiscardHandler)

	var body bytes.Buffer
	if err := gob.NewEncoder(&body).Encode(priceTick{Symbol: "AAA", Price: 1}); err != nil {
		t.Fatalf("Encode() = %v", err)
	}

	// The application still holds the previous result: the update must
	// surface the borrow conflict instead of being dropped silently.
	held, err := node.Value()
	if err != nil {
		t.Fatalf("Value() = %v", err)
	}
	defer held.Release()
	err = source.handleMessage(context.Background(), logger, &pubsub.Message{Body: body.Bytes()})
	if !errors.Is(err, ErrReadHeld) {
		t.Fatalf("handleMessage() with held read = %v, want ErrReadHeld", err)
	}
}

// ExampleUpdateSource_Stream shows an example [component.Descriptor] for a
// process that feeds streamed price ticks into a graph leaf and resolves the
// graph after every update.
func ExampleUpdateSource_Stream() {
	d := &component.Descriptor{
		Name: "ticker-feeder",
		Doc:  "....",
		Bootstrap: func(l *component.L, target component.Linker, options any) error {
			ticks, err := target.LinkInterest(l.GraceContext(), "market.price-ticks")
			if err != nil {
				return fmt.Errorf("open interest %q: %w", "market.price-ticks", err)
			}
			l.CleanupBackground(ticks.Shutdown)

			book := NewInput[priceTick](&tickerBook{})
			visitor := NewHashVisitor()
			// Compose derived nodes over the book here.

			source := NewUpdateSource[priceTick](book, ticks)
			l.Fork("ticker-updates", source.Stream(func(ctx context.Context) error {
				ref, err := ResolveRoot[*tickerBook](book, visitor)
				if err != nil {
					return err
				}
				defer ref.Release()
				// Hand ref.Value() to the rest of the application.
				return nil
			}))
			return nil
		},
		Interests: []string{"market.price-ticks"},
	}

	fmt.Print(d)
}
