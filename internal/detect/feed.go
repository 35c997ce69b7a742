package detect

import (
	"context"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/aipex-labs/hudlink/internal/computepb"
	"github.com/aipex-labs/hudlink/internal/monitoring"
)

// Ensure Feed satisfies the provider contract.
var _ Provider = (*Feed)(nil)

// Feed subscribes to the inference collaborator's Datastream for one camera
// and caches the latest detection result and app navigation payload. The
// render loop reads the cache; it never blocks on the network.
type Feed struct {
	target  string
	camera  string
	backoff time.Duration
	logf    func(format string, v ...interface{})

	mu      sync.RWMutex
	last    Result
	haveRes bool
	appJSON string
	haveApp bool

	wg sync.WaitGroup
}

// NewFeed creates a feed for the named camera against the collaborator's
// gRPC target. backoff sets the redial delay after a broken stream.
func NewFeed(target, camera string, backoff time.Duration) *Feed {
	if backoff <= 0 {
		backoff = time.Second
	}
	return &Feed{
		target:  target,
		camera:  camera,
		backoff: backoff,
		logf:    monitoring.Prefixed("FEED-" + camera),
	}
}

// Start launches the subscriber goroutine. It returns immediately; the
// subscription ends when ctx is cancelled. Broken streams are redialed
// after the backoff, so a collaborator restart heals without operator
// action.
func (f *Feed) Start(ctx context.Context) {
	f.wg.Add(1)
	go func() {
		defer f.wg.Done()

		conn, err := grpc.NewClient(f.target, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			f.logf("cannot reach %s: %v", f.target, err)
			return
		}
		defer conn.Close()
		client := computepb.NewComputeServiceClient(conn)

		for {
			if err := f.consume(ctx, client); err != nil {
				f.logf("stream ended: %v", err)
			}
			select {
			case <-ctx.Done():
				return
			case <-time.After(f.backoff):
			}
		}
	}()
}

// consume opens one Datastream and caches messages until the stream breaks
// or ctx is cancelled.
func (f *Feed) consume(ctx context.Context, client computepb.ComputeServiceClient) error {
	stream, err := client.Datastream(ctx, &computepb.StreamRequest{Camera: f.camera})
	if err != nil {
		return err
	}
	for {
		msg, err := stream.Recv()
		if err != nil {
			return err
		}
		f.store(msg)
	}
}

func (f *Feed) store(msg *computepb.ServerMessage) {
	if txt := msg.GetDetectionJson(); txt != "" {
		res, err := ParseResult([]byte(txt))
		if err != nil {
			f.logf("bad detection payload: %v", err)
		} else {
			f.mu.Lock()
			f.last = res
			f.haveRes = true
			f.mu.Unlock()
		}
	}
	if txt := msg.GetAppJson(); txt != "" {
		f.mu.Lock()
		f.appJSON = txt
		f.haveApp = true
		f.mu.Unlock()
	}
}

// Wait blocks until the subscriber goroutine has exited.
func (f *Feed) Wait() {
	f.wg.Wait()
}

// DetectionResult returns the latest cached result. The second return is
// false until the first message arrives.
func (f *Feed) DetectionResult() (Result, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.last, f.haveRes
}

// LastAppJSON returns the latest cached navigation payload text, false when
// none has arrived yet.
func (f *Feed) LastAppJSON() (string, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.appJSON, f.haveApp
}
