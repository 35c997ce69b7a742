package hudstream

import (
	"fmt"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"google.golang.org/grpc"

	"github.com/aipex-labs/hudlink/internal/hudpb"
	"github.com/aipex-labs/hudlink/internal/monitoring"
)

// livenessPoll is how long a session blocks on its queue before re-checking
// that the peer is still connected.
const livenessPoll = time.Second

var logf = monitoring.Prefixed("HUD-SRV")

// Config holds configuration for the distribution server.
type Config struct {
	// ListenAddr is the address to listen on.
	ListenAddr string

	// StreamWorkers is the fixed pool size servicing subscriber sessions.
	StreamWorkers uint32
}

// DefaultConfig returns the default distribution server configuration.
func DefaultConfig() Config {
	return Config{
		ListenAddr:    "0.0.0.0:50055",
		StreamWorkers: 4,
	}
}

// Ensure Server implements the gRPC interface.
var _ hudpb.HudServiceServer = (*Server)(nil)

// Server is the HudService implementation plus its lifecycle. Frames enter
// through Publish and leave through per-subscriber StreamHud sessions.
type Server struct {
	hudpb.UnimplementedHudServiceServer

	config   Config
	registry *Registry

	server   *grpc.Server
	listener net.Listener
	running  atomic.Bool
	wg       sync.WaitGroup
}

// NewServer creates a distribution server around a fresh registry.
func NewServer(cfg Config) *Server {
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = DefaultConfig().ListenAddr
	}
	if cfg.StreamWorkers == 0 {
		cfg.StreamWorkers = DefaultConfig().StreamWorkers
	}
	return &Server{
		config:   cfg,
		registry: NewRegistry(),
	}
}

// Registry exposes the subscriber registry, mainly for stats.
func (s *Server) Registry() *Registry {
	return s.registry
}

// Publish broadcasts one encoded frame to every connected subscriber. Safe
// to call before Start and after Stop; frames published then go nowhere.
func (s *Server) Publish(jpeg []byte, tsMs int64) {
	s.registry.Publish(jpeg, tsMs)
}

// Start binds the listen address and begins serving sessions.
func (s *Server) Start() error {
	if s.running.Load() {
		return fmt.Errorf("hud server already running")
	}

	lis, err := net.Listen("tcp", s.config.ListenAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.config.ListenAddr, err)
	}
	s.listener = lis

	s.server = grpc.NewServer(
		grpc.NumStreamWorkers(s.config.StreamWorkers),
	)
	hudpb.RegisterHudServiceServer(s.server, s)
	s.running.Store(true)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		logf("Started on %s", s.config.ListenAddr)
		if err := s.server.Serve(lis); err != nil && s.running.Load() {
			logf("Server error: %v", err)
		}
	}()

	return nil
}

// Stop shuts the server down and waits for sessions to end.
func (s *Server) Stop() {
	if !s.running.Load() {
		return
	}
	s.running.Store(false)

	if s.server != nil {
		s.server.Stop()
	}
	s.wg.Wait()
	logf("Stopped")
}

// StreamHud services one subscriber session: register a queue, forward
// frames until the peer goes away. A client-requested target frame rate is
// honoured as a minimum-interval filter: frames arriving sooner than
// 1000/fps milliseconds after the last emitted one are discarded, never
// buffered.
func (s *Server) StreamHud(req *hudpb.StreamRequest, stream grpc.ServerStreamingServer[hudpb.HudFrame]) error {
	sub := s.registry.Connect(req.GetTargetFps())
	defer s.registry.Disconnect(sub.ID())

	ctx := stream.Context()

	var minIntervalMs int64
	if fps := req.GetTargetFps(); fps > 0 {
		minIntervalMs = 1000 / int64(fps)
	}

	poll := time.NewTimer(livenessPoll)
	defer poll.Stop()

	var lastEmitted int64
	for {
		if !poll.Stop() {
			select {
			case <-poll.C:
			default:
			}
		}
		poll.Reset(livenessPoll)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-poll.C:
			// Idle publisher; loop to re-check the session.
		case msg := <-sub.Frames():
			if minIntervalMs > 0 && msg.TS-lastEmitted < minIntervalMs {
				continue
			}
			if err := stream.Send(&hudpb.HudFrame{Jpeg: msg.JPEG, Ts: msg.TS}); err != nil {
				return err
			}
			lastEmitted = msg.TS
		}
	}
}
