package main

import (
	"context"
	"flag"
	"image"
	"log"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/aipex-labs/hudlink/internal/battery"
	"github.com/aipex-labs/hudlink/internal/capture"
	"github.com/aipex-labs/hudlink/internal/config"
	"github.com/aipex-labs/hudlink/internal/detect"
	"github.com/aipex-labs/hudlink/internal/hud"
	"github.com/aipex-labs/hudlink/internal/hudstream"
	"github.com/aipex-labs/hudlink/internal/nav"
	"github.com/aipex-labs/hudlink/internal/ridelog"
)

var (
	configPath = flag.String("config", "", "Path to JSON config file")
	listen     = flag.String("listen", "", "Override the distribution listen address")
	devMode    = flag.Bool("dev", false, "Run with a synthetic front camera and no hardware peripherals")
)

const (
	captureW = 640
	captureH = 480

	renderInterval = 33 * time.Millisecond // ~30fps
	rearPollDelay  = 33 * time.Millisecond
	sampleInterval = time.Second
)

// Main
func main() {
	flag.Parse()

	cfg := config.EmptyHudConfig()
	if *configPath != "" {
		var err error
		cfg, err = config.LoadHudConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *listen != "" {
		cfg.ListenAddr = listen
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var rideLog *ridelog.DB
	if path := cfg.GetRideLogPath(); path != "" {
		var err error
		rideLog, err = ridelog.Open(path)
		if err != nil {
			log.Fatalf("Failed to open ride log: %v", err)
		}
		defer rideLog.Close()
	}

	// The front camera is mandatory; the HUD has nothing to show without it.
	var front capture.Camera
	if *devMode {
		blank := image.NewRGBA(image.Rect(0, 0, captureW, captureH))
		front = capture.NewStaticCamera(blank)
	} else {
		cam, err := capture.NewGstCamera(capture.GstConfig{
			Device: cfg.GetFrontDevice(),
			Width:  captureW,
			Height: captureH,
		})
		if err != nil {
			log.Fatalf("Failed to initialize front camera: %v", err)
		}
		front = cam
	}

	// The rear camera is optional: when it fails the HUD runs front-only,
	// with no inset and no alerts, for the whole session.
	var rear capture.Camera
	if device := cfg.GetRearDevice(); device != "" && !*devMode {
		cam, err := capture.NewGstCamera(capture.GstConfig{
			Device: device,
			Width:  captureW,
			Height: captureH,
		})
		if err != nil {
			log.Printf("Rear camera initialization failed, running front-only: %v", err)
		} else {
			rear = cam
		}
	}

	var sampler *battery.CachedSampler
	if port := cfg.GetBatteryPort(); port != "" && !*devMode {
		gauge, closer, err := battery.OpenSerialGauge(port)
		if err != nil {
			log.Printf("Battery gauge unavailable: %v", err)
		} else {
			defer closer.Close()
			sampler = battery.NewCachedSampler(gauge, sampleInterval, nil)
		}
	}

	frontFeed := detect.NewFeed(cfg.GetFeedTarget(), "FRONT", cfg.GetFeedRedial())
	frontFeed.Start(ctx)

	// Rear detections arrive on the rear camera's own inference link.
	var rearFeed *detect.Feed
	if rear != nil {
		rearFeed = detect.NewFeed(cfg.GetRearFeedTarget(), "REAR", cfg.GetFeedRedial())
		rearFeed.Start(ctx)
	}

	server := hudstream.NewServer(hudstream.Config{
		ListenAddr:    cfg.GetListenAddr(),
		StreamWorkers: uint32(cfg.GetStreamWorkers()),
	})
	if err := server.Start(); err != nil {
		log.Fatalf("Failed to start HUD server: %v", err)
	}

	// Rear frames flow through the snapshot store so the render loop never
	// waits on the capture goroutine.
	store := &hud.Store{}
	var wg sync.WaitGroup
	if rear != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ticker := time.NewTicker(rearPollDelay)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return
				case <-ticker.C:
					frame, ok := rear.Capture()
					if !ok {
						continue
					}
					store.SetRearFrame(&hud.Frame{
						Image:      capture.RearInsetOrientation(frame),
						CapturedAt: time.Now(),
					})
				}
			}
		}()
	}

	comp := &hud.Compositor{
		PIP:    hud.NewPIPController(cfg.GetInsetHold(), nil),
		Alerts: hud.NewAlerts(cfg.GetAlertHold(), cfg.GetBlinkPeriod(), cfg.GetDeadband(), nil),
	}
	resolver := &nav.Resolver{}

	var display DisplaySink = nullDisplay{}
	if cfg.GetDisplayEnabled() {
		display = newLoggingDisplay()
	}
	defer display.Close()

	sessionID := uuid.NewString()
	startedAt := time.Now()
	log.Printf("Session %s started", sessionID)

	var frames uint64
	var prevAppJSON string
	var payload nav.Payload
	var lastSample time.Time

	ticker := time.NewTicker(renderInterval)
	defer ticker.Stop()

loop:
	for {
		select {
		case <-ctx.Done():
			break loop
		case <-ticker.C:
		}
		frames++

		frontResult, _ := frontFeed.DetectionResult()
		var rearResult detect.Result
		if rearFeed != nil {
			rearResult, _ = rearFeed.DetectionResult()
		}

		// Re-parse the app payload only when the text changes; malformed
		// text logs once and the previous values stay in effect.
		if txt, ok := frontFeed.LastAppJSON(); ok && txt != prevAppJSON {
			prevAppJSON = txt
			if p, err := nav.ParsePayload([]byte(txt)); err != nil {
				log.Printf("Ignoring app payload: %v", err)
			} else {
				payload = p
			}
		}
		state := resolver.Resolve(payload, frontResult)
		store.SetHeading(state.HeadingDeg)

		var frontFrame *image.RGBA
		if f, ok := front.Capture(); ok {
			frontFrame = capture.FrontDisplayOrientation(f)
		}
		var rearFrame *image.RGBA
		if rf := store.RearFrame(); rf != nil {
			rearFrame = rf.Image
		}

		var level *int
		if sampler != nil {
			level = sampler.Level()
		}

		canvases := comp.Render(hud.Inputs{
			Front:       frontFrame,
			FrontResult: frontResult,
			Rear:        rearFrame,
			RearResult:  rearResult,
			Nav:         state,
			Battery:     level,
		})

		if err := display.Show(canvases.Display); err != nil {
			log.Printf("Display error: %v", err)
		}

		if jpeg, err := hud.EncodeJPEG(canvases.Network); err != nil {
			log.Printf("Failed to encode HUD frame: %v", err)
		} else {
			server.Publish(jpeg, time.Now().UnixMilli())
		}

		if now := time.Now(); rideLog != nil && now.Sub(lastSample) >= sampleInterval {
			lastSample = now
			sample := ridelog.Sample{
				Heading:           store.Heading(),
				Speed:             state.Speed,
				RemainingDistance: state.RemainingDistance,
				ETA:               state.ETA,
				Battery:           level,
				Detections:        len(frontResult.Detections) + len(rearResult.Detections),
			}
			if err := rideLog.RecordSample(sessionID, sample); err != nil {
				log.Printf("Failed to record ride sample: %v", err)
			}
		}
	}

	// Shutdown mirrors startup in reverse: stop serving subscribers, drain
	// the feeds and capture goroutine, close the cameras, then summarise
	// the session.
	server.Stop()
	frontFeed.Wait()
	if rearFeed != nil {
		rearFeed.Wait()
	}
	wg.Wait()
	if err := front.Close(); err != nil {
		log.Printf("Failed to close front camera: %v", err)
	}
	if rear != nil {
		if err := rear.Close(); err != nil {
			log.Printf("Failed to close rear camera: %v", err)
		}
	}

	stats := server.Registry().Stats()
	duration := time.Since(startedAt).Seconds()
	log.Printf("Session %s: %.1fs, %d frames rendered (%.2f fps), %d published, %d dropped",
		sessionID, duration, frames, float64(frames)/duration,
		stats.FramesPublished, stats.FramesDropped)
	logCameraStats("FRONT", front, duration)
	if rear != nil {
		logCameraStats("REAR", rear, duration)
	}

	if rideLog != nil {
		if err := rideLog.RecordSession(ridelog.Session{
			ID:              sessionID,
			StartedAt:       startedAt,
			EndedAt:         time.Now(),
			Frames:          frames,
			FramesPublished: stats.FramesPublished,
			FramesDropped:   stats.FramesDropped,
		}); err != nil {
			log.Printf("Failed to record session: %v", err)
		}
	}
	log.Print("Shutdown complete")
}

// logCameraStats reports per-camera capture counts for cameras that track
// them (the GStreamer adapter does, the static stub does not).
func logCameraStats(name string, cam capture.Camera, durationSec float64) {
	counter, ok := cam.(interface{ Frames() uint64 })
	if !ok || durationSec <= 0 {
		return
	}
	n := counter.Frames()
	log.Printf("%s camera: %d frames captured, avg %.2f fps", name, n, float64(n)/durationSec)
}
