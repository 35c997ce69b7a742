package main

import (
	"image"
	"time"

	"github.com/aipex-labs/hudlink/internal/monitoring"
)

// DisplaySink receives the composed display canvas once per render cycle.
type DisplaySink interface {
	Show(frame *image.RGBA) error
	Close() error
}

// loggingDisplay stands in for the HUD glass when no panel is attached: it
// counts frames and reports the render rate periodically so a headless bench
// run still shows the pipeline is alive.
type loggingDisplay struct {
	frames   uint64
	lastLog  time.Time
	lastSeen uint64
	logf     func(format string, v ...interface{})
}

func newLoggingDisplay() *loggingDisplay {
	return &loggingDisplay{lastLog: time.Now(), logf: monitoring.Prefixed("HUD")}
}

func (d *loggingDisplay) Show(frame *image.RGBA) error {
	d.frames++
	if since := time.Since(d.lastLog); since >= 5*time.Second {
		fps := float64(d.frames-d.lastSeen) / since.Seconds()
		d.logf("Rendering at %.1f fps (%d frames total)", fps, d.frames)
		d.lastLog = time.Now()
		d.lastSeen = d.frames
	}
	return nil
}

func (d *loggingDisplay) Close() error {
	return nil
}

// nullDisplay discards frames; used when the display is disabled and only the
// network stream matters.
type nullDisplay struct{}

func (nullDisplay) Show(frame *image.RGBA) error { return nil }
func (nullDisplay) Close() error                 { return nil }
