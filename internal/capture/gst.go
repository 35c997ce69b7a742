package capture

import (
	"fmt"
	"image"
	"sync/atomic"

	"github.com/tinyzimmer/go-gst/gst"
	"github.com/tinyzimmer/go-gst/gst/app"

	"github.com/aipex-labs/hudlink/internal/monitoring"
)

var logf = monitoring.Prefixed("CAM")

// GstConfig describes one camera pipeline.
type GstConfig struct {
	// Device is the video device node, e.g. /dev/video0.
	Device string
	// Width and Height are the capture resolution.
	Width  int
	Height int
}

// GstCamera captures from a V4L2 device through a GStreamer pipeline:
//
//	v4l2src → videoconvert → videoscale → capsfilter(RGBA) → appsink
//
// The appsink keeps only the latest buffer (max-buffers=1, drop=true) and
// the new-sample callback swaps the decoded frame into an atomic mailbox, so
// the render loop always reads the freshest frame without queueing.
type GstCamera struct {
	cfg      GstConfig
	pipeline *gst.Pipeline
	latest   atomic.Pointer[image.RGBA]
	frames   atomic.Uint64
}

// NewGstCamera builds and starts the capture pipeline.
func NewGstCamera(cfg GstConfig) (*GstCamera, error) {
	gst.Init(nil)

	pipeline, err := gst.NewPipeline("")
	if err != nil {
		return nil, fmt.Errorf("create pipeline: %w", err)
	}

	src, err := gst.NewElement("v4l2src")
	if err != nil {
		return nil, fmt.Errorf("create v4l2src: %w", err)
	}
	src.SetProperty("device", cfg.Device)

	converter, err := gst.NewElement("videoconvert")
	if err != nil {
		return nil, fmt.Errorf("create videoconvert: %w", err)
	}

	scaler, err := gst.NewElement("videoscale")
	if err != nil {
		return nil, fmt.Errorf("create videoscale: %w", err)
	}

	capsfilter, err := gst.NewElement("capsfilter")
	if err != nil {
		return nil, fmt.Errorf("create capsfilter: %w", err)
	}
	capsStr := fmt.Sprintf("video/x-raw,format=RGBA,width=%d,height=%d", cfg.Width, cfg.Height)
	capsfilter.SetProperty("caps", gst.NewCapsFromString(capsStr))

	appsink, err := app.NewAppSink()
	if err != nil {
		return nil, fmt.Errorf("create appsink: %w", err)
	}
	appsink.SetProperty("sync", false)    // No sync with clock (real-time)
	appsink.SetProperty("max-buffers", 1) // Keep only latest frame
	appsink.SetProperty("drop", true)     // Drop old frames

	cam := &GstCamera{cfg: cfg, pipeline: pipeline}

	appsink.SetCallbacks(&app.SinkCallbacks{
		NewSampleFunc: cam.onNewSample,
	})

	pipeline.AddMany(src, converter, scaler, capsfilter, appsink.Element)
	if err := gst.ElementLinkMany(src, converter, scaler, capsfilter, appsink.Element); err != nil {
		return nil, fmt.Errorf("link pipeline: %w", err)
	}

	if err := pipeline.SetState(gst.StatePlaying); err != nil {
		return nil, fmt.Errorf("start pipeline for %s: %w", cfg.Device, err)
	}
	logf("Capture started on %s (%dx%d)", cfg.Device, cfg.Width, cfg.Height)
	return cam, nil
}

// onNewSample decodes one appsink sample into the mailbox. The buffer is
// copied because GStreamer reuses it after the callback returns.
func (c *GstCamera) onNewSample(sink *app.Sink) gst.FlowReturn {
	sample := sink.PullSample()
	if sample == nil {
		return gst.FlowOK
	}
	buffer := sample.GetBuffer()
	if buffer == nil {
		return gst.FlowOK
	}

	mapInfo := buffer.Map(gst.MapRead)
	data := mapInfo.Bytes()
	if len(data) == 0 {
		buffer.Unmap()
		return gst.FlowOK
	}

	img := image.NewRGBA(image.Rect(0, 0, c.cfg.Width, c.cfg.Height))
	copy(img.Pix, data)
	buffer.Unmap()

	c.latest.Store(img)
	c.frames.Add(1)
	return gst.FlowOK
}

// Capture returns the most recent frame. The image is immutable once stored.
func (c *GstCamera) Capture() (*image.RGBA, bool) {
	img := c.latest.Load()
	return img, img != nil
}

// Frames returns the number of frames captured since start.
func (c *GstCamera) Frames() uint64 {
	return c.frames.Load()
}

// Close stops the pipeline.
func (c *GstCamera) Close() error {
	if c.pipeline != nil {
		if err := c.pipeline.SetState(gst.StateNull); err != nil {
			return fmt.Errorf("stop pipeline for %s: %w", c.cfg.Device, err)
		}
	}
	logf("Capture stopped on %s", c.cfg.Device)
	return nil
}
