// Package battery reads the charge level of the UPS board that powers the
// display unit. The fuel gauge speaks a tiny query/response protocol over a
// serial link: write the state-of-charge register address, read back a
// 16-bit word with the bytes swapped, divide by 256 to get percent.
package battery

import (
	"fmt"
	"io"
	"math"
	"sync"
	"time"

	"go.bug.st/serial"

	"github.com/aipex-labs/hudlink/internal/monitoring"
)

// socRegister is the fuel gauge's state-of-charge register.
const socRegister = 0x04

var logf = monitoring.Prefixed("BAT")

// Reader reports the battery charge percentage in [0,100].
type Reader interface {
	Percent() (int, error)
}

// Gauge reads the fuel gauge over any byte stream. The concrete serial
// transport is injected so tests can drive it with a pipe.
type Gauge struct {
	rw io.ReadWriter
}

// NewGauge wraps an open fuel gauge connection.
func NewGauge(rw io.ReadWriter) *Gauge {
	return &Gauge{rw: rw}
}

// Percent queries the state-of-charge register. The gauge answers with the
// register's two bytes low-first; the swapped word divided by 256 is the
// charge percentage.
func (g *Gauge) Percent() (int, error) {
	if _, err := g.rw.Write([]byte{socRegister}); err != nil {
		return 0, fmt.Errorf("request state of charge: %w", err)
	}

	var raw [2]byte
	if _, err := io.ReadFull(g.rw, raw[:]); err != nil {
		return 0, fmt.Errorf("read state of charge: %w", err)
	}

	word := uint16(raw[0])<<8 | uint16(raw[1])
	percent := float64(word) / 256.0
	percent = math.Max(0, math.Min(100, percent))
	return int(math.Round(percent)), nil
}

// OpenSerialGauge opens the fuel gauge on a serial port.
func OpenSerialGauge(portName string) (*Gauge, io.Closer, error) {
	mode := &serial.Mode{
		BaudRate: 115200,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: 1,
	}
	port, err := serial.Open(portName, mode)
	if err != nil {
		return nil, nil, fmt.Errorf("open battery gauge %s: %w", portName, err)
	}
	return NewGauge(port), port, nil
}

// CachedSampler rate-limits gauge reads to at most one per interval and
// serves the cached value in between. A failed read logs and reports the
// level as unknown until the next sample succeeds.
type CachedSampler struct {
	reader   Reader
	interval time.Duration
	now      func() time.Time

	mu       sync.Mutex
	lastRead time.Time
	level    *int
}

// NewCachedSampler wraps a reader with a sampling cache. A zero interval
// selects one second; now may be nil to use the wall clock.
func NewCachedSampler(reader Reader, interval time.Duration, now func() time.Time) *CachedSampler {
	if interval <= 0 {
		interval = time.Second
	}
	if now == nil {
		now = time.Now
	}
	return &CachedSampler{reader: reader, interval: interval, now: now}
}

// Level returns the battery percentage, nil when unknown. At most one
// underlying read per interval; other calls return the cache.
func (c *CachedSampler) Level() *int {
	c.mu.Lock()
	defer c.mu.Unlock()

	t := c.now()
	if !c.lastRead.IsZero() && t.Sub(c.lastRead) < c.interval {
		return c.level
	}
	c.lastRead = t

	pct, err := c.reader.Percent()
	if err != nil {
		logf("Failed to read battery: %v", err)
		c.level = nil
		return nil
	}
	c.level = &pct
	return c.level
}
