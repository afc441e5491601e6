// Package scanner adapts a hardware QR scanner to the Decoder port. The
// device presents as a serial line and emits one decoded payload string per
// newline-terminated frame.
package scanner

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"qr-register/internal/core/ports"

	"github.com/rs/zerolog"
	"go.bug.st/serial.v1"
)

// SerialDecoder implements ports.Decoder over a serial-attached scanner.
type SerialDecoder struct {
	mu   sync.Mutex
	cfg  ports.DecoderConfig
	port serial.Port
	fn   func(string)
	done chan struct{}
	log  zerolog.Logger
}

// NewSerialDecoder creates a SerialDecoder bound to the given device settings.
// The port is not opened until Start.
func NewSerialDecoder(cfg ports.DecoderConfig, log zerolog.Logger) *SerialDecoder {
	return &SerialDecoder{
		cfg: cfg,
		log: log.With().Str("component", "scanner").Logger(),
	}
}

// Attach binds the callback that receives decoded payload strings.
func (d *SerialDecoder) Attach(fn func(string)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.fn = fn
}

// Available reports whether the configured device is present.
func (d *SerialDecoder) Available() bool {
	d.mu.Lock()
	port := d.cfg.Port
	d.mu.Unlock()

	names, err := serial.GetPortsList()
	if err != nil {
		d.log.Warn().Err(err).Msg("listing serial ports failed")
		return false
	}
	for _, name := range names {
		if name == port {
			return true
		}
	}
	return false
}

// Start opens the device and begins delivering decoded frames. Idempotent.
func (d *SerialDecoder) Start() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.port != nil {
		return nil
	}

	port, err := serial.Open(d.cfg.Port, &serial.Mode{BaudRate: d.cfg.Baud})
	if err != nil {
		return fmt.Errorf("open scanner port %s: %w", d.cfg.Port, err)
	}
	d.port = port
	d.done = make(chan struct{})

	go d.readLoop(port, d.done)

	d.log.Debug().Str("port", d.cfg.Port).Int("baud", d.cfg.Baud).Msg("scanner started")
	return nil
}

// Stop closes the device and ends frame delivery. Idempotent.
func (d *SerialDecoder) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopLocked()
}

// Rebind tears the device down and swaps in new settings. The decoder is
// stopped afterward; the next Start opens the new binding.
func (d *SerialDecoder) Rebind(cfg ports.DecoderConfig) error {
	if cfg.Port == "" || cfg.Baud <= 0 {
		return fmt.Errorf("invalid scanner binding: port=%q baud=%d", cfg.Port, cfg.Baud)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopLocked()
	d.cfg = cfg
	return nil
}

// Ping implements ports.HealthChecker.
func (d *SerialDecoder) Ping(ctx context.Context) error {
	if !d.Available() {
		d.mu.Lock()
		port := d.cfg.Port
		d.mu.Unlock()
		return fmt.Errorf("scanner port %s not present", port)
	}
	return nil
}

// Name implements ports.HealthChecker.
func (d *SerialDecoder) Name() string {
	return "scanner"
}

func (d *SerialDecoder) stopLocked() {
	if d.port == nil {
		return
	}
	close(d.done)
	if err := d.port.Close(); err != nil {
		d.log.Warn().Err(err).Msg("closing scanner port failed")
	}
	d.port = nil
	d.log.Debug().Msg("scanner stopped")
}

// readLoop delivers newline-framed payloads until the port closes or the
// decoder stops. The done channel fences off frames read after Stop.
func (d *SerialDecoder) readLoop(r io.Reader, done chan struct{}) {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		frame := strings.TrimSpace(sc.Text())
		if frame == "" {
			continue
		}

		select {
		case <-done:
			return
		default:
		}

		d.mu.Lock()
		fn := d.fn
		d.mu.Unlock()
		if fn != nil {
			fn(frame)
		}
	}
	if err := sc.Err(); err != nil {
		select {
		case <-done:
			// Close mid-read surfaces as an error; expected on Stop.
		default:
			d.log.Warn().Err(err).Msg("scanner read loop ended")
		}
	}
}
