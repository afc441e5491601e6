package scanner

import (
	"strings"
	"testing"

	"qr-register/internal/core/ports"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDecoder() *SerialDecoder {
	return NewSerialDecoder(ports.DecoderConfig{Port: "/dev/ttyACM0", Baud: 9600}, zerolog.Nop())
}

func TestReadLoop_Framing(t *testing.T) {
	d := newDecoder()
	var frames []string
	d.Attach(func(s string) { frames = append(frames, s) })

	// CRLF line endings and blank lines are scanner line noise, not frames.
	input := "{\"type\":\"employee\"}\r\n\r\n  \r\n  {\"type\":\"item\"}  \npartial"
	d.readLoop(strings.NewReader(input), make(chan struct{}))

	assert.Equal(t, []string{`{"type":"employee"}`, `{"type":"item"}`, "partial"}, frames)
}

func TestReadLoop_DoneFencesDelivery(t *testing.T) {
	d := newDecoder()
	var frames []string
	d.Attach(func(s string) { frames = append(frames, s) })

	done := make(chan struct{})
	close(done)
	d.readLoop(strings.NewReader("frame-after-stop\n"), done)

	assert.Empty(t, frames)
}

func TestReadLoop_NoCallbackAttached(t *testing.T) {
	d := newDecoder()

	// Must not panic with nothing attached.
	d.readLoop(strings.NewReader("frame\n"), make(chan struct{}))
}

func TestRebind(t *testing.T) {
	d := newDecoder()
	cfg := ports.DecoderConfig{Port: "/dev/ttyUSB1", Baud: 115200}

	require.NoError(t, d.Rebind(cfg))
	assert.Equal(t, cfg, d.cfg)
}

func TestRebind_RejectsInvalidBinding(t *testing.T) {
	d := newDecoder()

	assert.Error(t, d.Rebind(ports.DecoderConfig{Port: "", Baud: 9600}))
	assert.Error(t, d.Rebind(ports.DecoderConfig{Port: "/dev/ttyUSB1", Baud: 0}))
	assert.Error(t, d.Rebind(ports.DecoderConfig{Port: "/dev/ttyUSB1", Baud: -1}))

	// The original binding survives a rejected rebind.
	assert.Equal(t, ports.DecoderConfig{Port: "/dev/ttyACM0", Baud: 9600}, d.cfg)
}

func TestStop_Idempotent(t *testing.T) {
	d := newDecoder()

	// Stop before Start is a no-op.
	d.Stop()
	d.Stop()
}

func TestName(t *testing.T) {
	assert.Equal(t, "scanner", newDecoder().Name())
}
