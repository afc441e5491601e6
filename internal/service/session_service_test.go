package service

import (
	"errors"
	"testing"
	"time"

	"qr-register/internal/core/domain"
	"qr-register/internal/core/ports"
	"qr-register/internal/core/ports/mocks"
	"qr-register/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type sessionFixture struct {
	svc    *SessionServiceImpl
	dec    *mocks.MockDecoder
	reg    *mocks.MockRegisterService
	cues   *fakeCues
	sched  *manualScheduler
	decode func(string)
}

func newSession(t *testing.T) *sessionFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &sessionFixture{
		dec:   mocks.NewMockDecoder(ctrl),
		reg:   mocks.NewMockRegisterService(ctrl),
		cues:  &fakeCues{},
		sched: &manualScheduler{},
	}
	f.dec.EXPECT().Attach(gomock.Any()).Do(func(fn func(string)) {
		f.decode = fn
	})
	f.svc = NewSessionService(f.dec, f.reg, f.cues, f.sched, zerolog.Nop())
	require.NotNil(t, f.decode)
	return f
}

func (f *sessionFixture) start(t *testing.T) {
	t.Helper()
	f.dec.EXPECT().Available().Return(true)
	f.dec.EXPECT().Start().Return(nil)
	require.NoError(t, f.svc.StartScan())
}

func TestSession_StartScan(t *testing.T) {
	f := newSession(t)

	f.start(t)

	assert.True(t, f.svc.Scanning())
	require.Len(t, f.sched.timers, 1)
	assert.Equal(t, 10*time.Second, f.sched.timers[0].d)
}

func TestSession_StartScan_NoDevice(t *testing.T) {
	f := newSession(t)
	f.dec.EXPECT().Available().Return(false)

	err := f.svc.StartScan()

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "SCAN_001", appErr.Code)
	assert.False(t, f.svc.Scanning())
	assert.Empty(t, f.sched.timers)
}

func TestSession_StartScan_SecondCallIsNoOp(t *testing.T) {
	f := newSession(t)
	f.start(t)

	// No decoder expectations: the device must not be re-initialized.
	require.NoError(t, f.svc.StartScan())

	assert.True(t, f.svc.Scanning())
	assert.Len(t, f.sched.timers, 1)
}

func TestSession_StartScan_DecoderStartFailure(t *testing.T) {
	f := newSession(t)
	f.dec.EXPECT().Available().Return(true)
	f.dec.EXPECT().Start().Return(errors.New("device busy"))

	// A decoder that fails to start emits no callbacks; the timeout still
	// ends the episode, so starting reports no error.
	require.NoError(t, f.svc.StartScan())
	assert.True(t, f.svc.Scanning())

	f.dec.EXPECT().Stop()
	f.sched.timers[0].fire()
	assert.False(t, f.svc.Scanning())
}

func TestSession_StopScan(t *testing.T) {
	f := newSession(t)
	f.start(t)

	f.dec.EXPECT().Stop()
	f.svc.StopScan()

	assert.False(t, f.svc.Scanning())
	assert.True(t, f.sched.timers[0].cancelled)

	// Stopping again is a no-op.
	f.svc.StopScan()
}

func TestSession_Timeout(t *testing.T) {
	f := newSession(t)
	f.start(t)

	f.dec.EXPECT().Stop().Times(1)
	f.sched.timers[0].fire()

	assert.False(t, f.svc.Scanning())

	// The fired timer never stops the decoder a second time.
	f.svc.StopScan()
}

func TestSession_Decode_Dispatches(t *testing.T) {
	f := newSession(t)
	f.start(t)

	f.dec.EXPECT().Stop()
	f.reg.EXPECT().Submit(gomock.Any()).DoAndReturn(func(p domain.Payload) domain.SubmitOutcome {
		// The beep precedes dispatch for every decoded frame.
		assert.Equal(t, 1, f.cues.beeps)
		assert.Equal(t, domain.PayloadKindEmployee, p.Kind)
		return domain.SubmitAccepted
	})

	f.decode(`{"type":"employee","name":"Alice","store":"Downtown"}`)

	assert.False(t, f.svc.Scanning())
	assert.True(t, f.sched.timers[0].cancelled)
}

func TestSession_Decode_Malformed(t *testing.T) {
	f := newSession(t)
	f.start(t)

	// The beep fires for any decoded frame; nothing reaches the register.
	f.dec.EXPECT().Stop()
	f.decode(`not json`)

	assert.Equal(t, 1, f.cues.beeps)
	assert.False(t, f.svc.Scanning())
}

func TestSession_Decode_LateCallbackDropped(t *testing.T) {
	f := newSession(t)

	f.decode(`{"type":"employee","name":"Alice","store":"Downtown"}`)

	assert.Zero(t, f.cues.beeps)
	assert.False(t, f.svc.Scanning())
}

func TestSession_Decode_OnePayloadPerEpisode(t *testing.T) {
	f := newSession(t)
	f.start(t)

	f.dec.EXPECT().Stop()
	f.reg.EXPECT().Submit(gomock.Any()).Return(domain.SubmitAccepted)

	f.decode(`{"type":"employee","name":"Alice","store":"Downtown"}`)
	// A second frame decoded before the device fully stops is ignored.
	f.decode(`{"type":"item","id":"A","name":"Widget","price":"2.00"}`)

	assert.Equal(t, 1, f.cues.beeps)
}

func TestSession_Rebind(t *testing.T) {
	f := newSession(t)
	cfg := ports.DecoderConfig{Port: "/dev/ttyUSB1", Baud: 115200}

	f.dec.EXPECT().Rebind(cfg).Return(nil)
	assert.NoError(t, f.svc.Rebind(cfg))
}

func TestSession_Rebind_WhileScanning(t *testing.T) {
	f := newSession(t)
	f.start(t)

	err := f.svc.Rebind(ports.DecoderConfig{Port: "/dev/ttyUSB1", Baud: 115200})

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "SCAN_002", appErr.Code)
}

func TestSession_Rebind_DecoderError(t *testing.T) {
	f := newSession(t)
	cfg := ports.DecoderConfig{Port: "", Baud: 0}

	f.dec.EXPECT().Rebind(cfg).Return(errors.New("invalid binding"))

	err := f.svc.Rebind(cfg)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "SCAN_003", appErr.Code)
}
