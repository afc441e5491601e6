package service

import (
	"sync"
	"time"

	"qr-register/internal/core/domain"
	"qr-register/internal/core/ports"
	"qr-register/internal/metrics"
	"qr-register/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// scanTimeout bounds a scanning episode: the decoder is stopped if nothing is
// decoded within this window.
const scanTimeout = 10 * time.Second

// SessionServiceImpl implements ports.SessionService. It owns the decoder
// handle and the scanning flag, guarantees a single episode in flight, and
// forwards exactly one decoded payload per episode to the register.
type SessionServiceImpl struct {
	mu       sync.Mutex
	scanning bool
	episode  uuid.UUID
	timer    ports.TimerHandle

	decoder  ports.Decoder
	register ports.RegisterService
	cues     ports.CuePlayer
	sched    ports.Scheduler
	log      zerolog.Logger
}

// NewSessionService creates a SessionServiceImpl and attaches it to the
// decoder's callback.
func NewSessionService(
	decoder ports.Decoder,
	register ports.RegisterService,
	cues ports.CuePlayer,
	sched ports.Scheduler,
	log zerolog.Logger,
) *SessionServiceImpl {
	s := &SessionServiceImpl{
		decoder:  decoder,
		register: register,
		cues:     cues,
		sched:    sched,
		log:      log.With().Str("component", "session").Logger(),
	}
	decoder.Attach(s.handleDecode)
	return s
}

// StartScan arms the decoder and the single-shot scan timeout. While an
// episode is in flight a second call is a no-op. With no device available the
// episode is not consumed and DeviceUnavailable is returned.
func (s *SessionServiceImpl) StartScan() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.scanning {
		s.log.Debug().Str("episode", s.episode.String()).Msg("scan already in progress")
		return nil
	}
	if !s.decoder.Available() {
		s.log.Warn().Msg("no scanner device available")
		return apperror.ErrScannerUnavailable()
	}

	s.scanning = true
	s.episode = uuid.New()

	if err := s.decoder.Start(); err != nil {
		// A decoder that fails to start emits no callbacks; the timeout
		// still ends the episode.
		s.log.Warn().Err(err).Str("episode", s.episode.String()).Msg("decoder start failed")
	}
	s.timer = s.sched.AfterFunc(scanTimeout, s.timeoutScan)

	metrics.ScansStarted.Inc()
	s.log.Info().Str("episode", s.episode.String()).Msg("scanning started")
	return nil
}

// StopScan ends the episode: cancels the timer and stops the decoder.
func (s *SessionServiceImpl) StopScan() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.scanning {
		return
	}
	s.endEpisode("operator")
}

// Scanning reports whether an episode is in flight.
func (s *SessionServiceImpl) Scanning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scanning
}

// Rebind reconfigures the decoder device. Rejected while scanning so the
// camera is never torn down under an armed episode.
func (s *SessionServiceImpl) Rebind(cfg ports.DecoderConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.scanning {
		return apperror.ErrScanInProgress()
	}
	if err := s.decoder.Rebind(cfg); err != nil {
		return apperror.ErrScannerRebind(err)
	}
	s.log.Info().Str("port", cfg.Port).Int("baud", cfg.Baud).Msg("scanner rebound")
	return nil
}

// timeoutScan fires when the scan timer elapses with nothing decoded.
func (s *SessionServiceImpl) timeoutScan() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.scanning {
		return
	}
	metrics.ScanTimeouts.Inc()
	s.endEpisode("timeout")
}

// handleDecode receives one decoded payload string from the decoder. The beep
// fires for any decoded frame, before anything else; then the episode ends,
// the text is parsed, and the payload dispatched to the register. A late
// callback after the episode ended is dropped, so at most one decoded payload
// per episode reaches the register.
func (s *SessionServiceImpl) handleDecode(raw string) {
	s.mu.Lock()
	if !s.scanning {
		s.mu.Unlock()
		s.log.Debug().Msg("late decode dropped")
		return
	}
	s.cues.Beep()
	episode := s.episode
	s.endEpisode("decoded")
	s.mu.Unlock()

	payload, err := domain.ParsePayload([]byte(raw))
	if err != nil {
		metrics.MalformedPayloads.Inc()
		s.log.Warn().Err(err).Str("episode", episode.String()).Msg("malformed payload discarded")
		return
	}

	outcome := s.register.Submit(payload)
	s.log.Info().
		Str("episode", episode.String()).
		Str("kind", string(payload.Kind)).
		Str("outcome", string(outcome)).
		Msg("payload dispatched")
}

// endEpisode clears the scanning flag, cancels the timer and stops the
// decoder. Callers hold the lock.
func (s *SessionServiceImpl) endEpisode(reason string) {
	s.scanning = false
	if s.timer != nil {
		s.timer.Cancel()
		s.timer = nil
	}
	s.decoder.Stop()
	s.log.Debug().Str("reason", reason).Msg("scanning stopped")
}
