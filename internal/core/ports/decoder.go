package ports

//go:generate mockgen -source=decoder.go -destination=mocks/decoder_mock.go -package=mocks

// DecoderConfig holds device binding settings for a decoder.
type DecoderConfig struct {
	// Port is the device path the scanner presents, e.g. /dev/ttyACM0.
	Port string
	// Baud is the serial line rate.
	Baud int
}

// Decoder produces decoded QR payload strings from a capture device. It knows
// nothing of register semantics.
type Decoder interface {
	// Attach binds the callback that receives decoded payload strings.
	Attach(fn func(payload string))
	// Start activates frame capture. Idempotent.
	Start() error
	// Stop deactivates frame capture. Idempotent.
	Stop()
	// Available probes whether the capture device is present. Callers must
	// not Start when it reports false.
	Available() bool
	// Rebind tears the device down and rebinds it with new settings. The
	// decoder is stopped afterward; the next Start uses the new binding.
	Rebind(cfg DecoderConfig) error
}
