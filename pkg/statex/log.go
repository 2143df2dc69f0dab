package statex

import "github.com/rs/zerolog"

// logger receives debug events for dirty marking, flushing, wrapping,
// and call boundaries. Disabled by default.
var logger = zerolog.Nop()

// SetLogger installs a logger for debug tracing of propagation.
// This should be set at startup and not changed while a graph is live.
//
//	statex.SetLogger(zerolog.New(os.Stderr).Level(zerolog.DebugLevel))
func SetLogger(l zerolog.Logger) {
	logger = l
}
