package dom

import "github.com/rs/zerolog"

// logger receives focus transition records. It is disabled by default.
var logger = zerolog.Nop()

// SetLogger installs the logger used for focus transitions.
// Call it during startup, before documents are in use.
func SetLogger(l zerolog.Logger) {
	logger = l
}
