package phase1

import "github.com/btcsuite/btclog"

// log is disabled by default; wired up via UseLogger from the module root.
var log = btclog.Disabled

// UseLogger sets the package-wide logger used by the phase1 package.
func UseLogger(logger btclog.Logger) {
	log = logger
}
