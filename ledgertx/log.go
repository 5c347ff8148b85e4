package ledgertx

import "github.com/btcsuite/btclog"

// log is disabled by default so importing this package as a library has no
// logging side effects until the host binary calls UseLogger.
var log = btclog.Disabled

// UseLogger sets the package-wide logger used by the ledgertx package.
func UseLogger(logger btclog.Logger) {
	log = logger
}
