package ledgervalidate

import (
	"github.com/btcsuite/btclog"
	"github.com/cardano-go/ledgervalidate/address"
	"github.com/cardano-go/ledgervalidate/ledgertx"
	"github.com/cardano-go/ledgervalidate/phase1"
)

// log is the package-level logger for the module root. Sub-packages keep
// their own loggers and are wired up through UseLogger below, following the
// lnd convention of one disabled-by-default btclog.Logger per package.
var log = btclog.Disabled

// UseLogger sets the package-wide logger used by this package and fans it
// out to every sub-package that participates in a phase-1 evaluation, so a
// caller only has to wire logging up once at the top.
func UseLogger(logger btclog.Logger) {
	log = logger

	phase1.UseLogger(logger)
	ledgertx.UseLogger(logger)
	address.UseLogger(logger)
}
