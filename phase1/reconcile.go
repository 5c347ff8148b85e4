package phase1

import (
	"bytes"
	"sort"

	"github.com/cardano-go/ledgervalidate/ledgertx"
)

// Reconcile is the Script-Set Reconciler (spec.md §4.2): it compares the
// set of hashes produced by the enumerator with the set of hashes supplied
// in the witness/reference-script table and reports any symmetric
// difference. Duplicate hashes in needed are allowed and do not affect set
// equality — the same script may back multiple purposes. Both diagnostic
// slices are built in a deterministic order (missing follows needed's own
// order; extra is sorted by hash bytes) so that two calls over
// structurally equal inputs always produce structurally equal output,
// rather than an order Go's randomized map iteration would otherwise pick
// (spec.md §8 "Determinism").
func Reconcile(needed ledgertx.ScriptsNeeded, scripts ledgertx.ScriptTable) error {
	neededSet := make(map[ledgertx.ScriptHash]struct{}, len(needed))

	var missing []ledgertx.ScriptHash
	for _, ph := range needed {
		if _, seen := neededSet[ph.Hash]; seen {
			continue
		}
		neededSet[ph.Hash] = struct{}{}

		if _, ok := scripts[ph.Hash]; !ok {
			missing = append(missing, ph.Hash)
		}
	}

	var extra []ledgertx.ScriptHash
	for h := range scripts {
		if _, ok := neededSet[h]; !ok {
			extra = append(extra, h)
		}
	}
	sort.Slice(extra, func(i, j int) bool {
		a, b := extra[i].Bytes(), extra[j].Bytes()
		return bytes.Compare(a, b) < 0
	})

	if len(missing) != 0 || len(extra) != 0 {
		return &ScriptSetMismatchError{Missing: missing, Extra: extra}
	}

	log.Debugf("phase1: script set reconciled, %d distinct hashes needed", len(neededSet))

	return nil
}
