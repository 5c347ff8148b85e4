// Package phase1 implements the phase-1 script-validation core: given a
// transaction and the UTxO entries it consumes, it determines exactly which
// scripts the ledger must run and verifies that the transaction's witness
// set supplies a matching redeemer for each. It executes nothing; it is a
// pure decision procedure over already-decoded data (spec.md §1, §5).
package phase1

import "github.com/cardano-go/ledgervalidate/ledgertx"

// PhaseOne composes the three collaborating passes in sequence, short-
// circuiting on the first error (spec.md §4.4): Purpose Enumerator, then
// Script-Set Reconciler, then Redeemer-Pointer Resolver. A set mismatch
// prevents pointer computation, since the resolver assumes every needed
// hash already resolves to a known script version.
func PhaseOne(
	tx ledgertx.Transaction,
	resolved []ledgertx.ResolvedInput,
	scripts ledgertx.ScriptTable,
	witnessRedeemers ledgertx.WitnessRedeemerSet,
) error {
	needed, err := Enumerate(tx, resolved)
	if err != nil {
		return err
	}

	if err := Reconcile(needed, scripts); err != nil {
		return err
	}

	return ResolveRedeemers(tx, needed, scripts, witnessRedeemers)
}
