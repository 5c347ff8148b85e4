package phase1

import (
	"fmt"

	goerrors "github.com/go-errors/errors"

	"github.com/cardano-go/ledgervalidate/ledgertx"
)

// ErrGovernanceUnsupported is returned when a transaction carries proposal
// or voting procedures, which this core has no support for (spec.md §4.1
// "Governance guard", §7).
var ErrGovernanceUnsupported = fmt.Errorf("governance procedures are not supported by phase-1 evaluation")

// ErrBadWithdrawalAddress is returned when a withdrawal key in the
// transaction body does not decode to a stake address (spec.md §4.1
// "Rewarding pass").
var ErrBadWithdrawalAddress = fmt.Errorf("withdrawal key is not a stake address")

// ResolvedInputNotFoundError is returned when the purpose enumerator cannot
// find a resolved UTxO for one of the transaction's inputs.
type ResolvedInputNotFoundError struct {
	Ref ledgertx.OutputRef
}

func (e *ResolvedInputNotFoundError) Error() string {
	return fmt.Sprintf("resolved input not found: tx %x#%d",
		e.Ref.TxId.Bytes(), e.Ref.Index)
}

// ScriptSetMismatchError reports the symmetric difference between the
// scripts the transaction needs and the scripts the caller supplied in its
// script table (spec.md §4.2, §7).
type ScriptSetMismatchError struct {
	Missing []ledgertx.ScriptHash
	Extra   []ledgertx.ScriptHash
}

func (e *ScriptSetMismatchError) Error() string {
	return fmt.Sprintf(
		"script set mismatch: %d missing, %d extraneous",
		len(e.Missing), len(e.Extra),
	)
}

// RequiredRedeemersMismatchError reports the symmetric difference between
// the redeemer keys phase-1 evaluation requires and the redeemer keys the
// witness set actually supplies (spec.md §4.3, §7). Missing entries carry
// their full purpose/hash context; extraneous entries are just the raw key,
// since there is no required purpose to attribute them to.
type RequiredRedeemersMismatchError struct {
	Missing []ledgertx.PurposeHash
	Extra   []ledgertx.RedeemerKey
}

func (e *RequiredRedeemersMismatchError) Error() string {
	return fmt.Sprintf(
		"required redeemers mismatch: %d missing, %d extraneous",
		len(e.Missing), len(e.Extra),
	)
}

// newInvariantError wraps a condition that should be impossible to reach
// given a transaction that already passed the reconciler — e.g. the
// redeemer resolver being asked about a script hash the reconciler should
// already have guaranteed resolves. It is not part of the spec.md §7
// taxonomy on purpose: it signals a bug in this core or its caller, not a
// malformed transaction, so it is wrapped with github.com/go-errors/errors
// for a stack trace the way peer.go and discovery/validation.go do for the
// same class of "this should not happen" condition.
func newInvariantError(format string, args ...interface{}) error {
	return goerrors.Errorf("phase1 invariant violation: "+format, args...)
}
