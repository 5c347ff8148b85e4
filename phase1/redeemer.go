package phase1

import (
	"bytes"
	"sort"

	"github.com/blinklabs-io/gouroboros/ledger/common"

	"github.com/cardano-go/ledgervalidate/ledgertx"
)

// canonicalOrders precomputes, once per phase_one call, the canonical
// per-tag ordering spec.md §4.3 defines. The Rust original re-sorts the
// relevant container on every call to build_redeemer_key (once per
// purpose); this only changes the complexity from O(n^2 log n) to
// O(n log n) overall — see DESIGN.md Open Question 2 — never the assigned
// (tag, index) values.
type canonicalOrders struct {
	spendIndex  map[ledgertx.OutputRef]uint32
	mintIndex   map[ledgertx.PolicyId]uint32
	rewardIndex map[string]uint32
}

func buildCanonicalOrders(tx ledgertx.Transaction) (canonicalOrders, error) {
	inputs := tx.Inputs()
	refs := make([]ledgertx.OutputRef, len(inputs))
	for i, in := range inputs {
		refs[i] = ledgertx.OutputRef{TxId: in.Id(), Index: in.Index()}
	}
	sort.Slice(refs, func(i, j int) bool { return refs[i].Less(refs[j]) })

	spendIndex := make(map[ledgertx.OutputRef]uint32, len(refs))
	for i, ref := range refs {
		spendIndex[ref] = uint32(i)
	}

	var policyIds []ledgertx.PolicyId
	if mint := tx.Mint(); mint != nil {
		policyIds = append(policyIds, mint.Policies()...)
	}
	sort.Slice(policyIds, func(i, j int) bool {
		a, b := policyIds[i].Bytes(), policyIds[j].Bytes()
		return bytes.Compare(a[:], b[:]) < 0
	})

	mintIndex := make(map[ledgertx.PolicyId]uint32, len(policyIds))
	for i, p := range policyIds {
		mintIndex[p] = uint32(i)
	}

	var rawAccounts [][]byte
	for acnt := range tx.Withdrawals() {
		if acnt == nil {
			continue
		}
		raw, err := acnt.Bytes()
		if err != nil {
			return canonicalOrders{}, newInvariantError("encode reward address: %v", err)
		}
		rawAccounts = append(rawAccounts, raw)
	}
	sort.Slice(rawAccounts, func(i, j int) bool {
		return bytes.Compare(rawAccounts[i], rawAccounts[j]) < 0
	})

	rewardIndex := make(map[string]uint32, len(rawAccounts))
	for i, raw := range rawAccounts {
		rewardIndex[string(raw)] = uint32(i)
	}

	return canonicalOrders{
		spendIndex:  spendIndex,
		mintIndex:   mintIndex,
		rewardIndex: rewardIndex,
	}, nil
}

// redeemerKeyFor computes the canonical (tag, index) pointer for a script
// purpose, or (zero, false) if the purpose's discriminator cannot be found
// in its container's canonical order. Per spec.md §4.3 step 4, the latter
// should be impossible for well-formed inputs produced by Enumerate, and is
// silently dropped rather than treated as an error — a missing witness will
// surface via the reconciler or a later phase-2 check instead.
func redeemerKeyFor(tx ledgertx.Transaction, orders canonicalOrders, p ledgertx.ScriptPurpose) (ledgertx.RedeemerKey, bool) {
	switch p.Kind {
	case ledgertx.PurposeSpending:
		idx, ok := orders.spendIndex[p.Spend]
		if !ok {
			return ledgertx.RedeemerKey{}, false
		}
		return ledgertx.RedeemerKey{Tag: common.RedeemerTagSpend, Index: idx}, true

	case ledgertx.PurposeMinting:
		idx, ok := orders.mintIndex[p.Mint]
		if !ok {
			return ledgertx.RedeemerKey{}, false
		}
		return ledgertx.RedeemerKey{Tag: common.RedeemerTagMint, Index: idx}, true

	case ledgertx.PurposeRewarding:
		idx, ok := orders.rewardIndex[string(p.RewardRawKey)]
		if !ok {
			return ledgertx.RedeemerKey{}, false
		}
		return ledgertx.RedeemerKey{Tag: common.RedeemerTagReward, Index: idx}, true

	case ledgertx.PurposeCertifying:
		for i, cert := range tx.Certificates() {
			if ledgertx.CertificateEqual(cert, p.Cert) {
				return ledgertx.RedeemerKey{Tag: common.RedeemerTagCert, Index: uint32(i)}, true
			}
		}
		return ledgertx.RedeemerKey{}, false
	}

	return ledgertx.RedeemerKey{}, false
}

// ResolveRedeemers is the Redeemer-Pointer Resolver (spec.md §4.3): for
// every non-native script purpose it computes the canonical (tag, index)
// redeemer pointer and reconciles the resulting required set against the
// witness set's redeemer keys.
func ResolveRedeemers(
	tx ledgertx.Transaction,
	needed ledgertx.ScriptsNeeded,
	scripts ledgertx.ScriptTable,
	have ledgertx.WitnessRedeemerSet,
) error {
	orders, err := buildCanonicalOrders(tx)
	if err != nil {
		return err
	}

	var required []ledgertx.PurposeHash
	for _, ph := range needed {
		version, ok := scripts[ph.Hash]
		if !ok {
			// The reconciler already guarantees every needed hash
			// resolves in the script table; reaching here means a
			// caller ran ResolveRedeemers without first calling
			// Reconcile, or mutated the table in between.
			return newInvariantError("script hash %x not found in table "+
				"after reconciliation succeeded", ph.Hash.Bytes())
		}

		if !version.RequiresRedeemer() {
			continue
		}

		if _, ok := redeemerKeyFor(tx, orders, ph.Purpose); !ok {
			continue
		}

		required = append(required, ph)
	}

	neededSet := make(map[ledgertx.RedeemerKey]ledgertx.PurposeHash, len(required))
	for _, ph := range required {
		key, _ := redeemerKeyFor(tx, orders, ph.Purpose)
		neededSet[key] = ph
	}

	// Both diagnostic slices are built in a deterministic order — missing
	// follows required's own order, extra is sorted by (tag, index) — so
	// that two calls over structurally equal inputs always produce
	// structurally equal output, rather than an order Go's randomized map
	// iteration would otherwise pick (spec.md §8 "Determinism").
	var missing []ledgertx.PurposeHash
	for _, ph := range required {
		key, _ := redeemerKeyFor(tx, orders, ph.Purpose)
		if _, ok := have[key]; !ok {
			missing = append(missing, ph)
		}
	}

	var extra []ledgertx.RedeemerKey
	for key := range have {
		if _, ok := neededSet[key]; !ok {
			extra = append(extra, key)
		}
	}
	sort.Slice(extra, func(i, j int) bool {
		if extra[i].Tag != extra[j].Tag {
			return extra[i].Tag < extra[j].Tag
		}
		return extra[i].Index < extra[j].Index
	})

	if len(missing) != 0 || len(extra) != 0 {
		return &RequiredRedeemersMismatchError{Missing: missing, Extra: extra}
	}

	log.Debugf("phase1: redeemer set reconciled, %d required", len(neededSet))

	return nil
}
