// Package ledgertx defines the data model the phase-1 core decides over:
// the pieces of spec.md §3 this core owns outright (ScriptPurpose,
// ScriptVersion, ResolvedInput, the redeemer-pointer types), built on top of
// the hash/address/certificate primitives gouroboros's ledger/common package
// already provides. Nothing here is mutated by the core; it is read-only
// input and read-only diagnostic output.
package ledgertx

import (
	"reflect"

	"github.com/blinklabs-io/gouroboros/ledger"
	"github.com/blinklabs-io/gouroboros/ledger/common"
)

// ScriptHash identifies a script by its 28-byte hash.
type ScriptHash = common.Blake2b224

// PolicyId identifies a minting policy; policy IDs and script hashes share
// the same 28-byte hash space in the Cardano ledger.
type PolicyId = common.Blake2b224

// TxId is a 32-byte transaction hash.
type TxId = common.Blake2b256

// OutputRef names a previously-created transaction output being spent.
type OutputRef struct {
	TxId  TxId
	Index uint32
}

// Less orders two OutputRefs lexicographically by (TxId, Index), the
// canonical Spend sort key from spec.md §4.3.
func (o OutputRef) Less(other OutputRef) bool {
	ob, oob := o.TxId.Bytes(), other.TxId.Bytes()
	for i := range ob {
		if ob[i] != oob[i] {
			return ob[i] < oob[i]
		}
	}
	return o.Index < other.Index
}

// TxOut is the resolved contents of a previously-created output. Legacy and
// post-Alonzo output encodings are flattened to the address bytes only, as
// spec.md §3 requires; no other field of the output matters to this core.
type TxOut struct {
	AddressBytes []byte
}

// ResolvedInput pairs an input reference with the output it spends.
type ResolvedInput struct {
	Input  OutputRef
	Output TxOut
}

// ScriptVersion is the language a script is written in. Only the non-Native
// variants require a redeemer.
type ScriptVersion uint8

const (
	ScriptNative ScriptVersion = iota
	ScriptPlutusV1
	ScriptPlutusV2
	ScriptPlutusV3
)

// RequiresRedeemer reports whether a script of this version must be
// discharged with a witness redeemer. Every non-native version does today;
// see config.Params.ProtocolMajorVersion and DESIGN.md Open Question 1 for
// where a future protocol revision would change this.
func (v ScriptVersion) RequiresRedeemer() bool {
	return v != ScriptNative
}

// ScriptTable is the ScriptHash -> ScriptVersion mapping assembled by the
// caller from attached witnesses and reference scripts. This core treats it
// as given; it never mutates or extends it.
type ScriptTable map[ScriptHash]ScriptVersion

// RedeemerTag aliases the ledger-wide redeemer tag enumeration gouroboros
// already defines, so pointer values computed here are directly comparable
// with the tags found in a decoded witness set.
type RedeemerTag = common.RedeemerTag

// PurposeKind discriminates the four script-purpose shapes a transaction
// body can require.
type PurposeKind uint8

const (
	PurposeSpending PurposeKind = iota
	PurposeRewarding
	PurposeCertifying
	PurposeMinting
)

// ScriptPurpose names a single role a script plays in a transaction: a
// locked input, a guarded minting policy, or an authorizing stake action.
// Exactly one of the payload fields is meaningful, selected by Kind.
type ScriptPurpose struct {
	Kind PurposeKind

	// Spend is set when Kind == PurposeSpending.
	Spend OutputRef

	// Reward is set when Kind == PurposeRewarding: the decoded stake
	// credential, and the raw reward-account bytes the canonical Reward
	// sort orders on (spec.md requires byte-lexicographic order on the
	// *encoded* bytes, not a structured view of them).
	Reward       common.Credential
	RewardRawKey []byte

	// Cert is set when Kind == PurposeCertifying: the certificate value
	// itself, since the Cert pointer is positional within tx.Certificates
	// and not derived from any sort key.
	Cert ledger.Certificate

	// Mint is set when Kind == PurposeMinting.
	Mint PolicyId
}

// ScriptsNeeded is the ordered list the Purpose Enumerator produces: one
// (purpose, hash) pair per script the ledger must discharge.
type ScriptsNeeded []PurposeHash

// PurposeHash pairs a script purpose with the script hash it requires.
type PurposeHash struct {
	Purpose ScriptPurpose
	Hash    ScriptHash
}

// RedeemerKey is the (tag, index) pointer a redeemer must carry to discharge
// a given script purpose.
type RedeemerKey struct {
	Tag   RedeemerTag
	Index uint32
}

// WitnessRedeemerSet is the key set of the witness set's redeemer map; only
// the keys matter to phase-1 evaluation; the redeemer data and ExUnits do
// not.
type WitnessRedeemerSet map[RedeemerKey]struct{}

// NewWitnessRedeemerSet builds a WitnessRedeemerSet from a list of keys,
// e.g. decoded directly off a transaction's witness set.
func NewWitnessRedeemerSet(keys []RedeemerKey) WitnessRedeemerSet {
	set := make(WitnessRedeemerSet, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}
	return set
}

// CertificateEqual reports whether two certificates are the same value.
// Concrete certificate types from gouroboros/ledger/common are structs
// compared by DeepEqual rather than pointer identity, since a caller may
// reasonably hand back re-decoded (but value-equal) certificates.
func CertificateEqual(a, b ledger.Certificate) bool {
	return reflect.DeepEqual(a, b)
}

// TxInput is the minimal view of a transaction input this core needs: its
// referenced output's transaction id and index. gouroboros's own
// ledger/common.TransactionInput satisfies this directly; so does any test
// fixture.
type TxInput interface {
	Id() TxId
	Index() uint32
}

// MintMap is the minimal view of a transaction's mint field this core
// needs: the set of policy IDs with an associated mint entry.
// gouroboros's ledger/common.MultiAsset satisfies this directly.
type MintMap interface {
	Policies() []PolicyId
}

// Transaction is the read-only transaction-body accessor contract this core
// consumes (spec.md §6's "transaction body accessor"). It is intentionally
// narrow — only the fields the three passes actually read — so that a
// lazily-decoded view (spec.md §6 allows field access to fail with a decode
// error; callers surface that before ever calling into this core) or a
// hand-built test fixture can satisfy it. A gouroboros transaction does not
// satisfy it directly: its Inputs and Mint return gouroboros types and it
// has no HasProposalProcedures/HasVotingProcedures, so it needs an adapter.
type Transaction interface {
	// Inputs returns the transaction's inputs in the order the caller's
	// wire format carries them in; order is significant for
	// reconstructing any caller-side context, but the spend purposes
	// enumerated from it get re-sorted canonically in the resolver.
	Inputs() []TxInput

	// Withdrawals returns the transaction's reward withdrawals, keyed by
	// the already-decoded reward address. A nil/empty map means no
	// withdrawals.
	Withdrawals() map[*common.Address]uint64

	// Certificates returns the transaction's certificates in their
	// original, ledger-significant order.
	Certificates() []ledger.Certificate

	// Mint returns the transaction's mint field, or nil if the
	// transaction does not mint or burn any assets.
	Mint() MintMap

	// HasProposalProcedures and HasVotingProcedures report whether the
	// transaction carries governance fields this core has no support for
	// (spec.md §4.1 "Governance guard").
	HasProposalProcedures() bool
	HasVotingProcedures() bool
}
