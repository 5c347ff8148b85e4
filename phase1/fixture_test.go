package phase1

import (
	"github.com/blinklabs-io/gouroboros/ledger"
	"github.com/blinklabs-io/gouroboros/ledger/common"

	"github.com/cardano-go/ledgervalidate/ledgertx"
)

// Shelley address header nibbles (CIP-19). Only the shapes the fixtures
// below actually need.
const (
	addrTypeScriptKey    = 0x1 // script payment part, key stake part
	addrTypeScriptScript = 0x3 // script payment part, script stake part
	addrTypeKeyKey       = 0x0 // key payment part, key stake part
	addrTypeScriptOnly   = 0x7 // script payment part, no stake part (enterprise)
	addrTypeKeyOnly      = 0x6 // key payment part, no stake part (enterprise)
	addrTypeRewardScript = 0xf // stake script, reward account
	addrTypeRewardKey    = 0xe // stake key, reward account
	networkMainnet       = 0x1
)

// fixtureAddr builds raw CIP-19 address bytes out of a header nibble pair
// and the 28-byte credential hashes that follow it.
func fixtureAddr(addrType byte, parts ...[28]byte) []byte {
	raw := []byte{(addrType << 4) | networkMainnet}
	for _, p := range parts {
		raw = append(raw, p[:]...)
	}
	return raw
}

// hash28 and hash32 build deterministic, distinguishable fixture hash
// values without depending on any gouroboros hashing entrypoint this core
// does not itself call.
func hash28(seed byte) (out [28]byte) {
	for i := range out {
		out[i] = seed
	}
	return out
}

func hash32(seed byte) (out [32]byte) {
	for i := range out {
		out[i] = seed
	}
	return out
}

func scriptHash(seed byte) ledgertx.ScriptHash {
	return ledgertx.ScriptHash(hash28(seed))
}

func txID(seed byte) ledgertx.TxId {
	return ledgertx.TxId(hash32(seed))
}

type fixtureInput struct {
	id  ledgertx.TxId
	idx uint32
}

func (f fixtureInput) Id() ledgertx.TxId { return f.id }
func (f fixtureInput) Index() uint32     { return f.idx }

type fixtureMint struct {
	policies []ledgertx.PolicyId
}

func (m fixtureMint) Policies() []ledgertx.PolicyId { return m.policies }

// fixtureTx is a hand-built ledgertx.Transaction, exercising exactly the
// six accessors the three phase-1 passes read and nothing else.
type fixtureTx struct {
	inputs       []ledgertx.TxInput
	withdrawals  map[*common.Address]uint64
	certificates []ledger.Certificate
	mint         ledgertx.MintMap
	proposals    bool
	voting       bool
}

func (tx *fixtureTx) Inputs() []ledgertx.TxInput { return tx.inputs }

func (tx *fixtureTx) Withdrawals() map[*common.Address]uint64 { return tx.withdrawals }

func (tx *fixtureTx) Certificates() []ledger.Certificate { return tx.certificates }

func (tx *fixtureTx) Mint() ledgertx.MintMap { return tx.mint }

func (tx *fixtureTx) HasProposalProcedures() bool { return tx.proposals }

func (tx *fixtureTx) HasVotingProcedures() bool { return tx.voting }

// mustAddress decodes raw CIP-19 bytes, failing the test immediately on a
// malformed fixture rather than propagating the decode error into the
// assertion under test.
func mustAddress(t testingT, raw []byte) common.Address {
	t.Helper()
	addr, err := common.NewAddress(raw)
	if err != nil {
		t.Fatalf("fixture address decode: %v", err)
	}
	return addr
}

// testingT is the subset of *testing.T mustAddress needs, so it can be
// called from both *testing.T and *testing.B fixtures.
type testingT interface {
	Helper()
	Fatalf(format string, args ...interface{})
}
