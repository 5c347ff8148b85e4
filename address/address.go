// Package address implements the §6 "address decoder" external
// collaborator: turning the raw address bytes a resolved output or a
// withdrawal key carries into the payment/stake discriminator this core
// actually needs. It is the one place, per spec.md's Design Notes, where
// misclassifying a script vs. a key part produces a silent false negative
// in the purpose enumerator, so the Shelley-payment and stake-payload
// switches below are kept as close as possible to gouroboros's own
// Credential/AddressPayload vocabulary rather than re-derived by hand.
package address

import (
	"fmt"

	"github.com/blinklabs-io/gouroboros/ledger/common"
)

// DecodeError wraps a failure to parse address bytes, mirroring spec.md
// §7's AddressDecode error kind.
type DecodeError struct {
	Inner error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("address decode: %v", e.Inner)
}

func (e *DecodeError) Unwrap() error {
	return e.Inner
}

// Decode parses raw address bytes into a gouroboros Address, the decoded
// form every other function in this package operates on.
func Decode(raw []byte) (common.Address, error) {
	addr, err := common.NewAddress(raw)
	if err != nil {
		return common.Address{}, &DecodeError{Inner: err}
	}
	return addr, nil
}

// PaymentScriptHash returns the script hash locking a Shelley output, and
// true, when the output's address is a Shelley-era address whose payment
// part is a script hash. It returns false (never an error) for every other
// address shape — byron addresses, enterprise addresses paid to a key,
// pointer addresses to a key, and so on — matching spec.md §4.1's "skip"
// behavior for anything that isn't a script-locked Shelley payment part.
func PaymentScriptHash(addr common.Address) (common.Blake2b224, bool) {
	payload := addr.PaymentPayload()
	if payload == nil {
		return common.Blake2b224{}, false
	}

	switch p := payload.(type) {
	case common.AddressPayloadScriptHash:
		return p.Hash, true
	default:
		return common.Blake2b224{}, false
	}
}

// StakeScriptHash returns the script hash guarding a stake address, and
// true, when the address's staking payload is a script hash. It returns
// (zero, false) for a key-locked stake address.
func StakeScriptHash(addr common.Address) (common.Blake2b224, bool) {
	payload := addr.StakingPayload()
	if payload == nil {
		return common.Blake2b224{}, false
	}

	switch p := payload.(type) {
	case common.AddressPayloadScriptHash:
		return p.Hash, true
	default:
		return common.Blake2b224{}, false
	}
}

// IsStakeAddress reports whether addr is itself a reward/stake address —
// a CIP-19 header type 0xE/0xF value carrying only a staking credential,
// never a payment part — used to distinguish a well-formed withdrawal key
// from a malformed one per spec.md §4.1's BadWithdrawalAddress case. A base
// address (both a payment and a staking part) fails this check even though
// it carries a staking payload: it is not a reward account and can never be
// the key of a withdrawal map.
func IsStakeAddress(addr common.Address) bool {
	return addr.PaymentPayload() == nil && addr.StakingPayload() != nil
}
