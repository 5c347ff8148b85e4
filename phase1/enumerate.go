package phase1

import (
	"github.com/blinklabs-io/gouroboros/ledger"
	"github.com/blinklabs-io/gouroboros/ledger/common"

	"github.com/cardano-go/ledgervalidate/address"
	"github.com/cardano-go/ledgervalidate/ledgertx"
)

// Enumerate is the Purpose Enumerator (spec.md §4.1): it walks the
// transaction body and emits the ordered list of (ScriptPurpose,
// ScriptHash) pairs the ledger must discharge. The output order is the
// concatenation, in this fixed sequence, of: spending, rewarding,
// certifying, minting purposes. Within the spending, certifying and minting
// buckets the order is that of the slice the transaction accessor returns;
// the rewarding bucket follows Go's iteration order over the Withdrawals
// map, which is not defined. None of this is the canonical pointer order
// used by the redeemer resolver (§4.3); callers must not rely on it for
// anything but enumeration.
func Enumerate(tx ledgertx.Transaction, resolved []ledgertx.ResolvedInput) (ledgertx.ScriptsNeeded, error) {
	if tx.HasProposalProcedures() || tx.HasVotingProcedures() {
		return nil, ErrGovernanceUnsupported
	}

	spend, err := enumerateSpending(tx, resolved)
	if err != nil {
		return nil, err
	}

	reward, err := enumerateRewarding(tx)
	if err != nil {
		return nil, err
	}

	cert := enumerateCertifying(tx)
	mint := enumerateMinting(tx)

	needed := make(ledgertx.ScriptsNeeded, 0, len(spend)+len(reward)+len(cert)+len(mint))
	needed = append(needed, spend...)
	needed = append(needed, reward...)
	needed = append(needed, cert...)
	needed = append(needed, mint...)

	log.Debugf("phase1: enumerated %d script purposes (%d spend, %d reward, "+
		"%d cert, %d mint)", len(needed), len(spend), len(reward), len(cert), len(mint))

	return needed, nil
}

func enumerateSpending(tx ledgertx.Transaction, resolved []ledgertx.ResolvedInput) (ledgertx.ScriptsNeeded, error) {
	byRef := make(map[ledgertx.OutputRef]ledgertx.TxOut, len(resolved))
	for _, r := range resolved {
		byRef[r.Input] = r.Output
	}

	var needed ledgertx.ScriptsNeeded
	for _, in := range tx.Inputs() {
		ref := ledgertx.OutputRef{TxId: in.Id(), Index: in.Index()}

		out, ok := byRef[ref]
		if !ok {
			return nil, &ResolvedInputNotFoundError{Ref: ref}
		}

		addr, err := address.Decode(out.AddressBytes)
		if err != nil {
			return nil, err
		}

		h, isScript := address.PaymentScriptHash(addr)
		if !isScript {
			continue
		}

		needed = append(needed, ledgertx.PurposeHash{
			Purpose: ledgertx.ScriptPurpose{Kind: ledgertx.PurposeSpending, Spend: ref},
			Hash:    h,
		})
	}
	return needed, nil
}

func enumerateRewarding(tx ledgertx.Transaction) (ledgertx.ScriptsNeeded, error) {
	withdrawals := tx.Withdrawals()
	if len(withdrawals) == 0 {
		return nil, nil
	}

	var needed ledgertx.ScriptsNeeded
	for acnt := range withdrawals {
		if acnt == nil {
			return nil, ErrBadWithdrawalAddress
		}
		addr := *acnt
		if !address.IsStakeAddress(addr) {
			return nil, ErrBadWithdrawalAddress
		}

		h, isScript := address.StakeScriptHash(addr)
		if !isScript {
			continue
		}

		raw, err := addr.Bytes()
		if err != nil {
			return nil, newInvariantError("encode reward address: %v", err)
		}

		cred := common.Credential{
			CredType:   common.CredentialTypeScriptHash,
			Credential: h,
		}

		needed = append(needed, ledgertx.PurposeHash{
			Purpose: ledgertx.ScriptPurpose{
				Kind:         ledgertx.PurposeRewarding,
				Reward:       cred,
				RewardRawKey: raw,
			},
			Hash: h,
		})
	}
	return needed, nil
}

func enumerateCertifying(tx ledgertx.Transaction) ledgertx.ScriptsNeeded {
	var needed ledgertx.ScriptsNeeded
	for _, cert := range tx.Certificates() {
		h, ok := certificateScriptHash(cert)
		if !ok {
			continue
		}
		needed = append(needed, ledgertx.PurposeHash{
			Purpose: ledgertx.ScriptPurpose{Kind: ledgertx.PurposeCertifying, Cert: cert},
			Hash:    h,
		})
	}
	return needed
}

// certificateScriptHash implements spec.md §4.1's "only StakeDeregistration
// and StakeDelegation certs, and only when their credential is a script
// hash, ever require a script" rule. Every other certificate kind is never a
// script purpose in this protocol version.
func certificateScriptHash(cert ledger.Certificate) (ledgertx.ScriptHash, bool) {
	switch c := cert.(type) {
	case *common.StakeDeregistrationCertificate:
		if c.StakeCredential.CredType == common.CredentialTypeScriptHash {
			return c.StakeCredential.Hash(), true
		}
	case *common.StakeDelegationCertificate:
		if c.StakeCredential.CredType == common.CredentialTypeScriptHash {
			return c.StakeCredential.Hash(), true
		}
	}
	return ledgertx.ScriptHash{}, false
}

func enumerateMinting(tx ledgertx.Transaction) ledgertx.ScriptsNeeded {
	mint := tx.Mint()
	if mint == nil {
		return nil
	}

	var needed ledgertx.ScriptsNeeded
	for _, policyId := range mint.Policies() {
		needed = append(needed, ledgertx.PurposeHash{
			Purpose: ledgertx.ScriptPurpose{Kind: ledgertx.PurposeMinting, Mint: policyId},
			Hash:    policyId,
		})
	}
	return needed
}
