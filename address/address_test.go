package address

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Shelley address header nibbles (CIP-19): high nibble selects the payment/
// staking part shapes, low nibble selects the network (1 = mainnet).
const (
	headerScriptKey    = 0x1 << 4 // script payment, key stake
	headerKeyKey       = 0x0 << 4 // key payment, key stake
	headerScriptScript = 0x3 << 4 // script payment, script stake
	headerScriptOnly   = 0x7 << 4 // script payment, no stake (enterprise)
	headerKeyOnly      = 0x6 << 4 // key payment, no stake (enterprise)
	headerRewardScript = 0xf << 4 // stake script, reward account
	headerRewardKey    = 0xe << 4 // stake key, reward account
	mainnet            = 0x1
)

func hash28(seed byte) []byte {
	h := make([]byte, 28)
	for i := range h {
		h[i] = seed
	}
	return h
}

func rawAddr(header byte, parts ...[]byte) []byte {
	raw := []byte{header | mainnet}
	for _, p := range parts {
		raw = append(raw, p...)
	}
	return raw
}

func TestDecodeValid(t *testing.T) {
	raw := rawAddr(headerScriptKey, hash28(0x01), hash28(0x02))
	addr, err := Decode(raw)
	require.NoError(t, err)

	h, ok := PaymentScriptHash(addr)
	require.True(t, ok)
	require.Equal(t, hash28(0x01), h.Bytes())
}

func TestDecodeInvalid(t *testing.T) {
	_, err := Decode([]byte{0xff})
	require.Error(t, err)

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
}

func TestPaymentScriptHashScriptPayment(t *testing.T) {
	addr, err := Decode(rawAddr(headerScriptScript, hash28(0x10), hash28(0x11)))
	require.NoError(t, err)

	h, ok := PaymentScriptHash(addr)
	require.True(t, ok)
	require.Equal(t, hash28(0x10), h.Bytes())
}

func TestPaymentScriptHashKeyPayment(t *testing.T) {
	addr, err := Decode(rawAddr(headerKeyKey, hash28(0x20), hash28(0x21)))
	require.NoError(t, err)

	_, ok := PaymentScriptHash(addr)
	require.False(t, ok, "a key-locked payment part is never a script hash")
}

func TestStakeScriptHashScriptStake(t *testing.T) {
	addr, err := Decode(rawAddr(headerScriptScript, hash28(0x30), hash28(0x31)))
	require.NoError(t, err)

	h, ok := StakeScriptHash(addr)
	require.True(t, ok)
	require.Equal(t, hash28(0x31), h.Bytes())
}

func TestStakeScriptHashKeyStake(t *testing.T) {
	addr, err := Decode(rawAddr(headerScriptKey, hash28(0x40), hash28(0x41)))
	require.NoError(t, err)

	_, ok := StakeScriptHash(addr)
	require.False(t, ok)
}

func TestStakeScriptHashNoStakingPart(t *testing.T) {
	addr, err := Decode(rawAddr(headerScriptOnly, hash28(0x50)))
	require.NoError(t, err)

	_, ok := StakeScriptHash(addr)
	require.False(t, ok)
}

func TestIsStakeAddress(t *testing.T) {
	reward, err := Decode(rawAddr(headerRewardKey, hash28(0x60)))
	require.NoError(t, err)
	require.True(t, IsStakeAddress(reward))

	enterprise, err := Decode(rawAddr(headerKeyOnly, hash28(0x70)))
	require.NoError(t, err)
	require.False(t, IsStakeAddress(enterprise))
}

func TestIsStakeAddressRejectsBaseAddress(t *testing.T) {
	// A base address carries both a payment and a staking part. It is not
	// a reward account and must never pass as one, even though it has a
	// non-nil staking payload.
	base, err := Decode(rawAddr(headerKeyKey, hash28(0x61), hash28(0x62)))
	require.NoError(t, err)
	require.False(t, IsStakeAddress(base))
}

func TestRewardAddressStakingPayload(t *testing.T) {
	scriptReward, err := Decode(rawAddr(headerRewardScript, hash28(0x80)))
	require.NoError(t, err)
	require.True(t, IsStakeAddress(scriptReward))

	h, ok := StakeScriptHash(scriptReward)
	require.True(t, ok)
	require.Equal(t, hash28(0x80), h.Bytes())

	keyReward, err := Decode(rawAddr(headerRewardKey, hash28(0x81)))
	require.NoError(t, err)

	_, ok = StakeScriptHash(keyReward)
	require.False(t, ok)
}
