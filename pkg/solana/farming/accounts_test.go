package farming

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolAccount_RoundTrip(t *testing.T) {
	expected := PoolAccount{
		Authority: testKey(t),
		Paused:    true,

		StakingMint:  testKey(t),
		StakingVault: testKey(t),

		RewardAMint:  testKey(t),
		RewardAVault: testKey(t),

		RewardBMint:  testKey(t),
		RewardBVault: testKey(t),

		BaseKey: testKey(t),

		RewardDuration:    604800,
		RewardDurationEnd: 1700000000,
		LastUpdateTime:    1699999000,

		RewardARate: 42,
		RewardBRate: 7,

		RewardAPerTokenStored: Uint128{Lo: 1, Hi: 2},
		RewardBPerTokenStored: Uint128{Lo: 3, Hi: 4},

		UserStakeCount: 11,

		RewardARateU128: Uint128{Lo: 42},
		RewardBRateU128: Uint128{Lo: 7},
	}
	for i := range expected.Funders {
		expected.Funders[i] = testKey(t)
	}

	marshalled := expected.Marshal()
	require.Len(t, marshalled, PoolAccountSize)

	var actual PoolAccount
	require.NoError(t, actual.Unmarshal(marshalled))
	assert.Equal(t, expected, actual)
}

func TestPoolAccount_Unmarshal_Invalid(t *testing.T) {
	var pool PoolAccount

	assert.Equal(t, ErrInvalidAccountData, pool.Unmarshal(nil))
	assert.Equal(t, ErrInvalidAccountData, pool.Unmarshal(make([]byte, PoolAccountSize-1)))

	// Wrong discriminator
	data := (&UserAccount{Pool: testKey(t), Owner: testKey(t)}).Marshal()
	padded := make([]byte, PoolAccountSize)
	copy(padded, data)
	assert.Equal(t, ErrInvalidAccountData, pool.Unmarshal(padded))
}

func TestPoolAccount_NeedsRateMigration(t *testing.T) {
	for _, tc := range []struct {
		legacyA  uint64
		legacyB  uint64
		rateA    Uint128
		rateB    Uint128
		expected bool
	}{
		// Nothing set anywhere; a zero-rate pool has nothing to migrate.
		{0, 0, Uint128{}, Uint128{}, false},
		// Legacy rates only.
		{100, 0, Uint128{}, Uint128{}, true},
		{0, 100, Uint128{}, Uint128{}, true},
		{100, 100, Uint128{}, Uint128{}, true},
		// Fully migrated.
		{100, 100, NewUint128FromUint64(100), NewUint128FromUint64(100), false},
		// One side migrated, the other still legacy-only.
		{100, 100, NewUint128FromUint64(100), Uint128{}, true},
		{100, 100, Uint128{}, NewUint128FromUint64(100), true},
		// 128-bit rates set with zeroed legacy fields.
		{0, 0, NewUint128FromUint64(100), NewUint128FromUint64(100), false},
	} {
		pool := PoolAccount{
			RewardARate:     tc.legacyA,
			RewardBRate:     tc.legacyB,
			RewardARateU128: tc.rateA,
			RewardBRateU128: tc.rateB,
		}
		assert.Equal(t, tc.expected, pool.NeedsRateMigration(), "legacyA=%d legacyB=%d rateA=%s rateB=%s", tc.legacyA, tc.legacyB, tc.rateA, tc.rateB)
	}
}

func TestPoolDiscriminator(t *testing.T) {
	d := PoolDiscriminator()
	require.Len(t, d, 8)

	// Mutating the returned slice must not affect the filter value.
	d[0]++
	assert.NotEqual(t, d, PoolDiscriminator())
}

func TestUserAccount_RoundTrip(t *testing.T) {
	expected := UserAccount{
		Pool:  testKey(t),
		Owner: testKey(t),

		RewardAPerTokenComplete: Uint128{Lo: 5, Hi: 6},
		RewardBPerTokenComplete: Uint128{Lo: 7, Hi: 8},

		RewardAPerTokenPending: 123,
		RewardBPerTokenPending: 456,

		BalanceStaked: 1_000_000,
		Nonce:         254,
	}

	marshalled := expected.Marshal()
	require.Len(t, marshalled, UserAccountSize)

	var actual UserAccount
	require.NoError(t, actual.Unmarshal(marshalled))
	assert.Equal(t, expected, actual)
}

func TestUserAccount_Unmarshal_Invalid(t *testing.T) {
	var user UserAccount

	assert.Equal(t, ErrInvalidAccountData, user.Unmarshal(make([]byte, UserAccountSize-1)))

	data := (&PoolAccount{}).Marshal()
	assert.Equal(t, ErrInvalidAccountData, user.Unmarshal(data[:UserAccountSize]))
}

func TestUint128(t *testing.T) {
	assert.True(t, Uint128{}.IsZero())
	assert.False(t, NewUint128FromUint64(1).IsZero())
	assert.False(t, Uint128{Hi: 1}.IsZero())

	assert.Equal(t, "0", Uint128{}.String())
	assert.Equal(t, "42", NewUint128FromUint64(42).String())
	assert.Equal(t, "18446744073709551616", Uint128{Hi: 1}.String())
	assert.Equal(t, "340282366920938463463374607431768211455", Uint128{Lo: ^uint64(0), Hi: ^uint64(0)}.String())
}
