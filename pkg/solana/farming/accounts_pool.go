package farming

import (
	"bytes"
	"crypto/ed25519"
	"strconv"

	"github.com/mr-tron/base58/base58"
)

// MaxFunders is the number of additional funder slots a pool carries beyond
// the pool authority.
const MaxFunders = 4

// PoolAccount is the on-chain state of one dual-reward staking pool.
type PoolAccount struct {
	// Privileged account able to pause, fund and close the pool.
	Authority ed25519.PublicKey
	// Paused state of the pool. Deposits are rejected while paused.
	Paused bool

	StakingMint  ed25519.PublicKey
	StakingVault ed25519.PublicKey

	RewardAMint  ed25519.PublicKey
	RewardAVault ed25519.PublicKey

	RewardBMint  ed25519.PublicKey
	RewardBVault ed25519.PublicKey

	// BaseKey is the base signer the pool address was derived from.
	BaseKey ed25519.PublicKey

	RewardDuration    uint64
	RewardDurationEnd uint64
	LastUpdateTime    uint64

	// Legacy 64-bit reward rates. Retired in favour of the 128-bit fields
	// below; retained so pre-migration pools still decode.
	RewardARate uint64
	RewardBRate uint64

	RewardAPerTokenStored Uint128
	RewardBPerTokenStored Uint128

	UserStakeCount uint32

	// Authorized funders, beyond the pool authority. An all-zero entry is
	// an empty slot.
	Funders [MaxFunders]ed25519.PublicKey

	RewardARateU128 Uint128
	RewardBRateU128 Uint128
}

const PoolAccountSize = (8 + // discriminator
	32 + // authority
	1 + // paused

	32 + // staking_mint
	32 + // staking_vault

	32 + // reward_a_mint
	32 + // reward_a_vault

	32 + // reward_b_mint
	32 + // reward_b_vault

	32 + // base_key

	8 + // reward_duration
	8 + // reward_duration_end
	8 + // last_update_time

	8 + // reward_a_rate (legacy)
	8 + // reward_b_rate (legacy)

	16 + // reward_a_per_token_stored
	16 + // reward_b_per_token_stored

	4 + // user_stake_count

	MaxFunders*32 + // funders

	16 + // reward_a_rate_u128
	16) // reward_b_rate_u128

var poolAccountDiscriminator = accountDiscriminator("Pool")

// PoolDiscriminator returns the 8-byte marker identifying pool state
// accounts, usable as a program account filter.
func PoolDiscriminator() []byte {
	return append([]byte{}, poolAccountDiscriminator...)
}

// NeedsRateMigration reports whether either reward rate is still carried only
// in the legacy 64-bit encoding. A pool where both 128-bit rates are set, or
// where the legacy rate is zero, requires no migration.
func (obj *PoolAccount) NeedsRateMigration() bool {
	if obj.RewardARateU128.IsZero() && obj.RewardARate != 0 {
		return true
	}
	if obj.RewardBRateU128.IsZero() && obj.RewardBRate != 0 {
		return true
	}
	return false
}

func (obj *PoolAccount) String() string {
	var authority, stakingMint, stakingVault, baseKey string

	if obj.Authority != nil {
		authority = base58.Encode(obj.Authority)
	}
	if obj.StakingMint != nil {
		stakingMint = base58.Encode(obj.StakingMint)
	}
	if obj.StakingVault != nil {
		stakingVault = base58.Encode(obj.StakingVault)
	}
	if obj.BaseKey != nil {
		baseKey = base58.Encode(obj.BaseKey)
	}

	fundersStr := "["
	for _, funder := range obj.Funders {
		fundersStr += "'" + base58.Encode(funder) + "', "
	}
	fundersStr += "]"

	return "PoolAccount {" +
		"  authority='" + authority + "'" +
		", paused='" + strconv.FormatBool(obj.Paused) + "'" +
		", staking_mint='" + stakingMint + "'" +
		", staking_vault='" + stakingVault + "'" +
		", base_key='" + baseKey + "'" +
		", reward_duration='" + strconv.FormatUint(obj.RewardDuration, 10) + "'" +
		", reward_duration_end='" + strconv.FormatUint(obj.RewardDurationEnd, 10) + "'" +
		", last_update_time='" + strconv.FormatUint(obj.LastUpdateTime, 10) + "'" +
		", reward_a_rate='" + strconv.FormatUint(obj.RewardARate, 10) + "'" +
		", reward_b_rate='" + strconv.FormatUint(obj.RewardBRate, 10) + "'" +
		", reward_a_rate_u128='" + obj.RewardARateU128.String() + "'" +
		", reward_b_rate_u128='" + obj.RewardBRateU128.String() + "'" +
		", user_stake_count='" + strconv.FormatUint(uint64(obj.UserStakeCount), 10) + "'" +
		", funders=" + fundersStr + "" +
		"}"
}

// Serializes the {@link PoolAccount} into a Buffer.
// @returns the created []byte buffer
func (obj *PoolAccount) Marshal() []byte {
	data := make([]byte, PoolAccountSize)

	var offset int

	putDiscriminator(data, poolAccountDiscriminator, &offset)

	putKey(data, obj.Authority, &offset)
	putBool(data, obj.Paused, &offset)

	putKey(data, obj.StakingMint, &offset)
	putKey(data, obj.StakingVault, &offset)

	putKey(data, obj.RewardAMint, &offset)
	putKey(data, obj.RewardAVault, &offset)

	putKey(data, obj.RewardBMint, &offset)
	putKey(data, obj.RewardBVault, &offset)

	putKey(data, obj.BaseKey, &offset)

	putUint64(data, obj.RewardDuration, &offset)
	putUint64(data, obj.RewardDurationEnd, &offset)
	putUint64(data, obj.LastUpdateTime, &offset)

	putUint64(data, obj.RewardARate, &offset)
	putUint64(data, obj.RewardBRate, &offset)

	putUint128(data, obj.RewardAPerTokenStored, &offset)
	putUint128(data, obj.RewardBPerTokenStored, &offset)

	putUint32(data, obj.UserStakeCount, &offset)

	for _, funder := range obj.Funders {
		putKey(data, funder, &offset)
	}

	putUint128(data, obj.RewardARateU128, &offset)
	putUint128(data, obj.RewardBRateU128, &offset)

	return data
}

// Deserializes the {@link PoolAccount} from the provided data Buffer.
// @returns an error if the deserialize operation was unsuccessful.
func (obj *PoolAccount) Unmarshal(data []byte) error {
	if len(data) < PoolAccountSize {
		return ErrInvalidAccountData
	}

	var offset int
	var discriminator []byte

	getDiscriminator(data, &discriminator, &offset)
	if !bytes.Equal(discriminator, poolAccountDiscriminator) {
		return ErrInvalidAccountData
	}

	getKey(data, &obj.Authority, &offset)
	getBool(data, &obj.Paused, &offset)

	getKey(data, &obj.StakingMint, &offset)
	getKey(data, &obj.StakingVault, &offset)

	getKey(data, &obj.RewardAMint, &offset)
	getKey(data, &obj.RewardAVault, &offset)

	getKey(data, &obj.RewardBMint, &offset)
	getKey(data, &obj.RewardBVault, &offset)

	getKey(data, &obj.BaseKey, &offset)

	getUint64(data, &obj.RewardDuration, &offset)
	getUint64(data, &obj.RewardDurationEnd, &offset)
	getUint64(data, &obj.LastUpdateTime, &offset)

	getUint64(data, &obj.RewardARate, &offset)
	getUint64(data, &obj.RewardBRate, &offset)

	getUint128(data, &obj.RewardAPerTokenStored, &offset)
	getUint128(data, &obj.RewardBPerTokenStored, &offset)

	getUint32(data, &obj.UserStakeCount, &offset)

	for i := 0; i < MaxFunders; i++ {
		getKey(data, &obj.Funders[i], &offset)
	}

	getUint128(data, &obj.RewardARateU128, &offset)
	getUint128(data, &obj.RewardBRateU128, &offset)

	return nil
}
