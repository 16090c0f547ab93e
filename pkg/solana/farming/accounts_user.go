package farming

import (
	"bytes"
	"crypto/ed25519"
	"strconv"

	"github.com/mr-tron/base58/base58"
)

// UserAccount is the on-chain staking record of one owner in one pool.
type UserAccount struct {
	Pool  ed25519.PublicKey
	Owner ed25519.PublicKey

	RewardAPerTokenComplete Uint128
	RewardBPerTokenComplete Uint128

	RewardAPerTokenPending uint64
	RewardBPerTokenPending uint64

	BalanceStaked uint64
	Nonce         uint8
}

const UserAccountSize = (8 + // discriminator
	32 + // pool
	32 + // owner

	16 + // reward_a_per_token_complete
	16 + // reward_b_per_token_complete

	8 + // reward_a_per_token_pending
	8 + // reward_b_per_token_pending

	8 + // balance_staked
	1) // nonce

var userAccountDiscriminator = accountDiscriminator("User")

func (obj *UserAccount) String() string {
	var pool, owner string

	if obj.Pool != nil {
		pool = base58.Encode(obj.Pool)
	}
	if obj.Owner != nil {
		owner = base58.Encode(obj.Owner)
	}

	return "UserAccount {" +
		"  pool='" + pool + "'" +
		", owner='" + owner + "'" +
		", reward_a_per_token_complete='" + obj.RewardAPerTokenComplete.String() + "'" +
		", reward_b_per_token_complete='" + obj.RewardBPerTokenComplete.String() + "'" +
		", reward_a_per_token_pending='" + strconv.FormatUint(obj.RewardAPerTokenPending, 10) + "'" +
		", reward_b_per_token_pending='" + strconv.FormatUint(obj.RewardBPerTokenPending, 10) + "'" +
		", balance_staked='" + strconv.FormatUint(obj.BalanceStaked, 10) + "'" +
		", nonce='" + strconv.Itoa(int(obj.Nonce)) + "'" +
		"}"
}

func (obj *UserAccount) Marshal() []byte {
	data := make([]byte, UserAccountSize)

	var offset int

	putDiscriminator(data, userAccountDiscriminator, &offset)

	putKey(data, obj.Pool, &offset)
	putKey(data, obj.Owner, &offset)

	putUint128(data, obj.RewardAPerTokenComplete, &offset)
	putUint128(data, obj.RewardBPerTokenComplete, &offset)

	putUint64(data, obj.RewardAPerTokenPending, &offset)
	putUint64(data, obj.RewardBPerTokenPending, &offset)

	putUint64(data, obj.BalanceStaked, &offset)
	putUint8(data, obj.Nonce, &offset)

	return data
}

func (obj *UserAccount) Unmarshal(data []byte) error {
	if len(data) < UserAccountSize {
		return ErrInvalidAccountData
	}

	var offset int
	var discriminator []byte

	getDiscriminator(data, &discriminator, &offset)
	if !bytes.Equal(discriminator, userAccountDiscriminator) {
		return ErrInvalidAccountData
	}

	getKey(data, &obj.Pool, &offset)
	getKey(data, &obj.Owner, &offset)

	getUint128(data, &obj.RewardAPerTokenComplete, &offset)
	getUint128(data, &obj.RewardBPerTokenComplete, &offset)

	getUint64(data, &obj.RewardAPerTokenPending, &offset)
	getUint64(data, &obj.RewardBPerTokenPending, &offset)

	getUint64(data, &obj.BalanceStaked, &offset)
	getUint8(data, &obj.Nonce, &offset)

	return nil
}
