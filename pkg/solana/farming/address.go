package farming

import (
	"crypto/ed25519"
	"encoding/binary"

	"github.com/farmhand-labs/farming-client/pkg/solana"
)

var (
	stakingVaultPrefix = []byte("staking")
	rewardAVaultPrefix = []byte("reward_a")
	rewardBVaultPrefix = []byte("reward_b")
)

type GetPoolAddressArgs struct {
	RewardDuration uint64
	StakingMint    ed25519.PublicKey
	RewardAMint    ed25519.PublicKey
	RewardBMint    ed25519.PublicKey
	Base           ed25519.PublicKey
}

// GetPoolAddress derives the pool state address. The reward duration is
// encoded big-endian, matching the on-chain seed contract.
func GetPoolAddress(args *GetPoolAddressArgs) (ed25519.PublicKey, uint8, error) {
	durationBytes := make([]byte, 8)
	binary.BigEndian.PutUint64(durationBytes, args.RewardDuration)

	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		durationBytes,
		args.StakingMint,
		args.RewardAMint,
		args.RewardBMint,
		args.Base,
	)
}

type VaultAddresses struct {
	StakingVault ed25519.PublicKey
	RewardAVault ed25519.PublicKey
	RewardBVault ed25519.PublicKey
}

// GetVaultAddresses derives the three token vault addresses held by a pool.
func GetVaultAddresses(pool ed25519.PublicKey) (*VaultAddresses, error) {
	stakingVault, _, err := solana.FindProgramAddressAndBump(PROGRAM_ID, stakingVaultPrefix, pool)
	if err != nil {
		return nil, err
	}

	rewardAVault, _, err := solana.FindProgramAddressAndBump(PROGRAM_ID, rewardAVaultPrefix, pool)
	if err != nil {
		return nil, err
	}

	rewardBVault, _, err := solana.FindProgramAddressAndBump(PROGRAM_ID, rewardBVaultPrefix, pool)
	if err != nil {
		return nil, err
	}

	return &VaultAddresses{
		StakingVault: stakingVault,
		RewardAVault: rewardAVault,
		RewardBVault: rewardBVault,
	}, nil
}

// GetUserAddress derives the staking record address of an owner in a pool.
func GetUserAddress(pool, owner ed25519.PublicKey) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		pool,
		owner,
	)
}
