package farming

import (
	"bytes"
	"crypto/ed25519"
)

var initializePoolInstructionDiscriminator = instructionDiscriminator("initialize_pool")

const (
	InitializePoolInstructionArgsSize = 8 // RewardDuration

	InitializePoolInstructionSize = (8 + // discriminator
		InitializePoolInstructionArgsSize) // args
)

type InitializePoolInstructionArgs struct {
	RewardDuration uint64
}

type InitializePoolInstructionAccounts struct {
	Pool ed25519.PublicKey

	StakingMint  ed25519.PublicKey
	StakingVault ed25519.PublicKey

	RewardAMint  ed25519.PublicKey
	RewardAVault ed25519.PublicKey

	RewardBMint  ed25519.PublicKey
	RewardBVault ed25519.PublicKey

	Authority ed25519.PublicKey
	Base      ed25519.PublicKey
}

func NewInitializePoolInstruction(
	accounts *InitializePoolInstructionAccounts,
	args *InitializePoolInstructionArgs,
) Instruction {
	var offset int

	// Serialize instruction arguments
	data := make([]byte,
		len(initializePoolInstructionDiscriminator)+
			InitializePoolInstructionArgsSize)

	putDiscriminator(data, initializePoolInstructionDiscriminator, &offset)
	putUint64(data, args.RewardDuration, &offset)

	return Instruction{
		Program: PROGRAM_ADDRESS,

		// Instruction args
		Data: data,

		// Instruction accounts
		Accounts: []AccountMeta{
			{
				PublicKey:  accounts.Pool,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.StakingMint,
				IsWritable: false,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.StakingVault,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.RewardAMint,
				IsWritable: false,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.RewardAVault,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.RewardBMint,
				IsWritable: false,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.RewardBVault,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.Authority,
				IsWritable: true,
				IsSigner:   true,
			},
			{
				PublicKey:  accounts.Base,
				IsWritable: false,
				IsSigner:   true,
			},
			{
				PublicKey:  SYSTEM_PROGRAM_ID,
				IsWritable: false,
				IsSigner:   false,
			},
			{
				PublicKey:  SPL_TOKEN_PROGRAM_ID,
				IsWritable: false,
				IsSigner:   false,
			},
			{
				PublicKey:  SYSVAR_RENT_PUBKEY,
				IsWritable: false,
				IsSigner:   false,
			},
		},
	}
}

func InitializePoolInstructionFromBinary(data []byte) (*InitializePoolInstructionArgs, error) {
	var offset int
	var discriminator []byte

	if len(data) < InitializePoolInstructionSize {
		return nil, ErrInvalidInstructionData
	}

	getDiscriminator(data, &discriminator, &offset)

	if !bytes.Equal(discriminator, initializePoolInstructionDiscriminator) {
		return nil, ErrInvalidInstructionData
	}

	var args InitializePoolInstructionArgs
	getUint64(data, &args.RewardDuration, &offset)

	return &args, nil
}
