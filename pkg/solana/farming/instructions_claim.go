package farming

import (
	"bytes"
	"crypto/ed25519"
)

var claimInstructionDiscriminator = instructionDiscriminator("claim")

const ClaimInstructionSize = 8 // discriminator

type ClaimInstructionAccounts struct {
	Pool ed25519.PublicKey

	StakingVault ed25519.PublicKey
	RewardAVault ed25519.PublicKey
	RewardBVault ed25519.PublicKey

	User  ed25519.PublicKey
	Owner ed25519.PublicKey

	// Destination token accounts for the two accrued rewards.
	RewardAAccount ed25519.PublicKey
	RewardBAccount ed25519.PublicKey
}

func NewClaimInstruction(
	accounts *ClaimInstructionAccounts,
) Instruction {
	var offset int

	data := make([]byte, len(claimInstructionDiscriminator))
	putDiscriminator(data, claimInstructionDiscriminator, &offset)

	return Instruction{
		Program: PROGRAM_ADDRESS,

		Data: data,

		// Instruction accounts
		Accounts: []AccountMeta{
			{
				PublicKey:  accounts.Pool,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.StakingVault,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.RewardAVault,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.RewardBVault,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.User,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.Owner,
				IsWritable: false,
				IsSigner:   true,
			},
			{
				PublicKey:  accounts.RewardAAccount,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.RewardBAccount,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  SPL_TOKEN_PROGRAM_ID,
				IsWritable: false,
				IsSigner:   false,
			},
		},
	}
}

func ClaimInstructionFromBinary(data []byte) error {
	var offset int
	var discriminator []byte

	if len(data) < ClaimInstructionSize {
		return ErrInvalidInstructionData
	}

	getDiscriminator(data, &discriminator, &offset)

	if !bytes.Equal(discriminator, claimInstructionDiscriminator) {
		return ErrInvalidInstructionData
	}

	return nil
}
