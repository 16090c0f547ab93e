package farming

import (
	"crypto/ed25519"
)

var closePoolInstructionDiscriminator = instructionDiscriminator("close_pool")

type ClosePoolInstructionAccounts struct {
	// Refundee receives the pool account's rent lamports.
	Refundee ed25519.PublicKey

	// Token accounts receiving the remaining vault balances.
	StakingRefundee ed25519.PublicKey
	RewardARefundee ed25519.PublicKey
	RewardBRefundee ed25519.PublicKey

	Pool      ed25519.PublicKey
	Authority ed25519.PublicKey

	StakingVault ed25519.PublicKey
	RewardAVault ed25519.PublicKey
	RewardBVault ed25519.PublicKey
}

func NewClosePoolInstruction(
	accounts *ClosePoolInstructionAccounts,
) Instruction {
	var offset int

	data := make([]byte, len(closePoolInstructionDiscriminator))
	putDiscriminator(data, closePoolInstructionDiscriminator, &offset)

	return Instruction{
		Program: PROGRAM_ADDRESS,

		Data: data,

		// Instruction accounts
		Accounts: []AccountMeta{
			{
				PublicKey:  accounts.Refundee,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.StakingRefundee,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.RewardARefundee,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.RewardBRefundee,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.Pool,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.Authority,
				IsWritable: false,
				IsSigner:   true,
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
				PublicKey:  SPL_TOKEN_PROGRAM_ID,
				IsWritable: false,
				IsSigner:   false,
			},
		},
	}
}
