package farming

import (
	"bytes"
	"crypto/ed25519"
)

var depositInstructionDiscriminator = instructionDiscriminator("deposit")

const (
	StakeInstructionArgsSize = 8 // Amount

	StakeInstructionSize = (8 + // discriminator
		StakeInstructionArgsSize) // args
)

type StakeInstructionArgs struct {
	Amount uint64
}

// StakeInstructionAccounts is the account set shared by deposit and withdraw.
type StakeInstructionAccounts struct {
	Pool         ed25519.PublicKey
	StakingVault ed25519.PublicKey

	// StakeFromAccount is the owner's token account staked tokens are moved
	// from (deposit) or returned to (withdraw).
	StakeFromAccount ed25519.PublicKey

	User  ed25519.PublicKey
	Owner ed25519.PublicKey
}

func NewDepositInstruction(
	accounts *StakeInstructionAccounts,
	args *StakeInstructionArgs,
) Instruction {
	return newStakeInstruction(depositInstructionDiscriminator, accounts, args)
}

func newStakeInstruction(
	discriminator []byte,
	accounts *StakeInstructionAccounts,
	args *StakeInstructionArgs,
) Instruction {
	var offset int

	// Serialize instruction arguments
	data := make([]byte,
		len(discriminator)+
			StakeInstructionArgsSize)

	putDiscriminator(data, discriminator, &offset)
	putUint64(data, args.Amount, &offset)

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
				PublicKey:  accounts.StakingVault,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.StakeFromAccount,
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
				PublicKey:  SPL_TOKEN_PROGRAM_ID,
				IsWritable: false,
				IsSigner:   false,
			},
		},
	}
}

func DepositInstructionFromBinary(data []byte) (*StakeInstructionArgs, error) {
	return stakeInstructionFromBinary(depositInstructionDiscriminator, data)
}

func stakeInstructionFromBinary(discriminator, data []byte) (*StakeInstructionArgs, error) {
	var offset int
	var actual []byte

	if len(data) < StakeInstructionSize {
		return nil, ErrInvalidInstructionData
	}

	getDiscriminator(data, &actual, &offset)

	if !bytes.Equal(actual, discriminator) {
		return nil, ErrInvalidInstructionData
	}

	var args StakeInstructionArgs
	getUint64(data, &args.Amount, &offset)

	return &args, nil
}
