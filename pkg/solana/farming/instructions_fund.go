package farming

import (
	"bytes"
	"crypto/ed25519"
)

var fundInstructionDiscriminator = instructionDiscriminator("fund")

const (
	FundInstructionArgsSize = (8 + // AmountA
		8) // AmountB

	FundInstructionSize = (8 + // discriminator
		FundInstructionArgsSize) // args
)

type FundInstructionArgs struct {
	AmountA uint64
	AmountB uint64
}

type FundInstructionAccounts struct {
	Pool ed25519.PublicKey

	StakingVault ed25519.PublicKey
	RewardAVault ed25519.PublicKey
	RewardBVault ed25519.PublicKey

	// Funder must be the pool authority or an authorized funder.
	Funder ed25519.PublicKey

	FromA ed25519.PublicKey
	FromB ed25519.PublicKey
}

func NewFundInstruction(
	accounts *FundInstructionAccounts,
	args *FundInstructionArgs,
) Instruction {
	var offset int

	// Serialize instruction arguments
	data := make([]byte,
		len(fundInstructionDiscriminator)+
			FundInstructionArgsSize)

	putDiscriminator(data, fundInstructionDiscriminator, &offset)
	putUint64(data, args.AmountA, &offset)
	putUint64(data, args.AmountB, &offset)

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
				PublicKey:  accounts.Funder,
				IsWritable: false,
				IsSigner:   true,
			},
			{
				PublicKey:  accounts.FromA,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.FromB,
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

func FundInstructionFromBinary(data []byte) (*FundInstructionArgs, error) {
	var offset int
	var discriminator []byte

	if len(data) < FundInstructionSize {
		return nil, ErrInvalidInstructionData
	}

	getDiscriminator(data, &discriminator, &offset)

	if !bytes.Equal(discriminator, fundInstructionDiscriminator) {
		return nil, ErrInvalidInstructionData
	}

	var args FundInstructionArgs
	getUint64(data, &args.AmountA, &offset)
	getUint64(data, &args.AmountB, &offset)

	return &args, nil
}
