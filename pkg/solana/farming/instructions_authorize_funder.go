package farming

import (
	"bytes"
	"crypto/ed25519"
)

var authorizeFunderInstructionDiscriminator = instructionDiscriminator("authorize_funder")

const (
	FunderChangeInstructionArgsSize = 32 // Funder

	FunderChangeInstructionSize = (8 + // discriminator
		FunderChangeInstructionArgsSize) // args
)

type FunderChangeInstructionArgs struct {
	Funder ed25519.PublicKey
}

func NewAuthorizeFunderInstruction(
	accounts *PoolAuthorityInstructionAccounts,
	args *FunderChangeInstructionArgs,
) Instruction {
	return newFunderChangeInstruction(authorizeFunderInstructionDiscriminator, accounts, args)
}

func newFunderChangeInstruction(
	discriminator []byte,
	accounts *PoolAuthorityInstructionAccounts,
	args *FunderChangeInstructionArgs,
) Instruction {
	var offset int

	// Serialize instruction arguments
	data := make([]byte,
		len(discriminator)+
			FunderChangeInstructionArgsSize)

	putDiscriminator(data, discriminator, &offset)
	putKey(data, args.Funder, &offset)

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
				PublicKey:  accounts.Authority,
				IsWritable: false,
				IsSigner:   true,
			},
		},
	}
}

func AuthorizeFunderInstructionFromBinary(data []byte) (*FunderChangeInstructionArgs, error) {
	return funderChangeInstructionFromBinary(authorizeFunderInstructionDiscriminator, data)
}

func funderChangeInstructionFromBinary(discriminator, data []byte) (*FunderChangeInstructionArgs, error) {
	var offset int
	var actual []byte

	if len(data) < FunderChangeInstructionSize {
		return nil, ErrInvalidInstructionData
	}

	getDiscriminator(data, &actual, &offset)

	if !bytes.Equal(actual, discriminator) {
		return nil, ErrInvalidInstructionData
	}

	var args FunderChangeInstructionArgs
	getKey(data, &args.Funder, &offset)

	return &args, nil
}
