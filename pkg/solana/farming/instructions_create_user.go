package farming

import (
	"bytes"
	"crypto/ed25519"
)

var createUserInstructionDiscriminator = instructionDiscriminator("create_user")

const CreateUserInstructionSize = 8 // discriminator

type CreateUserInstructionAccounts struct {
	Pool  ed25519.PublicKey
	User  ed25519.PublicKey
	Owner ed25519.PublicKey
}

func NewCreateUserInstruction(
	accounts *CreateUserInstructionAccounts,
) Instruction {
	var offset int

	data := make([]byte, len(createUserInstructionDiscriminator))
	putDiscriminator(data, createUserInstructionDiscriminator, &offset)

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
				PublicKey:  accounts.User,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.Owner,
				IsWritable: true,
				IsSigner:   true,
			},
			{
				PublicKey:  SYSTEM_PROGRAM_ID,
				IsWritable: false,
				IsSigner:   false,
			},
		},
	}
}

func CreateUserInstructionFromBinary(data []byte) error {
	var offset int
	var discriminator []byte

	if len(data) < CreateUserInstructionSize {
		return ErrInvalidInstructionData
	}

	getDiscriminator(data, &discriminator, &offset)

	if !bytes.Equal(discriminator, createUserInstructionDiscriminator) {
		return ErrInvalidInstructionData
	}

	return nil
}
