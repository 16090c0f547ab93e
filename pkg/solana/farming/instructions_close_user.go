package farming

import (
	"crypto/ed25519"
)

var closeUserInstructionDiscriminator = instructionDiscriminator("close_user")

type CloseUserInstructionAccounts struct {
	Pool  ed25519.PublicKey
	User  ed25519.PublicKey
	Owner ed25519.PublicKey
}

func NewCloseUserInstruction(
	accounts *CloseUserInstructionAccounts,
) Instruction {
	var offset int

	data := make([]byte, len(closeUserInstructionDiscriminator))
	putDiscriminator(data, closeUserInstructionDiscriminator, &offset)

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
		},
	}
}
