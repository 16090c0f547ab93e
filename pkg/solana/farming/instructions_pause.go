package farming

import (
	"crypto/ed25519"
)

var pauseInstructionDiscriminator = instructionDiscriminator("pause")

// PoolAuthorityInstructionAccounts is the account set shared by the
// authority-gated pool toggles (pause, unpause) and funder management.
type PoolAuthorityInstructionAccounts struct {
	Pool      ed25519.PublicKey
	Authority ed25519.PublicKey
}

func NewPauseInstruction(
	accounts *PoolAuthorityInstructionAccounts,
) Instruction {
	var offset int

	data := make([]byte, len(pauseInstructionDiscriminator))
	putDiscriminator(data, pauseInstructionDiscriminator, &offset)

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
				PublicKey:  accounts.Authority,
				IsWritable: false,
				IsSigner:   true,
			},
		},
	}
}
