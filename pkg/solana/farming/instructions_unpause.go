package farming

var unpauseInstructionDiscriminator = instructionDiscriminator("unpause")

func NewUnpauseInstruction(
	accounts *PoolAuthorityInstructionAccounts,
) Instruction {
	var offset int

	data := make([]byte, len(unpauseInstructionDiscriminator))
	putDiscriminator(data, unpauseInstructionDiscriminator, &offset)

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
