package farming

var deauthorizeFunderInstructionDiscriminator = instructionDiscriminator("deauthorize_funder")

func NewDeauthorizeFunderInstruction(
	accounts *PoolAuthorityInstructionAccounts,
	args *FunderChangeInstructionArgs,
) Instruction {
	return newFunderChangeInstruction(deauthorizeFunderInstructionDiscriminator, accounts, args)
}

func DeauthorizeFunderInstructionFromBinary(data []byte) (*FunderChangeInstructionArgs, error) {
	return funderChangeInstructionFromBinary(deauthorizeFunderInstructionDiscriminator, data)
}
