package farming

var withdrawInstructionDiscriminator = instructionDiscriminator("withdraw")

// NewWithdrawInstruction unstakes tokens back into the owner's token account.
// The account set mirrors deposit; the amount is the staked token quantity to
// withdraw.
func NewWithdrawInstruction(
	accounts *StakeInstructionAccounts,
	args *StakeInstructionArgs,
) Instruction {
	return newStakeInstruction(withdrawInstructionDiscriminator, accounts, args)
}

func WithdrawInstructionFromBinary(data []byte) (*StakeInstructionArgs, error) {
	return stakeInstructionFromBinary(withdrawInstructionDiscriminator, data)
}
