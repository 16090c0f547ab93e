package farming

import (
	"bytes"
	"crypto/ed25519"
)

var migrateFarmingRateInstructionDiscriminator = instructionDiscriminator("migrate_farming_rate")

const MigrateFarmingRateInstructionSize = 8 // discriminator

type MigrateFarmingRateInstructionAccounts struct {
	Pool ed25519.PublicKey
}

// NewMigrateFarmingRateInstruction rewrites a pool's legacy 64-bit reward
// rates into the 128-bit fields. The on-chain handler is a no-op for pools
// already migrated, so replays are safe.
func NewMigrateFarmingRateInstruction(
	accounts *MigrateFarmingRateInstructionAccounts,
) Instruction {
	var offset int

	data := make([]byte, len(migrateFarmingRateInstructionDiscriminator))
	putDiscriminator(data, migrateFarmingRateInstructionDiscriminator, &offset)

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
		},
	}
}

func MigrateFarmingRateInstructionFromBinary(data []byte) error {
	var offset int
	var discriminator []byte

	if len(data) < MigrateFarmingRateInstructionSize {
		return ErrInvalidInstructionData
	}

	getDiscriminator(data, &discriminator, &offset)

	if !bytes.Equal(discriminator, migrateFarmingRateInstructionDiscriminator) {
		return ErrInvalidInstructionData
	}

	return nil
}
