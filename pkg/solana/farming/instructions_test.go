package farming

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializePoolInstruction(t *testing.T) {
	accounts := &InitializePoolInstructionAccounts{
		Pool: testKey(t),

		StakingMint:  testKey(t),
		StakingVault: testKey(t),

		RewardAMint:  testKey(t),
		RewardAVault: testKey(t),

		RewardBMint:  testKey(t),
		RewardBVault: testKey(t),

		Authority: testKey(t),
		Base:      testKey(t),
	}

	instruction := NewInitializePoolInstruction(accounts, &InitializePoolInstructionArgs{
		RewardDuration: 604800,
	})

	assert.Equal(t, PROGRAM_ADDRESS, []byte(instruction.Program))
	require.Len(t, instruction.Data, InitializePoolInstructionSize)
	require.Len(t, instruction.Accounts, 12)

	assert.Equal(t, accounts.Pool, instruction.Accounts[0].PublicKey)
	assert.True(t, instruction.Accounts[0].IsWritable)
	assert.False(t, instruction.Accounts[0].IsSigner)

	assert.Equal(t, accounts.StakingMint, instruction.Accounts[1].PublicKey)
	assert.False(t, instruction.Accounts[1].IsWritable)
	assert.Equal(t, accounts.StakingVault, instruction.Accounts[2].PublicKey)
	assert.True(t, instruction.Accounts[2].IsWritable)

	assert.Equal(t, accounts.Authority, instruction.Accounts[7].PublicKey)
	assert.True(t, instruction.Accounts[7].IsWritable)
	assert.True(t, instruction.Accounts[7].IsSigner)

	assert.Equal(t, accounts.Base, instruction.Accounts[8].PublicKey)
	assert.False(t, instruction.Accounts[8].IsWritable)
	assert.True(t, instruction.Accounts[8].IsSigner)

	assert.Equal(t, SYSTEM_PROGRAM_ID, instruction.Accounts[9].PublicKey)
	assert.Equal(t, SPL_TOKEN_PROGRAM_ID, instruction.Accounts[10].PublicKey)
	assert.Equal(t, SYSVAR_RENT_PUBKEY, instruction.Accounts[11].PublicKey)

	args, err := InitializePoolInstructionFromBinary(instruction.Data)
	require.NoError(t, err)
	assert.EqualValues(t, 604800, args.RewardDuration)

	_, err = InitializePoolInstructionFromBinary(instruction.Data[:8])
	assert.Equal(t, ErrInvalidInstructionData, err)
}

func TestCreateUserInstruction(t *testing.T) {
	accounts := &CreateUserInstructionAccounts{
		Pool:  testKey(t),
		User:  testKey(t),
		Owner: testKey(t),
	}

	instruction := NewCreateUserInstruction(accounts)

	require.Len(t, instruction.Accounts, 4)
	assert.Equal(t, accounts.Owner, instruction.Accounts[2].PublicKey)
	assert.True(t, instruction.Accounts[2].IsSigner)
	assert.True(t, instruction.Accounts[2].IsWritable)
	assert.Equal(t, SYSTEM_PROGRAM_ID, instruction.Accounts[3].PublicKey)

	assert.NoError(t, CreateUserInstructionFromBinary(instruction.Data))
	assert.Equal(t, ErrInvalidInstructionData, CreateUserInstructionFromBinary(nil))
}

func TestPauseUnpauseInstructions(t *testing.T) {
	accounts := &PoolAuthorityInstructionAccounts{
		Pool:      testKey(t),
		Authority: testKey(t),
	}

	pause := NewPauseInstruction(accounts)
	unpause := NewUnpauseInstruction(accounts)

	for _, instruction := range []Instruction{pause, unpause} {
		require.Len(t, instruction.Accounts, 2)
		assert.Equal(t, accounts.Pool, instruction.Accounts[0].PublicKey)
		assert.True(t, instruction.Accounts[0].IsWritable)
		assert.Equal(t, accounts.Authority, instruction.Accounts[1].PublicKey)
		assert.True(t, instruction.Accounts[1].IsSigner)
		assert.False(t, instruction.Accounts[1].IsWritable)
	}

	assert.NotEqual(t, pause.Data, unpause.Data)
}

func TestStakeInstructions(t *testing.T) {
	accounts := &StakeInstructionAccounts{
		Pool:             testKey(t),
		StakingVault:     testKey(t),
		StakeFromAccount: testKey(t),
		User:             testKey(t),
		Owner:            testKey(t),
	}

	deposit := NewDepositInstruction(accounts, &StakeInstructionArgs{Amount: 500})
	withdraw := NewWithdrawInstruction(accounts, &StakeInstructionArgs{Amount: 500})

	for _, instruction := range []Instruction{deposit, withdraw} {
		require.Len(t, instruction.Accounts, 6)
		assert.Equal(t, accounts.Pool, instruction.Accounts[0].PublicKey)
		assert.Equal(t, accounts.StakingVault, instruction.Accounts[1].PublicKey)
		assert.Equal(t, accounts.StakeFromAccount, instruction.Accounts[2].PublicKey)
		assert.Equal(t, accounts.User, instruction.Accounts[3].PublicKey)
		assert.Equal(t, accounts.Owner, instruction.Accounts[4].PublicKey)
		assert.True(t, instruction.Accounts[4].IsSigner)
		assert.False(t, instruction.Accounts[4].IsWritable)
		assert.Equal(t, SPL_TOKEN_PROGRAM_ID, instruction.Accounts[5].PublicKey)
	}

	args, err := DepositInstructionFromBinary(deposit.Data)
	require.NoError(t, err)
	assert.EqualValues(t, 500, args.Amount)

	args, err = WithdrawInstructionFromBinary(withdraw.Data)
	require.NoError(t, err)
	assert.EqualValues(t, 500, args.Amount)

	// Same argument layout, different discriminators.
	_, err = DepositInstructionFromBinary(withdraw.Data)
	assert.Equal(t, ErrInvalidInstructionData, err)
	_, err = WithdrawInstructionFromBinary(deposit.Data)
	assert.Equal(t, ErrInvalidInstructionData, err)
}

func TestFunderChangeInstructions(t *testing.T) {
	accounts := &PoolAuthorityInstructionAccounts{
		Pool:      testKey(t),
		Authority: testKey(t),
	}
	funder := testKey(t)

	authorize := NewAuthorizeFunderInstruction(accounts, &FunderChangeInstructionArgs{Funder: funder})
	deauthorize := NewDeauthorizeFunderInstruction(accounts, &FunderChangeInstructionArgs{Funder: funder})

	args, err := AuthorizeFunderInstructionFromBinary(authorize.Data)
	require.NoError(t, err)
	assert.Equal(t, funder, args.Funder)

	args, err = DeauthorizeFunderInstructionFromBinary(deauthorize.Data)
	require.NoError(t, err)
	assert.Equal(t, funder, args.Funder)

	_, err = AuthorizeFunderInstructionFromBinary(deauthorize.Data)
	assert.Equal(t, ErrInvalidInstructionData, err)
}

func TestFundInstruction(t *testing.T) {
	accounts := &FundInstructionAccounts{
		Pool:         testKey(t),
		StakingVault: testKey(t),
		RewardAVault: testKey(t),
		RewardBVault: testKey(t),
		Funder:       testKey(t),
		FromA:        testKey(t),
		FromB:        testKey(t),
	}

	instruction := NewFundInstruction(accounts, &FundInstructionArgs{
		AmountA: 1000,
		AmountB: 2000,
	})

	require.Len(t, instruction.Accounts, 8)
	assert.Equal(t, accounts.Funder, instruction.Accounts[4].PublicKey)
	assert.True(t, instruction.Accounts[4].IsSigner)
	assert.Equal(t, accounts.FromA, instruction.Accounts[5].PublicKey)
	assert.Equal(t, accounts.FromB, instruction.Accounts[6].PublicKey)
	assert.Equal(t, SPL_TOKEN_PROGRAM_ID, instruction.Accounts[7].PublicKey)

	args, err := FundInstructionFromBinary(instruction.Data)
	require.NoError(t, err)
	assert.EqualValues(t, 1000, args.AmountA)
	assert.EqualValues(t, 2000, args.AmountB)
}

func TestClaimInstruction(t *testing.T) {
	accounts := &ClaimInstructionAccounts{
		Pool:           testKey(t),
		StakingVault:   testKey(t),
		RewardAVault:   testKey(t),
		RewardBVault:   testKey(t),
		User:           testKey(t),
		Owner:          testKey(t),
		RewardAAccount: testKey(t),
		RewardBAccount: testKey(t),
	}

	instruction := NewClaimInstruction(accounts)

	require.Len(t, instruction.Accounts, 9)
	assert.Equal(t, accounts.Owner, instruction.Accounts[5].PublicKey)
	assert.True(t, instruction.Accounts[5].IsSigner)
	assert.Equal(t, accounts.RewardAAccount, instruction.Accounts[6].PublicKey)
	assert.Equal(t, accounts.RewardBAccount, instruction.Accounts[7].PublicKey)
	assert.Equal(t, SPL_TOKEN_PROGRAM_ID, instruction.Accounts[8].PublicKey)

	assert.NoError(t, ClaimInstructionFromBinary(instruction.Data))
}

func TestCloseUserInstruction(t *testing.T) {
	accounts := &CloseUserInstructionAccounts{
		Pool:  testKey(t),
		User:  testKey(t),
		Owner: testKey(t),
	}

	instruction := NewCloseUserInstruction(accounts)

	require.Len(t, instruction.Accounts, 3)
	assert.Equal(t, accounts.Owner, instruction.Accounts[2].PublicKey)
	assert.True(t, instruction.Accounts[2].IsSigner)
	assert.True(t, instruction.Accounts[2].IsWritable)
}

func TestClosePoolInstruction(t *testing.T) {
	accounts := &ClosePoolInstructionAccounts{
		Refundee:        testKey(t),
		StakingRefundee: testKey(t),
		RewardARefundee: testKey(t),
		RewardBRefundee: testKey(t),
		Pool:            testKey(t),
		Authority:       testKey(t),
		StakingVault:    testKey(t),
		RewardAVault:    testKey(t),
		RewardBVault:    testKey(t),
	}

	instruction := NewClosePoolInstruction(accounts)

	require.Len(t, instruction.Accounts, 10)
	assert.Equal(t, accounts.Refundee, instruction.Accounts[0].PublicKey)
	assert.Equal(t, accounts.Pool, instruction.Accounts[4].PublicKey)
	assert.Equal(t, accounts.Authority, instruction.Accounts[5].PublicKey)
	assert.True(t, instruction.Accounts[5].IsSigner)
	assert.False(t, instruction.Accounts[5].IsWritable)
	assert.Equal(t, SPL_TOKEN_PROGRAM_ID, instruction.Accounts[9].PublicKey)
}

func TestMigrateFarmingRateInstruction(t *testing.T) {
	pool := testKey(t)

	instruction := NewMigrateFarmingRateInstruction(&MigrateFarmingRateInstructionAccounts{
		Pool: pool,
	})

	require.Len(t, instruction.Accounts, 1)
	assert.Equal(t, pool, instruction.Accounts[0].PublicKey)
	assert.True(t, instruction.Accounts[0].IsWritable)
	assert.False(t, instruction.Accounts[0].IsSigner)

	assert.NoError(t, MigrateFarmingRateInstructionFromBinary(instruction.Data))
	assert.Equal(t, ErrInvalidInstructionData, MigrateFarmingRateInstructionFromBinary(nil))
}

func TestToLegacyInstruction(t *testing.T) {
	accounts := &PoolAuthorityInstructionAccounts{
		Pool:      testKey(t),
		Authority: testKey(t),
	}

	instruction := NewPauseInstruction(accounts)
	legacy := instruction.ToLegacyInstruction()

	assert.Equal(t, PROGRAM_ID, legacy.Program)
	assert.Equal(t, instruction.Data, legacy.Data)
	require.Len(t, legacy.Accounts, len(instruction.Accounts))
	for i := range instruction.Accounts {
		assert.Equal(t, instruction.Accounts[i].PublicKey, legacy.Accounts[i].PublicKey)
		assert.Equal(t, instruction.Accounts[i].IsSigner, legacy.Accounts[i].IsSigner)
		assert.Equal(t, instruction.Accounts[i].IsWritable, legacy.Accounts[i].IsWritable)
	}
}
