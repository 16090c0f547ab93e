package farm

import (
	"crypto/ed25519"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/farmhand-labs/farming-client/pkg/solana"
	compute_budget "github.com/farmhand-labs/farming-client/pkg/solana/computebudget"
	"github.com/farmhand-labs/farming-client/pkg/solana/farming"
)

// Client is the high level driver for the dual-reward farming program. It
// derives addresses, encodes instructions, and submits signed transactions
// through the underlying RPC client.
type Client struct {
	log   *logrus.Entry
	sol   solana.Client
	payer ed25519.PrivateKey

	// priorityFee is the compute unit price in micro-lamports. Zero means
	// no priority fee instruction is emitted.
	priorityFee uint64
	commitment  solana.Commitment
}

type Option func(*Client)

// WithPriorityFee sets the compute unit price, in micro-lamports, prepended
// to every submitted transaction.
func WithPriorityFee(microLamports uint64) Option {
	return func(c *Client) {
		c.priorityFee = microLamports
	}
}

// WithCommitment sets the commitment level used for reads and submissions.
func WithCommitment(commitment solana.Commitment) Option {
	return func(c *Client) {
		c.commitment = commitment
	}
}

// NewClient returns a driver that pays for all submitted transactions with
// the provided payer key.
func NewClient(sol solana.Client, payer ed25519.PrivateKey, opts ...Option) *Client {
	c := &Client{
		log:        logrus.StandardLogger().WithField("type", "farm/client"),
		sol:        sol,
		payer:      payer,
		commitment: solana.CommitmentFinalized,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// InitializePool creates a new dual-reward pool. The pool address and its
// three vaults are derived from the mints, duration and base key; both the
// authority and the base key must sign.
func (c *Client) InitializePool(
	authority, base ed25519.PrivateKey,
	stakingMint, rewardAMint, rewardBMint ed25519.PublicKey,
	rewardDuration uint64,
) (ed25519.PublicKey, solana.Signature, error) {
	basePub := base.Public().(ed25519.PublicKey)

	pool, _, err := farming.GetPoolAddress(&farming.GetPoolAddressArgs{
		RewardDuration: rewardDuration,
		StakingMint:    stakingMint,
		RewardAMint:    rewardAMint,
		RewardBMint:    rewardBMint,
		Base:           basePub,
	})
	if err != nil {
		return nil, solana.Signature{}, errors.Wrap(err, "failed to derive pool address")
	}

	vaults, err := farming.GetVaultAddresses(pool)
	if err != nil {
		return nil, solana.Signature{}, errors.Wrap(err, "failed to derive vault addresses")
	}

	instruction := farming.NewInitializePoolInstruction(
		&farming.InitializePoolInstructionAccounts{
			Pool:         pool,
			StakingMint:  stakingMint,
			StakingVault: vaults.StakingVault,
			RewardAMint:  rewardAMint,
			RewardAVault: vaults.RewardAVault,
			RewardBMint:  rewardBMint,
			RewardBVault: vaults.RewardBVault,
			Authority:    authority.Public().(ed25519.PublicKey),
			Base:         basePub,
		},
		&farming.InitializePoolInstructionArgs{
			RewardDuration: rewardDuration,
		},
	).ToLegacyInstruction()

	sig, err := c.submit([]solana.Instruction{instruction}, authority, base)
	if err != nil {
		return nil, sig, err
	}

	c.log.WithFields(logrus.Fields{
		"pool":      base58.Encode(pool),
		"signature": base58.Encode(sig[:]),
	}).Info("initialized pool")

	return pool, sig, nil
}

// CreateUser creates the owner's staking record in the pool.
func (c *Client) CreateUser(owner ed25519.PrivateKey, pool ed25519.PublicKey) (ed25519.PublicKey, solana.Signature, error) {
	ownerPub := owner.Public().(ed25519.PublicKey)

	user, _, err := farming.GetUserAddress(pool, ownerPub)
	if err != nil {
		return nil, solana.Signature{}, errors.Wrap(err, "failed to derive user address")
	}

	instruction := farming.NewCreateUserInstruction(
		&farming.CreateUserInstructionAccounts{
			Pool:  pool,
			User:  user,
			Owner: ownerPub,
		},
	).ToLegacyInstruction()

	sig, err := c.submit([]solana.Instruction{instruction}, owner)
	if err != nil {
		return nil, sig, err
	}

	return user, sig, nil
}

// Pause stops deposits into the pool.
func (c *Client) Pause(authority ed25519.PrivateKey, pool ed25519.PublicKey) (solana.Signature, error) {
	instruction := farming.NewPauseInstruction(
		&farming.PoolAuthorityInstructionAccounts{
			Pool:      pool,
			Authority: authority.Public().(ed25519.PublicKey),
		},
	).ToLegacyInstruction()

	return c.submit([]solana.Instruction{instruction}, authority)
}

// Unpause re-enables deposits into the pool.
func (c *Client) Unpause(authority ed25519.PrivateKey, pool ed25519.PublicKey) (solana.Signature, error) {
	instruction := farming.NewUnpauseInstruction(
		&farming.PoolAuthorityInstructionAccounts{
			Pool:      pool,
			Authority: authority.Public().(ed25519.PublicKey),
		},
	).ToLegacyInstruction()

	return c.submit([]solana.Instruction{instruction}, authority)
}

// Deposit stakes tokens from the owner's associated token account into the
// pool. The token account is created in the same transaction when absent.
func (c *Client) Deposit(owner ed25519.PrivateKey, pool ed25519.PublicKey, amount uint64) (solana.Signature, error) {
	return c.stake(farming.NewDepositInstruction, owner, pool, amount)
}

// Withdraw unstakes tokens from the pool back into the owner's associated
// token account, creating it in the same transaction when absent.
func (c *Client) Withdraw(owner ed25519.PrivateKey, pool ed25519.PublicKey, amount uint64) (solana.Signature, error) {
	return c.stake(farming.NewWithdrawInstruction, owner, pool, amount)
}

func (c *Client) stake(
	newInstruction func(*farming.StakeInstructionAccounts, *farming.StakeInstructionArgs) farming.Instruction,
	owner ed25519.PrivateKey,
	pool ed25519.PublicKey,
	amount uint64,
) (solana.Signature, error) {
	ownerPub := owner.Public().(ed25519.PublicKey)

	poolState, err := c.GetPool(pool)
	if err != nil {
		return solana.Signature{}, err
	}

	user, _, err := farming.GetUserAddress(pool, ownerPub)
	if err != nil {
		return solana.Signature{}, errors.Wrap(err, "failed to derive user address")
	}

	var instructions []solana.Instruction
	stakeAccount, instructions, err := c.resolveTokenAccount(ownerPub, poolState.StakingMint, instructions)
	if err != nil {
		return solana.Signature{}, err
	}

	instructions = append(instructions, newInstruction(
		&farming.StakeInstructionAccounts{
			Pool:             pool,
			StakingVault:     poolState.StakingVault,
			StakeFromAccount: stakeAccount,
			User:             user,
			Owner:            ownerPub,
		},
		&farming.StakeInstructionArgs{
			Amount: amount,
		},
	).ToLegacyInstruction())

	return c.submit(instructions, owner)
}

// AuthorizeFunder grants a funder the right to fund the pool's rewards.
func (c *Client) AuthorizeFunder(authority ed25519.PrivateKey, pool, funder ed25519.PublicKey) (solana.Signature, error) {
	instruction := farming.NewAuthorizeFunderInstruction(
		&farming.PoolAuthorityInstructionAccounts{
			Pool:      pool,
			Authority: authority.Public().(ed25519.PublicKey),
		},
		&farming.FunderChangeInstructionArgs{
			Funder: funder,
		},
	).ToLegacyInstruction()

	return c.submit([]solana.Instruction{instruction}, authority)
}

// DeauthorizeFunder revokes a previously authorized funder.
func (c *Client) DeauthorizeFunder(authority ed25519.PrivateKey, pool, funder ed25519.PublicKey) (solana.Signature, error) {
	instruction := farming.NewDeauthorizeFunderInstruction(
		&farming.PoolAuthorityInstructionAccounts{
			Pool:      pool,
			Authority: authority.Public().(ed25519.PublicKey),
		},
		&farming.FunderChangeInstructionArgs{
			Funder: funder,
		},
	).ToLegacyInstruction()

	return c.submit([]solana.Instruction{instruction}, authority)
}

// Fund tops up both reward vaults from the funder's associated token
// accounts, which are created in the same transaction when absent.
func (c *Client) Fund(funder ed25519.PrivateKey, pool ed25519.PublicKey, amountA, amountB uint64) (solana.Signature, error) {
	funderPub := funder.Public().(ed25519.PublicKey)

	poolState, err := c.GetPool(pool)
	if err != nil {
		return solana.Signature{}, err
	}

	var instructions []solana.Instruction
	fromA, instructions, err := c.resolveTokenAccount(funderPub, poolState.RewardAMint, instructions)
	if err != nil {
		return solana.Signature{}, err
	}
	fromB, instructions, err := c.resolveTokenAccount(funderPub, poolState.RewardBMint, instructions)
	if err != nil {
		return solana.Signature{}, err
	}

	instructions = append(instructions, farming.NewFundInstruction(
		&farming.FundInstructionAccounts{
			Pool:         pool,
			StakingVault: poolState.StakingVault,
			RewardAVault: poolState.RewardAVault,
			RewardBVault: poolState.RewardBVault,
			Funder:       funderPub,
			FromA:        fromA,
			FromB:        fromB,
		},
		&farming.FundInstructionArgs{
			AmountA: amountA,
			AmountB: amountB,
		},
	).ToLegacyInstruction())

	return c.submit(instructions, funder)
}

// Claim pays out both accrued rewards into the owner's associated token
// accounts, which are created in the same transaction when absent.
func (c *Client) Claim(owner ed25519.PrivateKey, pool ed25519.PublicKey) (solana.Signature, error) {
	ownerPub := owner.Public().(ed25519.PublicKey)

	poolState, err := c.GetPool(pool)
	if err != nil {
		return solana.Signature{}, err
	}

	user, _, err := farming.GetUserAddress(pool, ownerPub)
	if err != nil {
		return solana.Signature{}, errors.Wrap(err, "failed to derive user address")
	}

	var instructions []solana.Instruction
	rewardAAccount, instructions, err := c.resolveTokenAccount(ownerPub, poolState.RewardAMint, instructions)
	if err != nil {
		return solana.Signature{}, err
	}
	rewardBAccount, instructions, err := c.resolveTokenAccount(ownerPub, poolState.RewardBMint, instructions)
	if err != nil {
		return solana.Signature{}, err
	}

	instructions = append(instructions, farming.NewClaimInstruction(
		&farming.ClaimInstructionAccounts{
			Pool:           pool,
			StakingVault:   poolState.StakingVault,
			RewardAVault:   poolState.RewardAVault,
			RewardBVault:   poolState.RewardBVault,
			User:           user,
			Owner:          ownerPub,
			RewardAAccount: rewardAAccount,
			RewardBAccount: rewardBAccount,
		},
	).ToLegacyInstruction())

	return c.submit(instructions, owner)
}

// CloseUser closes the owner's staking record, refunding its rent to the
// owner.
func (c *Client) CloseUser(owner ed25519.PrivateKey, pool ed25519.PublicKey) (solana.Signature, error) {
	ownerPub := owner.Public().(ed25519.PublicKey)

	user, _, err := farming.GetUserAddress(pool, ownerPub)
	if err != nil {
		return solana.Signature{}, errors.Wrap(err, "failed to derive user address")
	}

	instruction := farming.NewCloseUserInstruction(
		&farming.CloseUserInstructionAccounts{
			Pool:  pool,
			User:  user,
			Owner: ownerPub,
		},
	).ToLegacyInstruction()

	return c.submit([]solana.Instruction{instruction}, owner)
}

// ClosePool drains the three vaults into the authority's associated token
// accounts and closes the pool, refunding its rent to the authority.
func (c *Client) ClosePool(authority ed25519.PrivateKey, pool ed25519.PublicKey) (solana.Signature, error) {
	authorityPub := authority.Public().(ed25519.PublicKey)

	poolState, err := c.GetPool(pool)
	if err != nil {
		return solana.Signature{}, err
	}

	var instructions []solana.Instruction
	stakingRefundee, instructions, err := c.resolveTokenAccount(authorityPub, poolState.StakingMint, instructions)
	if err != nil {
		return solana.Signature{}, err
	}
	rewardARefundee, instructions, err := c.resolveTokenAccount(authorityPub, poolState.RewardAMint, instructions)
	if err != nil {
		return solana.Signature{}, err
	}
	rewardBRefundee, instructions, err := c.resolveTokenAccount(authorityPub, poolState.RewardBMint, instructions)
	if err != nil {
		return solana.Signature{}, err
	}

	instructions = append(instructions, farming.NewClosePoolInstruction(
		&farming.ClosePoolInstructionAccounts{
			Refundee:        authorityPub,
			StakingRefundee: stakingRefundee,
			RewardARefundee: rewardARefundee,
			RewardBRefundee: rewardBRefundee,
			Pool:            pool,
			Authority:       authorityPub,
			StakingVault:    poolState.StakingVault,
			RewardAVault:    poolState.RewardAVault,
			RewardBVault:    poolState.RewardBVault,
		},
	).ToLegacyInstruction())

	return c.submit(instructions, authority)
}

// submit compiles, signs and sends a transaction paid for by the client's
// payer. The priority fee instruction, when configured, is always first.
func (c *Client) submit(instructions []solana.Instruction, signers ...ed25519.PrivateKey) (solana.Signature, error) {
	if c.priorityFee > 0 {
		instructions = append(
			[]solana.Instruction{compute_budget.SetComputeUnitPrice(c.priorityFee)},
			instructions...,
		)
	}

	txn := solana.NewTransaction(c.payer.Public().(ed25519.PublicKey), instructions...)

	blockhash, err := c.sol.GetLatestBlockhash()
	if err != nil {
		return solana.Signature{}, errors.Wrap(err, "failed to get latest blockhash")
	}
	txn.SetBlockhash(blockhash)

	signers = append([]ed25519.PrivateKey{c.payer}, signers...)
	if err := txn.Sign(signers...); err != nil {
		return solana.Signature{}, errors.Wrap(err, "failed to sign transaction")
	}

	if missing := txn.MissingSigners(); len(missing) > 0 {
		return solana.Signature{}, errors.Wrapf(ErrMissingSigner, "unsigned account %s", base58.Encode(missing[0]))
	}

	sig, err := c.sol.SubmitTransaction(txn, c.commitment)
	if err != nil {
		return sig, errors.Wrap(err, "failed to submit transaction")
	}

	return sig, nil
}
