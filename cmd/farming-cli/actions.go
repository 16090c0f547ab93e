package main

import (
	"crypto/ed25519"
	"fmt"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/farmhand-labs/farming-client/internal/config"
	"github.com/farmhand-labs/farming-client/pkg/farm"
	"github.com/farmhand-labs/farming-client/pkg/solana"
	"github.com/farmhand-labs/farming-client/pkg/solana/farming"
)

func setup(cmd *cobra.Command) (*farm.Client, ed25519.PrivateKey, error) {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return nil, nil, err
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, errors.Wrap(err, "invalid log level")
	}
	logrus.SetLevel(level)

	if cfg.ProgramID != "" {
		programID, err := parseKey(cfg.ProgramID)
		if err != nil {
			return nil, nil, errors.Wrap(err, "invalid program id")
		}
		farming.SetProgramID(programID)
	}

	if cfg.WalletPath == "" {
		return nil, nil, errors.New("wallet keypair is required")
	}
	wallet, err := farm.LoadKeypair(cfg.WalletPath)
	if err != nil {
		return nil, nil, err
	}

	var commitment solana.Commitment
	switch cfg.Commitment {
	case "processed":
		commitment = solana.CommitmentProcessed
	case "confirmed":
		commitment = solana.CommitmentConfirmed
	case "finalized":
		commitment = solana.CommitmentFinalized
	default:
		return nil, nil, errors.Errorf("invalid commitment: %s", cfg.Commitment)
	}

	opts := []farm.Option{
		farm.WithCommitment(commitment),
	}
	if cfg.PriorityFee > 0 {
		opts = append(opts, farm.WithPriorityFee(cfg.PriorityFee))
	}

	client := farm.NewClient(solana.New(cfg.RPCURL), wallet, opts...)

	return client, wallet, nil
}

func parseKey(value string) (ed25519.PublicKey, error) {
	decoded, err := base58.Decode(value)
	if err != nil {
		return nil, err
	}
	if len(decoded) != ed25519.PublicKeySize {
		return nil, errors.Errorf("invalid address length: %d", len(decoded))
	}
	return decoded, nil
}

func poolFlag(cmd *cobra.Command) (ed25519.PublicKey, error) {
	value, _ := cmd.Flags().GetString("pool")
	if value == "" {
		return nil, errors.New("pool address is required")
	}

	pool, err := parseKey(value)
	if err != nil {
		return nil, errors.Wrap(err, "invalid pool address")
	}
	return pool, nil
}

func printSignature(sig solana.Signature) {
	fmt.Printf("Signature %s\n", base58.Encode(sig[:]))
}

func runInitializePool(cmd *cobra.Command, _ []string) error {
	client, wallet, err := setup(cmd)
	if err != nil {
		return err
	}

	basePath, _ := cmd.Flags().GetString("base")
	if basePath == "" {
		return errors.New("base keypair is required")
	}
	base, err := farm.LoadKeypair(basePath)
	if err != nil {
		return err
	}

	stakingMintStr, _ := cmd.Flags().GetString("staking-mint")
	stakingMint, err := parseKey(stakingMintStr)
	if err != nil {
		return errors.Wrap(err, "invalid staking mint")
	}

	rewardAMintStr, _ := cmd.Flags().GetString("reward-a-mint")
	rewardAMint, err := parseKey(rewardAMintStr)
	if err != nil {
		return errors.Wrap(err, "invalid reward A mint")
	}

	rewardBMintStr, _ := cmd.Flags().GetString("reward-b-mint")
	rewardBMint, err := parseKey(rewardBMintStr)
	if err != nil {
		return errors.Wrap(err, "invalid reward B mint")
	}

	rewardDuration, _ := cmd.Flags().GetUint64("reward-duration")
	if rewardDuration == 0 {
		return errors.New("reward duration is required")
	}

	pool, sig, err := client.InitializePool(wallet, base, stakingMint, rewardAMint, rewardBMint, rewardDuration)
	if err != nil {
		return err
	}

	fmt.Printf("pool address %s\n", base58.Encode(pool))
	printSignature(sig)
	return nil
}

func runCreateUser(cmd *cobra.Command, _ []string) error {
	client, wallet, err := setup(cmd)
	if err != nil {
		return err
	}

	pool, err := poolFlag(cmd)
	if err != nil {
		return err
	}

	user, sig, err := client.CreateUser(wallet, pool)
	if err != nil {
		return err
	}

	fmt.Printf("user address %s\n", base58.Encode(user))
	printSignature(sig)
	return nil
}

func runPause(cmd *cobra.Command, _ []string) error {
	client, wallet, err := setup(cmd)
	if err != nil {
		return err
	}

	pool, err := poolFlag(cmd)
	if err != nil {
		return err
	}

	sig, err := client.Pause(wallet, pool)
	if err != nil {
		return err
	}

	printSignature(sig)
	return nil
}

func runUnpause(cmd *cobra.Command, _ []string) error {
	client, wallet, err := setup(cmd)
	if err != nil {
		return err
	}

	pool, err := poolFlag(cmd)
	if err != nil {
		return err
	}

	sig, err := client.Unpause(wallet, pool)
	if err != nil {
		return err
	}

	printSignature(sig)
	return nil
}

func runDeposit(cmd *cobra.Command, _ []string) error {
	client, wallet, err := setup(cmd)
	if err != nil {
		return err
	}

	pool, err := poolFlag(cmd)
	if err != nil {
		return err
	}

	amount, _ := cmd.Flags().GetUint64("amount")
	if amount == 0 {
		return errors.New("amount is required")
	}

	sig, err := client.Deposit(wallet, pool, amount)
	if err != nil {
		return err
	}

	printSignature(sig)
	return nil
}

func runWithdraw(cmd *cobra.Command, _ []string) error {
	client, wallet, err := setup(cmd)
	if err != nil {
		return err
	}

	pool, err := poolFlag(cmd)
	if err != nil {
		return err
	}

	amount, _ := cmd.Flags().GetUint64("amount")
	if amount == 0 {
		return errors.New("amount is required")
	}

	sig, err := client.Withdraw(wallet, pool, amount)
	if err != nil {
		return err
	}

	printSignature(sig)
	return nil
}

func runAuthorizeFunder(cmd *cobra.Command, _ []string) error {
	client, wallet, err := setup(cmd)
	if err != nil {
		return err
	}

	pool, err := poolFlag(cmd)
	if err != nil {
		return err
	}

	funderStr, _ := cmd.Flags().GetString("funder")
	funder, err := parseKey(funderStr)
	if err != nil {
		return errors.Wrap(err, "invalid funder address")
	}

	sig, err := client.AuthorizeFunder(wallet, pool, funder)
	if err != nil {
		return err
	}

	printSignature(sig)
	return nil
}

func runDeauthorizeFunder(cmd *cobra.Command, _ []string) error {
	client, wallet, err := setup(cmd)
	if err != nil {
		return err
	}

	pool, err := poolFlag(cmd)
	if err != nil {
		return err
	}

	funderStr, _ := cmd.Flags().GetString("funder")
	funder, err := parseKey(funderStr)
	if err != nil {
		return errors.Wrap(err, "invalid funder address")
	}

	sig, err := client.DeauthorizeFunder(wallet, pool, funder)
	if err != nil {
		return err
	}

	printSignature(sig)
	return nil
}

func runFund(cmd *cobra.Command, _ []string) error {
	client, wallet, err := setup(cmd)
	if err != nil {
		return err
	}

	pool, err := poolFlag(cmd)
	if err != nil {
		return err
	}

	amountA, _ := cmd.Flags().GetUint64("amount-a")
	amountB, _ := cmd.Flags().GetUint64("amount-b")
	if amountA == 0 && amountB == 0 {
		return errors.New("at least one reward amount is required")
	}

	sig, err := client.Fund(wallet, pool, amountA, amountB)
	if err != nil {
		return err
	}

	printSignature(sig)
	return nil
}

func runClaim(cmd *cobra.Command, _ []string) error {
	client, wallet, err := setup(cmd)
	if err != nil {
		return err
	}

	pool, err := poolFlag(cmd)
	if err != nil {
		return err
	}

	sig, err := client.Claim(wallet, pool)
	if err != nil {
		return err
	}

	printSignature(sig)
	return nil
}

func runCloseUser(cmd *cobra.Command, _ []string) error {
	client, wallet, err := setup(cmd)
	if err != nil {
		return err
	}

	pool, err := poolFlag(cmd)
	if err != nil {
		return err
	}

	sig, err := client.CloseUser(wallet, pool)
	if err != nil {
		return err
	}

	printSignature(sig)
	return nil
}

func runClosePool(cmd *cobra.Command, _ []string) error {
	client, wallet, err := setup(cmd)
	if err != nil {
		return err
	}

	pool, err := poolFlag(cmd)
	if err != nil {
		return err
	}

	sig, err := client.ClosePool(wallet, pool)
	if err != nil {
		return err
	}

	printSignature(sig)
	return nil
}

func runShowInfo(cmd *cobra.Command, _ []string) error {
	client, _, err := setup(cmd)
	if err != nil {
		return err
	}

	pool, err := poolFlag(cmd)
	if err != nil {
		return err
	}

	state, err := client.GetPool(pool)
	if err != nil {
		return err
	}

	fmt.Printf("pool %s\n", base58.Encode(pool))
	fmt.Println(state.String())
	return nil
}

func runStakeInfo(cmd *cobra.Command, _ []string) error {
	client, wallet, err := setup(cmd)
	if err != nil {
		return err
	}

	pool, err := poolFlag(cmd)
	if err != nil {
		return err
	}

	owner := wallet.Public().(ed25519.PublicKey)
	if ownerStr, _ := cmd.Flags().GetString("owner"); ownerStr != "" {
		owner, err = parseKey(ownerStr)
		if err != nil {
			return errors.Wrap(err, "invalid owner address")
		}
	}

	state, err := client.GetUser(pool, owner)
	if err != nil {
		return err
	}

	fmt.Println(state.String())
	return nil
}

func runCheckRates(cmd *cobra.Command, _ []string) error {
	client, _, err := setup(cmd)
	if err != nil {
		return err
	}

	violations, err := client.VerifyCurrentRatesUnset()
	if err != nil {
		return err
	}

	if len(violations) == 0 {
		fmt.Println("all pools have unset 128-bit rates")
		return nil
	}

	for _, pool := range violations {
		fmt.Printf("pool %s already has 128-bit rates set\n", base58.Encode(pool))
	}
	return errors.Errorf("%d pool(s) already migrated", len(violations))
}

func runMigrateFarmingRate(cmd *cobra.Command, _ []string) error {
	client, _, err := setup(cmd)
	if err != nil {
		return err
	}

	results, err := client.MigrateFarmingRates()
	if err != nil {
		return err
	}

	var failures int
	for _, result := range results {
		if result.Err != nil {
			failures++
			fmt.Printf("pool %s migration failed: %v\n", base58.Encode(result.Pool), result.Err)
			continue
		}
		fmt.Printf("migrated pool %s signature %s\n", base58.Encode(result.Pool), base58.Encode(result.Signature[:]))
	}

	if failures > 0 {
		return errors.Errorf("%d pool(s) failed to migrate", failures)
	}

	fmt.Printf("migrated %d pool(s)\n", len(results))
	return nil
}
