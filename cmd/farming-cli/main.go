package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:          "farming-cli",
		Short:        "Dual-reward farming pool operator tool",
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "", "config file path")
	root.PersistentFlags().String("rpc", "", "RPC endpoint URL")
	root.PersistentFlags().String("program-id", "", "farming program id (base58)")
	root.PersistentFlags().String("wallet", "", "payer wallet keypair path")
	root.PersistentFlags().Uint64("priority-fee", 0, "compute unit price in micro-lamports (0 disables)")
	root.PersistentFlags().String("commitment", "finalized", "commitment level (processed, confirmed, finalized)")
	root.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new pool",
		RunE:  runInitializePool,
	}
	initCmd.Flags().String("base", "", "base keypair path")
	initCmd.Flags().String("staking-mint", "", "staking token mint (base58)")
	initCmd.Flags().String("reward-a-mint", "", "reward A token mint (base58)")
	initCmd.Flags().String("reward-b-mint", "", "reward B token mint (base58)")
	initCmd.Flags().Uint64("reward-duration", 0, "reward duration in seconds")
	root.AddCommand(initCmd)

	createUserCmd := &cobra.Command{
		Use:   "create-user",
		Short: "Create the wallet's staking record in a pool",
		RunE:  runCreateUser,
	}
	createUserCmd.Flags().String("pool", "", "pool address (base58)")
	root.AddCommand(createUserCmd)

	pauseCmd := &cobra.Command{
		Use:   "pause",
		Short: "Pause deposits into a pool",
		RunE:  runPause,
	}
	pauseCmd.Flags().String("pool", "", "pool address (base58)")
	root.AddCommand(pauseCmd)

	unpauseCmd := &cobra.Command{
		Use:   "unpause",
		Short: "Resume deposits into a pool",
		RunE:  runUnpause,
	}
	unpauseCmd.Flags().String("pool", "", "pool address (base58)")
	root.AddCommand(unpauseCmd)

	depositCmd := &cobra.Command{
		Use:   "deposit",
		Short: "Stake tokens into a pool",
		RunE:  runDeposit,
	}
	depositCmd.Flags().String("pool", "", "pool address (base58)")
	depositCmd.Flags().Uint64("amount", 0, "token amount to stake")
	root.AddCommand(depositCmd)

	withdrawCmd := &cobra.Command{
		Use:   "withdraw",
		Short: "Unstake tokens from a pool",
		RunE:  runWithdraw,
	}
	withdrawCmd.Flags().String("pool", "", "pool address (base58)")
	withdrawCmd.Flags().Uint64("amount", 0, "token amount to unstake")
	root.AddCommand(withdrawCmd)

	authorizeCmd := &cobra.Command{
		Use:   "authorize",
		Short: "Authorize a funder for a pool",
		RunE:  runAuthorizeFunder,
	}
	authorizeCmd.Flags().String("pool", "", "pool address (base58)")
	authorizeCmd.Flags().String("funder", "", "funder address to add (base58)")
	root.AddCommand(authorizeCmd)

	deauthorizeCmd := &cobra.Command{
		Use:   "deauthorize",
		Short: "Revoke a funder from a pool",
		RunE:  runDeauthorizeFunder,
	}
	deauthorizeCmd.Flags().String("pool", "", "pool address (base58)")
	deauthorizeCmd.Flags().String("funder", "", "funder address to remove (base58)")
	root.AddCommand(deauthorizeCmd)

	fundCmd := &cobra.Command{
		Use:   "fund",
		Short: "Fund both reward vaults of a pool",
		RunE:  runFund,
	}
	fundCmd.Flags().String("pool", "", "pool address (base58)")
	fundCmd.Flags().Uint64("amount-a", 0, "reward A amount")
	fundCmd.Flags().Uint64("amount-b", 0, "reward B amount")
	root.AddCommand(fundCmd)

	claimCmd := &cobra.Command{
		Use:   "claim",
		Short: "Claim accrued rewards from a pool",
		RunE:  runClaim,
	}
	claimCmd.Flags().String("pool", "", "pool address (base58)")
	root.AddCommand(claimCmd)

	closeUserCmd := &cobra.Command{
		Use:   "close-user",
		Short: "Close the wallet's staking record",
		RunE:  runCloseUser,
	}
	closeUserCmd.Flags().String("pool", "", "pool address (base58)")
	root.AddCommand(closeUserCmd)

	closePoolCmd := &cobra.Command{
		Use:   "close-pool",
		Short: "Drain the vaults and close a pool",
		RunE:  runClosePool,
	}
	closePoolCmd.Flags().String("pool", "", "pool address (base58)")
	root.AddCommand(closePoolCmd)

	showInfoCmd := &cobra.Command{
		Use:   "show-info",
		Short: "Print a pool's state",
		RunE:  runShowInfo,
	}
	showInfoCmd.Flags().String("pool", "", "pool address (base58)")
	root.AddCommand(showInfoCmd)

	stakeInfoCmd := &cobra.Command{
		Use:   "stake-info",
		Short: "Print an owner's staking record",
		RunE:  runStakeInfo,
	}
	stakeInfoCmd.Flags().String("pool", "", "pool address (base58)")
	stakeInfoCmd.Flags().String("owner", "", "owner address (base58, defaults to the wallet)")
	root.AddCommand(stakeInfoCmd)

	checkRatesCmd := &cobra.Command{
		Use:   "check-rates",
		Short: "Verify no pool has 128-bit reward rates set yet",
		RunE:  runCheckRates,
	}
	root.AddCommand(checkRatesCmd)

	migrateCmd := &cobra.Command{
		Use:   "migrate-farming-rate",
		Short: "Migrate legacy reward rates on every pool that needs it",
		RunE:  runMigrateFarmingRate,
	}
	root.AddCommand(migrateCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
