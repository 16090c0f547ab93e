package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds configuration values loaded from flags, env, or config file.
type Config struct {
	RPCURL      string
	ProgramID   string
	WalletPath  string
	PriorityFee uint64
	Commitment  string
	LogLevel    string
}

// Load merges config file, environment variables, and flags into Config.
// Flags take precedence over environment variables, which take precedence
// over the config file.
func Load(cfgFile string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("FARMING")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("rpc", "https://api.mainnet-beta.solana.com")
	v.SetDefault("commitment", "finalized")
	v.SetDefault("log-level", "info")

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return Config{}, errors.Wrap(err, "failed to bind flags")
		}
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrap(err, "failed to read config file")
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return Config{}, errors.Wrap(err, "failed to read config file")
			}
		}
	}

	cfg := Config{
		RPCURL:      v.GetString("rpc"),
		ProgramID:   v.GetString("program-id"),
		WalletPath:  v.GetString("wallet"),
		PriorityFee: v.GetUint64("priority-fee"),
		Commitment:  v.GetString("commitment"),
		LogLevel:    v.GetString("log-level"),
	}

	return cfg, nil
}
