package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config represents the application configuration.
type Config struct {
	// Network settings
	Network   string `mapstructure:"network" yaml:"network"`
	RPCUrl    string `mapstructure:"rpc_url" yaml:"rpc_url"`
	WSUrl     string `mapstructure:"ws_url" yaml:"ws_url"`
	RPCAPIKey string `mapstructure:"rpc_api_key" yaml:"rpc_api_key"`

	// Program settings
	Programs ProgramConfig `mapstructure:"programs" yaml:"programs"`

	// Transaction settings
	Transaction TransactionConfig `mapstructure:"transaction" yaml:"transaction"`

	// Logging settings
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// ProgramConfig allows overriding the deployed program addresses, mainly to
// point at a locally deployed copy on devnet or localnet.
type ProgramConfig struct {
	LaunchpadProgramID string `mapstructure:"launchpad_program_id" yaml:"launchpad_program_id"`
	IntentProgramID    string `mapstructure:"intent_program_id" yaml:"intent_program_id"`
	TreasuryAddress    string `mapstructure:"treasury_address" yaml:"treasury_address"`
}

// TransactionConfig contains assembly-related settings.
type TransactionConfig struct {
	ComputeUnitLimit uint32 `mapstructure:"compute_unit_limit" yaml:"compute_unit_limit"`
	PriorityFee      uint64 `mapstructure:"priority_fee" yaml:"priority_fee"`
	LaunchpadFeeBps  uint16 `mapstructure:"launchpad_fee_bps" yaml:"launchpad_fee_bps"`
	IntentFeeBps     uint16 `mapstructure:"intent_fee_bps" yaml:"intent_fee_bps"`
	Timeout          time.Duration `mapstructure:"timeout" yaml:"timeout"`
}

// LoggingConfig contains logger settings.
type LoggingConfig struct {
	Level     string `mapstructure:"level" yaml:"level"`
	Format    string `mapstructure:"format" yaml:"format"`
	LogToFile bool   `mapstructure:"log_to_file" yaml:"log_to_file"`
	LogFile   string `mapstructure:"log_file" yaml:"log_file"`
}

// LoadConfig reads configuration from the given file (optional), environment
// variables prefixed with INTENTFI_, and defaults, in ascending priority.
func LoadConfig(configFile string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	}

	v.SetEnvPrefix("INTENTFI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyNetworkDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := applyProgramOverrides(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyProgramOverrides points the package-level program IDs at the
// configured deployments. All PDA derivation and instruction building reads
// those variables, so overriding here retargets the whole client.
func applyProgramOverrides(cfg *Config) error {
	if cfg.Programs.LaunchpadProgramID != "" {
		decoded, err := decodeProgramID(cfg.Programs.LaunchpadProgramID)
		if err != nil {
			return fmt.Errorf("programs.launchpad_program_id: %w", err)
		}
		LaunchpadProgramID = decoded
	}
	if cfg.Programs.IntentProgramID != "" {
		decoded, err := decodeProgramID(cfg.Programs.IntentProgramID)
		if err != nil {
			return fmt.Errorf("programs.intent_program_id: %w", err)
		}
		IntentProgramID = decoded
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("network", "devnet")
	v.SetDefault("programs.launchpad_program_id", "5y2X9WML5ttrWrxzUfGrLSxbXfEcKTyV1dDyw2jXW1Zg")
	v.SetDefault("programs.intent_program_id", "2UPCMZ2LESPx8wU83wdng3Yjhx2yxRLEkEDYDkNUg1jd")
	v.SetDefault("transaction.compute_unit_limit", 400_000)
	v.SetDefault("transaction.priority_fee", 0)
	v.SetDefault("transaction.launchpad_fee_bps", LaunchpadFeeBps)
	v.SetDefault("transaction.intent_fee_bps", IntentFeeBps)
	v.SetDefault("transaction.timeout", 30*time.Second)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}

func applyNetworkDefaults(cfg *Config) {
	if cfg.RPCUrl == "" {
		cfg.RPCUrl = GetRPCEndpoint(cfg.Network)
	}
	if cfg.WSUrl == "" {
		cfg.WSUrl = GetWSEndpoint(cfg.Network)
	}
}

// Validate checks configuration consistency.
func (c *Config) Validate() error {
	if c.Network != "mainnet" && c.Network != "devnet" && c.Network != "localnet" {
		return fmt.Errorf("invalid network %q (want mainnet, devnet or localnet)", c.Network)
	}
	if c.RPCUrl == "" {
		return fmt.Errorf("rpc_url is required")
	}
	if c.Transaction.LaunchpadFeeBps > 10_000 {
		return fmt.Errorf("launchpad_fee_bps %d exceeds 10000", c.Transaction.LaunchpadFeeBps)
	}
	if c.Transaction.IntentFeeBps > 10_000 {
		return fmt.Errorf("intent_fee_bps %d exceeds 10000", c.Transaction.IntentFeeBps)
	}
	return nil
}
