package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Configs struct {
	Env      string `toml:"env"`
	LogLevel int    `toml:"log_level"`

	Database  DatabaseConfigs  `toml:"database"`
	KVStore   KVStoreConfigs   `toml:"kv_store"`
	ApiServer ServerConfigs    `toml:"api_server"`
	Admin     AdminConfigs     `toml:"admin"`
	Wallet    WalletConfigs    `toml:"wallet"`
	Reward    RewardConfigs    `toml:"reward"`
	Withdraw  WithdrawConfigs  `toml:"withdraw"`
}

type DatabaseConfigs struct {
	// Path is the sqlite database file. The value ":memory:" opens an
	// in-process database that does not survive restarts.
	Path string `toml:"path"`

	ExportDir string `toml:"export_dir"`
}

type KVStoreConfigs struct {
	Dir string `toml:"dir"`
}

type ServerConfigs struct {
	Host string `toml:"host"`
	Port string `toml:"port"`

	AllowedOrigins []string `toml:"allowed_origins"`
}

func (s ServerConfigs) Address() string {
	return fmt.Sprintf("%s:%s", s.Host, s.Port)
}

type AdminConfigs struct {
	Secret        string `toml:"secret"`
	MasterKey     string `toml:"master_key"`
	SessionSecret string `toml:"session_secret"`
}

type WalletConfigs struct {
	RPC string `toml:"rpc"`
}

type RewardConfigs struct {
	// PointsToUSDCRate points equal one USDC.
	PointsToUSDCRate int64 `toml:"points_to_usdc_rate"`
	WelcomeBonus     int64 `toml:"welcome_bonus"`
}

type WithdrawConfigs struct {
	MinAmount int64 `toml:"min_amount"`
	MaxAmount int64 `toml:"max_amount"`

	// SettleAfter is how long a withdrawal stays pending before the
	// settlement worker picks it up. SettleJitterMin/Max bound the extra
	// randomized delay before the status flips to completed.
	SettleAfter     time.Duration `toml:"settle_after"`
	SettleJitterMin time.Duration `toml:"settle_jitter_min"`
	SettleJitterMax time.Duration `toml:"settle_jitter_max"`
	PollInterval    time.Duration `toml:"poll_interval"`
}

func Default() Configs {
	return Configs{
		Env:      "local",
		LogLevel: 1,
		Database: DatabaseConfigs{
			Path:      "airdrop.db",
			ExportDir: ".",
		},
		KVStore: KVStoreConfigs{
			Dir: "kvstore",
		},
		ApiServer: ServerConfigs{
			Host: "0.0.0.0",
			Port: "8080",
		},
		Admin: AdminConfigs{
			Secret:        "secret",
			MasterKey:     "master2025",
			SessionSecret: "session-secret",
		},
		Reward: RewardConfigs{
			PointsToUSDCRate: 100,
			WelcomeBonus:     100,
		},
		Withdraw: WithdrawConfigs{
			MinAmount:       100,
			MaxAmount:       10000,
			SettleAfter:     3 * time.Second,
			SettleJitterMin: time.Second,
			SettleJitterMax: 3 * time.Second,
			PollInterval:    time.Second,
		},
	}
}

// Load reads the toml file at path over the defaults. An empty path returns
// the defaults unchanged.
func Load(path string) (Configs, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("cannot read config file: %w", err)
	}

	if err := toml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("cannot parse config file: %w", err)
	}

	return cfg, nil
}
