package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, eg. ALGOSEND_ALGOD_TOKEN.
const EnvPrefix = "ALGOSEND"

// Settings is the content of ~/.algosend/config.toml.
type Settings struct {
	Network string
	Algod   AlgodSettings
	NFD     NFDSettings
	Send    SendSettings
	Log     LogSettings
}

type AlgodSettings struct {
	// Node overrides the network's default algod endpoint.
	Node  string
	Token string
}

type NFDSettings struct {
	// API overrides the network's NFD API endpoint.
	API string
}

type SendSettings struct {
	WaitRounds uint64 `mapstructure:"wait_rounds"`
}

type LogSettings struct {
	Level  string
	Format string
}

func Path() string {
	if p := os.Getenv(EnvPrefix + "_CONFIG"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".algosend", "config.toml")
}

// Load reads the settings file if it exists. Env vars override it.
func Load() (Settings, error) {
	v := viper.New()

	v.SetDefault("network", "mainnet")
	v.SetDefault("algod.node", "")
	v.SetDefault("algod.token", "")
	v.SetDefault("nfd.api", "")
	v.SetDefault("send.wait_rounds", 10)
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "console")

	v.SetConfigType("toml")
	v.SetConfigFile(Path())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Settings{}, fmt.Errorf("read config %s: %w", Path(), err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return s, nil
}

// Save writes s to Path(), creating its directory if needed.
func Save(s Settings) error {
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("network", s.Network)
	v.Set("algod.node", s.Algod.Node)
	v.Set("algod.token", s.Algod.Token)
	v.Set("nfd.api", s.NFD.API)
	v.Set("send.wait_rounds", s.Send.WaitRounds)
	v.Set("log.level", s.Log.Level)
	v.Set("log.format", s.Log.Format)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
