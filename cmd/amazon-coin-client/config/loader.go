package config

import (
	"bytes"
	_ "embed"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/chains"
	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/constants"
)

const EnvPrefix = "AMAZON_COIN"

//go:embed config.yaml
var EmbeddedConfigYAML []byte

type AppSettings struct {
	DeploymentsDir         string `mapstructure:"deploymentsDir" validate:"required"`
	HistoryPath            string `mapstructure:"historyPath"`
	MetricsAddr            string `mapstructure:"metricsAddr" validate:"required,hostname_port"`
	MetricsIntervalSeconds int    `mapstructure:"metricsIntervalSeconds" validate:"min=10"`
}

type PurchaseSettings struct {
	ConfirmationTimeoutSeconds int    `mapstructure:"confirmationTimeoutSeconds" validate:"min=1"`
	HederaGas                  uint64 `mapstructure:"hederaGas" validate:"min=21000"`
	PrecheckBalance            bool   `mapstructure:"precheckBalance"`
}

type VerifierSettings struct {
	ReadTimeoutSeconds  int    `mapstructure:"readTimeoutSeconds" validate:"min=1"`
	RetryInitialDelayMs int    `mapstructure:"retryInitialDelayMs" validate:"min=1"`
	RetryMaxDelayMs     int    `mapstructure:"retryMaxDelayMs" validate:"min=1,gtefield=RetryInitialDelayMs"`
	SimulateMint        bool   `mapstructure:"simulateMint"`
	SimulateFrom        string `mapstructure:"simulateFrom" validate:"omitempty,eth_addr"`
}

type HederaSettings struct {
	MirrorNodes map[string]string `mapstructure:"mirrorNodes" validate:"dive,url"`
}

type Config struct {
	App                    AppSettings      `mapstructure:"app"`
	chains.AllChainsConfig `mapstructure:",squash"`
	Purchase               PurchaseSettings `mapstructure:"purchase"`
	Verifier               VerifierSettings `mapstructure:"verifier"`
	Hedera                 HederaSettings   `mapstructure:"hedera"`
}

func (c *Config) ConfirmationTimeout() time.Duration {
	return time.Duration(c.Purchase.ConfirmationTimeoutSeconds) * time.Second
}

func (c *Config) VerifyInterval() time.Duration {
	return time.Duration(c.App.MetricsIntervalSeconds) * time.Second
}

// ResolvedHistoryPath falls back to <user config dir>/amazon-coin-client/history.
func (c *Config) ResolvedHistoryPath() (string, error) {
	if p := strings.TrimSpace(c.App.HistoryPath); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "user config dir")
	}
	return filepath.Join(dir, constants.AppName, constants.HistoryDirName), nil
}

func searchPaths() []string {
	home, _ := os.UserHomeDir()
	return []string{
		filepath.Join(home, ".config", constants.AppName),
		filepath.Join(home, "config"),
		".",
	}
}

// Load merges the embedded defaults, the first config.yaml found on the
// search paths and AMAZON_COIN_* environment variables.
func Load() (*Config, error) {
	return load(viper.New(), searchPaths(), "")
}

// LoadFile is Load with an explicit config file instead of the search paths.
func LoadFile(path string) (*Config, error) {
	return load(viper.New(), nil, path)
}

func load(v *viper.Viper, paths []string, explicit string) (*Config, error) {
	v.SetConfigType("yaml")
	if err := v.ReadConfig(bytes.NewReader(EmbeddedConfigYAML)); err != nil {
		return nil, errors.Wrap(err, "read embedded config")
	}

	switch {
	case explicit != "":
		v.SetConfigFile(explicit)
		if err := v.MergeInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %s", explicit)
		}
	case len(paths) > 0:
		v.SetConfigName("config")
		for _, p := range paths {
			v.AddConfigPath(p)
		}
		if err := v.MergeInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, errors.Wrap(err, "read user config")
			}
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	cfg.Normalize()

	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(&cfg); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &cfg, nil
}
