package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/herodex/internal/paths"
	"github.com/mesh-intelligence/herodex/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	envPrefix      = "HERODEX"

	cfgKeyBackend  = "backend"
	cfgKeyLatency  = "latency"
	cfgKeyPageSize = "page_size"
	cfgKeyLogLevel = "log_level"
)

var errConfig = errors.New("configuration error")

// configFile holds the structure written to config.yaml. Latency is kept as
// a duration string so the file stays readable.
type configFile struct {
	Backend  string `yaml:"backend"`
	Latency  string `yaml:"latency"`
	PageSize int    `yaml:"page_size"`
	LogLevel string `yaml:"log_level"`
}

func defaultConfigFile() configFile {
	d := types.DefaultConfig()
	return configFile{
		Backend:  d.Backend,
		Latency:  d.Latency.String(),
		PageSize: d.PageSize,
		LogLevel: d.LogLevel,
	}
}

// loadConfig reads config.yaml from configDir using Viper. It creates the
// directory and a default config.yaml on first run. Values can be overridden
// with HERODEX_* environment variables.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return nil, fmt.Errorf("create config dir: %w", err)
	}
	if _, err := writeConfigIfMissing(paths.ConfigFile(configDir)); err != nil {
		return nil, fmt.Errorf("write default config: %w", err)
	}

	d := types.DefaultConfig()
	v := viper.New()
	v.SetDefault(cfgKeyBackend, d.Backend)
	v.SetDefault(cfgKeyLatency, d.Latency)
	v.SetDefault(cfgKeyPageSize, d.PageSize)
	v.SetDefault(cfgKeyLogLevel, d.LogLevel)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// bindFlags lets explicitly set flags override the file and environment.
func bindFlags(v *viper.Viper, root *cobra.Command) error {
	for key, name := range map[string]string{
		cfgKeyBackend: "backend",
		cfgKeyLatency: "latency",
	} {
		if err := v.BindPFlag(key, root.PersistentFlags().Lookup(name)); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}

// decodeConfig converts the merged settings into a validated Config.
func decodeConfig(v *viper.Viper) (types.Config, error) {
	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return types.Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// writeConfigIfMissing creates a config.yaml with default values if the file
// does not exist. It reports whether a file was written.
func writeConfigIfMissing(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat config file: %w", err)
	}

	cfg := defaultConfigFile()
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return false, err
	}
	return true, nil
}
