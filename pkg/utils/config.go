package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/oxygene76/porkchop-client/pkg/porkchop"
	"github.com/oxygene76/porkchop-client/pkg/separation"
)

// Config represents the client configuration
type Config struct {
	Ephemeris EphemerisConfig `yaml:"ephemeris" mapstructure:"ephemeris"`
	Sampling  SamplingConfig  `yaml:"sampling" mapstructure:"sampling"`
	Plot      PlotConfig      `yaml:"plot" mapstructure:"plot"`
}

// EphemerisConfig selects the body catalog and the position provider
type EphemerisConfig struct {
	CatalogPath string `yaml:"catalog_path" mapstructure:"catalog_path"`
	Provider    string `yaml:"provider" mapstructure:"provider"` // "kepler" or "sgp4"
}

// SamplingConfig contains separation-sampler defaults
type SamplingConfig struct {
	StepDays float64 `yaml:"step_days" mapstructure:"step_days"`
	Workers  int     `yaml:"workers" mapstructure:"workers"`
}

// PlotConfig contains plot-preparation defaults
type PlotConfig struct {
	OutputDir      string  `yaml:"output_dir" mapstructure:"output_dir"`
	Metric         string  `yaml:"metric" mapstructure:"metric"`
	HighClipFactor float64 `yaml:"high_clip_factor" mapstructure:"high_clip_factor"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	clientDir := filepath.Join(homeDir, ".porkchop-client")

	return &Config{
		Ephemeris: EphemerisConfig{
			CatalogPath: filepath.Join(clientDir, "bodies.yaml"),
			Provider:    "kepler",
		},
		Sampling: SamplingConfig{
			StepDays: 5.0,
			Workers:  0, // one per CPU
		},
		Plot: PlotConfig{
			OutputDir:      filepath.Join(clientDir, "artifacts"),
			Metric:         "dv_total_km_s",
			HighClipFactor: 4.0,
		},
	}
}

// LoadConfig loads configuration from file or creates default
func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	homeDir, _ := os.UserHomeDir()
	viper.AddConfigPath(filepath.Join(homeDir, ".porkchop-client"))
	viper.AddConfigPath(".")
	viper.AddConfigPath("./configs")

	viper.SetEnvPrefix("PORKCHOP")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found, create default
			return createDefaultConfig()
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// SaveConfig saves configuration to file
func SaveConfig(config *Config) error {
	homeDir, _ := os.UserHomeDir()
	configDir := filepath.Join(homeDir, ".porkchop-client")
	configFile := filepath.Join(configDir, "config.yaml")

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if config.Plot.OutputDir != "" {
		if err := os.MkdirAll(config.Plot.OutputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Configuration saved to: %s\n", configFile)
	return nil
}

// createDefaultConfig creates and saves a default configuration
func createDefaultConfig() (*Config, error) {
	config := DefaultConfig()

	if err := SaveConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}

// validateConfig validates the configuration
func validateConfig(config *Config) error {
	if config.Ephemeris.CatalogPath == "" {
		return fmt.Errorf("catalog path cannot be empty")
	}

	switch config.Ephemeris.Provider {
	case "kepler", "sgp4":
	default:
		return fmt.Errorf("invalid ephemeris provider: %s (use: kepler, sgp4)", config.Ephemeris.Provider)
	}

	if config.Sampling.StepDays != 0 && config.Sampling.StepDays < separation.MinStepDays {
		return fmt.Errorf("sampling step must be at least %g days", separation.MinStepDays)
	}

	if config.Plot.HighClipFactor < 1.0 {
		return fmt.Errorf("high clip factor must be >= 1.0")
	}

	if _, err := porkchop.MetricByName(config.Plot.Metric); err != nil {
		return fmt.Errorf("invalid plot metric: %w", err)
	}

	return nil
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".porkchop-client", "config.yaml"), nil
}
