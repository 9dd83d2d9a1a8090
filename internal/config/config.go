// Package config defines the data structures related to configuration and
// includes functions for loading and checking the config.
package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/viper"
)

// Configuration holds all configuration for a batch of loan simulations.
type Configuration struct {
	Logging     LoggingConfig `yaml:"logging,omitempty"`
	Output      OutputConfig  `yaml:"output,omitempty"`
	Simulations []Simulation  `yaml:"simulations"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// Simulation is one loan request as a user would type it. Values stay raw
// text so they go through the same parsing as interactive input.
type Simulation struct {
	Name      string `yaml:"name"`
	Principal string `yaml:"principal"` // pt-BR decimal, e.g. "10.000,50"
	Rate      string `yaml:"rate"`      // monthly percent, e.g. "1,99"
	Months    string `yaml:"months"`
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yml")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	return decode(v)
}

// LoadConfigurationFromReader loads YAML-formatted configuration from r.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := viper.New()
	v.SetConfigType("yml")

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}

	return decode(v)
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}
	return &configuration, nil
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings. Loan values themselves are checked when simulated.
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if len(c.Simulations) == 0 {
		warnings = append(warnings, "no simulations configured")
	}

	seen := make(map[string]int)
	for i, sim := range c.Simulations {
		name := strings.TrimSpace(sim.Name)
		if name == "" {
			warnings = append(warnings, fmt.Sprintf("simulation #%d has no name", i+1))
			continue
		}
		if first, ok := seen[name]; ok {
			warnings = append(warnings, fmt.Sprintf("simulation '%s' is defined more than once (#%d and #%d)", name, first+1, i+1))
			continue
		}
		seen[name] = i
	}

	return warnings
}

// DisplayName returns the simulation name, or a positional label when unnamed.
func (s Simulation) DisplayName(index int) string {
	if name := strings.TrimSpace(s.Name); name != "" {
		return name
	}
	return fmt.Sprintf("simulation %d", index+1)
}
