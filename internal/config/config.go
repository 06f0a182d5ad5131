// Package config defines the data structures related to configuration and
// includes functions for loading and parsing the config.
package config

import (
	"fmt"

	"github.com/closewithmario/mortgage-engine/internal/quote"
	"github.com/closewithmario/mortgage-engine/pkg/dpa"
	"github.com/closewithmario/mortgage-engine/pkg/mortgage"
	"github.com/closewithmario/mortgage-engine/pkg/rates"
	"github.com/closewithmario/mortgage-engine/pkg/validation"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for mortgage-engine.
type Configuration struct {
	Scenarios []Scenario     `yaml:"scenarios"`
	Rates     rates.Snapshot `yaml:"rates,omitempty"`
	Fees      *mortgage.Fees `yaml:"fees,omitempty"`
	Logging   LoggingConfig  `yaml:"logging,omitempty"`
	Output    OutputConfig   `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv, json
}

// Scenario is one named quote to compute: purchase terms plus any
// assistance programs, either spelled out or named from the preset catalog.
type Scenario struct {
	Name       string          `yaml:"name"`
	Inputs     mortgage.Inputs `yaml:"inputs"`
	Fees       *mortgage.Fees  `yaml:"fees,omitempty"`
	DPAEntries []dpa.Entry     `yaml:"dpaEntries,omitempty"`
	Presets    []string        `yaml:"presets,omitempty"`
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.AutomaticEnv()

	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := v.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// Requests converts every configured scenario into a quote request. Named
// presets are instantiated against the scenario's resolved note rate and
// appended after any explicit entries; unknown preset names are skipped and
// reported as warnings by ValidateConfiguration.
func (c *Configuration) Requests() []quote.Request {
	requests := make([]quote.Request, 0, len(c.Scenarios))
	for _, scenario := range c.Scenarios {
		req := quote.Request{
			Name:     scenario.Name,
			Inputs:   scenario.Inputs,
			Snapshot: c.Rates,
			Entries:  append([]dpa.Entry(nil), scenario.DPAEntries...),
		}

		if scenario.Fees != nil {
			req.Fees = scenario.Fees
		} else if c.Fees != nil {
			req.Fees = c.Fees
		}

		if len(scenario.Presets) > 0 {
			firstRate := scenario.Inputs.NoteRateOverride
			if firstRate <= 0 {
				firstRate = rates.RateForLoanType(c.Rates, scenario.Inputs.LoanType)
			}
			for _, name := range scenario.Presets {
				if preset, ok := findPreset(name); ok {
					req.Entries = append(req.Entries, preset.Instantiate(firstRate))
				}
			}
		}

		requests = append(requests, req)
	}
	return requests
}

func findPreset(id string) (dpa.Preset, bool) {
	for _, preset := range dpa.Catalog() {
		if preset.ID == id {
			return preset, true
		}
	}
	return dpa.Preset{}, false
}

// ValidateConfiguration performs general validation of the configuration
// and returns warnings.
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if len(c.Scenarios) == 0 {
		warnings = append(warnings, "no scenarios configured - nothing to compute")
	}

	for _, scenario := range c.Scenarios {
		name := scenario.Name
		if name == "" {
			name = "(unnamed)"
			warnings = append(warnings, "scenario has no name")
		}
		for _, warning := range validation.ValidateInputs(scenario.Inputs) {
			warnings = append(warnings, fmt.Sprintf("scenario %s: %s", name, warning))
		}
		for _, presetID := range scenario.Presets {
			if _, ok := findPreset(presetID); !ok {
				warnings = append(warnings, fmt.Sprintf("scenario %s: unknown preset %q", name, presetID))
			}
		}
	}

	return warnings
}
