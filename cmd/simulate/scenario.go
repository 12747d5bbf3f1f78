package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario is a YAML-driven fixture describing one engine run: the
// domain configuration, the simulated host's initial slot state, and
// a timestamped sequence of ingress events to inject. The literal
// S1-S6 scenarios ship as YAML files under cmd/simulate/scenarios/.
type Scenario struct {
	Name string `yaml:"name"`

	Config struct {
		StabilityDwellMS         int  `yaml:"stability_dwell_ms"`
		ScoreTolerance           int  `yaml:"score_tolerance"`
		RequirePing              bool `yaml:"require_ping"`
		MaxValidationRetries     int  `yaml:"max_validation_retries"`
		AllowRoamingSwitch       bool `yaml:"allow_roaming_switch"`
		FeatureScoreBasedEnabled bool `yaml:"feature_score_based_enabled"`
	} `yaml:"config"`

	Slots []struct {
		Slot          int    `yaml:"slot"`
		SubID         int    `yaml:"sub_id"`
		RegState      string `yaml:"reg_state"`
		SignalLevel   int    `yaml:"signal_level"`
		Opportunistic bool   `yaml:"opportunistic"`
	} `yaml:"slots"`

	DefaultSubID      int `yaml:"default_sub_id"`
	PreferredSlot     int `yaml:"preferred_slot"`
	AutoSelectedSubID int `yaml:"auto_selected_sub_id"`

	Steps []struct {
		AfterMS     int    `yaml:"after_ms"`
		Event       string `yaml:"event"`
		Slot        int    `yaml:"slot"`
		HasCellular bool   `yaml:"has_cellular"`
		ModemCount  int    `yaml:"modem_count"`
		SignalLevel int    `yaml:"signal_level"`
		RegState        string `yaml:"reg_state"`
		UserDataEnabled string `yaml:"user_data_enabled"` // "true"/"false", empty = leave unchanged
		Fail            bool   `yaml:"fail"`
	} `yaml:"steps"`

	// WaitForMS is how long to let the engine run (real wall-clock)
	// after the last step before dumping the final snapshot.
	WaitForMS int `yaml:"wait_for_ms"`
}

func loadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario file: %w", err)
	}

	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scenario yaml: %w", err)
	}
	return &s, nil
}
