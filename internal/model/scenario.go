package model

import (
	"fmt"
	"strings"
)

// Scenario is the economic backdrop of the credit-risk simulator.
type Scenario int

const (
	ScenarioBoom Scenario = iota
	ScenarioNormal
	ScenarioRecession
)

var scenarioNames = map[Scenario]string{
	ScenarioBoom:      "Boom",
	ScenarioNormal:    "Normal",
	ScenarioRecession: "Recession",
}

func (s Scenario) String() string {
	if n, ok := scenarioNames[s]; ok {
		return n
	}
	return fmt.Sprintf("Scenario(%d)", int(s))
}

// ParseScenario accepts the English names and the Portuguese "Recessão".
func ParseScenario(s string) (Scenario, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "boom":
		return ScenarioBoom, nil
	case "normal":
		return ScenarioNormal, nil
	case "recession", "recessão", "recessao":
		return ScenarioRecession, nil
	}
	return 0, fmt.Errorf("unknown scenario %q", s)
}

func (s Scenario) MarshalText() ([]byte, error) {
	if _, ok := scenarioNames[s]; !ok {
		return nil, fmt.Errorf("invalid scenario %d", int(s))
	}
	return []byte(s.String()), nil
}

func (s *Scenario) UnmarshalText(b []byte) error {
	v, err := ParseScenario(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// ProvisioningModel selects the credit-loss accounting regime.
type ProvisioningModel int

const (
	// IAS39 recognises losses only once incurred.
	IAS39 ProvisioningModel = iota
	// IFRS9 provisions expected losses up front.
	IFRS9
)

func (m ProvisioningModel) String() string {
	switch m {
	case IAS39:
		return "IAS 39"
	case IFRS9:
		return "IFRS 9"
	}
	return fmt.Sprintf("ProvisioningModel(%d)", int(m))
}

// ParseProvisioningModel accepts "ias39", "IAS 39", "ifrs9", "IFRS 9".
func ParseProvisioningModel(s string) (ProvisioningModel, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "")
	switch norm {
	case "ias39":
		return IAS39, nil
	case "ifrs9":
		return IFRS9, nil
	}
	return 0, fmt.Errorf("unknown provisioning model %q", s)
}

func (m ProvisioningModel) MarshalText() ([]byte, error) {
	if m != IAS39 && m != IFRS9 {
		return nil, fmt.Errorf("invalid provisioning model %d", int(m))
	}
	return []byte(m.String()), nil
}

func (m *ProvisioningModel) UnmarshalText(b []byte) error {
	v, err := ParseProvisioningModel(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}
