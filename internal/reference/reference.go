// Package reference serves the static electrician's reference data shown by
// the reference command and API: formula summaries, nominal supply voltages,
// and a copper conductor table.
package reference

import (
	_ "embed"
	"sync"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

//go:embed data.yaml
var raw []byte

// Formula is one entry of the formula cheat sheet.
type Formula struct {
	Name       string `yaml:"name" json:"name"`
	Expression string `yaml:"expression" json:"expression"`
	Note       string `yaml:"note,omitempty" json:"note,omitempty"`
}

// SupplyVoltage is a nominal supply voltage in common use.
type SupplyVoltage struct {
	Label string  `yaml:"label" json:"label"`
	Volts float64 `yaml:"volts" json:"volts"`
	Phase string  `yaml:"phase" json:"phase"`
}

// Conductor describes one standard copper conductor cross-section with its
// typical ampacity and the breaker normally paired with it. Ampacities assume
// PVC-insulated cable in conduit at 30 °C ambient.
type Conductor struct {
	AreaMm2      float64 `yaml:"area_mm2" json:"area_mm2"`
	AmpacityAmps float64 `yaml:"ampacity_amps" json:"ampacity_amps"`
	BreakerAmps  float64 `yaml:"breaker_amps" json:"breaker_amps"`
}

// Data is the full reference dataset.
type Data struct {
	Formulas   []Formula       `yaml:"formulas" json:"formulas"`
	Voltages   []SupplyVoltage `yaml:"voltages" json:"voltages"`
	Conductors []Conductor     `yaml:"conductors" json:"conductors"`
}

var load = sync.OnceValues(func() (*Data, error) {
	var d Data
	if err := yaml.Unmarshal(raw, &d); err != nil {
		return nil, eris.Wrap(err, "reference: parse embedded data")
	}
	if len(d.Formulas) == 0 || len(d.Voltages) == 0 || len(d.Conductors) == 0 {
		return nil, eris.New("reference: embedded data is incomplete")
	}
	return &d, nil
})

// Load returns the embedded reference dataset. The data is parsed once and
// shared; callers must not mutate it.
func Load() (*Data, error) {
	return load()
}

// ConductorFor returns the smallest standard conductor whose cross-section is
// at least areaMm2. It returns an error when the area exceeds the table.
func ConductorFor(areaMm2 float64) (Conductor, error) {
	d, err := Load()
	if err != nil {
		return Conductor{}, err
	}
	for _, c := range d.Conductors {
		if c.AreaMm2 >= areaMm2 {
			return c, nil
		}
	}
	return Conductor{}, eris.Errorf("reference: no standard conductor of at least %g mm²", areaMm2)
}
