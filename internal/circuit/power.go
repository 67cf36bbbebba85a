package circuit

import (
	"math"
	"strings"

	"github.com/rotisserie/eris"
)

// Phase selects the AC supply configuration for power estimation.
type Phase string

const (
	PhaseSingle Phase = "single"
	PhaseThree  Phase = "three"
)

// ParsePhase maps user input to a Phase. It accepts "single", "1", "1p",
// "three", "3" and "3p", case-insensitively.
func ParsePhase(s string) (Phase, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "single", "1", "1p":
		return PhaseSingle, nil
	case "three", "3", "3p":
		return PhaseThree, nil
	}
	return "", eris.Errorf("circuit: unknown phase %q", s)
}

// PowerInputs holds the measured supply quantities for power estimation.
type PowerInputs struct {
	Phase       Phase   `json:"phase"`
	Voltage     float64 `json:"voltage"`
	Current     float64 `json:"current"`
	PowerFactor float64 `json:"power_factor"`
}

// PowerResult holds the estimated power figures and breaker recommendation.
type PowerResult struct {
	RealPowerWatts         float64 `json:"real_power_watts"`
	ApparentPowerVA        float64 `json:"apparent_power_va"`
	RecommendedBreakerAmps float64 `json:"recommended_breaker_amps"`
}

// Power factor range accepted by EstimatePower. Lower values indicate a
// measurement problem rather than a real load.
const (
	minPowerFactor = 0.5
	maxPowerFactor = 1.0
)

// breakerMargin is the fixed 25% continuous-load margin applied to the
// measured current when recommending a breaker rating.
const breakerMargin = 1.25

// EstimatePower computes real power, apparent power and a recommended breaker
// rating from voltage, current and power factor. Three-phase supplies apply
// the √3 line factor. The breaker recommendation is rounded to 2 decimal
// places; the power figures carry full precision.
func EstimatePower(in PowerInputs) (PowerResult, error) {
	var multiplier float64
	switch in.Phase {
	case PhaseSingle:
		multiplier = 1
	case PhaseThree:
		multiplier = math.Sqrt(3)
	default:
		return PowerResult{}, eris.Errorf("circuit: unknown phase %q", in.Phase)
	}
	if !(in.Voltage > 0) || math.IsInf(in.Voltage, 0) {
		return PowerResult{}, &DomainError{Field: "voltage", Value: in.Voltage, Reason: "must be positive and finite"}
	}
	if !(in.Current > 0) || math.IsInf(in.Current, 0) {
		return PowerResult{}, &DomainError{Field: "current", Value: in.Current, Reason: "must be positive and finite"}
	}
	if !(in.PowerFactor >= minPowerFactor && in.PowerFactor <= maxPowerFactor) {
		return PowerResult{}, &DomainError{Field: "power_factor", Value: in.PowerFactor, Reason: "must be within [0.5, 1]"}
	}

	apparent := multiplier * in.Voltage * in.Current
	return PowerResult{
		RealPowerWatts:         apparent * in.PowerFactor,
		ApparentPowerVA:        apparent,
		RecommendedBreakerAmps: Round(in.Current*breakerMargin, 2),
	}, nil
}
