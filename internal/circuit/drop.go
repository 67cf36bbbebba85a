package circuit

import "math"

// copperResistivity is ρ for copper at 20 °C in Ω·mm²/m. Aluminum conductors
// and temperature correction are not supported.
const copperResistivity = 0.0175

// Conductor cross-sections accepted by EstimateDrop, in mm².
const (
	minConductorArea = 1.5
	maxConductorArea = 35
)

// DropInputs holds the circuit run parameters for voltage drop estimation.
// LengthMeters is the one-way cable run; the return conductor is accounted
// for internally.
type DropInputs struct {
	LengthMeters float64 `json:"length_meters"`
	CurrentAmps  float64 `json:"current_amps"`
	AreaMm2      float64 `json:"area_mm2"`
	SupplyVolts  float64 `json:"supply_volts"`
}

// DropResult holds the estimated voltage drop figures.
type DropResult struct {
	DropVolts          float64 `json:"drop_volts"`
	DropPercent        float64 `json:"drop_percent"`
	LoopResistanceOhms float64 `json:"loop_resistance_ohms"`
}

// EstimateDrop computes the voltage drop over a copper conductor run from its
// one-way length, load current, cross-section and supply voltage.
func EstimateDrop(in DropInputs) (DropResult, error) {
	if !(in.LengthMeters > 0) || math.IsInf(in.LengthMeters, 0) {
		return DropResult{}, &DomainError{Field: "length_meters", Value: in.LengthMeters, Reason: "must be positive and finite"}
	}
	if !(in.CurrentAmps > 0) || math.IsInf(in.CurrentAmps, 0) {
		return DropResult{}, &DomainError{Field: "current_amps", Value: in.CurrentAmps, Reason: "must be positive and finite"}
	}
	if !(in.AreaMm2 >= minConductorArea && in.AreaMm2 <= maxConductorArea) {
		return DropResult{}, &DomainError{Field: "area_mm2", Value: in.AreaMm2, Reason: "must be within [1.5, 35]"}
	}
	if !(in.SupplyVolts > 0) || math.IsInf(in.SupplyVolts, 0) {
		return DropResult{}, &DomainError{Field: "supply_volts", Value: in.SupplyVolts, Reason: "must be positive and finite"}
	}

	loop := copperResistivity * 2 * in.LengthMeters / in.AreaMm2
	drop := in.CurrentAmps * loop
	return DropResult{
		DropVolts:          drop,
		DropPercent:        100 * drop / in.SupplyVolts,
		LoopResistanceOhms: loop,
	}, nil
}
