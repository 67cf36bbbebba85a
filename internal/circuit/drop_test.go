package circuit

import (
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateDrop(t *testing.T) {
	res, err := EstimateDrop(DropInputs{LengthMeters: 30, CurrentAmps: 16, AreaMm2: 2.5, SupplyVolts: 230})
	require.NoError(t, err)

	// ρ·2L/A = 0.0175·60/2.5 = 0.42 Ω
	assert.InDelta(t, 0.42, res.LoopResistanceOhms, 1e-9)
	assert.InDelta(t, 6.72, res.DropVolts, 1e-9)
	assert.InDelta(t, 2.9217, res.DropPercent, 1e-3)
}

func TestEstimateDrop_ShortRun(t *testing.T) {
	res, err := EstimateDrop(DropInputs{LengthMeters: 5, CurrentAmps: 10, AreaMm2: 1.5, SupplyVolts: 230})
	require.NoError(t, err)

	assert.InDelta(t, 0.0175*10/1.5, res.LoopResistanceOhms, 1e-9)
	assert.InDelta(t, 10*0.0175*10/1.5, res.DropVolts, 1e-9)
}

func TestEstimateDrop_DomainViolations(t *testing.T) {
	valid := DropInputs{LengthMeters: 30, CurrentAmps: 16, AreaMm2: 2.5, SupplyVolts: 230}

	tests := []struct {
		name   string
		mutate func(*DropInputs)
		field  string
	}{
		{"zero_length", func(d *DropInputs) { d.LengthMeters = 0 }, "length_meters"},
		{"negative_current", func(d *DropInputs) { d.CurrentAmps = -2 }, "current_amps"},
		{"area_below_range", func(d *DropInputs) { d.AreaMm2 = 1.0 }, "area_mm2"},
		{"area_above_range", func(d *DropInputs) { d.AreaMm2 = 50 }, "area_mm2"},
		{"zero_supply", func(d *DropInputs) { d.SupplyVolts = 0 }, "supply_volts"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)

			_, err := EstimateDrop(in)
			require.Error(t, err)

			var de *DomainError
			require.True(t, eris.As(err, &de))
			assert.Equal(t, tt.field, de.Field)
		})
	}
}

func TestEstimateDrop_AreaBounds(t *testing.T) {
	// Both ends of the supported conductor range are accepted.
	for _, area := range []float64{1.5, 35} {
		_, err := EstimateDrop(DropInputs{LengthMeters: 10, CurrentAmps: 10, AreaMm2: area, SupplyVolts: 230})
		require.NoError(t, err)
	}
}

func TestEstimateDrop_Idempotent(t *testing.T) {
	in := DropInputs{LengthMeters: 30, CurrentAmps: 16, AreaMm2: 2.5, SupplyVolts: 230}

	a, err := EstimateDrop(in)
	require.NoError(t, err)
	b, err := EstimateDrop(in)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}
