package reference

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	d, err := Load()
	require.NoError(t, err)

	assert.NotEmpty(t, d.Formulas)
	assert.NotEmpty(t, d.Voltages)
	assert.NotEmpty(t, d.Conductors)

	// The conductor table covers the full range the drop estimator accepts.
	assert.Equal(t, 1.5, d.Conductors[0].AreaMm2)
	assert.Equal(t, 35.0, d.Conductors[len(d.Conductors)-1].AreaMm2)

	// Table is sorted ascending; ConductorFor relies on it.
	for i := 1; i < len(d.Conductors); i++ {
		assert.Greater(t, d.Conductors[i].AreaMm2, d.Conductors[i-1].AreaMm2)
	}
}

func TestLoad_SharedInstance(t *testing.T) {
	a, err := Load()
	require.NoError(t, err)
	b, err := Load()
	require.NoError(t, err)
	assert.Same(t, a, b)
}

func TestConductorFor(t *testing.T) {
	tests := []struct {
		area     float64
		expected float64
	}{
		{1.0, 1.5},
		{1.5, 1.5},
		{2.0, 2.5},
		{2.5, 2.5},
		{7.3, 10},
		{35, 35},
	}
	for _, tt := range tests {
		c, err := ConductorFor(tt.area)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, c.AreaMm2, "area %g", tt.area)
	}
}

func TestConductorFor_BeyondTable(t *testing.T) {
	_, err := ConductorFor(50)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no standard conductor")
}
