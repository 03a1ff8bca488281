package material

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/df07/go-padvinder/pkg/core"
)

func TestLambert_Construction(t *testing.T) {
	l := DefaultLambert()
	assert.Equal(t, core.NewVec3(0.5, 0.5, 0.5), l.Color())
	assert.Equal(t, 1.0, l.Diffuse())
	assert.NotSame(t, l, DefaultLambert())

	l, err := NewLambert(core.NewVec3(1, 1, 1), 0.3)
	require.NoError(t, err)
	assert.Equal(t, core.NewVec3(1, 1, 1), l.Color())
	assert.Equal(t, 0.3, l.Diffuse())
	assert.Contains(t, l.String(), "Lambert")
}

func TestLambert_InvalidConstruction(t *testing.T) {
	tests := []struct {
		name     string
		color    core.Vec3
		diffuse  float64
		expected error
	}{
		{"negative diffuse", core.NewVec3(1, 1, 1), -0.1, core.ErrInvalidParameter},
		{"diffuse above one", core.NewVec3(1, 1, 1), 1.5, core.ErrInvalidParameter},
		{"NaN diffuse", core.NewVec3(1, 1, 1), math.NaN(), core.ErrInvalidParameter},
		{"NaN color", core.NewVec3(math.NaN(), 1, 1), 0.5, core.ErrNonFinite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLambert(tt.color, tt.diffuse)
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestLambert_OutgoingDirectionInHemisphere(t *testing.T) {
	lambert := DefaultLambert()
	sampler := core.NewSeededSampler(42)

	normals := []core.Vec3{
		core.NewVec3(0, 0, 1),
		core.NewVec3(0, -1, 0),
		core.NewVec3(1, 2, -3).Normalize(),
	}
	for _, normal := range normals {
		incoming := normal.Negate()
		for i := 0; i < 500; i++ {
			dir := lambert.OutgoingDirection(normal, incoming, sampler)
			assert.InDelta(t, 1.0, dir.Length(), 1e-9)
			assert.Greater(t, dir.Dot(normal), 0.0)
		}
	}
}

// The Lambert estimator is derived rather than taken from reference values:
// under a uniform environment of radiance L the reflected estimate is diffuse*color*L.
func TestLambert_EnergyConservation(t *testing.T) {
	albedo := core.NewVec3(0.5, 0.7, 0.9)
	lambert, err := NewLambert(albedo, 0.8)
	require.NoError(t, err)
	sampler := core.NewSeededSampler(3)

	normal := core.NewVec3(0, 0, 1)
	view := core.NewVec3(0, 0, -1)
	environment := core.NewVec3(1, 1, 1)

	const n = 1000
	sum := core.Vec3{}
	for i := 0; i < n; i++ {
		out := lambert.OutgoingDirection(normal, view, sampler)
		sum = sum.Add(lambert.Shade(normal, environment, out.Negate(), view.Negate()))
	}
	mean := sum.Multiply(1.0 / n)

	expected := albedo.Multiply(0.8)
	assert.InDelta(t, expected.X, mean.X, 1e-12)
	assert.InDelta(t, expected.Y, mean.Y, 1e-12)
	assert.InDelta(t, expected.Z, mean.Z, 1e-12)

	// Reflected light never exceeds what arrived
	assert.LessOrEqual(t, mean.X, environment.X)
	assert.LessOrEqual(t, mean.Y, environment.Y)
	assert.LessOrEqual(t, mean.Z, environment.Z)
}

func TestLambert_ShadeModulatesIncoming(t *testing.T) {
	lambert, err := NewLambert(core.NewVec3(1, 0.5, 0), 0.5)
	require.NoError(t, err)
	normal := core.NewVec3(0, 1, 0)

	shaded := lambert.Shade(normal, core.NewVec3(2, 2, 2), core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0))
	assert.Equal(t, core.NewVec3(1, 0.5, 0), shaded)

	// Light arriving from below the surface does not contribute
	shaded = lambert.Shade(normal, core.NewVec3(2, 2, 2), core.NewVec3(0, 1, 0), core.NewVec3(0, 1, 0))
	assert.Equal(t, core.Vec3{}, shaded)
}

func TestLambert_ZeroDiffuseAbsorbs(t *testing.T) {
	lambert, err := NewLambert(core.NewVec3(1, 1, 1), 0)
	require.NoError(t, err)
	shaded := lambert.Shade(core.NewVec3(0, 1, 0), core.NewVec3(5, 5, 5), core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0))
	assert.Equal(t, core.Vec3{}, shaded)
}
