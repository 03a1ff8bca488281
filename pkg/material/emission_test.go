package material

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/df07/go-padvinder/pkg/core"
)

func TestEmission_Shade(t *testing.T) {
	tests := []struct {
		name     string
		emission core.Vec3
	}{
		{
			name:     "Red emission",
			emission: core.NewVec3(1.0, 0.0, 0.0),
		},
		{
			name:     "White emission",
			emission: core.NewVec3(1.0, 1.0, 1.0),
		},
		{
			name:     "Zero emission",
			emission: core.NewVec3(0.0, 0.0, 0.0),
		},
		{
			name:     "High intensity emission",
			emission: core.NewVec3(10.0, 5.0, 2.0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			emission, err := NewEmission(tt.emission)
			require.NoError(t, err)

			// Transport inputs are ignored
			normal := core.NewVec3(0, 1, 0)
			upstream := core.NewVec3(100, 200, 300)
			shaded := emission.Shade(normal, upstream, core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0))
			assert.Equal(t, tt.emission, shaded)

			shaded = emission.Shade(core.Vec3{}, core.Vec3{}, core.Vec3{}, core.Vec3{})
			assert.Equal(t, tt.emission, shaded)
			assert.Equal(t, tt.emission, emission.Color())
		})
	}
}

func TestEmission_Defaults(t *testing.T) {
	a := DefaultEmission()
	b := DefaultEmission()
	assert.Equal(t, core.NewVec3(10, 10, 10), a.Color())
	assert.NotSame(t, a, b)
	assert.Contains(t, a.String(), "Emission")
}

func TestEmission_InvalidColor(t *testing.T) {
	_, err := NewEmission(core.NewVec3(math.Inf(1), 0, 0))
	assert.ErrorIs(t, err, core.ErrNonFinite)
}
