package loaders

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/df07/go-padvinder/pkg/core"
	"github.com/df07/go-padvinder/pkg/geometry"
	"github.com/df07/go-padvinder/pkg/material"
	"github.com/df07/go-padvinder/pkg/renderer"
)

const twoSpheres = `
render:
  res_x: 64
  res_y: 48
  samples_per_pixel: 8
  path_length: 3
  background: [0.2, 0.3, 0.4]
  tile_size: 16
  workers: 2
  seed: 7
camera:
  position: [0, 1, -5]
  up: [0, 1, 0]
  look_at: [0, 0, 0]
  focal_length: 48
materials:
  light: {type: emission, color: [10, 9, 8]}
  white: {type: lambert, color: [0.8, 0.8, 0.8], diffuse: 0.5}
objects:
  - {type: plane, position: [0, 2, 0], normal: [0, -2, 0], material: light}
  - {type: sphere, position: [-1, 0, 0], radius: 0.5, material: white}
  - {type: sphere, position: [1, 0, 0], radius: 0.75, material: white}
  - {type: sphere}
`

func TestParseScene(t *testing.T) {
	setup, err := ParseScene(strings.NewReader(twoSpheres))
	require.NoError(t, err)

	config := setup.Config
	assert.Equal(t, 64, config.ResX)
	assert.Equal(t, 48, config.ResY)
	assert.Equal(t, 8, config.SamplesPerPixel)
	assert.Equal(t, 3, config.PathLength)
	assert.Equal(t, core.NewVec3(0.2, 0.3, 0.4), config.Background)
	assert.Equal(t, 16, config.TileSize)
	assert.Equal(t, 2, config.NumWorkers)
	assert.Equal(t, uint64(7), config.Seed)

	assert.Equal(t, core.NewVec3(0, 1, -5), setup.Camera.Position())
	assert.Equal(t, 48.0, setup.Camera.FocalLength())

	shapes := setup.Scene.Shapes()
	require.Len(t, shapes, 4)

	plane, ok := shapes[0].(*geometry.Plane)
	require.True(t, ok)
	assert.Equal(t, core.NewVec3(0, -1, 0), plane.Normal(core.Vec3{}))
	light, ok := plane.Material().(*material.Emission)
	require.True(t, ok)
	assert.Equal(t, core.NewVec3(10, 9, 8), light.Color())

	left, ok := shapes[1].(*geometry.Sphere)
	require.True(t, ok)
	assert.Equal(t, 0.5, left.Radius())
	lambert, ok := left.Material().(*material.Lambert)
	require.True(t, ok)
	assert.Equal(t, 0.5, lambert.Diffuse())

	// Named materials are shared, the default is not
	assert.Same(t, shapes[1].Material(), shapes[2].Material())
	unit, ok := shapes[3].(*geometry.Sphere)
	require.True(t, ok)
	assert.Equal(t, 1.0, unit.Radius())
	assert.Equal(t, core.NewVec3(0, 0, 0), unit.Center())
	assert.Equal(t, material.DefaultLambert().Color(), unit.Material().Color())
	assert.NotSame(t, shapes[1].Material(), unit.Material())
}

func TestParseScene_Defaults(t *testing.T) {
	setup, err := ParseScene(strings.NewReader(""))
	require.NoError(t, err)

	assert.Equal(t, renderer.DefaultConfig(), setup.Config)
	assert.Equal(t, *geometry.DefaultPerspectiveCamera(), *setup.Camera)
	assert.Zero(t, setup.Scene.Len())

	setup, err = ParseScene(strings.NewReader("materials:\n  glow: {type: emission}\nobjects:\n  - {type: plane, material: glow}\n"))
	require.NoError(t, err)
	shape := setup.Scene.Shapes()[0]
	assert.Equal(t, core.NewVec3(0, 1, 0), shape.Normal(core.Vec3{}))
	assert.Equal(t, core.NewVec3(10, 10, 10), shape.Material().Color())
}

func TestParseScene_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected error
		contains string
	}{
		{
			name:     "unknown object type",
			input:    "objects:\n  - {type: cube}\n",
			expected: ErrUnknownType,
			contains: "object 0",
		},
		{
			name:     "unknown material type",
			input:    "materials:\n  shiny: {type: metal}\n",
			expected: ErrUnknownType,
			contains: `material "shiny"`,
		},
		{
			name:     "unknown material reference",
			input:    "objects:\n  - {type: sphere}\n  - {type: sphere, material: missing}\n",
			expected: ErrUnknownMaterial,
			contains: "object 1",
		},
		{
			name:     "negative radius",
			input:    "objects:\n  - {type: sphere, radius: -1}\n",
			expected: core.ErrInvalidParameter,
		},
		{
			name:     "zero plane normal",
			input:    "objects:\n  - {type: plane, normal: [0, 0, 0]}\n",
			expected: core.ErrDegenerateLength,
		},
		{
			name:     "infinite color",
			input:    "materials:\n  hot: {type: emission, color: [.inf, 0, 0]}\n",
			expected: core.ErrNonFinite,
		},
		{
			name:     "diffuse out of range",
			input:    "materials:\n  grey: {type: lambert, diffuse: 1.5}\n",
			expected: core.ErrInvalidParameter,
		},
		{
			name:     "short vector",
			input:    "objects:\n  - {type: sphere, position: [1, 2]}\n",
			expected: core.ErrInvalidParameter,
			contains: "position",
		},
		{
			name:     "degenerate camera",
			input:    "camera: {position: [1, 1, 1], look_at: [1, 1, 1]}\n",
			expected: core.ErrDegenerateCamera,
			contains: "camera",
		},
		{
			name:     "zero focal length",
			input:    "camera: {focal_length: 0}\n",
			expected: core.ErrInvalidParameter,
		},
		{
			name:     "zero samples",
			input:    "render: {samples_per_pixel: 0}\n",
			expected: core.ErrInvalidParameter,
			contains: "render",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScene(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.expected)
			if tt.contains != "" {
				assert.ErrorContains(t, err, tt.contains)
			}
		})
	}
}

func TestParseScene_Malformed(t *testing.T) {
	_, err := ParseScene(strings.NewReader("objects: [\n"))
	assert.ErrorContains(t, err, "failed to parse scene")

	// Misspelled fields are rejected instead of silently ignored
	_, err = ParseScene(strings.NewReader("objects:\n  - {type: sphere, raduis: 2}\n"))
	assert.ErrorContains(t, err, "raduis")
}

func TestLoadScene(t *testing.T) {
	path := filepath.Join(t.TempDir(), "two_spheres.yaml")
	require.NoError(t, os.WriteFile(path, []byte(twoSpheres), 0o644))

	setup, err := LoadScene(path)
	require.NoError(t, err)
	assert.Equal(t, 4, setup.Scene.Len())

	_, err = LoadScene(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
