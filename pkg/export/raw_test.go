package export

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/df07/go-padvinder/pkg/core"
	"github.com/df07/go-padvinder/pkg/renderer"
)

func TestRaw_KeepsUnclampedValues(t *testing.T) {
	img := renderer.NewImage(2, 3)
	img.Set(0, 1, core.NewVec3(12.5, -0.5, 1e-7))
	img.Set(1, 2, core.NewVec3(0.1, 0.2, 0.3))

	path := filepath.Join(t.TempDir(), "render.cbor")
	require.NoError(t, SaveRaw(path, img))

	loaded, err := LoadRaw(path)
	require.NoError(t, err)
	assert.Equal(t, 2, loaded.ResX)
	assert.Equal(t, 3, loaded.ResY)
	assert.Equal(t, img.Pixels(), loaded.Pixels())
}

func TestReadRaw_Invalid(t *testing.T) {
	_, err := ReadRaw(bytes.NewReader([]byte{0xff, 0x00}))
	assert.ErrorContains(t, err, "failed to decode raw image")

	// Channel count must match the resolution
	data, err := cbor.Marshal(rawImage{ResX: 2, ResY: 2, Pixels: []float64{1, 2, 3}})
	require.NoError(t, err)
	_, err = ReadRaw(bytes.NewReader(data))
	assert.ErrorIs(t, err, core.ErrInvalidParameter)

	data, err = cbor.Marshal(rawImage{ResX: 1, ResY: 1, Pixels: []float64{1, 2}})
	require.NoError(t, err)
	_, err = ReadRaw(bytes.NewReader(data))
	assert.ErrorIs(t, err, core.ErrInvalidParameter)
}

func TestLoadRaw_Missing(t *testing.T) {
	_, err := LoadRaw(filepath.Join(t.TempDir(), "missing.cbor"))
	assert.Error(t, err)
}
