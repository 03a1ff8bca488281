package scene

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/df07/go-padvinder/pkg/core"
	"github.com/df07/go-padvinder/pkg/geometry"
)

// Shapes at distances {∞, 1, ∞, 0.5} from the default ray
func distanceFixture(t *testing.T) []geometry.Shape {
	t.Helper()
	s1, err := geometry.NewSphere(core.NewVec3(-2, 0, 0), 1, nil)
	require.NoError(t, err)
	s2, err := geometry.NewSphere(core.NewVec3(2, 0, 0), 1, nil)
	require.NoError(t, err)
	p1, err := geometry.NewPlane(core.NewVec3(3, 0, 0), core.NewVec3(0, 1, 0), nil)
	require.NoError(t, err)
	p2, err := geometry.NewPlane(core.NewVec3(0.5, 0, 0), core.NewVec3(1, 0, 0), nil)
	require.NoError(t, err)
	return []geometry.Shape{s1, s2, p1, p2}
}

func TestScene_Intersect(t *testing.T) {
	shapes := distanceFixture(t)
	s := New(shapes...)
	require.Equal(t, 4, s.Len())

	ray := core.DefaultRay()
	expected := []float64{math.Inf(1), 1, math.Inf(1), 0.5}
	for i, shape := range s.Shapes() {
		assert.Equal(t, expected[i], shape.Intersect(ray), "shape %d", i)
	}

	d, hit := s.Intersect(ray)
	assert.Equal(t, 0.5, d)
	assert.Same(t, shapes[3], hit)
}

func TestScene_IntersectMiss(t *testing.T) {
	d, hit := New().Intersect(core.DefaultRay())
	assert.True(t, math.IsInf(d, 1))
	assert.Nil(t, hit)

	shapes := distanceFixture(t)
	s := New(shapes[0], shapes[2])
	d, hit = s.Intersect(core.DefaultRay())
	assert.True(t, math.IsInf(d, 1))
	assert.Nil(t, hit)
}

func TestScene_IntersectTie(t *testing.T) {
	first, err := geometry.NewPlane(core.NewVec3(2, 0, 0), core.NewVec3(1, 0, 0), nil)
	require.NoError(t, err)
	second, err := geometry.NewPlane(core.NewVec3(2, 5, 0), core.NewVec3(-1, 0, 0), nil)
	require.NoError(t, err)

	d, hit := New(first, second).Intersect(core.DefaultRay())
	assert.Equal(t, 2.0, d)
	assert.Same(t, first, hit)

	d, hit = New(second, first).Intersect(core.DefaultRay())
	assert.Equal(t, 2.0, d)
	assert.Same(t, second, hit)
}

func TestScene_Add(t *testing.T) {
	shapes := distanceFixture(t)
	s := New(shapes[0])
	s.Add(shapes[1], shapes[2])
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, shapes[:3], s.Shapes())

	d, hit := s.Intersect(core.DefaultRay())
	assert.Equal(t, 1.0, d)
	assert.Same(t, shapes[1], hit)
}

func TestBuiltin(t *testing.T) {
	for _, name := range BuiltinNames() {
		t.Run(name, func(t *testing.T) {
			setup, err := Builtin(name)
			require.NoError(t, err)
			assert.NotNil(t, setup.Camera)
			assert.Positive(t, setup.Scene.Len())
			assert.NoError(t, setup.Config.Validate())
		})
	}

	_, err := Builtin("nope")
	assert.ErrorIs(t, err, ErrUnknownScene)
}

func TestBuiltin_FreshInstances(t *testing.T) {
	a, err := Builtin("default")
	require.NoError(t, err)
	b, err := Builtin("default")
	require.NoError(t, err)
	assert.NotSame(t, a.Scene, b.Scene)
	assert.NotSame(t, a.Scene.Shapes()[0].Material(), b.Scene.Shapes()[0].Material())
}

func TestNewLightTestScene(t *testing.T) {
	setup := NewLightTestScene()
	assert.Equal(t, 4, setup.Config.ResX)
	assert.Equal(t, 4, setup.Config.ResY)
	assert.Equal(t, 1, setup.Config.PathLength)
	assert.Equal(t, LightTestBackground, setup.Config.Background)

	// Straight up hits the light, straight ahead misses everything
	up := core.MakeRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))
	d, hit := setup.Scene.Intersect(up)
	assert.InDelta(t, 1.0, d, 1e-12)
	require.NotNil(t, hit)
	assert.Equal(t, LightTestEmission, hit.Material().Color())

	d, _ = setup.Scene.Intersect(core.MakeRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1)))
	assert.True(t, math.IsInf(d, 1))
}
