package scene

import (
	"github.com/df07/go-padvinder/pkg/core"
	"github.com/df07/go-padvinder/pkg/geometry"
	"github.com/df07/go-padvinder/pkg/material"
	"github.com/df07/go-padvinder/pkg/renderer"
)

// Colors of the light test scene
var (
	LightTestEmission   = core.NewVec3(5, 5, 5)
	LightTestBackground = core.NewVec3(0.1, 0.2, 0.3)
)

// NewLightTestScene creates an emissive plane above the camera and a diffuse sphere below it,
// rendered at 4x4 with a single bounce. Every pixel sees either the light, the background or
// the sphere, and the sphere stays black because the path ends before light can reach it.
func NewLightTestScene() Setup {
	camera := geometry.DefaultPerspectiveCamera()

	config := renderer.DefaultConfig()
	config.ResX = 4
	config.ResY = 4
	config.SamplesPerPixel = 1
	config.PathLength = 1
	config.Background = LightTestBackground
	config.TileSize = 2

	light := must(material.NewEmission(LightTestEmission))
	diffuse := must(material.NewLambert(core.NewVec3(0.8, 0.8, 0.8), 1))

	s := New(
		must(geometry.NewPlane(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0), light)),
		must(geometry.NewSphere(core.NewVec3(0, -3, 6), 2.5, diffuse)),
	)

	return Setup{Scene: s, Camera: camera, Config: config}
}
