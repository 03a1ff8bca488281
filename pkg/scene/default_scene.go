package scene

import (
	"github.com/df07/go-padvinder/pkg/core"
	"github.com/df07/go-padvinder/pkg/geometry"
	"github.com/df07/go-padvinder/pkg/material"
	"github.com/df07/go-padvinder/pkg/renderer"
)

// must unwraps constructor results for the hardcoded built-in scenes, whose inputs are known to be valid
func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// NewDefaultScene creates three diffuse spheres on a diffuse floor under an emissive ceiling
func NewDefaultScene() Setup {
	camera := must(geometry.NewPerspectiveCamera(
		core.NewVec3(0, 0.5, -1), // Slightly above the spheres
		core.NewVec3(0, 1, 0),
		core.NewVec3(0, 0, 3), // Look at the middle of the group
		24,
	))

	config := renderer.DefaultConfig()
	config.ResX = 128
	config.ResY = 128
	config.SamplesPerPixel = 16
	config.PathLength = 4

	// Create materials
	light := must(material.NewEmission(core.NewVec3(3, 3, 3)))
	floor := must(material.NewLambert(core.NewVec3(0.8, 0.8, 0.8), 1))
	red := must(material.NewLambert(core.NewVec3(0.8, 0.2, 0.2), 0.9))
	blue := must(material.NewLambert(core.NewVec3(0.2, 0.3, 0.8), 0.9))
	white := must(material.NewLambert(core.NewVec3(0.9, 0.9, 0.9), 1))

	s := New(
		must(geometry.NewPlane(core.NewVec3(0, 3, 0), core.NewVec3(0, -1, 0), light)),
		must(geometry.NewPlane(core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0), floor)),
		must(geometry.NewSphere(core.NewVec3(-1.2, 0, 3), 1, red)),
		must(geometry.NewSphere(core.NewVec3(1.2, 0, 3), 1, blue)),
		must(geometry.NewSphere(core.NewVec3(0, -0.5, 1.8), 0.5, white)),
	)

	return Setup{Scene: s, Camera: camera, Config: config}
}
