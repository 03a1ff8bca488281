package scene

import (
	"github.com/df07/go-padvinder/pkg/core"
	"github.com/df07/go-padvinder/pkg/geometry"
	"github.com/df07/go-padvinder/pkg/material"
	"github.com/df07/go-padvinder/pkg/renderer"
)

// NewCornellScene creates a Cornell box made of planes with an emissive ceiling and two spheres
func NewCornellScene() Setup {
	camera := must(geometry.NewPerspectiveCamera(
		core.NewVec3(0, 0, -2.5), // Outside the open front of the box
		core.NewVec3(0, 1, 0),
		core.NewVec3(0, 0, 0),
		24,
	))

	config := renderer.DefaultConfig()
	config.ResX = 128
	config.ResY = 128
	config.SamplesPerPixel = 32
	config.PathLength = 5
	config.Background = core.NewVec3(0, 0, 0) // Black outside the box

	// Create materials
	white := must(material.NewLambert(core.NewVec3(0.73, 0.73, 0.73), 1))
	red := must(material.NewLambert(core.NewVec3(0.65, 0.05, 0.05), 1))
	green := must(material.NewLambert(core.NewVec3(0.12, 0.45, 0.15), 1))
	light := must(material.NewEmission(core.NewVec3(4, 4, 4)))

	// The box spans [-1,1] on every axis with walls facing inwards
	floor := must(geometry.NewPlane(core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0), white))
	ceiling := must(geometry.NewPlane(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0), light))
	backWall := must(geometry.NewPlane(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1), white))
	leftWall := must(geometry.NewPlane(core.NewVec3(-1, 0, 0), core.NewVec3(1, 0, 0), red))
	rightWall := must(geometry.NewPlane(core.NewVec3(1, 0, 0), core.NewVec3(-1, 0, 0), green))

	s := New(floor, ceiling, backWall, leftWall, rightWall)

	// Two spheres resting on the floor
	s.Add(
		must(geometry.NewSphere(core.NewVec3(-0.4, -0.65, 0.3), 0.35, white)),
		must(geometry.NewSphere(core.NewVec3(0.45, -0.7, -0.2), 0.3, white)),
	)

	return Setup{Scene: s, Camera: camera, Config: config}
}
