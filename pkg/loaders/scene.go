package loaders

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/df07/go-padvinder/pkg/core"
	"github.com/df07/go-padvinder/pkg/geometry"
	"github.com/df07/go-padvinder/pkg/material"
	"github.com/df07/go-padvinder/pkg/renderer"
	"github.com/df07/go-padvinder/pkg/scene"
)

// Scene file errors
var (
	ErrUnknownType     = errors.New("unknown type")
	ErrUnknownMaterial = errors.New("unknown material")
)

// SceneFile is the YAML representation of a scene. Omitted fields keep their defaults.
type SceneFile struct {
	Render    RenderSection              `yaml:"render"`
	Camera    CameraSection              `yaml:"camera"`
	Materials map[string]MaterialSection `yaml:"materials"`
	Objects   []ObjectSection            `yaml:"objects"`
}

// RenderSection overrides the default render settings
type RenderSection struct {
	ResX            *int      `yaml:"res_x"`
	ResY            *int      `yaml:"res_y"`
	SamplesPerPixel *int      `yaml:"samples_per_pixel"`
	PathLength      *int      `yaml:"path_length"`
	Background      []float64 `yaml:"background"`
	TileSize        *int      `yaml:"tile_size"`
	Workers         *int      `yaml:"workers"`
	Seed            *uint64   `yaml:"seed"`
}

// CameraSection describes the perspective camera
type CameraSection struct {
	Position    []float64 `yaml:"position"`
	Up          []float64 `yaml:"up"`
	LookAt      []float64 `yaml:"look_at"`
	FocalLength *float64  `yaml:"focal_length"`
}

// MaterialSection describes a named material shared by all objects referring to it
type MaterialSection struct {
	Type    string    `yaml:"type"` // "emission" or "lambert"
	Color   []float64 `yaml:"color"`
	Diffuse *float64  `yaml:"diffuse"`
}

// ObjectSection describes a single shape
type ObjectSection struct {
	Type     string    `yaml:"type"` // "sphere" or "plane"
	Position []float64 `yaml:"position"`
	Radius   *float64  `yaml:"radius"`
	Normal   []float64 `yaml:"normal"`
	Material string    `yaml:"material"` // Name in the materials section, empty for the default
}

// LoadScene reads and builds a YAML scene file
func LoadScene(path string) (scene.Setup, error) {
	file, err := os.Open(path)
	if err != nil {
		return scene.Setup{}, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer file.Close()

	setup, err := ParseScene(file)
	if err != nil {
		return scene.Setup{}, fmt.Errorf("%s: %w", path, err)
	}
	return setup, nil
}

// ParseScene decodes a YAML scene description and builds the scene, camera and render settings
func ParseScene(r io.Reader) (scene.Setup, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var file SceneFile
	if err := decoder.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return scene.Setup{}, fmt.Errorf("failed to parse scene: %w", err)
	}
	return file.Build()
}

// Build validates the description and constructs the scene setup
func (f SceneFile) Build() (scene.Setup, error) {
	config, err := f.Render.apply(renderer.DefaultConfig())
	if err != nil {
		return scene.Setup{}, fmt.Errorf("render: %w", err)
	}

	camera, err := f.Camera.build()
	if err != nil {
		return scene.Setup{}, fmt.Errorf("camera: %w", err)
	}

	materials, err := f.buildMaterials()
	if err != nil {
		return scene.Setup{}, err
	}

	s := scene.New()
	for i, object := range f.Objects {
		shape, err := object.build(materials)
		if err != nil {
			return scene.Setup{}, fmt.Errorf("object %d: %w", i, err)
		}
		s.Add(shape)
	}

	return scene.Setup{Scene: s, Camera: camera, Config: config}, nil
}

func (r RenderSection) apply(config renderer.Config) (renderer.Config, error) {
	setInt := func(dst *int, src *int) {
		if src != nil {
			*dst = *src
		}
	}
	setInt(&config.ResX, r.ResX)
	setInt(&config.ResY, r.ResY)
	setInt(&config.SamplesPerPixel, r.SamplesPerPixel)
	setInt(&config.PathLength, r.PathLength)
	setInt(&config.TileSize, r.TileSize)
	setInt(&config.NumWorkers, r.Workers)
	if r.Seed != nil {
		config.Seed = *r.Seed
	}

	background, err := toVec3("background", r.Background, config.Background)
	if err != nil {
		return config, err
	}
	config.Background = background

	return config, config.Validate()
}

func (c CameraSection) build() (*geometry.PerspectiveCamera, error) {
	defaults := geometry.DefaultCamera()
	position, err := toVec3("position", c.Position, defaults.Position())
	if err != nil {
		return nil, err
	}
	up, err := toVec3("up", c.Up, defaults.Up())
	if err != nil {
		return nil, err
	}
	lookAt, err := toVec3("look_at", c.LookAt, defaults.Position().Add(defaults.OpticalAxis()))
	if err != nil {
		return nil, err
	}

	focalLength := geometry.DefaultPerspectiveCamera().FocalLength()
	if c.FocalLength != nil {
		focalLength = *c.FocalLength
	}
	return geometry.NewPerspectiveCamera(position, up, lookAt, focalLength)
}

// buildMaterials constructs every named material once, in name order
func (f SceneFile) buildMaterials() (map[string]material.Material, error) {
	names := make([]string, 0, len(f.Materials))
	for name := range f.Materials {
		names = append(names, name)
	}
	sort.Strings(names)

	materials := make(map[string]material.Material, len(names))
	for _, name := range names {
		m, err := f.Materials[name].build()
		if err != nil {
			return nil, fmt.Errorf("material %q: %w", name, err)
		}
		materials[name] = m
	}
	return materials, nil
}

func (m MaterialSection) build() (material.Material, error) {
	switch m.Type {
	case "emission":
		color, err := toVec3("color", m.Color, material.DefaultEmission().Color())
		if err != nil {
			return nil, err
		}
		return material.NewEmission(color)

	case "lambert":
		defaults := material.DefaultLambert()
		color, err := toVec3("color", m.Color, defaults.Color())
		if err != nil {
			return nil, err
		}
		diffuse := defaults.Diffuse()
		if m.Diffuse != nil {
			diffuse = *m.Diffuse
		}
		return material.NewLambert(color, diffuse)

	default:
		return nil, fmt.Errorf("material type %q: %w", m.Type, ErrUnknownType)
	}
}

func (o ObjectSection) build(materials map[string]material.Material) (geometry.Shape, error) {
	var mat material.Material
	if o.Material != "" {
		var ok bool
		if mat, ok = materials[o.Material]; !ok {
			return nil, fmt.Errorf("%q: %w", o.Material, ErrUnknownMaterial)
		}
	}

	position, err := toVec3("position", o.Position, core.NewVec3(0, 0, 0))
	if err != nil {
		return nil, err
	}

	switch o.Type {
	case "sphere":
		radius := 1.0
		if o.Radius != nil {
			radius = *o.Radius
		}
		return geometry.NewSphere(position, radius, mat)

	case "plane":
		normal, err := toVec3("normal", o.Normal, core.NewVec3(0, 1, 0))
		if err != nil {
			return nil, err
		}
		return geometry.NewPlane(position, normal, mat)

	default:
		return nil, fmt.Errorf("object type %q: %w", o.Type, ErrUnknownType)
	}
}

// toVec3 converts a YAML triple, falling back to def when the field is omitted
func toVec3(field string, values []float64, def core.Vec3) (core.Vec3, error) {
	if values == nil {
		return def, nil
	}
	if len(values) != 3 {
		return core.Vec3{}, fmt.Errorf("%s needs 3 components, got %d: %w", field, len(values), core.ErrInvalidParameter)
	}
	return core.NewVec3(values[0], values[1], values[2]), nil
}
