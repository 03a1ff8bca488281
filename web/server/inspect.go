package server

import (
	"fmt"
	"math"
	"net/http"

	"github.com/df07/go-padvinder/pkg/core"
	"github.com/df07/go-padvinder/pkg/geometry"
	"github.com/df07/go-padvinder/pkg/material"
	"github.com/df07/go-padvinder/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	MaterialType string                 `json:"materialType,omitempty"`
	GeometryType string                 `json:"geometryType,omitempty"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	FrontFace    bool                   `json:"frontFace"`
	Properties   map[string]interface{} `json:"properties,omitempty"`
}

func toArray(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

func hexColor(c core.Vec3) string {
	c = c.Clamp(0, 1)
	return fmt.Sprintf("#%02x%02x%02x", int(c.X*255), int(c.Y*255), int(c.Z*255))
}

// extractMaterialInfo extracts detailed material information with type assertions
func extractMaterialInfo(mat material.Material) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch m := mat.(type) {
	case *material.Lambert:
		properties["albedo"] = toArray(m.Color())
		properties["diffuse"] = m.Diffuse()
		properties["color"] = hexColor(m.Color())
		return "lambert", properties

	case *material.Emission:
		properties["emission"] = toArray(m.Color())
		properties["color"] = hexColor(m.Color())
		return "emission", properties

	default:
		return "unknown", properties
	}
}

// extractGeometryInfo extracts detailed geometry information
func extractGeometryInfo(shape geometry.Shape, point core.Vec3) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch geom := shape.(type) {
	case *geometry.Sphere:
		properties["center"] = toArray(geom.Center())
		properties["radius"] = geom.Radius()
		return "sphere", properties

	case *geometry.Plane:
		properties["point"] = toArray(geom.Point())
		properties["normal"] = toArray(geom.Normal(point))
		return "plane", properties

	default:
		return "unknown", properties
	}
}

// inspectPixel casts the unjittered primary ray through pixel (px, py) and
// describes the first surface it hits
func inspectPixel(setup scene.Setup, px, py int) InspectResponse {
	ray := setup.Camera.Ray(px, py, setup.Config.ResX, setup.Config.ResY, nil, false)

	distance, shape := setup.Scene.Intersect(ray)
	if shape == nil || math.IsInf(distance, 1) {
		return InspectResponse{Hit: false}
	}

	point := ray.At(distance)
	normal := shape.Normal(point)
	materialType, materialProps := extractMaterialInfo(shape.Material())
	geometryType, geometryProps := extractGeometryInfo(shape, point)

	return InspectResponse{
		Hit:          true,
		MaterialType: materialType,
		GeometryType: geometryType,
		Point:        toArray(point),
		Normal:       toArray(normal),
		Distance:     distance,
		FrontFace:    ray.Direction.Dot(normal) < 0,
		Properties: map[string]interface{}{
			"material": materialProps,
			"geometry": geometryProps,
		},
	}
}

// handleInspect handles ray casting inspection requests
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	name := query.Get("scene")
	if name == "" {
		name = "default"
	}

	setup, err := s.loadScene(name)
	if err != nil {
		s.writeError(w, sceneStatus(err), err)
		return
	}
	if setup.Config, err = applyQuery(setup.Config, query); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	px, err := parseIntParam(query, "px", -1, 0, setup.Config.ResX-1)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	py, err := parseIntParam(query, "py", -1, 0, setup.Config.ResY-1)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	if px < 0 || py < 0 {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("px and py are required"))
		return
	}

	writeJSON(w, http.StatusOK, inspectPixel(setup, px, py))
}
