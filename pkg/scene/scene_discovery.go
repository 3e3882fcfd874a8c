package scene

import (
	"fmt"
	"sort"
	"strings"
)

// Scene types
const (
	TypeRaytraced = "raytraced" // Rendered by casting rays against shapes
	TypePattern   = "pattern"   // Generated directly as pixels
)

// GradientSceneID names the built-in test pattern
const GradientSceneID = "gradient"

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string // Unique identifier used on the command line
	DisplayName string // Human readable name
	Description string
	Type        string // TypeRaytraced or TypePattern
}

var builtinScenes = map[string]struct {
	info SceneInfo
	new  func() *Scene
}{
	"default": {
		info: SceneInfo{ID: "default", DisplayName: "Default", Type: TypeRaytraced,
			Description: "Sphere resting on a large ground sphere"},
		new: NewDefaultScene,
	},
	"sphere": {
		info: SceneInfo{ID: "sphere", DisplayName: "Single Sphere", Type: TypeRaytraced,
			Description: "One sphere against the sky gradient"},
		new: NewSphereScene,
	},
	"plane": {
		info: SceneInfo{ID: "plane", DisplayName: "Ground Plane", Type: TypeRaytraced,
			Description: "Sphere resting on an infinite ground plane"},
		new: NewPlaneScene,
	},
	GradientSceneID: {
		info: SceneInfo{ID: GradientSceneID, DisplayName: "Gradient", Type: TypePattern,
			Description: "Red/green test gradient, no ray casting"},
	},
}

// ListScenes returns every built-in scene sorted by ID
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtinScenes))
	for _, s := range builtinScenes {
		scenes = append(scenes, s.info)
	}
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})
	return scenes
}

// GetSceneInfo returns the metadata for a scene ID
func GetSceneInfo(id string) (SceneInfo, error) {
	s, ok := builtinScenes[id]
	if !ok {
		return SceneInfo{}, fmt.Errorf("unknown scene %q (available: %s)", id, availableIDs())
	}
	return s.info, nil
}

// Lookup constructs the ray-traced scene with the given ID
func Lookup(id string) (*Scene, error) {
	info, err := GetSceneInfo(id)
	if err != nil {
		return nil, err
	}
	if info.Type != TypeRaytraced {
		return nil, fmt.Errorf("scene %q is a %s, not a ray-traced scene", id, info.Type)
	}
	return builtinScenes[id].new(), nil
}

func availableIDs() string {
	var ids []string
	for _, s := range ListScenes() {
		ids = append(ids, s.ID)
	}
	return strings.Join(ids, ", ")
}
