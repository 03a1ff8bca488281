package scene

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Scene types reported by discovery
const (
	TypeBuiltin = "builtin"
	TypeYAML    = "yaml"
)

// SceneInfo describes a scene that can be rendered by name or by file
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier
	Name        string `json:"name"`        // Scene name
	Description string `json:"description"` // Optional description
	Type        string `json:"type"`        // "builtin" or "yaml"
	FilePath    string `json:"filePath"`    // Path to the scene file (yaml type only)
}

type builtin struct {
	description string
	create      func() Setup
}

// ErrUnknownScene is returned for scene names that are neither built in nor found on disk
var ErrUnknownScene = errors.New("unknown scene")

var builtins = map[string]builtin{
	"default":    {"Three diffuse spheres under an emissive ceiling", NewDefaultScene},
	"cornell":    {"Cornell box made of planes with two spheres", NewCornellScene},
	"light-test": {"4x4 emissive plane and diffuse sphere with a single bounce", NewLightTestScene},
}

// Builtin returns a freshly built scene setup by name
func Builtin(name string) (Setup, error) {
	b, ok := builtins[name]
	if !ok {
		return Setup{}, fmt.Errorf("%w %q (available: %s)", ErrUnknownScene, name, strings.Join(BuiltinNames(), ", "))
	}
	return b.create(), nil
}

// BuiltinNames returns the sorted names of all built-in scenes
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ListScenes returns the built-in scenes followed by the YAML scenes found in dir.
// A missing directory only yields the built-in scenes.
func ListScenes(dir string) ([]SceneInfo, error) {
	var scenes []SceneInfo
	for _, name := range BuiltinNames() {
		scenes = append(scenes, SceneInfo{
			ID:          name,
			Name:        titleCase(name),
			Description: builtins[name].description,
			Type:        TypeBuiltin,
		})
	}

	if dir == "" {
		return scenes, nil
	}
	if _, err := os.Stat(dir); err != nil {
		return scenes, nil
	}

	var files []string
	for _, pattern := range []string{"*.yaml", "*.yml"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
		}
		files = append(files, matches...)
	}

	var fileScenes []SceneInfo
	for _, filePath := range files {
		info, err := ParseSceneMetadata(filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to parse metadata for %s: %w", filePath, err)
		}
		fileScenes = append(fileScenes, info)
	}

	// Sort scenes by name
	sort.Slice(fileScenes, func(i, j int) bool {
		return fileScenes[i].Name < fileScenes[j].Name
	})

	return append(scenes, fileScenes...), nil
}

// ParseSceneMetadata extracts metadata from the header comments of a YAML scene file:
//
//	# Scene: Two Lights
//	# Description: Both planes emit
func ParseSceneMetadata(filePath string) (SceneInfo, error) {
	// Extract filename without extension for fallback values
	filename := filepath.Base(filePath)
	nameWithoutExt := strings.TrimSuffix(filename, filepath.Ext(filename))

	info := SceneInfo{
		ID:       fmt.Sprintf("yaml:%s", nameWithoutExt),
		Name:     titleCase(nameWithoutExt),
		Type:     TypeYAML,
		FilePath: filePath,
	}

	file, err := os.Open(filePath)
	if err != nil {
		return info, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Stop parsing at first non-comment line
		if !strings.HasPrefix(line, "#") {
			break
		}

		content := strings.TrimSpace(strings.TrimPrefix(line, "#"))
		if value, ok := strings.CutPrefix(content, "Scene:"); ok {
			info.Name = strings.TrimSpace(value)
		} else if value, ok := strings.CutPrefix(content, "Description:"); ok {
			info.Description = strings.TrimSpace(value)
		}
	}

	return info, scanner.Err()
}

// titleCase converts a filename-style string to title case
// e.g., "cornell-empty" -> "Cornell Empty"
func titleCase(s string) string {
	// Replace hyphens and underscores with spaces
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}

	return strings.Join(words, " ")
}
