package scene

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// SceneInfo describes a scene that can be selected by name
type SceneInfo struct {
	ID          string // Name accepted by Resolve
	DisplayName string
	Description string
	Type        string // "builtin" or "file"
	FilePath    string // Path to the JSON file (file type only)
}

// ScenesDir is the directory searched for JSON scene files
var ScenesDir = "scenes"

var builtinScenes = map[string]func() *Scene{
	"default": NewDefaultScene,
	"spheres": NewSpheresScene,
}

// BuiltinScenes returns the scenes compiled into the binary
func BuiltinScenes() []SceneInfo {
	return []SceneInfo{
		{
			ID:          "default",
			DisplayName: "Default Room",
			Description: "Six coloured walls around three spheres",
			Type:        "builtin",
		},
		{
			ID:          "spheres",
			DisplayName: "Spheres",
			Description: "Spheres from diffuse to mirror under an emissive ceiling",
			Type:        "builtin",
		},
	}
}

// ListSceneFiles scans dir for JSON scene files. A missing directory yields no scenes.
func ListSceneFiles(dir string) ([]SceneInfo, error) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return []SceneInfo{}, nil
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
	}

	scenes := make([]SceneInfo, 0, len(files))
	for _, path := range files {
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		scenes = append(scenes, SceneInfo{
			ID:          name,
			DisplayName: titleCase(name),
			Type:        "file",
			FilePath:    path,
		})
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].DisplayName < scenes[j].DisplayName
	})
	return scenes, nil
}

// ListAllScenes returns built-in scenes followed by the files in ScenesDir
func ListAllScenes() ([]SceneInfo, error) {
	files, err := ListSceneFiles(ScenesDir)
	if err != nil {
		return nil, err
	}
	return append(BuiltinScenes(), files...), nil
}

// Resolve creates a scene from a built-in name, a scene file name in ScenesDir, or a path to a JSON file
func Resolve(name string) (*Scene, error) {
	if name == "" {
		return nil, fmt.Errorf("scene name must not be empty")
	}
	if build, ok := builtinScenes[name]; ok {
		return build(), nil
	}
	if strings.HasSuffix(name, ".json") {
		return NewFileScene(name)
	}

	path := filepath.Join(ScenesDir, name+".json")
	if _, err := os.Stat(path); err == nil {
		return NewFileScene(path)
	}
	return nil, fmt.Errorf("unknown scene %q", name)
}

// titleCase converts a filename-style string to title case
// e.g., "mirror-room" -> "Mirror Room"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}

	return strings.Join(words, " ")
}
