package scene

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// SceneInfo describes a scene that can be selected by name
type SceneInfo struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Type        string `yaml:"type"`               // "builtin" or "yaml"
	FilePath    string `yaml:"filePath,omitempty"` // yaml type only
}

var builtinScenes = []SceneInfo{
	{ID: "bounce", Name: "Bounce", Description: "Cornell-style box with three bouncing spheres", Type: "builtin"},
	{ID: "light-wall", Name: "Light Wall", Description: "A single white light filling the view", Type: "builtin"},
}

// Builtin constructs a built-in scene by ID
func Builtin(id string, step float64) (*Scene, bool) {
	switch id {
	case "bounce":
		return NewBounceScene(step), true
	case "light-wall":
		return NewLightWallScene(White), true
	}
	return nil, false
}

// ListScenes returns the built-in scenes followed by the YAML scene files in
// dir, sorted by ID. A missing directory only lists the built-ins.
func ListScenes(dir string) ([]SceneInfo, error) {
	scenes := append([]SceneInfo(nil), builtinScenes...)
	if dir == "" {
		return scenes, nil
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return scenes, nil
	}

	var files []string
	for _, pattern := range []string{"*.yaml", "*.yml"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, errors.Wrap(err, "scan scenes directory")
		}
		files = append(files, matches...)
	}

	var found []SceneInfo
	for _, file := range files {
		info, err := ParseSceneMetadata(file)
		if err != nil {
			return nil, err
		}
		found = append(found, info)
	}
	sort.Slice(found, func(i, j int) bool {
		return found[i].ID < found[j].ID
	})

	return append(scenes, found...), nil
}

// ParseSceneMetadata reads the top-level name and description of a YAML
// scene file. The ID is the file name without extension; a missing name
// falls back to the title-cased ID.
func ParseSceneMetadata(filePath string) (SceneInfo, error) {
	id := strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
	info := SceneInfo{
		ID:       id,
		Name:     titleCase(id),
		Type:     "yaml",
		FilePath: filePath,
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return info, errors.Wrapf(err, "reading scene %s", filePath)
	}

	// Only the header fields; the loader validates the rest
	var header struct {
		Name        string `yaml:"name"`
		Description string `yaml:"description"`
	}
	if err := yaml.Unmarshal(data, &header); err != nil {
		return info, errors.Wrapf(err, "parsing scene %s", filePath)
	}
	if header.Name != "" {
		info.Name = header.Name
	}
	info.Description = header.Description
	return info, nil
}

// titleCase converts a filename-style string to title case
// e.g., "bounce-glass" -> "Bounce Glass"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}
	return strings.Join(words, " ")
}
