package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// FileNames lists the settings file names probed in each directory,
// in priority order.
var FileNames = []string{".tyranno.yaml", ".tyranno.yml", ".tyranno.json"}

// Settings is the process-wide configuration. It is constructed once
// per invocation and treated as read-only afterwards.
type Settings struct {
	// Project holds the identity fields substituted into scaffolded
	// files and sync targets.
	Project ProjectSettings `mapstructure:"project" yaml:"project"`

	// Sync configures the metadata synchronization engine.
	Sync SyncSettings `mapstructure:"sync" yaml:"sync"`

	// Clean configures the artifact cleaner.
	Clean CleanSettings `mapstructure:"clean" yaml:"clean"`

	// Data holds extra user-defined substitution variables, available
	// to sync templates under the "data." prefix.
	Data map[string]string `mapstructure:"data" yaml:"data,omitempty"`

	// Source is the path of the file the settings were loaded from,
	// or empty when defaults were used. Never serialized.
	Source string `mapstructure:"-" yaml:"-"`
}

// ProjectSettings identifies the project being maintained.
type ProjectSettings struct {
	Name        string `mapstructure:"name" yaml:"name"`
	Version     string `mapstructure:"version" yaml:"version"`
	Description string `mapstructure:"description" yaml:"description,omitempty"`
	License     string `mapstructure:"license" yaml:"license"`
	DocsURL     string `mapstructure:"docs_url" yaml:"docs_url,omitempty"`
}

// SyncSettings lists the files the sync engine rewrites.
type SyncSettings struct {
	// Targets are glob patterns, relative to the settings file's
	// directory, naming the files scanned for :tyranno: markers.
	Targets []string `mapstructure:"targets" yaml:"targets"`
}

// CleanSettings lists what the cleaner removes.
type CleanSettings struct {
	// Trash are gitignore-syntax patterns for files and directories
	// considered junk.
	Trash []string `mapstructure:"trash" yaml:"trash"`
}

// Defaults returns the settings used when no file is present. The
// trash list covers editor droppings and the tyranno cache; sync has
// no targets until the user declares some.
func Defaults() *Settings {
	return &Settings{
		Project: ProjectSettings{
			Name:    "my-project",
			Version: "0.1.0",
			License: "Apache-2.0",
			DocsURL: "https://dmyersturnbull.github.io/tyranno/guide.html",
		},
		Sync: SyncSettings{},
		Clean: CleanSettings{
			Trash: []string{
				".tyranno/",
				"**/.DS_Store",
				"**/Thumbs.db",
				"**/*.tmp",
				"**/*.orig",
				"**/*~",
			},
		},
	}
}

// Load discovers and parses the settings file, starting at dir and
// walking toward the filesystem root. A missing file is not an error;
// the defaults are returned with Source left empty.
func Load(dir string) (*Settings, error) {
	path, err := Find(dir)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return Defaults(), nil
	}
	return LoadFile(path)
}

// Find walks from dir toward the root, returning the first settings
// file found, or "" when there is none.
func Find(dir string) (string, error) {
	current, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve settings search root: %w", err)
	}

	for {
		for _, name := range FileNames {
			candidate := filepath.Join(current, name)
			if info, statErr := os.Stat(candidate); statErr == nil && !info.IsDir() {
				return candidate, nil
			}
		}

		parent := filepath.Dir(current)
		if parent == current {
			return "", nil
		}
		current = parent
	}
}

// LoadFile parses a specific settings file. The format is chosen by
// extension: .json is treated as JSONC, anything else as YAML.
//
// Both formats pass through a generic map and a single mapstructure
// decode, so unknown keys are reported uniformly regardless of format.
func LoadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file %s: %w", path, err)
	}

	raw := map[string]interface{}{}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		// Strip // and /* */ comments and trailing commas before
		// handing the bytes to encoding/json.
		clean := jsonc.ToJSON(data)
		if err := json.Unmarshal(clean, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse settings file %s: %w", path, err)
		}
	} else {
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse settings file %s: %w", path, err)
		}
	}

	settings := Defaults()
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      settings,
		ErrorUnused: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build settings decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("invalid settings in %s: %w", path, err)
	}

	settings.Source = path
	return settings, nil
}

// Root returns the directory sync targets and clean patterns are
// resolved against: the settings file's directory when one was
// loaded, otherwise fallback.
func (s *Settings) Root(fallback string) string {
	if s.Source != "" {
		return filepath.Dir(s.Source)
	}
	return fallback
}

// Vars flattens the settings into the substitution namespace used by
// sync templates: project.* for identity fields and data.* for
// user-defined variables.
func (s *Settings) Vars() map[string]string {
	vars := map[string]string{
		"project.name":        s.Project.Name,
		"project.version":     s.Project.Version,
		"project.description": s.Project.Description,
		"project.license":     s.Project.License,
		"project.docs_url":    s.Project.DocsURL,
	}
	for key, value := range s.Data {
		vars["data."+key] = value
	}
	return vars
}
