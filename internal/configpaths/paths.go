// Package configpaths resolves where padlink looks for its config file and
// keeps its binding file.
package configpaths

import (
	"os"
	"path/filepath"
)

const (
	appDir = "padlink"
	// BindingFileName is the binding file used when none is configured.
	BindingFileName = "keymap.json"
)

// DefaultConfigDir returns the per-user config directory for padlink.
func DefaultConfigDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appDir), nil
}

// ConfigCandidatePaths returns the config files kong should try, per format.
// An explicit userCfg is tried first; its extension decides which loader
// gets it, unknown extensions are offered to all three.
func ConfigCandidatePaths(userCfg string) (jsonPaths, yamlPaths, tomlPaths []string) {
	if userCfg != "" {
		switch filepath.Ext(userCfg) {
		case ".json":
			jsonPaths = append(jsonPaths, userCfg)
		case ".yaml", ".yml":
			yamlPaths = append(yamlPaths, userCfg)
		case ".toml":
			tomlPaths = append(tomlPaths, userCfg)
		default:
			jsonPaths = append(jsonPaths, userCfg)
			yamlPaths = append(yamlPaths, userCfg)
			tomlPaths = append(tomlPaths, userCfg)
		}
	}

	dirs := []string{"."}
	if dir, err := DefaultConfigDir(); err == nil {
		dirs = append(dirs, dir)
	}
	for _, dir := range dirs {
		jsonPaths = append(jsonPaths, filepath.Join(dir, "padlink.json"))
		yamlPaths = append(yamlPaths,
			filepath.Join(dir, "padlink.yaml"),
			filepath.Join(dir, "padlink.yml"))
		tomlPaths = append(tomlPaths, filepath.Join(dir, "padlink.toml"))
	}
	return jsonPaths, yamlPaths, tomlPaths
}

// DefaultBindingFile returns the binding file path used when none is set.
func DefaultBindingFile() (string, error) {
	dir, err := BindingDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, BindingFileName), nil
}
