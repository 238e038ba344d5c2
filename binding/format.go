package binding

import (
	"bytes"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

// format converts between file bytes and the generic action name to key
// value map. The file extension picks the format; JSON is the default.
type format interface {
	decode(data []byte) (map[string]any, error)
	encode(m map[string]any) ([]byte, error)
}

func formatFor(path string) format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yamlFormat{}
	case ".toml":
		return tomlFormat{}
	default:
		return jsonFormat{}
	}
}

type jsonFormat struct{}

func (jsonFormat) decode(data []byte) (map[string]any, error) {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	if m == nil {
		return nil, errors.New("not an object")
	}
	return m, nil
}

func (jsonFormat) encode(m map[string]any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type yamlFormat struct{}

func (yamlFormat) decode(data []byte) (map[string]any, error) {
	var m map[string]any
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	if m == nil {
		return nil, errors.New("not a mapping")
	}
	return m, nil
}

func (yamlFormat) encode(m map[string]any) ([]byte, error) {
	return yaml.Marshal(m)
}

type tomlFormat struct{}

func (tomlFormat) decode(data []byte) (map[string]any, error) {
	tree, err := toml.LoadBytes(data)
	if err != nil {
		return nil, err
	}
	return tree.ToMap(), nil
}

func (tomlFormat) encode(m map[string]any) ([]byte, error) {
	tree, err := toml.TreeFromMap(m)
	if err != nil {
		return nil, err
	}
	return tree.Marshal()
}
