package binding

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"

	"github.com/Alia5/padlink/input"
)

var (
	// ErrNotFound means no binding file exists at the path.
	ErrNotFound = errors.New("binding file not found")
	// ErrCorrupt means the file exists but does not hold an action to key
	// object.
	ErrCorrupt = errors.New("binding file corrupt")
)

// Load reads the binding file at path. The table may be incomplete; checking
// it against a catalog is up to the caller.
func Load(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Table{}, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return Table{}, fmt.Errorf("read binding file %s: %w", path, err)
	}
	if len(data) == 0 {
		return Table{}, fmt.Errorf("%w: %s is empty", ErrCorrupt, path)
	}
	raw, err := formatFor(path).decode(data)
	if err != nil {
		return Table{}, fmt.Errorf("%w: %s: %v", ErrCorrupt, path, err)
	}
	t, err := tableFromMap(raw)
	if err != nil {
		return Table{}, fmt.Errorf("%w: %s: %v", ErrCorrupt, path, err)
	}
	return t, nil
}

// Save writes every bound action of t to path. The file is replaced with a
// rename so a crash leaves either the old or the new file, never a torn one.
func Save(path string, t Table) error {
	data, err := formatFor(path).encode(tableToMap(t))
	if err != nil {
		return fmt.Errorf("encode bindings: %w", err)
	}
	if err := writeFileAtomic(path, data); err != nil {
		return fmt.Errorf("write binding file %s: %w", path, err)
	}
	return nil
}

// Store is a binding file location. The zero Store has no path: Load reports
// ErrNotFound and Save does nothing.
type Store struct {
	Path string
}

func (s Store) Load() (Table, error) {
	if s.Path == "" {
		return Table{}, ErrNotFound
	}
	return Load(s.Path)
}

func (s Store) Save(t Table) error {
	if s.Path == "" {
		return nil
	}
	return Save(s.Path, t)
}

func tableToMap(t Table) map[string]any {
	m := make(map[string]any, len(t.Bound()))
	for _, a := range t.Bound() {
		c := t.Code(a)
		if _, ok := c.Name(); ok {
			m[a.String()] = c.String()
		} else {
			m[a.String()] = int64(c)
		}
	}
	return m
}

func tableFromMap(m map[string]any) (Table, error) {
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	sort.Strings(names)

	var t Table
	for _, name := range names {
		a, ok := ParseAction(name)
		if !ok {
			return Table{}, fmt.Errorf("unknown action %q", name)
		}
		c, err := codeFromValue(m[name])
		if err != nil {
			return Table{}, fmt.Errorf("action %s: %w", name, err)
		}
		t = t.Bind(a, c)
	}
	return t, nil
}

func codeFromValue(v any) (input.Code, error) {
	switch x := v.(type) {
	case string:
		return input.ParseCode(x)
	case int:
		return input.ToCode(int64(x))
	case int64:
		return input.ToCode(x)
	case uint64:
		if x > math.MaxInt64 {
			return input.NoCode, fmt.Errorf("key code %d out of range", x)
		}
		return input.ToCode(int64(x))
	case float64:
		if x != math.Trunc(x) {
			return input.NoCode, fmt.Errorf("key code %v is not an integer", x)
		}
		return input.ToCode(int64(x))
	default:
		return input.NoCode, fmt.Errorf("unsupported key value %v (%T)", v, v)
	}
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}
	file, err := os.CreateTemp(dir, ".tmp-bindings-*")
	if err != nil {
		return err
	}
	defer func() {
		_ = os.Remove(file.Name())
	}()

	if _, err := file.Write(data); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Sync(); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return err
	}
	return os.Rename(file.Name(), path)
}
