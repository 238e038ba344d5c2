package binding_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/padlink/binding"
	"github.com/Alia5/padlink/input"
)

var fullCatalog = binding.Catalog{
	binding.LStickUp, binding.LStickDown, binding.LStickLeft, binding.LStickRight,
	binding.RStickUp, binding.RStickDown, binding.RStickLeft, binding.RStickRight,
	binding.BtnA, binding.BtnB, binding.BtnX, binding.BtnY,
	binding.BtnL, binding.BtnR, binding.BtnZL, binding.BtnZR,
}

func completeTable() binding.Table {
	var t binding.Table
	for i, a := range fullCatalog {
		t = t.Bind(a, input.Code(16+i))
	}
	// One code without a kernel name exercises the integer form.
	return t.Bind(binding.BtnZR, input.Code(700))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	for _, name := range []string{"keymap.json", "keymap.yaml", "keymap.yml", "keymap.toml", "keymap"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", name)
			want := completeTable()

			require.NoError(t, binding.Save(path, want))
			got, err := binding.Load(path)
			require.NoError(t, err)
			assert.Equal(t, want, got)
			assert.True(t, binding.IsComplete(got, fullCatalog))
		})
	}
}

func TestSaveReplacesWithoutLeftovers(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "keymap.json")

	first := binding.TableOf(map[binding.Action]input.Code{binding.BtnA: input.KeyK})
	require.NoError(t, binding.Save(path, first))
	second := first.Bind(binding.BtnA, input.KeyJ)
	require.NoError(t, binding.Save(path, second))

	got, err := binding.Load(path)
	require.NoError(t, err)
	assert.Equal(t, second, got)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not remain next to the binding file")
}

func TestLoadNotFound(t *testing.T) {
	_, err := binding.Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, binding.ErrNotFound)

	_, err = binding.Store{}.Load()
	assert.ErrorIs(t, err, binding.ErrNotFound)
	assert.NoError(t, binding.Store{}.Save(completeTable()))
}

func TestLoadCorrupt(t *testing.T) {
	type testCase struct {
		name    string
		file    string
		content string
	}
	cases := []testCase{
		{"empty", "k.json", ""},
		{"garbage", "k.json", "{not json"},
		{"array", "k.json", `[1, 2, 3]`},
		{"null", "k.json", `null`},
		{"unknown action", "k.json", `{"BTN_START": "KEY_A"}`},
		{"unknown key", "k.json", `{"BTN_A": "KEY_NOPE"}`},
		{"fractional code", "k.json", `{"BTN_A": 1.5}`},
		{"zero code", "k.json", `{"BTN_A": 0}`},
		{"nested", "k.json", `{"BTN_A": {"code": 30}}`},
		{"yaml scalar", "k.yaml", "just a string\n"},
		{"yaml list value", "k.yaml", "BTN_A: [1, 2]\n"},
		{"toml garbage", "k.toml", "BTN_A = = \n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tc.file)
			require.NoError(t, os.WriteFile(path, []byte(tc.content), 0o600))
			_, err := binding.Load(path)
			assert.ErrorIs(t, err, binding.ErrCorrupt)
		})
	}
}

func TestLoadAcceptsNamesAndCodes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keymap.json")
	// The original mapper stored raw integer key codes.
	content := `{"L_STICK_LEFT": 30, "L_STICK_RIGHT": "d", "BTN_A": "KEY_K"}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	got, err := binding.Load(path)
	require.NoError(t, err)
	assert.Equal(t, input.KeyA, got.Code(binding.LStickLeft))
	assert.Equal(t, input.KeyD, got.Code(binding.LStickRight))
	assert.Equal(t, input.KeyK, got.Code(binding.BtnA))
	assert.False(t, binding.IsComplete(got, fullCatalog), "missing actions are not a load error")
}

func TestTable(t *testing.T) {
	var empty binding.Table
	assert.False(t, binding.IsComplete(empty, fullCatalog))
	assert.Equal(t, []binding.Action(fullCatalog), binding.Missing(empty, fullCatalog))
	assert.True(t, binding.IsComplete(empty, nil))

	a := empty.Bind(binding.BtnA, input.KeyK)
	assert.Equal(t, input.NoCode, empty.Code(binding.BtnA), "Bind must not mutate the receiver")
	c, ok := a.Lookup(binding.BtnA)
	assert.True(t, ok)
	assert.Equal(t, input.KeyK, c)
	assert.Equal(t, "BTN_A=KEY_K", a.String())

	r := a.Bind(binding.BtnRun, input.KeyLeftShift).Restrict(binding.Catalog{binding.BtnRun})
	assert.Equal(t, []binding.Action{binding.BtnRun}, r.Bound())
}

func TestParseAction(t *testing.T) {
	for _, a := range fullCatalog {
		got, ok := binding.ParseAction(a.String())
		assert.True(t, ok)
		assert.Equal(t, a, got)
	}
	got, ok := binding.ParseAction(" btn_run ")
	assert.True(t, ok)
	assert.Equal(t, binding.BtnRun, got)

	_, ok = binding.ParseAction("BTN_START")
	assert.False(t, ok)

	assert.True(t, binding.BtnRun.Valid())
	assert.Equal(t, "BTN_RUN", binding.BtnRun.String())
	bogus := binding.Action(200)
	assert.False(t, bogus.Valid())
	assert.Equal(t, "Action(200)", bogus.String())
}
