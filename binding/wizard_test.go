package binding_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/padlink/binding"
	"github.com/Alia5/padlink/input"
	"github.com/Alia5/padlink/internal/clock"
)

type recordingPrompter struct{ prompts []string }

func (p *recordingPrompter) Prompt(msg string) { p.prompts = append(p.prompts, msg) }

type failingSaver struct{ calls int }

func (s *failingSaver) Save(binding.Table) error {
	s.calls++
	return errors.New("disk full")
}

var smallCatalog = binding.Catalog{binding.LStickLeft, binding.LStickRight, binding.BtnA}

func newWizard(saver binding.Saver) (*binding.Wizard, *clock.Fake, *recordingPrompter) {
	clk := clock.NewFake()
	p := &recordingPrompter{}
	return &binding.Wizard{
		Saver:    saver,
		Prompter: p,
		Clock:    clk,
		QuitKey:  input.KeyEsc,
		Reserved: []input.Code{input.KeyF1},
	}, clk, p
}

func TestWizardBindsInCatalogOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keymap.json")
	w, clk, p := newWizard(binding.Store{Path: path})

	src := input.NewScript(
		input.Step{},
		input.Step{Events: []input.Event{input.Down(input.KeyA)}},
		input.Step{}, // drained after debounce
		input.Step{Events: []input.Event{input.Down(input.KeyD)}},
		input.Step{},
		input.Step{Events: []input.Event{input.Down(input.KeyK)}},
		input.Step{},
	)

	got, err := w.Run(context.Background(), smallCatalog, src)
	require.NoError(t, err)

	want := binding.TableOf(map[binding.Action]input.Code{
		binding.LStickLeft:  input.KeyA,
		binding.LStickRight: input.KeyD,
		binding.BtnA:        input.KeyK,
	})
	assert.Equal(t, want, got)
	assert.True(t, binding.IsComplete(got, smallCatalog))
	assert.Equal(t, []string{
		"press key for: L_STICK_LEFT (1/3)",
		"press key for: L_STICK_RIGHT (2/3)",
		"press key for: BTN_A (3/3)",
	}, p.prompts)

	saved, err := binding.Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, saved, "table must be persisted before Run returns")

	debounces := 0
	for _, d := range clk.Sleeps() {
		if d == binding.DefaultDebounce {
			debounces++
		}
	}
	assert.Equal(t, 3, debounces)
}

func TestWizardDebounce(t *testing.T) {
	w, _, _ := newWizard(nil)

	// The same key twice in one burst and once more while debouncing must
	// only bind the first prompt.
	src := input.NewScript(
		input.Step{Events: []input.Event{input.Down(input.KeyA), input.Down(input.KeyA)}},
		input.Step{Events: []input.Event{input.Down(input.KeyA)}},
		input.Step{Events: []input.Event{input.Down(input.KeyD)}},
		input.Step{},
		input.Step{Events: []input.Event{input.Down(input.KeyK)}},
		input.Step{},
	)

	got, err := w.Run(context.Background(), smallCatalog, src)
	require.NoError(t, err)
	assert.Equal(t, input.KeyA, got.Code(binding.LStickLeft))
	assert.Equal(t, input.KeyD, got.Code(binding.LStickRight))
	assert.Equal(t, input.KeyK, got.Code(binding.BtnA))
}

func TestWizardIgnoresRepeatsAndReservedKeys(t *testing.T) {
	w, _, _ := newWizard(nil)

	src := input.NewScript(
		input.Step{Events: []input.Event{
			{Kind: input.KeyDown, Code: input.KeyA, Repeat: true},
			input.Down(input.KeyF1),
			input.Down(input.KeyS),
		}},
		input.Step{},
		input.Step{Events: []input.Event{input.Down(input.KeyD)}},
		input.Step{},
		input.Step{Events: []input.Event{input.Down(input.KeyK)}},
		input.Step{},
	)

	got, err := w.Run(context.Background(), smallCatalog, src)
	require.NoError(t, err)
	assert.Equal(t, input.KeyS, got.Code(binding.LStickLeft))
}

func TestWizardIgnoresKeyHeldFromPreviousPrompt(t *testing.T) {
	w, _, _ := newWizard(nil)

	src := input.NewScript(
		input.Step{Events: []input.Event{input.Down(input.KeyA)}, Pressed: input.NewKeySet(input.KeyA)},
		input.Step{Pressed: input.NewKeySet(input.KeyA)},
		// Still held: a second key-down for it must not bind the next action.
		input.Step{Events: []input.Event{input.Down(input.KeyA)}, Pressed: input.NewKeySet(input.KeyA)},
		input.Step{Events: []input.Event{input.Down(input.KeyD)}, Pressed: input.NewKeySet(input.KeyA, input.KeyD)},
		input.Step{},
		// Released and pressed again: bindable.
		input.Step{Events: []input.Event{input.Down(input.KeyA)}, Pressed: input.NewKeySet(input.KeyA)},
		input.Step{},
	)

	got, err := w.Run(context.Background(), smallCatalog, src)
	require.NoError(t, err)
	assert.Equal(t, input.KeyA, got.Code(binding.LStickLeft))
	assert.Equal(t, input.KeyD, got.Code(binding.LStickRight))
	assert.Equal(t, input.KeyA, got.Code(binding.BtnA))
}

func TestWizardAbort(t *testing.T) {
	type testCase struct {
		name  string
		steps []input.Step
	}
	cases := []testCase{
		{"quit event while waiting", []input.Step{
			{Events: []input.Event{input.QuitEvent()}},
		}},
		{"quit key while waiting", []input.Step{
			{Events: []input.Event{input.Down(input.KeyA)}},
			{},
			{Events: []input.Event{input.Down(input.KeyEsc)}},
		}},
		{"quit in same batch as capture", []input.Step{
			{Events: []input.Event{input.Down(input.KeyA), input.QuitEvent()}},
		}},
		{"quit during debounce", []input.Step{
			{Events: []input.Event{input.Down(input.KeyA)}},
			{Events: []input.Event{input.QuitEvent()}},
		}},
		{"source exhausted", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			saver := &failingSaver{}
			w, _, _ := newWizard(saver)
			got, err := w.Run(context.Background(), smallCatalog, input.NewScript(tc.steps...))
			assert.ErrorIs(t, err, binding.ErrAborted)
			assert.Equal(t, binding.Table{}, got, "no partial table may escape")
			assert.Zero(t, saver.calls, "aborted wizard must not save")
		})
	}
}

func TestWizardContextCancelled(t *testing.T) {
	w, _, _ := newWizard(nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := w.Run(ctx, smallCatalog, input.NewScript())
	assert.ErrorIs(t, err, binding.ErrAborted)
}

func TestWizardSaveFailureKeepsTable(t *testing.T) {
	saver := &failingSaver{}
	w, _, _ := newWizard(saver)

	src := input.NewScript(
		input.Step{Events: []input.Event{input.Down(input.KeyA)}},
		input.Step{},
		input.Step{Events: []input.Event{input.Down(input.KeyD)}},
		input.Step{},
		input.Step{Events: []input.Event{input.Down(input.KeyK)}},
		input.Step{},
	)

	got, err := w.Run(context.Background(), smallCatalog, src)
	assert.ErrorIs(t, err, binding.ErrSave)
	assert.Equal(t, 1, saver.calls)
	assert.True(t, binding.IsComplete(got, smallCatalog))
}

func TestWizardDebounceFloor(t *testing.T) {
	w, clk, _ := newWizard(nil)
	w.Debounce = 10 * time.Millisecond

	src := input.NewScript(
		input.Step{Events: []input.Event{input.Down(input.KeyA)}},
		input.Step{},
	)
	_, err := w.Run(context.Background(), binding.Catalog{binding.BtnA}, src)
	require.NoError(t, err)
	assert.Equal(t, []time.Duration{binding.MinDebounce}, clk.Sleeps())
}
