package binding

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Alia5/padlink/input"
	"github.com/Alia5/padlink/internal/clock"
)

var (
	// ErrAborted means a quit request arrived while the wizard was waiting.
	// No table is produced.
	ErrAborted = errors.New("binding wizard aborted")
	// ErrSave wraps a failure to persist a freshly captured table. The
	// table returned alongside it is complete and usable.
	ErrSave = errors.New("failed to save bindings")
)

const (
	// MinDebounce is the shortest pause allowed after a capture.
	MinDebounce         = 150 * time.Millisecond
	DefaultDebounce     = 200 * time.Millisecond
	DefaultPollInterval = 5 * time.Millisecond
)

// Prompter shows the wizard's "press key for" line to the operator.
type Prompter interface {
	Prompt(msg string)
}

// Saver persists a completed table.
type Saver interface {
	Save(t Table) error
}

// Wizard captures one key per catalog action.
type Wizard struct {
	Saver    Saver
	Prompter Prompter
	Clock    clock.Clock
	Logger   *slog.Logger

	// Debounce is clamped to at least MinDebounce.
	Debounce     time.Duration
	PollInterval time.Duration

	// QuitKey aborts the wizard like a quit event. Reserved keys are never
	// captured.
	QuitKey  input.Code
	Reserved []input.Code
}

// Run prompts for every action of catalog in order and returns the complete
// table. On success the table has already been handed to the Saver; if that
// fails the table is still returned with an error wrapping ErrSave.
//
// A quit event, the quit key or ctx cancellation returns ErrAborted.
func (w *Wizard) Run(ctx context.Context, catalog Catalog, src input.Source) (Table, error) {
	logger := w.logger()
	logger.Info("Binding wizard started", "actions", len(catalog))

	var t Table
	held := input.NoCode
	for i, a := range catalog {
		w.prompt(fmt.Sprintf("press key for: %s (%d/%d)", a, i+1, len(catalog)))
		code, err := w.capture(ctx, src, held)
		if err != nil {
			logger.Info("Binding wizard aborted", "action", a.String())
			return Table{}, err
		}
		t = t.Bind(a, code)
		held = code
		logger.Debug("Bound action", "action", a.String(), "key", code.String())

		if err := w.settle(ctx, src); err != nil {
			logger.Info("Binding wizard aborted", "action", a.String())
			return Table{}, err
		}
	}

	logger.Info("Binding wizard finished", "bindings", t.String())
	if w.Saver != nil {
		if err := w.Saver.Save(t); err != nil {
			return t, fmt.Errorf("%w: %w", ErrSave, err)
		}
	}
	return t, nil
}

// capture blocks until a fresh key-down arrives. held is the key bound by
// the previous prompt; key-downs for it are ignored until it is released.
// Events after the captured one in the same batch are still checked for
// quit requests.
func (w *Wizard) capture(ctx context.Context, src input.Source, held input.Code) (input.Code, error) {
	for {
		if ctx.Err() != nil {
			return input.NoCode, ErrAborted
		}
		events := src.PollEvents()
		if held != input.NoCode && !src.Pressed().Has(held) {
			held = input.NoCode
		}
		for i, ev := range events {
			if w.isQuit(ev) {
				return input.NoCode, ErrAborted
			}
			if !w.capturable(ev) || (held != input.NoCode && ev.Code == held) {
				continue
			}
			for _, rest := range events[i+1:] {
				if w.isQuit(rest) {
					return input.NoCode, ErrAborted
				}
			}
			return ev.Code, nil
		}
		if len(events) == 0 {
			if err := w.clock().Sleep(ctx, w.pollInterval()); err != nil {
				return input.NoCode, ErrAborted
			}
		}
	}
}

// settle waits out the debounce window and drops whatever key-downs queued
// meanwhile, so one physical press never binds two actions.
func (w *Wizard) settle(ctx context.Context, src input.Source) error {
	if err := w.clock().Sleep(ctx, w.debounce()); err != nil {
		return ErrAborted
	}
	for _, ev := range src.PollEvents() {
		if w.isQuit(ev) {
			return ErrAborted
		}
	}
	return nil
}

func (w *Wizard) isQuit(ev input.Event) bool {
	if ev.Kind == input.Quit {
		return true
	}
	return ev.Kind == input.KeyDown && w.QuitKey != input.NoCode && ev.Code == w.QuitKey
}

func (w *Wizard) capturable(ev input.Event) bool {
	if ev.Kind != input.KeyDown || ev.Repeat || ev.Code == input.NoCode {
		return false
	}
	for _, r := range w.Reserved {
		if ev.Code == r {
			return false
		}
	}
	return true
}

func (w *Wizard) prompt(msg string) {
	if w.Prompter != nil {
		w.Prompter.Prompt(msg)
	}
}

func (w *Wizard) debounce() time.Duration {
	if w.Debounce < MinDebounce {
		if w.Debounce == 0 {
			return DefaultDebounce
		}
		return MinDebounce
	}
	return w.Debounce
}

func (w *Wizard) pollInterval() time.Duration {
	if w.PollInterval <= 0 {
		return DefaultPollInterval
	}
	return w.PollInterval
}

func (w *Wizard) clock() clock.Clock {
	if w.Clock == nil {
		return clock.Real{}
	}
	return w.Clock
}

func (w *Wizard) logger() *slog.Logger {
	if w.Logger == nil {
		return slog.Default()
	}
	return w.Logger
}
