package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Alia5/padlink/binding"
	"github.com/Alia5/padlink/frame"
	"github.com/Alia5/padlink/input"
	"github.com/Alia5/padlink/internal/configpaths"
)

// BindingOptions select the packet profile and where its bindings live.
type BindingOptions struct {
	Profile     string `help:"Packet profile: full (5 bytes, rebindable) or reduced (3 bytes, fixed WASD)" default:"full" enum:"full,reduced" env:"PADLINK_PROFILE"`
	BindingFile string `help:"Binding file; format follows the extension (.json, .yaml, .toml). Default: <config dir>/keymap.json" env:"PADLINK_BINDING_FILE"`
}

func (o *BindingOptions) profile() (frame.Profile, error) {
	return frame.LookupProfile(o.Profile)
}

func (o *BindingOptions) store() (binding.Store, error) {
	if o.BindingFile != "" {
		return binding.Store{Path: o.BindingFile}, nil
	}
	p, err := configpaths.DefaultBindingFile()
	if err != nil {
		return binding.Store{}, fmt.Errorf("resolve binding file: %w", err)
	}
	return binding.Store{Path: p}, nil
}

// KeyOptions configure the keyboard and the keys that control padlink
// itself. Key names follow the Linux KEY_* names without the prefix. Raw
// codes are 0x hex or decimal; bare digits 0 to 9 are the digit keys.
type KeyOptions struct {
	Device         string        `help:"Keyboard event device (default: first keyboard under /dev/input/by-path)" env:"PADLINK_DEVICE"`
	ReconfigureKey string        `help:"Key that starts the binding wizard" default:"F1" env:"PADLINK_RECONFIGURE_KEY"`
	QuitKey        string        `help:"Key that quits" default:"ESC" env:"PADLINK_QUIT_KEY"`
	Debounce       time.Duration `help:"Pause after each captured key in the binding wizard (min 150ms)" default:"200ms" env:"PADLINK_DEBOUNCE"`
}

func (o *KeyOptions) keys() (reconfigure, quit input.Code, err error) {
	reconfigure, err = input.ParseCode(o.ReconfigureKey)
	if err != nil {
		return 0, 0, fmt.Errorf("reconfigure key: %w", err)
	}
	quit, err = input.ParseCode(o.QuitKey)
	if err != nil {
		return 0, 0, fmt.Errorf("quit key: %w", err)
	}
	if reconfigure == quit {
		return 0, 0, fmt.Errorf("reconfigure and quit key are both %s", quit)
	}
	return reconfigure, quit, nil
}

func (o *KeyOptions) keyboard(ctx context.Context, logger *slog.Logger) (*input.Keyboard, error) {
	return input.OpenKeyboard(ctx, o.Device, logger)
}

func (o *KeyOptions) wizard(reconfigure, quit input.Code, saver binding.Saver, prompter binding.Prompter, logger *slog.Logger) *binding.Wizard {
	return &binding.Wizard{
		Saver:    saver,
		Prompter: prompter,
		Logger:   logger,
		Debounce: o.Debounce,
		QuitKey:  quit,
		Reserved: []input.Code{reconfigure},
	}
}
