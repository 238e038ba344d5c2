//go:build !linux

package input

import (
	"context"
	"errors"
	"log/slog"
)

var errUnsupported = errors.New("keyboard capture is only supported on linux")

type Keyboard struct{}

func OpenKeyboard(_ context.Context, _ string, _ *slog.Logger) (*Keyboard, error) {
	return nil, errUnsupported
}

func (k *Keyboard) PollEvents() []Event { return nil }

func (k *Keyboard) Pressed() KeySet { return KeySet{} }

func (k *Keyboard) Close() error { return nil }

type DeviceInfo struct {
	Path string
	Name string
}

func DefaultKeyboard() (string, error) { return "", errUnsupported }

func ListDevices() ([]DeviceInfo, error) { return nil, errUnsupported }
