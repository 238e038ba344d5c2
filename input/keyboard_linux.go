//go:build linux

package input

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"

	"github.com/kenshaw/evdev"
	"golang.org/x/sys/unix"
)

// Keyboard reads a Linux evdev keyboard (/dev/input/eventN).
//
// A reader goroutine owns the device; PollEvents and Pressed only touch the
// tracker. When the device disappears a Quit event is queued.
type Keyboard struct {
	dev     *evdev.Evdev
	path    string
	cancel  context.CancelFunc
	done    chan struct{}
	logger  *slog.Logger
	tracker keyTracker
}

// OpenKeyboard opens the event device at path. An empty path selects the
// first keyboard listed under /dev/input/by-path.
func OpenKeyboard(ctx context.Context, path string, logger *slog.Logger) (*Keyboard, error) {
	if path == "" {
		p, err := DefaultKeyboard()
		if err != nil {
			return nil, err
		}
		path = p
	}
	if err := unix.Access(path, unix.R_OK); err != nil {
		return nil, fmt.Errorf("input device %s is not readable (is the user in the input group?): %w", path, err)
	}
	dev, err := evdev.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open input device %s: %w", path, err)
	}

	ctx, cancel := context.WithCancel(ctx)
	k := &Keyboard{
		dev:    dev,
		path:   path,
		cancel: cancel,
		done:   make(chan struct{}),
		logger: logger,
	}
	go k.read(ctx, dev.Poll(ctx))

	logger.Info("Opened keyboard", "path", path, "name", dev.Name())
	return k, nil
}

func (k *Keyboard) read(ctx context.Context, events <-chan *evdev.EventEnvelope) {
	defer close(k.done)
	for {
		select {
		case <-ctx.Done():
			return
		case env, ok := <-events:
			if !ok {
				k.logger.Warn("Input device closed", "path", k.path)
				k.tracker.push(QuitEvent())
				return
			}
			if env == nil || env.Event.Type != evdev.EventKey {
				continue
			}
			k.tracker.apply(Code(env.Event.Code), env.Event.Value)
		}
	}
}

func (k *Keyboard) PollEvents() []Event { return k.tracker.drain() }

func (k *Keyboard) Pressed() KeySet { return k.tracker.snapshot() }

func (k *Keyboard) Close() error {
	k.cancel()
	err := k.dev.Close()
	<-k.done
	return err
}

// DeviceInfo describes an input event device.
type DeviceInfo struct {
	Path string
	Name string
}

// DefaultKeyboard resolves the first /dev/input/by-path/*-event-kbd link.
func DefaultKeyboard() (string, error) {
	links, err := filepath.Glob("/dev/input/by-path/*-event-kbd")
	if err != nil {
		return "", err
	}
	sort.Strings(links)
	for _, l := range links {
		p, err := filepath.EvalSymlinks(l)
		if err != nil {
			continue
		}
		if unix.Access(p, unix.R_OK) == nil {
			return p, nil
		}
	}
	return "", fmt.Errorf("no readable keyboard found under /dev/input/by-path; pass --device")
}

// ListDevices returns every readable /dev/input/event* device.
func ListDevices() ([]DeviceInfo, error) {
	paths, err := filepath.Glob("/dev/input/event*")
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)
	var out []DeviceInfo
	for _, p := range paths {
		if unix.Access(p, unix.R_OK) != nil {
			continue
		}
		dev, err := evdev.OpenFile(p)
		if err != nil {
			continue
		}
		out = append(out, DeviceInfo{Path: p, Name: dev.Name()})
		_ = dev.Close()
	}
	return out, nil
}
