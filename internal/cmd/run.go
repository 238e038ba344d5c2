package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Alia5/padlink/internal/control"
	"github.com/Alia5/padlink/internal/display"
	"github.com/Alia5/padlink/internal/log"
	"github.com/Alia5/padlink/internal/transport"
)

// Run streams control packets to the actuator.
type Run struct {
	BindingOptions `embed:""`
	KeyOptions     `embed:""`

	RemoteHost string        `help:"Actuator host" default:"192.168.4.1" env:"PADLINK_REMOTE_HOST"`
	RemotePort int           `help:"Actuator UDP port" default:"4210" env:"PADLINK_REMOTE_PORT"`
	TickPeriod time.Duration `help:"Packet period (0: profile default, 10ms full, 16ms reduced)" default:"0s" env:"PADLINK_TICK_PERIOD"`
	Notify     bool          `help:"Raise a desktop notification when bindings cannot be saved" default:"true" negatable:"" env:"PADLINK_NOTIFY"`
}

// Run is called by Kong when the run command is executed.
func (r *Run) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	profile, err := r.profile()
	if err != nil {
		return err
	}
	store, err := r.store()
	if err != nil {
		return err
	}
	reconfigure, quit, err := r.keys()
	if err != nil {
		return err
	}
	if r.TickPeriod < 0 {
		return fmt.Errorf("tick period must not be negative, got %s", r.TickPeriod)
	}

	sender, err := transport.Dial(r.RemoteHost, r.RemotePort, rawLogger, logger)
	if err != nil {
		return err
	}
	kbd, err := r.keyboard(ctx, logger)
	if err != nil {
		_ = sender.Close()
		return err
	}

	term := display.NewTerminal(os.Stdout)
	if profile.Rebindable {
		term.SetHint(fmt.Sprintf("%s rebind, %s quit", keyLabel(reconfigure.String()), keyLabel(quit.String())))
	} else {
		term.SetHint(fmt.Sprintf("%s quit", keyLabel(quit.String())))
	}

	var notifier display.Notifier = display.Silent{}
	if r.Notify {
		notifier = display.Desktop{Logger: logger}
	}

	loop, err := control.New(control.Options{
		Profile:        profile,
		TickPeriod:     r.TickPeriod,
		ReconfigureKey: reconfigure,
		QuitKey:        quit,
	}, control.Deps{
		Source:   kbd,
		Sender:   sender,
		Display:  term,
		Store:    store,
		Wizard:   r.wizard(reconfigure, quit, store, term, logger),
		Notifier: notifier,
		Logger:   logger,
	})
	if err != nil {
		_ = sender.Close()
		_ = kbd.Close()
		return err
	}

	logger.Debug("Starting control loop", "profile", profile.Name, "bindings", store.Path)
	return loop.Run(ctx)
}
