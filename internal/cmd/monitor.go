package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/Alia5/padlink/internal/display"
	"github.com/Alia5/padlink/internal/log"
	"github.com/Alia5/padlink/internal/transport"
)

// Monitor receives control packets like the actuator does and prints them
// decoded, for checking a setup without hardware.
type Monitor struct {
	Listen  string `help:"UDP listen address" default:":4210" env:"PADLINK_MONITOR_ADDR"`
	Profile string `help:"Packet profile to decode" default:"full" enum:"full,reduced" env:"PADLINK_PROFILE"`
}

// Run is called by Kong when the monitor command is executed.
func (m *Monitor) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := BindingOptions{Profile: m.Profile}
	profile, err := opts.profile()
	if err != nil {
		return err
	}
	recv, err := transport.Listen(m.Listen, rawLogger, logger)
	if err != nil {
		return err
	}
	defer recv.Close()

	term := display.NewTerminal(os.Stdout)
	defer term.Close()

	var bad int
	err = recv.Serve(ctx, func(pkt []byte, from net.Addr) {
		st, err := profile.Decode(pkt)
		if err != nil {
			bad++
			if bad == 1 {
				logger.Warn("Ignoring malformed packets", "from", from.String(), "len", len(pkt), "error", err)
			}
			return
		}
		if len(pkt) != profile.Size() {
			logger.Debug("Packet longer than profile", "len", len(pkt), "want", profile.Size())
		}
		term.Status(fmt.Sprintf("%s  %s", from, st))
	})
	if bad > 0 {
		logger.Info("Monitor stopped", "malformed", bad)
	}
	return err
}
