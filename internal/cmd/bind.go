package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Alia5/padlink/binding"
	"github.com/Alia5/padlink/internal/display"
)

// Bind runs the binding wizard once and saves the result.
type Bind struct {
	BindingOptions `embed:""`
	KeyOptions     `embed:""`
}

// Run is called by Kong when the bind command is executed.
func (b *Bind) Run(logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	profile, err := b.profile()
	if err != nil {
		return err
	}
	if !profile.Rebindable {
		return fmt.Errorf("profile %s uses fixed keys and cannot be rebound", profile.Name)
	}
	store, err := b.store()
	if err != nil {
		return err
	}
	reconfigure, quit, err := b.keys()
	if err != nil {
		return err
	}
	kbd, err := b.keyboard(ctx, logger)
	if err != nil {
		return err
	}
	defer kbd.Close()

	term := display.NewTerminal(os.Stdout)
	defer term.Close()

	t, err := b.wizard(reconfigure, quit, store, term, logger).Run(ctx, profile.Catalog, kbd)
	switch {
	case errors.Is(err, binding.ErrAborted):
		logger.Info("Binding cancelled, file left unchanged", "file", store.Path)
		return nil
	case err != nil:
		return err
	}
	logger.Info("Bindings saved", "file", store.Path, "bindings", t.String())
	return nil
}
