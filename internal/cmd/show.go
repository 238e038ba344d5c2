package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/Alia5/padlink/binding"
)

// Show prints the bindings a run would use.
type Show struct {
	BindingOptions `embed:""`
}

// Run is called by Kong when the show command is executed.
func (s *Show) Run(logger *slog.Logger) error {
	profile, err := s.profile()
	if err != nil {
		return err
	}

	t := profile.Defaults
	source := "built-in"
	if profile.Rebindable {
		store, err := s.store()
		if err != nil {
			return err
		}
		t, err = store.Load()
		if errors.Is(err, binding.ErrNotFound) {
			logger.Warn("No bindings yet; run `padlink bind`", "file", store.Path)
			return nil
		}
		if err != nil {
			return err
		}
		source = store.Path
	}

	fmt.Fprintf(os.Stdout, "profile %s (%s)\n", profile.Name, source)
	for _, a := range profile.Catalog {
		code, ok := t.Lookup(a)
		key := "-"
		if ok {
			key = keyLabel(code.String())
		}
		fmt.Fprintf(os.Stdout, "  %-14s %s\n", a, key)
	}
	if missing := binding.Missing(t, profile.Catalog); len(missing) > 0 {
		logger.Warn("Bindings incomplete; the next run starts the binding wizard", "missing", fmt.Sprint(missing))
	}
	return nil
}
