package cmd

import (
	"log/slog"

	"github.com/Alia5/padlink/frame"
	"github.com/Alia5/padlink/internal/codegen"
)

// Codegen writes packet layout definitions for actuator firmware.
type Codegen struct {
	Output  string `help:"Output directory" default:"." type:"path" env:"PADLINK_CODEGEN_OUTPUT"`
	Lang    string `help:"Target language: c, rust, or 'all'" default:"all" enum:"c,rust,all" env:"PADLINK_CODEGEN_LANG"`
	Profile string `help:"Profile to describe, or 'all'" default:"all" enum:"full,reduced,all" env:"PADLINK_CODEGEN_PROFILE"`
}

// Run is called by Kong when the codegen command is executed.
func (c *Codegen) Run(logger *slog.Logger) error {
	logger.Info("Starting padlink code generation", "output", c.Output, "lang", c.Lang, "profile", c.Profile)

	profiles := []frame.Profile{frame.Full, frame.Reduced}
	if c.Profile != "all" {
		p, err := frame.LookupProfile(c.Profile)
		if err != nil {
			return err
		}
		profiles = []frame.Profile{p}
	}

	gen := codegen.New(c.Output, logger)
	for _, p := range profiles {
		if c.Lang == "c" || c.Lang == "all" {
			if _, err := gen.GenerateC(p); err != nil {
				return err
			}
		}
		if c.Lang == "rust" || c.Lang == "all" {
			if _, err := gen.GenerateRust(p); err != nil {
				return err
			}
		}
	}
	return nil
}
