// Package config defines the CLI structure and configuration for padlink.
package config

import (
	"github.com/Alia5/padlink/internal/cmd"
)

type Log struct {
	Level   string `help:"Log level: trace, debug, info, warn, error" default:"info" env:"PADLINK_LOG_LEVEL"`
	File    string `help:"Log file path (default: none; logs only to console)" env:"PADLINK_LOG_FILE"`
	RawFile string `help:"Raw packet log file path (default: none)" env:"PADLINK_LOG_RAW_FILE"`
}

// CLI is the root command structure for Kong CLI parsing.
type CLI struct {
	Log    `embed:"" prefix:"log."`
	Config string `help:"Config file (.json, .yaml, .toml); flags and env override it" env:"PADLINK_CONFIG"`

	Run     cmd.Run     `cmd:"" default:"withargs" help:"Stream keyboard state to the actuator (default)"`
	Bind    cmd.Bind    `cmd:"" help:"Run the binding wizard and save the result"`
	Show    cmd.Show    `cmd:"" help:"Print the current bindings"`
	Keys    cmd.Keys    `cmd:"" help:"List key names for bindings and key flags"`
	Devices cmd.Devices `cmd:"" help:"List readable input devices"`
	Monitor cmd.Monitor `cmd:"" help:"Receive and decode control packets like the actuator"`
	Codegen cmd.Codegen `cmd:"" help:"Generate C and Rust packet layout definitions"`
}
