package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/Alia5/padlink/input"
)

// Devices lists readable input event devices.
type Devices struct{}

// Run is called by Kong when the devices command is executed.
func (d *Devices) Run(logger *slog.Logger) error {
	devs, err := input.ListDevices()
	if err != nil {
		return err
	}
	if len(devs) == 0 {
		logger.Warn("No readable input devices; add the user to the input group or run as root")
		return nil
	}
	def, _ := input.DefaultKeyboard()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, dev := range devs {
		mark := ""
		if dev.Path == def {
			mark = "(default)"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", dev.Path, dev.Name, mark)
	}
	return w.Flush()
}
