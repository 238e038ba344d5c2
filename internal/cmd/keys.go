package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/Alia5/padlink/input"
)

// Keys lists the key names accepted by the key flags and binding files.
type Keys struct {
	Filter string `arg:"" optional:"" help:"Only list names containing this text"`
}

// Run is called by Kong when the keys command is executed.
func (k *Keys) Run() error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	filter := strings.ToUpper(k.Filter)
	for _, c := range input.KnownCodes() {
		name, _ := c.Name()
		if filter != "" && !strings.Contains(name, filter) {
			continue
		}
		fmt.Fprintf(w, "%d\t%s\n", c, name)
	}
	return w.Flush()
}

// keyLabel drops the KEY_ prefix for operator facing text.
func keyLabel(s string) string {
	return strings.TrimPrefix(s, "KEY_")
}
