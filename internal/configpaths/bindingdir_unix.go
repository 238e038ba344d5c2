//go:build !windows

package configpaths

import (
	"os"
	"path/filepath"
)

// BindingDir returns the directory holding the binding file. Reading
// /dev/input usually means running as root; root keeps its bindings in
// /etc/padlink so they survive sudo changing $HOME.
func BindingDir() (string, error) {
	if os.Geteuid() == 0 {
		return filepath.Join(string(os.PathSeparator), "etc", appDir), nil
	}
	return DefaultConfigDir()
}
