//go:build windows

package configpaths

// BindingDir returns the directory holding the binding file.
func BindingDir() (string, error) {
	return DefaultConfigDir()
}
