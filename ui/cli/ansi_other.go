//go:build !windows

package cli

// EnableANSI is a no-op outside Windows, the terminal already speaks ANSI.
func EnableANSI() {}
