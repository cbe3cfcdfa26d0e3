// Package platform carries the host platform value injected into the
// engine at construction. Handlers consult the injected value; nothing
// queries the environment at dispatch time.
package platform

import "runtime"

// Platform identifies the host operating system family for key-binding
// decisions.
type Platform struct {
	windows bool
}

// Detect returns the platform for the current process.
func Detect() Platform {
	return Platform{windows: runtime.GOOS == "windows"}
}

// Windows returns the Windows platform. Intended for tests and hosts that
// override detection.
func Windows() Platform {
	return Platform{windows: true}
}

// Other returns a non-Windows platform.
func Other() Platform {
	return Platform{}
}

// IsWindows reports whether CTRL doubles as the primary command modifier.
func (p Platform) IsWindows() bool {
	return p.windows
}
