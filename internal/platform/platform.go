// Package platform normalizes host operating system detection and resolves
// the compiler invocation prefix.
package platform

import "runtime"

// OS identifies one of the operating system families the bundling options
// are specialized for.
type OS string

const (
	Windows OS = "windows"
	MacOS   OS = "macos"
	Linux   OS = "linux"
	Unknown OS = "unknown"
)

// Host returns the OS family of the running host.
func Host() OS {
	return Normalize(runtime.GOOS)
}

// Normalize maps a GOOS value onto an OS family.
func Normalize(goos string) OS {
	switch goos {
	case "windows":
		return Windows
	case "darwin":
		return MacOS
	case "linux":
		return Linux
	default:
		return Unknown
	}
}

// Pick returns the per-platform value matching host, or fallback when the
// matching value is the zero value or the host is unrecognised.
func Pick[T comparable](host OS, windows, macos, linux, fallback T) T {
	var zero T
	switch host {
	case Windows:
		if windows != zero {
			return windows
		}
	case MacOS:
		if macos != zero {
			return macos
		}
	case Linux:
		if linux != zero {
			return linux
		}
	}
	return fallback
}
