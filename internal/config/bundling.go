package config

import "github.com/vk/nbuild/internal/platform"

// WindowsBundle holds Windows-only packaging controls.
type WindowsBundle struct {
	Icon         Path
	ConsoleMode  ConsoleMode
	UACAdmin     bool
	SplashScreen Path
}

// Fields implements Group.
func (w *WindowsBundle) Fields() []Field {
	return []Field{
		{Name: "icon", Flag: "windows-icon-from-ico", Value: optPath(w.Icon)},
		{Name: "console_mode", Flag: "windows-console-mode", Value: optChoice(w.ConsoleMode)},
		{Name: "uac_admin", Flag: "windows-uac-admin", Value: w.UACAdmin},
		{Name: "splash_screen", Flag: "onefile-windows-splash-screen-image", Value: optPath(w.SplashScreen)},
	}
}

// MacOSBundle holds macOS-only packaging controls.
type MacOSBundle struct {
	CreateAppBundle bool
	AppIcon         Path
	AppName         string
	SignedAppName   string
	AppVersion      string
}

// Fields implements Group.
func (m *MacOSBundle) Fields() []Field {
	return []Field{
		{Name: "create_app_bundle", Flag: "macos-create-app-bundle", Value: m.CreateAppBundle},
		{Name: "app_icon", Flag: "macos-app-icon", Value: optPath(m.AppIcon)},
		{Name: "app_name", Flag: "macos-app-name", Value: optString(m.AppName)},
		{Name: "signed_app_name", Flag: "macos-signed-app-name", Value: optString(m.SignedAppName)},
		{Name: "app_version", Flag: "macos-app-version", Value: optString(m.AppVersion)},
	}
}

// LinuxBundle holds Linux-only packaging controls.
type LinuxBundle struct {
	Icon Path
}

// Fields implements Group.
func (l *LinuxBundle) Fields() []Field {
	return []Field{
		{Name: "icon", Flag: "linux-icon", Value: optPath(l.Icon)},
	}
}

// Bundling is the OS-specific packaging variant. Exactly one of the three
// variants is populated, chosen once at construction time from the host
// platform; the others stay nil for the lifetime of the configuration.
type Bundling struct {
	OS      platform.OS
	Windows *WindowsBundle
	MacOS   *MacOSBundle
	Linux   *LinuxBundle
}

// NewBundling constructs the variant matching the given host.
func NewBundling(host platform.OS) *Bundling {
	b := &Bundling{OS: host}
	switch host {
	case platform.Windows:
		b.Windows = &WindowsBundle{}
	case platform.MacOS:
		b.MacOS = &MacOSBundle{}
	default:
		b.OS = platform.Linux
		b.Linux = &LinuxBundle{}
	}
	return b
}

// Fields implements Group by delegating to the active variant, so the
// variant's fragments appear in place of the bundling group itself.
func (b *Bundling) Fields() []Field {
	switch {
	case b.Windows != nil:
		return b.Windows.Fields()
	case b.MacOS != nil:
		return b.MacOS.Fields()
	case b.Linux != nil:
		return b.Linux.Fields()
	}
	return nil
}
