// Package paths resolves the configuration directory and the session file
// the CLI replays.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

const appName = "acrotrack"

// DefaultSessionFileName is the session file looked up in the working
// directory when nothing else names one.
const DefaultSessionFileName = "session.yaml"

// Environment variable names for overrides.
const (
	EnvConfigDir = "ACROTRACK_CONFIG_DIR"
	EnvSession   = "ACROTRACK_SESSION"
)

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/acrotrack (fallback ~/.config/acrotrack)
// macOS:   ~/Library/Application Support/acrotrack
// Windows: %APPDATA%/acrotrack
func DefaultConfigDir() (string, error) {
	if runtime.GOOS == "linux" {
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, appName), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", appName), nil
	}
	dir, err := platformDir.userConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appName), nil
}

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > ACROTRACK_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveSessionFile returns the session file path following the precedence
// chain: flag > config.yaml session > ACROTRACK_SESSION env >
// $(CWD)/session.yaml.
func ResolveSessionFile(flag, configYAMLValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configYAMLValue != "" {
		return filepath.Abs(configYAMLValue)
	}
	if env := os.Getenv(EnvSession); env != "" {
		return filepath.Abs(env)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultSessionFileName), nil
}
