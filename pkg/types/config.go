package types

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Config holds the settings loaded from config.yaml.
type Config struct {
	Session   string `json:"session" yaml:"session"`
	EntryType string `json:"entry_type" yaml:"entry_type"`
	LogLevel  string `json:"log_level" yaml:"log_level"`
}

// Defaults applied when config.yaml leaves a key unset.
const (
	DefaultEntryType = string(EntryAll)
	DefaultLogLevel  = "warn"
)

// Config validation errors.
var (
	ErrInvalidLogLevel = errors.New("invalid log level")
)

// Validate checks that the Config is well-formed. Empty fields are valid and
// fall back to the defaults.
func (c Config) Validate() error {
	if _, err := ParseEntryType(c.EntryType); err != nil {
		return err
	}
	if c.LogLevel != "" {
		if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
		}
	}
	return nil
}
