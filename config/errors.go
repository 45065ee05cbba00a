package config

import "fmt"

// ConfigurationError reports a character or action missing from the character
// configuration. It is fatal at fighter construction.
type ConfigurationError struct {
	Character string
	Action    string // empty when the whole character is missing
}

func (e *ConfigurationError) Error() string {
	if e.Action == "" {
		return fmt.Sprintf("character %q is not configured", e.Character)
	}
	return fmt.Sprintf("character %q has no %q action", e.Character, e.Action)
}
