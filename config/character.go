package config

import (
	"io/fs"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// CharacterSet is the on-disk character configuration.
//
// File location: assets/data/characters.yaml
type CharacterSet struct {
	Characters []CharacterConfig `yaml:"characters"`
}

// CharacterConfig describes one playable character: its sprite sheet and the
// animation sequence of every action it can perform.
type CharacterConfig struct {
	Name    string         `yaml:"name"`
	Sprite  SpriteLayout   `yaml:"sprite"`
	Actions []ActionConfig `yaml:"actions"`
}

// SpriteLayout is the per-sheet metadata the renderer needs.
type SpriteLayout struct {
	Image   string        `yaml:"img"`
	Frames  int           `yaml:"nbFrames"`
	Size    int           `yaml:"size"` // square frame edge in pixels
	Display DisplayLayout `yaml:"display"`
}

type DisplayLayout struct {
	Scale   float64 `yaml:"scale"`
	XOrigin float64 `yaml:"xOrigin"`
	YOrigin float64 `yaml:"yOrigin"`
}

type ActionConfig struct {
	Name     string         `yaml:"name"`
	Sequence SequenceConfig `yaml:"sequence"`
}

// SequenceConfig is an action's animation sequence as written in the file.
// A nil Repeat falls back to DefaultRepeat for the action.
type SequenceConfig struct {
	Index  int         `yaml:"index"`
	Frames int         `yaml:"nbFrames"`
	Delay  int         `yaml:"delay"`
	Speed  float64     `yaml:"speed"`
	Repeat *RepeatMode `yaml:"repeat,omitempty"`
}

// Def converts the sequence into an AnimationDef for the named action.
func (s SequenceConfig) Def(action string) AnimationDef {
	repeat := DefaultRepeat(action)
	if s.Repeat != nil {
		repeat = *s.Repeat
	}
	return AnimationDef{
		Start:   s.Index,
		Frames:  s.Frames,
		DelayMs: s.Delay,
		Speed:   s.Speed,
		Repeat:  repeat,
	}
}

// Action returns the animation of the named action. Names are matched
// case-insensitively. A missing action is a *ConfigurationError.
func (c *CharacterConfig) Action(name string) (AnimationDef, error) {
	for _, a := range c.Actions {
		if strings.EqualFold(a.Name, name) {
			return a.Sequence.Def(a.Name), nil
		}
	}
	return AnimationDef{}, &ConfigurationError{Character: c.Name, Action: name}
}

// StateAnimations resolves the animation of every fighter state at once.
func (c *CharacterConfig) StateAnimations() (map[StateID]AnimationDef, error) {
	defs := make(map[StateID]AnimationDef, len(FighterStates))
	for _, st := range FighterStates {
		def, err := c.Action(st.ActionName())
		if err != nil {
			return nil, err
		}
		defs[st] = def
	}
	return defs, nil
}

// Validate checks the sprite layout and every action sequence.
func (c *CharacterConfig) Validate() error {
	if c.Name == "" {
		return errors.New("character without a name")
	}
	if c.Sprite.Size <= 0 {
		return errors.Errorf("character %q: sprite size must be positive, got %d", c.Name, c.Sprite.Size)
	}
	for _, a := range c.Actions {
		def := a.Sequence.Def(a.Name)
		if err := def.Validate(); err != nil {
			return errors.Wrapf(err, "character %q, action %q", c.Name, a.Name)
		}
		if c.Sprite.Frames > 0 && def.Start+def.Frames > c.Sprite.Frames {
			return errors.Errorf("character %q, action %q: frames %d..%d exceed sheet of %d",
				c.Name, a.Name, def.Start, def.Start+def.Frames-1, c.Sprite.Frames)
		}
	}
	return nil
}

// Character returns the configuration of the named character (case-insensitive).
func (s *CharacterSet) Character(name string) (*CharacterConfig, error) {
	for i := range s.Characters {
		if strings.EqualFold(s.Characters[i].Name, name) {
			return &s.Characters[i], nil
		}
	}
	return nil, &ConfigurationError{Character: name}
}

// Names lists the character names in file order.
func (s *CharacterSet) Names() []string {
	names := make([]string, 0, len(s.Characters))
	for _, c := range s.Characters {
		names = append(names, c.Name)
	}
	return names
}

func (s *CharacterSet) Validate() error {
	if len(s.Characters) == 0 {
		return errors.New("no characters configured")
	}
	seen := make(map[string]bool, len(s.Characters))
	for i := range s.Characters {
		c := &s.Characters[i]
		key := strings.ToLower(c.Name)
		if seen[key] {
			return errors.Errorf("character %q configured twice", c.Name)
		}
		seen[key] = true
		if err := c.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// ParseCharacters decodes and validates a YAML character configuration.
func ParseCharacters(data []byte) (*CharacterSet, error) {
	var set CharacterSet
	if err := yaml.Unmarshal(data, &set); err != nil {
		return nil, errors.Wrap(err, "failed to parse character config")
	}
	if err := set.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid character config")
	}
	return &set, nil
}

// LoadCharacters reads a YAML character configuration from fsys.
func LoadCharacters(fsys fs.FS, path string) (*CharacterSet, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read character config %s", path)
	}
	return ParseCharacters(data)
}
