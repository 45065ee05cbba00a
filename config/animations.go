package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// RepeatMode is the completion policy of an animation.
type RepeatMode int

const (
	Repeated RepeatMode = iota // loop back to the first frame
	OneShot                    // hold the terminal frame and report completion
)

func (r RepeatMode) String() string {
	if r == OneShot {
		return "oneshot"
	}
	return "repeated"
}

// UnmarshalYAML accepts "oneshot" / "repeated" (any case, "once" and "loop" too).
func (r *RepeatMode) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "oneshot", "one_shot", "once":
		*r = OneShot
	case "repeated", "repeat", "loop":
		*r = Repeated
	default:
		return fmt.Errorf("unknown repeat mode %q", s)
	}
	return nil
}

func (r RepeatMode) MarshalYAML() (interface{}, error) {
	return r.String(), nil
}

// AnimationDef describes one action of a character: where its frames start in
// the sprite sheet, how many there are, how long each one is shown and how fast
// the character moves while playing it.
type AnimationDef struct {
	Start   int
	Frames  int
	DelayMs int
	Speed   float64
	Repeat  RepeatMode
}

// Last returns the terminal frame index.
func (d AnimationDef) Last() int {
	if d.Frames < 1 {
		return 0
	}
	return d.Frames - 1
}

func (d AnimationDef) Validate() error {
	if d.Frames < 1 {
		return fmt.Errorf("frame count must be at least 1, got %d", d.Frames)
	}
	if d.DelayMs < 0 {
		return fmt.Errorf("frame delay must not be negative, got %d", d.DelayMs)
	}
	if d.Start < 0 {
		return fmt.Errorf("start index must not be negative, got %d", d.Start)
	}
	return nil
}

// CharacterAnimations holds the built-in action tables, keyed by character name.
// They match assets/data/characters.yaml and back BuiltinCharacter.
var CharacterAnimations = map[string]map[StateID]AnimationDef{
	"maurice": {
		Idle:       {Start: 0, Frames: 4, DelayMs: 150, Speed: 0, Repeat: Repeated},
		Move:       {Start: 4, Frames: 6, DelayMs: 100, Speed: 1.5, Repeat: Repeated},
		Crouch:     {Start: 10, Frames: 2, DelayMs: 120, Speed: 0, Repeat: Repeated},
		EndCrouch:  {Start: 12, Frames: 2, DelayMs: 80, Speed: 0, Repeat: OneShot},
		LeftPunch:  {Start: 14, Frames: 5, DelayMs: 70, Speed: 0, Repeat: OneShot},
		RightPunch: {Start: 19, Frames: 5, DelayMs: 70, Speed: 0, Repeat: OneShot},
		HighKick:   {Start: 24, Frames: 9, DelayMs: 100, Speed: 0, Repeat: OneShot},
		Ko:         {Start: 33, Frames: 6, DelayMs: 120, Speed: 0, Repeat: OneShot},
	},
	"jeanjacques": {
		Idle:       {Start: 0, Frames: 4, DelayMs: 180, Speed: 0, Repeat: Repeated},
		Move:       {Start: 4, Frames: 6, DelayMs: 110, Speed: 1.2, Repeat: Repeated},
		Crouch:     {Start: 10, Frames: 2, DelayMs: 120, Speed: 0, Repeat: Repeated},
		EndCrouch:  {Start: 12, Frames: 2, DelayMs: 90, Speed: 0, Repeat: OneShot},
		LeftPunch:  {Start: 14, Frames: 5, DelayMs: 80, Speed: 0, Repeat: OneShot},
		RightPunch: {Start: 19, Frames: 5, DelayMs: 80, Speed: 0, Repeat: OneShot},
		HighKick:   {Start: 24, Frames: 9, DelayMs: 110, Speed: 0.5, Repeat: OneShot},
	},
}

// BuiltinCharacter builds a character configuration from CharacterAnimations,
// using the default sprite layout.
func BuiltinCharacter(name string) (*CharacterConfig, bool) {
	defs, ok := CharacterAnimations[name]
	if !ok {
		return nil, false
	}
	c := &CharacterConfig{
		Name: name,
		Sprite: SpriteLayout{
			Image:  "resources/" + name + ".png",
			Frames: 39,
			Size:   Fighter.FrameSize,
			Display: DisplayLayout{
				Scale:   Fighter.Scale,
				XOrigin: float64(Fighter.FrameSize) / 2,
				YOrigin: float64(Fighter.FrameSize),
			},
		},
	}
	states := append(append([]StateID(nil), FighterStates...), Ko)
	for _, st := range states {
		def, ok := defs[st]
		if !ok {
			continue
		}
		repeat := def.Repeat
		c.Actions = append(c.Actions, ActionConfig{
			Name: st.ActionName(),
			Sequence: SequenceConfig{
				Index:  def.Start,
				Frames: def.Frames,
				Delay:  def.DelayMs,
				Speed:  def.Speed,
				Repeat: &repeat,
			},
		})
	}
	return c, true
}

// BuiltinCharacters is the character set used when the configuration file
// cannot be read.
func BuiltinCharacters() *CharacterSet {
	set := &CharacterSet{}
	for _, name := range []string{"maurice", "jeanjacques"} {
		if c, ok := BuiltinCharacter(name); ok {
			set.Characters = append(set.Characters, *c)
		}
	}
	return set
}
