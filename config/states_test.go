package config

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestStateForAction(t *testing.T) {
	tests := []struct {
		action string
		want   StateID
		ok     bool
	}{
		{"idle", Idle, true},
		{"Walking", Move, true},
		{"ENDCROUCH", EndCrouch, true},
		{"ko", Ko, true},
		{"jump", StateNone, false},
	}
	for _, tt := range tests {
		got, ok := StateForAction(tt.action)
		if got != tt.want || ok != tt.ok {
			t.Errorf("StateForAction(%q) = %v, %v, want %v, %v", tt.action, got, ok, tt.want, tt.ok)
		}
	}
}

func TestDefaultRepeat(t *testing.T) {
	tests := []struct {
		action string
		want   RepeatMode
	}{
		{"idle", Repeated},
		{"walking", Repeated},
		{"crouch", Repeated},
		{"endcrouch", OneShot},
		{"highkick", OneShot},
		{"leftpunch", OneShot},
		{"rightpunch", OneShot},
		{"ko", OneShot},
		{"taunt", Repeated},
	}
	for _, tt := range tests {
		if got := DefaultRepeat(tt.action); got != tt.want {
			t.Errorf("DefaultRepeat(%q) = %v, want %v", tt.action, got, tt.want)
		}
	}
}

func TestKoIsNotAFighterState(t *testing.T) {
	if Ko.IsFighterState() {
		t.Error("Ko should be reserved")
	}
	for _, st := range FighterStates {
		if !st.IsFighterState() {
			t.Errorf("%v should be a fighter state", st)
		}
	}
}

func TestActionForKey(t *testing.T) {
	tests := []struct {
		key  ebiten.Key
		want ActionID
		ok   bool
	}{
		{ebiten.KeyLeft, ActionMoveLeft, true},
		{ebiten.KeyRight, ActionMoveRight, true},
		{ebiten.KeyDown, ActionCrouch, true},
		{ebiten.KeyA, ActionHighKick, true},
		{ebiten.KeyB, ActionLeftPunch, true},
		{ebiten.KeyC, ActionRightPunch, true},
		{ebiten.KeyEscape, ActionMenu, true},
		{ebiten.KeyZ, ActionNone, false},
		// menu-only binding
		{ebiten.KeyEnter, ActionNone, false},
	}
	for _, tt := range tests {
		got, ok := Input.ActionForKey(tt.key)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ActionForKey(%v) = %v, %v, want %v, %v", tt.key, got, ok, tt.want, tt.ok)
		}
	}
}
