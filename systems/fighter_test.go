package systems

import (
	"testing"
	"time"

	"github.com/automoto/mauricefight/assets"
	"github.com/automoto/mauricefight/assets/animations"
	"github.com/automoto/mauricefight/components"
	"github.com/automoto/mauricefight/config"
	"github.com/automoto/mauricefight/fighter"
	"github.com/automoto/mauricefight/systems/factory"
	"github.com/automoto/mauricefight/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// testArena is a world with a floor, a left wall and no sprite sheets.
type testArena struct {
	ecs   *ecs.ECS
	clock *animations.ManualClock
	arena *components.ArenaData
}

func newTestArena(t *testing.T) *testArena {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	clock := &animations.ManualClock{}

	entry := e.World.Entry(e.World.Create(components.Arena))
	components.Arena.Set(entry, &components.ArenaData{
		Arena: &assets.Arena{Name: "test", Width: 800, Height: 368},
		Clock: clock,
	})

	factory.CreateSpace(e, 800, 368, 16, 16)
	factory.CreateWall(e, assets.Solid{X: 0, Y: 320, Width: 800, Height: 48})
	factory.CreateWall(e, assets.Solid{X: 0, Y: 0, Width: 16, Height: 320})

	return &testArena{ecs: e, clock: clock, arena: components.Arena.Get(entry)}
}

// addFighter spawns a maurice standing at x without any drawable part.
func (a *testArena) addFighter(t *testing.T, x float64, selected bool) *donburi.Entry {
	t.Helper()
	c, ok := config.BuiltinCharacter("maurice")
	if !ok {
		t.Fatal("maurice is not a built-in character")
	}
	m, err := fighter.New(c)
	if err != nil {
		t.Fatalf("fighter.New() error = %v", err)
	}

	cs := []donburi.IComponentType{tags.Fighter, components.Fighter, components.Object, components.State}
	if selected {
		cs = append(cs, tags.Selected)
	}
	entry := a.ecs.World.Entry(a.ecs.World.Create(cs...))

	obj := resolv.NewObject(0, 0, 30, 70, tags.ResolvFighter)
	object := components.ObjectData{Object: obj}
	object.SetFeet(math.Vec2{X: x, Y: 320})
	components.Object.SetValue(entry, object)
	spaceEntry, _ := components.Space.First(a.ecs.World)
	components.Space.Get(spaceEntry).Add(obj)

	components.Fighter.SetValue(entry, components.FighterData{Machine: m, Character: c, Selected: selected})
	components.State.SetValue(entry, components.StateData{CurrentState: m.State(), PreviousState: config.StateNone})
	return entry
}

// frame runs one frame with the given key edges, 16ms after the last one.
func (a *testArena) frame(pressed, released []ebiten.Key) {
	input := getOrCreateInput(a.ecs)
	input.Pressed = pressed
	input.Released = released
	a.clock.Advance(16 * time.Millisecond)
	UpdateFighters(a.ecs)
	UpdateStates(a.ecs)
	input.Pressed, input.Released = nil, nil
}

func feetX(e *donburi.Entry) float64 {
	return components.Object.Get(e).Feet().X
}

func TestUpdateFightersDrivesSelectedOnly(t *testing.T) {
	a := newTestArena(t)
	player := a.addFighter(t, 300, true)
	rival := a.addFighter(t, 500, false)

	a.frame([]ebiten.Key{ebiten.KeyRight}, nil)
	for i := 0; i < 9; i++ {
		a.frame(nil, nil)
	}

	if got := feetX(player); got != 315 {
		t.Errorf("player feet at %v, want 315", got)
	}
	if got := feetX(rival); got != 500 {
		t.Errorf("rival moved to %v", got)
	}
	if st := components.State.Get(player); st.CurrentState != config.Move || st.Moved.X != 1.5 {
		t.Errorf("player state %v moved %v, want walking by 1.5", st.CurrentState, st.Moved.X)
	}
	if st := components.State.Get(rival).CurrentState; st != config.Idle {
		t.Errorf("rival state = %v, want idle", st)
	}

	a.frame(nil, []ebiten.Key{ebiten.KeyRight})
	if got := feetX(player); got != 315 {
		t.Errorf("player kept walking to %v after release", got)
	}
}

func TestUpdateFightersStopsAtWalls(t *testing.T) {
	a := newTestArena(t)
	player := a.addFighter(t, 40, true)

	a.frame([]ebiten.Key{ebiten.KeyLeft}, nil)
	for i := 0; i < 30; i++ {
		a.frame(nil, nil)
	}

	obj := components.Object.Get(player)
	if obj.X != 16 {
		t.Errorf("body left edge at %v, want flush against the wall at 16", obj.X)
	}
	if moved := components.State.Get(player).Moved.X; moved != 0 {
		t.Errorf("Moved = %v against the wall, want 0", moved)
	}
	if dir := components.Fighter.Get(player).Machine.Direction(); dir != fighter.Left {
		t.Errorf("direction = %v, want left", dir)
	}
}

func TestUpdateFightersMenuKey(t *testing.T) {
	a := newTestArena(t)
	player := a.addFighter(t, 300, true)

	a.frame([]ebiten.Key{ebiten.KeyEscape}, nil)

	if !ShouldReturnToMenu(a.ecs) {
		t.Fatal("escape should ask to return to the menu")
	}
	m := components.Fighter.Get(player).Machine
	if m.State() != config.Idle || m.TickCount() != 0 {
		t.Errorf("fighter changed: %v after %d ticks", m.State(), m.TickCount())
	}
}

func TestDispatchKeysPressesFirst(t *testing.T) {
	c, _ := config.BuiltinCharacter("maurice")
	var visited []config.StateID
	m, err := fighter.New(c, fighter.WithTracer(fighter.TracerFunc(func(tr fighter.Trace) {
		visited = append(visited, tr.To)
	})))
	if err != nil {
		t.Fatalf("fighter.New() error = %v", err)
	}

	dispatchKeys(m, []ebiten.Key{ebiten.KeyLeft}, nil)
	visited = nil

	// Left released and right pressed within the same frame
	out := dispatchKeys(m, []ebiten.Key{ebiten.KeyRight}, []ebiten.Key{ebiten.KeyLeft})
	if out != fighter.Continue {
		t.Errorf("outcome = %v, want continue", out)
	}
	if m.State() != config.Move || m.Direction() != fighter.Right {
		t.Errorf("got %v facing %v, want walking right", m.State(), m.Direction())
	}
	for _, st := range visited {
		if st == config.Idle {
			t.Error("switching direction passed through idle")
		}
	}
}

func TestBlockedDX(t *testing.T) {
	body := resolv.NewObject(100, 250, 30, 70)
	wallLeft := resolv.NewObject(80, 0, 16, 320)
	wallRight := resolv.NewObject(140, 0, 16, 320)
	floor := resolv.NewObject(0, 320, 800, 48)
	ceiling := resolv.NewObject(0, 200, 800, 50)

	tests := []struct {
		name   string
		dx     float64
		solids []*resolv.Object
		want   float64
	}{
		{"free", 3, nil, 3},
		{"floor does not block", -3, []*resolv.Object{floor}, -3},
		{"ceiling does not block", 3, []*resolv.Object{ceiling}, 3},
		{"stops at right wall", 20, []*resolv.Object{wallRight}, 10},
		{"short of right wall", 5, []*resolv.Object{wallRight}, 5},
		{"stops at left wall", -10, []*resolv.Object{wallLeft}, -4},
		{"wall behind is ignored", 5, []*resolv.Object{wallLeft}, 5},
		{"nearest wins", 20, []*resolv.Object{floor, wallRight, resolv.NewObject(135, 0, 5, 320)}, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := blockedDX(body, tt.dx, tt.solids); got != tt.want {
				t.Errorf("blockedDX(%v) = %v, want %v", tt.dx, got, tt.want)
			}
		})
	}
}
