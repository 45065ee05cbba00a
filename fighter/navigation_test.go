package fighter

import (
	"bytes"
	"image"
	"log/slog"
	"strings"
	"testing"

	"github.com/automoto/mauricefight/config"
	"github.com/hajimehoshi/ebiten/v2"
)

func TestVelocityFollowsFacing(t *testing.T) {
	walk := config.AnimationDef{Frames: 6, DelayMs: 100, Speed: 1.5}
	tests := []struct {
		dir   Direction
		wantX float64
	}{
		{Right, 1.5},
		{Left, -1.5},
	}
	for _, tt := range tests {
		if got := Velocity(walk, tt.dir); got.X != tt.wantX || got.Y != 0 {
			t.Errorf("Velocity(%v) = %+v, want X %v", tt.dir, got, tt.wantX)
		}
	}
	if got := Velocity(config.AnimationDef{Frames: 1}, Left); got.X != 0 {
		t.Errorf("standing velocity = %+v, want 0", got)
	}
}

func TestIntegrate(t *testing.T) {
	pos := Vector{X: 100, Y: 320}
	for i := 0; i < 4; i++ {
		pos = Integrate(pos, Vector{X: -1.5})
	}
	if pos.X != 94 || pos.Y != 320 {
		t.Errorf("pos = %+v, want {94 320}", pos)
	}
}

func TestMirror(t *testing.T) {
	if Mirror(Right) || !Mirror(Left) {
		t.Error("only a left-facing fighter is mirrored")
	}
	if ScaleX(Left, 0.75) != -0.75 || ScaleX(Right, 0.75) != 0.75 {
		t.Error("ScaleX() sign does not follow the facing direction")
	}
}

func TestFrameRegion(t *testing.T) {
	layout := config.SpriteLayout{Size: 100, Frames: 39}
	tests := []struct {
		index int
		want  image.Rectangle
	}{
		{0, image.Rect(0, 0, 100, 100)},
		{24, image.Rect(2400, 0, 2500, 100)},
		{38, image.Rect(3800, 0, 3900, 100)},
	}
	for _, tt := range tests {
		if got := FrameRegion(tt.index, layout); got != tt.want {
			t.Errorf("FrameRegion(%d) = %v, want %v", tt.index, got, tt.want)
		}
	}
}

type recordingRenderer struct {
	region image.Rectangle
	pos    Vector
	mirror bool
	calls  int
}

func (r *recordingRenderer) DrawFrame(region image.Rectangle, pos Vector, mirror bool) {
	r.region, r.pos, r.mirror = region, pos, mirror
	r.calls++
}

func TestMachineDraw(t *testing.T) {
	c := maurice(t)
	m := newMachine(t)
	m.ProcessInput(KeyDown(ebiten.KeyLeft))
	m.Tick(0)
	m.Tick(ms(100))

	var r recordingRenderer
	pos := Vector{X: 200, Y: 320}
	m.Draw(&r, c.Sprite, pos)

	if r.calls != 1 {
		t.Fatalf("DrawFrame called %d times", r.calls)
	}
	// walking starts at 4, one frame in
	if want := FrameRegion(5, c.Sprite); r.region != want {
		t.Errorf("region = %v, want %v", r.region, want)
	}
	if !r.mirror || r.pos != pos {
		t.Errorf("got pos %+v mirror %v, want %+v mirrored", r.pos, r.mirror, pos)
	}
}

func TestLogTracer(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	m := newMachine(t, WithTracer(NewLogTracer(logger)))
	m.ProcessInput(KeyDown(ebiten.KeyA))

	out := buf.String()
	for _, want := range []string{"state transition", "from=idle", "to=highkick", "fighter=maurice"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q does not contain %q", out, want)
		}
	}

	buf.Reset()
	quiet := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	NewLogTracer(quiet).OnTransition(Trace{From: config.Idle, To: config.Move})
	if buf.Len() != 0 {
		t.Errorf("debug trace logged at info level: %q", buf.String())
	}
}
