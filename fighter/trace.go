package fighter

import (
	"context"
	"log/slog"

	"github.com/automoto/mauricefight/config"
)

// TraceCause tells what triggered a transition.
type TraceCause int

const (
	CauseEvent TraceCause = iota
	CauseTick
)

func (c TraceCause) String() string {
	if c == CauseTick {
		return "tick"
	}
	return "event"
}

// Trace records one state or direction change of a fighter.
type Trace struct {
	Fighter   string
	Tick      uint64
	From      config.StateID
	To        config.StateID
	Direction Direction
	Cause     TraceCause
}

// Tracer observes transitions. It is called synchronously from the machine.
type Tracer interface {
	OnTransition(Trace)
}

type TracerFunc func(Trace)

func (f TracerFunc) OnTransition(t Trace) { f(t) }

type nopTracer struct{}

func (nopTracer) OnTransition(Trace) {}

// NopTracer discards every trace.
var NopTracer Tracer = nopTracer{}

// LogTracer writes transitions to a structured logger at debug level.
type LogTracer struct {
	Logger *slog.Logger
}

func NewLogTracer(logger *slog.Logger) *LogTracer {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogTracer{Logger: logger.With("component", "fighter")}
}

func (l *LogTracer) OnTransition(t Trace) {
	if !l.Logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	l.Logger.Debug("state transition",
		"fighter", t.Fighter,
		"tick", t.Tick,
		"from", t.From.String(),
		"to", t.To.String(),
		"direction", t.Direction.String(),
		"cause", t.Cause.String(),
	)
}
