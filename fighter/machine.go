package fighter

import (
	"time"

	"github.com/automoto/mauricefight/assets/animations"
	"github.com/automoto/mauricefight/config"
	"github.com/pkg/errors"
)

// Outcome tells the owner of a fighter what to do after an input.
type Outcome int

const (
	Continue Outcome = iota
	// ReturnToMenu hands control back to the menu. The fighter is unchanged.
	ReturnToMenu
)

// Machine drives one fighter: it translates its input, dispatches to the
// active state and owns its animation. A Machine is not safe for concurrent
// use; one render loop calls ProcessInput zero or more times then Tick once
// per frame.
type Machine struct {
	name       string
	states     map[config.StateID]State
	current    config.StateID
	direction  Direction
	entered    bool
	anim       *animations.Animation
	translator *Translator
	tracer     Tracer
	ticks      uint64
}

type Option func(*Machine)

func WithTracer(t Tracer) Option {
	return func(m *Machine) {
		if t != nil {
			m.tracer = t
		}
	}
}

func WithInitialState(st config.StateID) Option {
	return func(m *Machine) { m.current = st }
}

func WithDirection(d Direction) Option {
	return func(m *Machine) { m.direction = d }
}

// WithBindings replaces the global key bindings for this fighter.
func WithBindings(b config.InputConfig) Option {
	return func(m *Machine) { m.translator = NewTranslator(b) }
}

// New builds the machine of a fighter of the given character. Every fighter
// state must have its action configured; a missing one is reported as a
// *config.ConfigurationError.
func New(character *config.CharacterConfig, opts ...Option) (*Machine, error) {
	if character == nil {
		return nil, errors.New("fighter: nil character configuration")
	}
	defs, err := character.StateAnimations()
	if err != nil {
		return nil, errors.Wrap(err, "fighter: resolving animations")
	}

	m := &Machine{
		name:    character.Name,
		states:  buildStates(defs),
		current: config.Fighter.InitialState,
		tracer:  NopTracer,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.translator == nil {
		m.translator = NewTranslator(config.Input)
	}
	if _, ok := m.states[m.current]; !ok {
		return nil, errors.Errorf("fighter: %s is not a valid initial state", m.current)
	}
	m.translator.SetFacing(m.direction)
	m.anim = animations.NewAnimation(m.states[m.current].Animation())
	m.entered = true
	m.tracer.OnTransition(Trace{
		Fighter:   m.name,
		From:      config.StateNone,
		To:        m.current,
		Direction: m.direction,
		Cause:     CauseEvent,
	})
	return m, nil
}

func buildStates(defs map[config.StateID]config.AnimationDef) map[config.StateID]State {
	return map[config.StateID]State{
		config.Idle:       idleState{def: defs[config.Idle]},
		config.Move:       moveState{def: defs[config.Move]},
		config.Crouch:     crouchState{def: defs[config.Crouch]},
		config.EndCrouch:  endCrouchState{def: defs[config.EndCrouch]},
		config.HighKick:   attackState{id: config.HighKick, def: defs[config.HighKick]},
		config.LeftPunch:  attackState{id: config.LeftPunch, def: defs[config.LeftPunch]},
		config.RightPunch: attackState{id: config.RightPunch, def: defs[config.RightPunch]},
	}
}

// ProcessInput handles one raw key edge. The menu key is intercepted before
// translation and never changes the fighter.
func (m *Machine) ProcessInput(raw RawEvent) Outcome {
	if m.translator.IsMenuKey(raw.Key) {
		if raw.Pressed {
			return ReturnToMenu
		}
		return Continue
	}
	ev := m.translator.Translate(raw)
	if ev.Kind == Nothing {
		return Continue
	}
	m.apply(m.lookup().OnEvent(ev, m.context(0)), CauseEvent)
	return Continue
}

// Tick advances the fighter to time now. A state entered since the last tick
// starts its animation from the first frame.
func (m *Machine) Tick(now time.Duration) {
	m.ticks++
	st := m.lookup()
	if m.entered {
		m.anim.Reset(st.Animation())
		m.entered = false
	}
	m.apply(st.OnTick(m.context(now)), CauseTick)
}

func (m *Machine) apply(t Transition, cause TraceCause) {
	if !t.Changed {
		return
	}
	from := m.current
	if t.State != m.current {
		m.current = t.State
		m.lookup()
		m.entered = true
	}
	m.direction = t.Direction
	m.tracer.OnTransition(Trace{
		Fighter:   m.name,
		Tick:      m.ticks,
		From:      from,
		To:        m.current,
		Direction: m.direction,
		Cause:     cause,
	})
}

func (m *Machine) lookup() State {
	st, ok := m.states[m.current]
	if !ok {
		panic(&InvariantViolation{Fighter: m.name, State: m.current})
	}
	return st
}

func (m *Machine) context(now time.Duration) Context {
	return Context{
		State:     m.current,
		Facing:    m.direction,
		Input:     m.translator.State(),
		Animation: m.anim,
		Now:       now,
	}
}

func (m *Machine) Name() string { return m.name }
func (m *Machine) State() config.StateID { return m.current }
func (m *Machine) Direction() Direction { return m.direction }
func (m *Machine) Input() InputState { return m.translator.State() }
func (m *Machine) TickCount() uint64 { return m.ticks }

// Frame is the current frame relative to the state animation.
func (m *Machine) Frame() int {
	if m.entered {
		return 0
	}
	return m.anim.Frame()
}

func (m *Machine) Animation() config.AnimationDef {
	return m.lookup().Animation()
}

// SheetIndex is the sprite sheet index of the frame to draw. A state entered
// since the last tick shows its first frame.
func (m *Machine) SheetIndex() int {
	if m.entered {
		return m.Animation().Start
	}
	return m.anim.SheetIndex()
}

// Velocity is the current state's movement speed signed by the facing
// direction, in pixels per tick.
func (m *Machine) Velocity() Vector {
	return Velocity(m.Animation(), m.direction)
}
