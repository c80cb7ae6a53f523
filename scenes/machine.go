package scenes

import (
	"errors"
	"fmt"

	"github.com/automoto/kallis-world/logging"
	"github.com/hajimehoshi/ebiten/v2"
)

// State names a screen of the game.
type State int

const (
	StateInstructions State = iota
	StateGame
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateInstructions:
		return "instructions"
	case StateGame:
		return "game"
	case StateGameOver:
		return "game over"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Scene is one screen. Enter runs when the machine switches to it and Exit
// when it leaves; a scene may be entered many times.
type Scene interface {
	Enter() error
	Exit()
	Update() error
	Draw(screen *ebiten.Image)
}

// SceneChanger is used by scenes to ask for the next screen. The switch
// happens once the current frame's Update has returned.
type SceneChanger interface {
	Request(next State)
}

// ErrInvalidTransition is returned for a switch the game does not allow.
var ErrInvalidTransition = errors.New("invalid scene transition")

var transitions = map[State][]State{
	StateInstructions: {StateGame},
	StateGame:         {StateGameOver},
	StateGameOver:     {StateGame},
}

// CanTransition reports whether the game may switch from one screen to the
// other.
func CanTransition(from, to State) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Machine switches between the registered scenes.
type Machine struct {
	scenes  map[State]Scene
	current State
	started bool

	pending    State
	hasPending bool
}

// NewMachine creates a machine that starts on initial once it first updates.
func NewMachine(initial State) *Machine {
	return &Machine{
		scenes:  make(map[State]Scene),
		current: initial,
	}
}

// Register binds a scene to a state.
func (m *Machine) Register(state State, scene Scene) {
	m.scenes[state] = scene
}

// Current returns the active state.
func (m *Machine) Current() State {
	return m.current
}

// Request implements SceneChanger.
func (m *Machine) Request(next State) {
	m.pending = next
	m.hasPending = true
}

// Start enters the initial scene. Update calls it if needed.
func (m *Machine) Start() error {
	if m.started {
		return nil
	}
	scene, ok := m.scenes[m.current]
	if !ok {
		return fmt.Errorf("no scene registered for %s", m.current)
	}
	if err := scene.Enter(); err != nil {
		return fmt.Errorf("failed to enter %s: %w", m.current, err)
	}
	m.started = true
	logging.L.Debug("scene started", "scene", m.current)
	return nil
}

// Transition leaves the current scene and enters next.
func (m *Machine) Transition(next State) error {
	if !CanTransition(m.current, next) {
		return fmt.Errorf("%w: %s to %s", ErrInvalidTransition, m.current, next)
	}
	scene, ok := m.scenes[next]
	if !ok {
		return fmt.Errorf("no scene registered for %s", next)
	}

	if prev, ok := m.scenes[m.current]; ok && m.started {
		prev.Exit()
	}
	logging.L.Info("scene change", "from", m.current, "to", next)
	m.current = next
	m.started = true

	if err := scene.Enter(); err != nil {
		return fmt.Errorf("failed to enter %s: %w", next, err)
	}
	return nil
}

// Update runs one frame of the current scene, then applies any requested
// switch.
func (m *Machine) Update() error {
	if err := m.Start(); err != nil {
		return err
	}

	if err := m.scenes[m.current].Update(); err != nil {
		return fmt.Errorf("%s: %w", m.current, err)
	}

	if !m.hasPending {
		return nil
	}
	next := m.pending
	m.hasPending = false
	return m.Transition(next)
}

// Draw renders the current scene.
func (m *Machine) Draw(screen *ebiten.Image) {
	if !m.started {
		return
	}
	m.scenes[m.current].Draw(screen)
}
