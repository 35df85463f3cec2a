package fsm

import (
	"time"

	"github.com/lixenwraith/mask-arena/event"
)

// StateID is a unique identifier for a node
type StateID int

const (
	StateNone StateID = 0
	StateRoot StateID = 1
)

// Machine is the generic Hierarchical Finite State Machine runtime
// T is the context type passed to actions and guards (e.g., *match.Controller)
type Machine[T any] struct {
	// Graph Data (Immutable after load)
	nodes    map[StateID]*Node[T]
	nameToID map[string]StateID

	// Configuration
	InitialStateID StateID

	// Runtime State
	activeStateID StateID
	timeInState   time.Duration
	activePath    []StateID

	// Re-entrancy: events raised by actions during a transition are deferred
	transitioning bool
	deferred      []event.EventType

	// Dependency Injection
	guardReg        map[string]GuardFunc[T]
	guardFactoryReg map[string]GuardFactoryFunc[T]
	actionReg       map[string]ActionFunc[T]
	onTransition    TransitionHook[T]
}

// Node represents a state in the hierarchy
type Node[T any] struct {
	ID       StateID
	Name     string
	ParentID StateID

	// Pre-calculated path from Root to this node for LCA lookup
	Path []StateID

	// Lifecycle Actions
	OnEnter  []Action[T]
	OnUpdate []Action[T]
	OnExit   []Action[T]

	// Transitions in evaluation order
	Transitions []Transition[T]
}

// Transition defines a link between states
type Transition[T any] struct {
	TargetID StateID
	Event    event.EventType // 0 = Tick (auto-transition)
	Guard    GuardFunc[T]    // nil = Always true
}

// Action represents a side-effect
type Action[T any] struct {
	Func ActionFunc[T]
	Args any // Pre-compiled args
}

// EmitEventArgs is the compiled argument of the built-in "EmitEvent" action
type EmitEventArgs struct {
	Type event.EventType
}

// GuardFunc returns true if the transition should occur
type GuardFunc[T any] func(ctx T) bool

// ActionFunc executes a side effect
type ActionFunc[T any] func(ctx T, args any)

// GuardFactoryFunc creates a parameterized guard from config args
type GuardFactoryFunc[T any] func(m *Machine[T], args map[string]any) GuardFunc[T]

// TransitionHook observes a completed transition, after all enter actions ran
type TransitionHook[T any] func(ctx T, from, to StateID)
