package fsm

import (
	"fmt"
	"time"

	"github.com/lixenwraith/mask-arena/event"
)

// NewMachine creates a new FSM instance with the built-in StateTimeExceeds guard factory
func NewMachine[T any]() *Machine[T] {
	m := &Machine[T]{
		nodes:           make(map[StateID]*Node[T]),
		nameToID:        make(map[string]StateID),
		guardReg:        make(map[string]GuardFunc[T]),
		guardFactoryReg: make(map[string]GuardFactoryFunc[T]),
		actionReg:       make(map[string]ActionFunc[T]),
		activePath:      make([]StateID, 0, 4),
	}

	// StateTimeExceeds: args {ms = N}
	m.RegisterGuardFactory("StateTimeExceeds", func(machine *Machine[T], args map[string]any) GuardFunc[T] {
		limit := durationArg(args, "ms", 0)
		return func(ctx T) bool {
			return machine.TimeInState() >= limit
		}
	})

	return m
}

// RegisterGuard adds a predicate function to the registry
func (m *Machine[T]) RegisterGuard(name string, fn GuardFunc[T]) {
	m.guardReg[name] = fn
}

// RegisterGuardFactory adds a parameterized guard factory to the registry
func (m *Machine[T]) RegisterGuardFactory(name string, factory GuardFactoryFunc[T]) {
	m.guardFactoryReg[name] = factory
}

// RegisterAction adds a side-effect function to the registry
func (m *Machine[T]) RegisterAction(name string, fn ActionFunc[T]) {
	m.actionReg[name] = fn
}

// OnTransition sets the hook invoked after each completed transition
func (m *Machine[T]) OnTransition(hook TransitionHook[T]) {
	m.onTransition = hook
}

// Init enters the initial state, running OnEnter from Root down to it
func (m *Machine[T]) Init(ctx T) error {
	node, ok := m.nodes[m.InitialStateID]
	if !ok {
		return fmt.Errorf("initial state ID %d not found", m.InitialStateID)
	}

	m.activeStateID = m.InitialStateID
	m.timeInState = 0
	m.activePath = append(m.activePath[:0], node.Path...)

	m.transitioning = true
	for _, id := range m.activePath {
		m.runActions(ctx, m.nodes[id].OnEnter)
	}
	m.transitioning = false

	if m.onTransition != nil {
		m.onTransition(ctx, StateNone, m.activeStateID)
	}
	m.drainDeferred(ctx)
	return nil
}

// Update advances the FSM by delta time, running OnUpdate and Tick transitions
func (m *Machine[T]) Update(ctx T, dt time.Duration) {
	if m.activeStateID == StateNone {
		return
	}

	m.timeInState += dt

	leaf := m.nodes[m.activeStateID]
	m.runActions(ctx, leaf.OnUpdate)

	m.fire(ctx, 0)
}

// HandleEvent routes an external event through the active state chain
// Returns true if the event triggered a transition
// Events raised from inside a transition are deferred until it completes
func (m *Machine[T]) HandleEvent(ctx T, eventType event.EventType) bool {
	if m.activeStateID == StateNone {
		return false
	}
	if m.transitioning {
		m.deferred = append(m.deferred, eventType)
		return false
	}
	return m.fire(ctx, eventType)
}

// fire bubbles from leaf to root and takes the first matching transition
func (m *Machine[T]) fire(ctx T, eventType event.EventType) bool {
	currID := m.activeStateID
	for currID != StateNone {
		node := m.nodes[currID]
		for _, trans := range node.Transitions {
			if trans.Event != eventType {
				continue
			}
			if trans.Guard == nil || trans.Guard(ctx) {
				m.transition(ctx, trans.TargetID)
				return true
			}
		}
		currID = node.ParentID
	}
	return false
}

// transition performs the state change through the lowest common ancestor
func (m *Machine[T]) transition(ctx T, targetID StateID) {
	if m.activeStateID == targetID {
		return
	}

	targetNode, ok := m.nodes[targetID]
	if !ok {
		panic(fmt.Sprintf("FSM: attempted transition to unknown state ID %d", targetID))
	}

	fromID := m.activeStateID
	currentPath := m.activePath
	targetPath := targetNode.Path

	lcaIndex := -1
	for i := 0; i < len(currentPath) && i < len(targetPath); i++ {
		if currentPath[i] != targetPath[i] {
			break
		}
		lcaIndex = i
	}

	m.transitioning = true

	// Exit Phase: walk UP from current leaf to LCA (exclusive)
	for i := len(currentPath) - 1; i > lcaIndex; i-- {
		m.runActions(ctx, m.nodes[currentPath[i]].OnExit)
	}

	m.activeStateID = targetID
	m.timeInState = 0
	m.activePath = append(m.activePath[:0], targetPath...)

	// Enter Phase: walk DOWN from LCA (exclusive) to target leaf
	for i := lcaIndex + 1; i < len(targetPath); i++ {
		m.runActions(ctx, m.nodes[targetPath[i]].OnEnter)
	}

	m.transitioning = false

	if m.onTransition != nil {
		m.onTransition(ctx, fromID, targetID)
	}
	m.drainDeferred(ctx)
}

func (m *Machine[T]) drainDeferred(ctx T) {
	for len(m.deferred) > 0 && !m.transitioning {
		et := m.deferred[0]
		m.deferred = m.deferred[1:]
		m.fire(ctx, et)
	}
}

func (m *Machine[T]) runActions(ctx T, actions []Action[T]) {
	for _, action := range actions {
		action.Func(ctx, action.Args)
	}
}

// Reset exits the whole active chain and re-enters the initial state
func (m *Machine[T]) Reset(ctx T) error {
	if m.activeStateID != StateNone {
		m.transitioning = true
		for i := len(m.activePath) - 1; i >= 0; i-- {
			m.runActions(ctx, m.nodes[m.activePath[i]].OnExit)
		}
		m.transitioning = false
	}
	m.deferred = m.deferred[:0]
	m.activeStateID = StateNone
	return m.Init(ctx)
}

// CurrentState returns the active leaf state
func (m *Machine[T]) CurrentState() StateID {
	return m.activeStateID
}

// CurrentStateName returns the active leaf state's name, empty before Init
func (m *Machine[T]) CurrentStateName() string {
	return m.StateName(m.activeStateID)
}

// TimeInState returns time accumulated by Update since the last transition
func (m *Machine[T]) TimeInState() time.Duration {
	return m.timeInState
}

// InState reports whether name is the active leaf or one of its ancestors
func (m *Machine[T]) InState(name string) bool {
	id, ok := m.nameToID[name]
	if !ok {
		return false
	}
	for _, active := range m.activePath {
		if active == id {
			return true
		}
	}
	return false
}
