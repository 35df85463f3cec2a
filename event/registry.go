package event

import (
	"strings"
	"sync"
)

var (
	registryOnce sync.Once
	nameToType   = make(map[string]EventType)
	typeToName   = make(map[EventType]string)
)

// RegisterType maps a string name used by FSM configs to an EventType
func RegisterType(name string, et EventType) {
	nameToType[name] = et
	typeToName[et] = name
}

// GetEventType returns the EventType for a given name
func GetEventType(name string) (EventType, bool) {
	// Special case for FSM "Tick"
	if strings.EqualFold(name, "Tick") {
		return 0, true
	}
	InitRegistry()
	et, ok := nameToType[name]
	return et, ok
}

// GetEventName returns the string name for an EventType
func GetEventName(et EventType) string {
	if et == 0 {
		return "Tick"
	}
	InitRegistry()
	if name, ok := typeToName[et]; ok {
		return name
	}
	return "Unknown"
}

// InitRegistry populates the registry with all match events, safe to call repeatedly
func InitRegistry() {
	registryOnce.Do(func() {
		RegisterType("EventBeginRequest", EventBeginRequest)
		RegisterType("EventReturnRequest", EventReturnRequest)
		RegisterType("EventCountdownFinished", EventCountdownFinished)
		RegisterType("EventPlayerDied", EventPlayerDied)
		RegisterType("EventMatchTimeUp", EventMatchTimeUp)
		RegisterType("EventMoveRequest", EventMoveRequest)
		RegisterType("EventAttackRequest", EventAttackRequest)
		RegisterType("EventPickupRequest", EventPickupRequest)
		RegisterType("EventOverlayToggle", EventOverlayToggle)
		RegisterType("EventQuitRequest", EventQuitRequest)
	})
}
