// Package event provides the in-process publish/subscribe bus the strategic
// layer uses to notify collaborators (UI, telemetry, the flight-combat layer)
// about state transitions without coupling them to the engine.
package event

import "sync"

// Type represents the type of event.
type Type string

// Strategic event types.
const (
	SessionStarted      Type = "session_started"
	SessionReset        Type = "session_reset"
	FleetOrderIssued    Type = "fleet_order_issued"
	FleetArrived        Type = "fleet_arrived"
	BattleStarted       Type = "battle_started"
	BattleResolved      Type = "battle_resolved"
	PlanetControlChange Type = "planet_control_changed"
	VictoryDeclared     Type = "victory_declared"
)

// Event is the base interface for all events.
type Event interface {
	GetType() Type
	GetSource() interface{}
}

// BaseEvent provides common functionality for all events.
type BaseEvent struct {
	EventType Type
	Source    interface{}
}

// GetType returns the event type.
func (e *BaseEvent) GetType() Type {
	return e.EventType
}

// GetSource returns the event source.
func (e *BaseEvent) GetSource() interface{} {
	return e.Source
}

// Handler is a function that handles events.
type Handler func(Event)

// Bus manages event subscriptions and dispatching. Handlers run synchronously
// on the publisher's stack, in subscription order.
type Bus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewBus creates a new event bus.
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]Handler),
	}
}

// Subscribe registers a handler for a specific event type.
func (b *Bus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// Publish sends an event to all subscribed handlers.
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	handlers := b.handlers[event.GetType()]
	b.mu.RUnlock()

	for _, handler := range handlers {
		handler(event)
	}
}

// FleetEvent carries fleet movement notifications.
type FleetEvent struct {
	BaseEvent
	FleetID     uint64
	PlanetID    uint64
	FactionName string
}

// NewFleetEvent creates a fleet movement event.
func NewFleetEvent(eventType Type, source interface{}, fleetID, planetID uint64, faction string) *FleetEvent {
	return &FleetEvent{
		BaseEvent:   BaseEvent{EventType: eventType, Source: source},
		FleetID:     fleetID,
		PlanetID:    planetID,
		FactionName: faction,
	}
}

// BattleEvent carries battle lifecycle notifications.
type BattleEvent struct {
	BaseEvent
	BattleID       uint64
	PlanetID       uint64
	Attacker       string
	Defender       string
	PlayerInvolved bool
}

// NewBattleEvent creates a battle lifecycle event.
func NewBattleEvent(eventType Type, source interface{}, battleID, planetID uint64, attacker, defender string, playerInvolved bool) *BattleEvent {
	return &BattleEvent{
		BaseEvent:      BaseEvent{EventType: eventType, Source: source},
		BattleID:       battleID,
		PlanetID:       planetID,
		Attacker:       attacker,
		Defender:       defender,
		PlayerInvolved: playerInvolved,
	}
}

// ControlEvent carries planet ownership transitions.
type ControlEvent struct {
	BaseEvent
	PlanetID   uint64
	NewFaction string
	OldFaction string
}

// NewControlEvent creates a planet control transition event.
func NewControlEvent(source interface{}, planetID uint64, newFaction, oldFaction string) *ControlEvent {
	return &ControlEvent{
		BaseEvent:  BaseEvent{EventType: PlanetControlChange, Source: source},
		PlanetID:   planetID,
		NewFaction: newFaction,
		OldFaction: oldFaction,
	}
}

// VictoryEvent announces the end of a session.
type VictoryEvent struct {
	BaseEvent
	Winner      string
	PlanetShare float64
}

// NewVictoryEvent creates a victory announcement.
func NewVictoryEvent(source interface{}, winner string, planetShare float64) *VictoryEvent {
	return &VictoryEvent{
		BaseEvent:   BaseEvent{EventType: VictoryDeclared, Source: source},
		Winner:      winner,
		PlanetShare: planetShare,
	}
}
