// Package telemetry provides season statistics, lineage tracking, milestones and CSV output.
package telemetry

// EventType identifies telemetry events.
type EventType uint8

const (
	EventSplice EventType = iota
	EventPlant
	EventDiscard
	EventGrow
	EventPestKill
)

func (t EventType) String() string {
	switch t {
	case EventSplice:
		return "splice"
	case EventPlant:
		return "plant"
	case EventDiscard:
		return "discard"
	case EventGrow:
		return "grow"
	case EventPestKill:
		return "pest_kill"
	default:
		return "unknown"
	}
}

// Event represents a single telemetry event.
type Event struct {
	Type   EventType
	Season int
	Slot   int // planter slot, or -1 for inventory-only events

	// Optional fields depending on event type
	Plant  string  // plant or seed label
	Chance float64 // pest destruction chance (pest kills)
}

// NewSpliceEvent creates a splice event.
func NewSpliceEvent(season int, seedLabel string) Event {
	return Event{Type: EventSplice, Season: season, Slot: -1, Plant: seedLabel}
}

// NewPlantEvent creates an event for a seed planted into a slot.
func NewPlantEvent(season, slot int, seedLabel string) Event {
	return Event{Type: EventPlant, Season: season, Slot: slot, Plant: seedLabel}
}

// NewDiscardEvent creates an event for a seed removed from the inventory.
func NewDiscardEvent(season int, seedLabel string) Event {
	return Event{Type: EventDiscard, Season: season, Slot: -1, Plant: seedLabel}
}

// NewGrowEvent creates an event for a seed that grew into a plant.
func NewGrowEvent(season, slot int, plantName string) Event {
	return Event{Type: EventGrow, Season: season, Slot: slot, Plant: plantName}
}

// NewPestKillEvent creates an event for a plant destroyed by pests.
func NewPestKillEvent(season, slot int, plantName string, chance float64) Event {
	return Event{Type: EventPestKill, Season: season, Slot: slot, Plant: plantName, Chance: chance}
}
