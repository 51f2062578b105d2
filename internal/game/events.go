package game

import (
	"time"

	"github.com/lox/showdown/poker"
)

// EventType names a game event.
type EventType string

const (
	EventTypeHandStarted  EventType = "hand_started"
	EventTypeStreetDealt  EventType = "street_dealt"
	EventTypePlayerActed  EventType = "player_acted"
	EventTypeHandFinished EventType = "hand_finished"
)

func (et EventType) String() string {
	return string(et)
}

// Event is anything published while a hand runs.
type Event interface {
	EventType() EventType
	Timestamp() time.Time
}

// HandStartedEvent is published once blinds are in.
type HandStartedEvent struct {
	HandID  string
	Button  PlayerID
	Players []PlayerID
	Blinds  []BlindPost
	At      time.Time
}

func (e HandStartedEvent) EventType() EventType { return EventTypeHandStarted }
func (e HandStartedEvent) Timestamp() time.Time { return e.At }

// StreetDealtEvent is published when community cards are revealed.
type StreetDealtEvent struct {
	HandID string
	Street Street
	Board  []poker.Card
	Pot    int
	At     time.Time
}

func (e StreetDealtEvent) EventType() EventType { return EventTypeStreetDealt }
func (e StreetDealtEvent) Timestamp() time.Time { return e.At }

// PlayerActedEvent is published after each applied action.
type PlayerActedEvent struct {
	HandID   string
	Street   Street
	Action   PlayerAction
	PotAfter int
	At       time.Time
}

func (e PlayerActedEvent) EventType() EventType { return EventTypePlayerActed }
func (e PlayerActedEvent) Timestamp() time.Time { return e.At }

// HandFinishedEvent carries the complete record of a settled hand.
type HandFinishedEvent struct {
	Record *HandRecord
	At     time.Time
}

func (e HandFinishedEvent) EventType() EventType { return EventTypeHandFinished }
func (e HandFinishedEvent) Timestamp() time.Time { return e.At }

// EventSubscriber receives published events.
type EventSubscriber interface {
	OnEvent(event Event)
}

// EventSubscriberFunc adapts a function to EventSubscriber.
type EventSubscriberFunc func(event Event)

func (f EventSubscriberFunc) OnEvent(event Event) { f(event) }

// EventBus delivers events to subscribers inline, on the publishing
// goroutine, in subscription order. It is owned by one table and is not
// safe for concurrent use.
type EventBus struct {
	subscribers []EventSubscriber
}

// NewEventBus creates an empty bus.
func NewEventBus() *EventBus {
	return &EventBus{}
}

// Subscribe adds a subscriber.
func (bus *EventBus) Subscribe(subscriber EventSubscriber) {
	bus.subscribers = append(bus.subscribers, subscriber)
}

// Publish sends an event to every subscriber. A nil bus drops events.
func (bus *EventBus) Publish(event Event) {
	if bus == nil {
		return
	}
	for _, subscriber := range bus.subscribers {
		subscriber.OnEvent(event)
	}
}
