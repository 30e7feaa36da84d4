package infra

import "sync"

// EventType represents the stage of a result-set transformation
type EventType int

const (
	ResultSetFetched EventType = iota
	SeriesExtracted
	SeriesCompared
	ChartPrepared
)

// String returns the string representation of the EventType
func (et EventType) String() string {
	switch et {
	case ResultSetFetched:
		return "ResultSetFetched"
	case SeriesExtracted:
		return "SeriesExtracted"
	case SeriesCompared:
		return "SeriesCompared"
	case ChartPrepared:
		return "ChartPrepared"
	default:
		return "Unknown"
	}
}

type Event interface{ EventType() EventType }
type Handler func(Event)

// Bus delivers events synchronously, in subscription order, on the publishing goroutine.
type Bus struct {
	mu   sync.RWMutex
	subs map[EventType][]Handler
}

func NewBus() *Bus { return &Bus{subs: map[EventType][]Handler{}} }

func (b *Bus) Publish(e Event) {
	b.mu.RLock()
	handlers := b.subs[e.EventType()]
	b.mu.RUnlock()
	for _, h := range handlers {
		h(e)
	}
}

func (b *Bus) Subscribe(evt EventType, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs[evt] = append(b.subs[evt], h)
}
