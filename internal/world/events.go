package world

import (
	"fmt"

	"github.com/Ruselmi/mine-and-cheet/internal/vec"
	"github.com/Ruselmi/mine-and-cheet/internal/world/block"
)

// EventType определяет тип события изменения мира
type EventType uint8

const (
	EventTypeBlockSet    EventType = iota // Установка или замена блока
	EventTypeBlockRemove                  // Удаление блока
)

// String возвращает строковое представление типа события
func (t EventType) String() string {
	switch t {
	case EventTypeBlockSet:
		return "set"
	case EventTypeBlockRemove:
		return "remove"
	default:
		return "unknown"
	}
}

// MarshalText кодирует тип события строкой
func (t EventType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText разбирает тип события
func (t *EventType) UnmarshalText(text []byte) error {
	switch string(text) {
	case "set":
		*t = EventTypeBlockSet
	case "remove":
		*t = EventTypeBlockRemove
	default:
		return fmt.Errorf("неизвестный тип события %q", text)
	}
	return nil
}

// BlockEvent описывает одно фактическое изменение хранилища
type BlockEvent struct {
	Type     EventType     `json:"type"`
	Position vec.Vec3      `json:"position"`
	Block    block.BlockID `json:"block"`              // Новый блок (Air для удаления)
	Previous block.BlockID `json:"previous,omitempty"` // Блок до изменения (Air, если его не было)
}

// Listener получает события изменения хранилища синхронно, в потоке изменения
type Listener func(BlockEvent)

// Recorder накапливает события между тиками для инкрементальной отрисовки
type Recorder struct {
	events []BlockEvent
}

// Record добавляет событие; метод подходит как Listener
func (r *Recorder) Record(ev BlockEvent) {
	r.events = append(r.events, ev)
}

// Drain возвращает накопленные события и очищает буфер
func (r *Recorder) Drain() []BlockEvent {
	if len(r.events) == 0 {
		return nil
	}
	out := r.events
	r.events = nil
	return out
}

// Len возвращает число накопленных событий
func (r *Recorder) Len() int {
	return len(r.events)
}
