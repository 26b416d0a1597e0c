package api

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Ruselmi/mine-and-cheet/internal/input"
)

// MessageType - тип сообщения WebSocket-моста
type MessageType string

// Сообщения клиента
const (
	MsgTypeKey      MessageType = "key"      // Нажатие или отпускание клавиши
	MsgTypePointer  MessageType = "pointer"  // Движение мыши в режиме pointer lock
	MsgTypeClick    MessageType = "click"    // Кнопка действия
	MsgTypeJoystick MessageType = "joystick" // Положение экранного стика
	MsgTypeTouch    MessageType = "touch"    // Касание экрана
)

// Сообщения сервера
const (
	MsgTypeSnapshot MessageType = "snapshot" // Полное состояние мира
	MsgTypeFrame    MessageType = "frame"    // Результат тика
	MsgTypeError    MessageType = "error"    // Ошибка разбора сообщения клиента
)

// ErrUnsupportedMessage - сообщение не поддерживается выбранным устройством
var ErrUnsupportedMessage = errors.New("сообщение не поддерживается устройством")

// Message - конверт всех сообщений моста
type Message struct {
	Type MessageType     `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// NewMessage упаковывает payload в конверт
func NewMessage(t MessageType, payload interface{}) (*Message, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("ошибка кодирования %s: %w", t, err)
	}
	return &Message{Type: t, Data: data}, nil
}

// Decode распаковывает данные сообщения в v
func (m *Message) Decode(v interface{}) error {
	if len(m.Data) == 0 {
		return fmt.Errorf("сообщение %s без данных", m.Type)
	}
	if err := json.Unmarshal(m.Data, v); err != nil {
		return fmt.Errorf("ошибка разбора %s: %w", m.Type, err)
	}
	return nil
}

// KeyEvent - событие клавиатуры; Code в формате KeyboardEvent.code
type KeyEvent struct {
	Code string `json:"code"`
	Down bool   `json:"down"`
}

// PointerEvent - смещение мыши в пикселях
type PointerEvent struct {
	DX float64 `json:"dx"`
	DY float64 `json:"dy"`
}

// ClickEvent - нажатие кнопки действия
type ClickEvent struct {
	Button input.Button `json:"button"`
}

// JoystickEvent - вектор стика в экранных координатах; нулевой - стик отпущен
type JoystickEvent struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Фазы касания
const (
	TouchStart = "start"
	TouchMove  = "move"
	TouchEnd   = "end"
)

// TouchEvent - касание экрана
type TouchEvent struct {
	Phase string  `json:"phase"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

// ErrorPayload - описание ошибки для клиента
type ErrorPayload struct {
	Message string `json:"message"`
}
