// Package input сводит разные устройства ввода к одному абстрактному образцу Sample,
// который потребляют кинематика игрока и контроллер взаимодействия.
package input

import (
	"fmt"
	"math"
)

// Button - кнопка действия над блоком
type Button uint8

const (
	ButtonPrimary   Button = iota + 1 // Ломать блок
	ButtonSecondary                   // Ставить блок
)

// String возвращает имя кнопки
func (b Button) String() string {
	switch b {
	case ButtonPrimary:
		return "primary"
	case ButtonSecondary:
		return "secondary"
	default:
		return fmt.Sprintf("button(%d)", uint8(b))
	}
}

// MarshalText кодирует кнопку именем
func (b Button) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText разбирает кнопку по имени
func (b *Button) UnmarshalText(text []byte) error {
	switch string(text) {
	case "primary":
		*b = ButtonPrimary
	case "secondary":
		*b = ButtonSecondary
	default:
		return fmt.Errorf("неизвестная кнопка %q", text)
	}
	return nil
}

// Move - желаемое перемещение в осях камеры.
// Forward > 0 - вперёд, Strafe > 0 - вдоль вектора up × forward.
type Move struct {
	Strafe  float64 `json:"strafe"`
	Forward float64 `json:"forward"`
}

// IsZero проверяет отсутствие движения
func (m Move) IsZero() bool {
	return m.Strafe == 0 && m.Forward == 0
}

// Normalized возвращает единичный вектор движения; нулевой остаётся нулевым
func (m Move) Normalized() Move {
	l := math.Hypot(m.Strafe, m.Forward)
	if l == 0 {
		return Move{}
	}
	return Move{Strafe: m.Strafe / l, Forward: m.Forward / l}
}

// Look - приращение ориентации камеры в радианах с прошлого образца
type Look struct {
	Yaw   float64 `json:"yaw"`
	Pitch float64 `json:"pitch"`
}

// Add складывает приращения
func (l Look) Add(o Look) Look {
	return Look{Yaw: l.Yaw + o.Yaw, Pitch: l.Pitch + o.Pitch}
}

// Sample - единый образец ввода за один тик.
// Move и Jump - уровни (держатся, пока нажаты), Clicks и Look - накопленные события.
type Sample struct {
	Move   Move     `json:"move"`
	Look   Look     `json:"look"`
	Jump   bool     `json:"jump"`
	Clicks []Button `json:"clicks,omitempty"`
}

// Adapter - источник образцов ввода.
// Sample забирает накопленные клики и приращения взгляда.
type Adapter interface {
	Sample() Sample
}
