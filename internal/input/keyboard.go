package input

import "sync"

// Коды клавиш в формате KeyboardEvent.code
const (
	KeyForward = "KeyW"
	KeyBack    = "KeyS"
	KeyLeft    = "KeyA"
	KeyRight   = "KeyD"
	KeyJump    = "Space"
)

// Keyboard - настольный адаптер: клавиатура WASD, мышь в режиме pointer lock.
// Методы безопасны для вызова из другой горутины, чем Sample.
type Keyboard struct {
	mu      sync.Mutex
	pressed map[string]bool
	look    Look
	clicks  []Button
}

// NewKeyboard создаёт настольный адаптер
func NewKeyboard() *Keyboard {
	return &Keyboard{pressed: make(map[string]bool)}
}

// KeyDown отмечает нажатие клавиши
func (k *Keyboard) KeyDown(code string) {
	k.mu.Lock()
	k.pressed[code] = true
	k.mu.Unlock()
}

// KeyUp отмечает отпускание клавиши
func (k *Keyboard) KeyUp(code string) {
	k.mu.Lock()
	delete(k.pressed, code)
	k.mu.Unlock()
}

// PointerMove накапливает движение мыши в пикселях
func (k *Keyboard) PointerMove(dx, dy float64) {
	k.mu.Lock()
	k.look = k.look.Add(Look{
		Yaw:   -dx * PointerSensitivity,
		Pitch: -dy * PointerSensitivity,
	})
	k.mu.Unlock()
}

// Click регистрирует нажатие кнопки мыши
func (k *Keyboard) Click(b Button) {
	k.mu.Lock()
	k.clicks = append(k.clicks, b)
	k.mu.Unlock()
}

// Sample реализует Adapter
func (k *Keyboard) Sample() Sample {
	k.mu.Lock()
	defer k.mu.Unlock()

	s := Sample{
		Move: Move{
			Forward: axis(k.pressed[KeyForward], k.pressed[KeyBack]),
			Strafe:  axis(k.pressed[KeyRight], k.pressed[KeyLeft]),
		},
		Look:   k.look,
		Jump:   k.pressed[KeyJump],
		Clicks: k.clicks,
	}
	k.look = Look{}
	k.clicks = nil
	return s
}

func axis(positive, negative bool) float64 {
	var v float64
	if positive {
		v++
	}
	if negative {
		v--
	}
	return v
}
