package input

import "sync"

// TouchSensitivity - радиан на пиксель перетаскивания пальцем
const TouchSensitivity = 0.005

// Touch - мобильный адаптер: перетаскивание поворачивает камеру,
// пока палец на экране, игрок идёт вперёд.
type Touch struct {
	mu     sync.Mutex
	active bool
	lastX  float64
	lastY  float64
	look   Look
	clicks []Button
}

// NewTouch создаёт сенсорный адаптер
func NewTouch() *Touch {
	return &Touch{}
}

// Start начинает касание в точке (x, y)
func (t *Touch) Start(x, y float64) {
	t.mu.Lock()
	t.active = true
	t.lastX, t.lastY = x, y
	t.mu.Unlock()
}

// MoveTo переносит касание; без Start игнорируется
func (t *Touch) MoveTo(x, y float64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.active {
		return
	}
	t.look = t.look.Add(Look{
		Yaw:   -(x - t.lastX) * TouchSensitivity,
		Pitch: -(y - t.lastY) * TouchSensitivity,
	})
	t.lastX, t.lastY = x, y
}

// End завершает касание
func (t *Touch) End() {
	t.mu.Lock()
	t.active = false
	t.mu.Unlock()
}

// Click регистрирует нажатие экранной кнопки действия
func (t *Touch) Click(b Button) {
	t.mu.Lock()
	t.clicks = append(t.clicks, b)
	t.mu.Unlock()
}

// Sample реализует Adapter
func (t *Touch) Sample() Sample {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := Sample{
		Look:   t.look,
		Clicks: t.clicks,
	}
	if t.active {
		s.Move.Forward = 1
	}
	t.look = Look{}
	t.clicks = nil
	return s
}
