package input

import "sync"

// Joystick - мобильный адаптер экранного джойстика.
// Вектор задаётся в экранных координатах (y растёт вниз), прыжка нет.
type Joystick struct {
	mu     sync.Mutex
	x, y   float64
	clicks []Button
}

// NewJoystick создаёт адаптер джойстика
func NewJoystick() *Joystick {
	return &Joystick{}
}

// Move задаёт направление отклонения стика
func (j *Joystick) Move(x, y float64) {
	j.mu.Lock()
	j.x, j.y = x, y
	j.mu.Unlock()
}

// Release возвращает стик в центр
func (j *Joystick) Release() {
	j.Move(0, 0)
}

// Click регистрирует нажатие экранной кнопки действия
func (j *Joystick) Click(b Button) {
	j.mu.Lock()
	j.clicks = append(j.clicks, b)
	j.mu.Unlock()
}

// Sample реализует Adapter
func (j *Joystick) Sample() Sample {
	j.mu.Lock()
	defer j.mu.Unlock()

	s := Sample{
		Move:   Move{Forward: -j.y, Strafe: -j.x},
		Clicks: j.clicks,
	}
	j.clicks = nil
	return s
}
