package physics

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/Ruselmi/mine-and-cheet/internal/vec"
)

// Ground сообщает высоту верхнего твёрдого вокселя колонки.
// false означает пустую колонку без земли.
type Ground interface {
	HeightAt(x, z int) (int, bool)
}

// SurfaceAt возвращает высоту глаз игрока, стоящего на колонке под pos.
// Колонка выбирается округлением X и Z половиной вверх. Для пустой колонки
// используется fallbackFloor; если он nil, опоры нет.
func SurfaceAt(ground Ground, pos mgl64.Vec3, eyeHeight float64, fallbackFloor *float64) (float64, bool) {
	if h, ok := ground.HeightAt(vec.Round(pos.X()), vec.Round(pos.Z())); ok {
		return float64(h) + eyeHeight, true
	}
	if fallbackFloor != nil {
		return *fallbackFloor + eyeHeight, true
	}
	return 0, false
}

// ResolveGround прижимает тело к поверхности, если оно провалилось ниже неё.
// Возвращает true, если тело стоит на опоре.
func ResolveGround(body *Body, ground Ground, eyeHeight float64, fallbackFloor *float64) bool {
	surface, ok := SurfaceAt(ground, body.Position, eyeHeight, fallbackFloor)
	if ok && body.Position.Y() < surface {
		body.Position[1] = surface
		body.Velocity[1] = 0
		body.Grounded = true
		return true
	}
	body.Grounded = false
	return false
}
