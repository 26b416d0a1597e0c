package input

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// PointerSensitivity - радиан на пиксель движения мыши в режиме pointer lock
const PointerSensitivity = 0.002

// Orientation - углы камеры для хостов, которые сами ведут камеру.
// Yaw = 0, Pitch = 0 смотрит вдоль -Z.
type Orientation struct {
	Yaw   float64 `json:"yaw"`
	Pitch float64 `json:"pitch"`
}

// Apply добавляет приращение взгляда; тангаж ограничен ±π/2
func (o *Orientation) Apply(l Look) {
	o.Yaw += l.Yaw
	o.Pitch = mgl64.Clamp(o.Pitch+l.Pitch, -math.Pi/2, math.Pi/2)
}

// Forward возвращает единичный вектор взгляда
func (o Orientation) Forward() mgl64.Vec3 {
	cp := math.Cos(o.Pitch)
	return mgl64.Vec3{
		-math.Sin(o.Yaw) * cp,
		math.Sin(o.Pitch),
		-math.Cos(o.Yaw) * cp,
	}
}

// Up возвращает мировой вектор "вверх" камеры
func (o Orientation) Up() mgl64.Vec3 {
	return mgl64.Vec3{0, 1, 0}
}
