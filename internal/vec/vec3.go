package vec

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec3 представляет трехмерный вектор с целочисленными координатами (координаты вокселя)
type Vec3 struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

// Направления граней куба
var (
	Up    = Vec3{Y: 1}
	Down  = Vec3{Y: -1}
	East  = Vec3{X: 1}
	West  = Vec3{X: -1}
	South = Vec3{Z: 1}
	North = Vec3{Z: -1}
)

// Column возвращает колонку (X, Z), которой принадлежит воксель
func (v Vec3) Column() Vec2 {
	return Vec2{
		X: v.X,
		Z: v.Z,
	}
}

// Add складывает два вектора
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{
		X: v.X + other.X,
		Y: v.Y + other.Y,
		Z: v.Z + other.Z,
	}
}

// Less задаёт порядок Y, затем X, затем Z (для детерминированных выборок)
func (v Vec3) Less(other Vec3) bool {
	if v.Y != other.Y {
		return v.Y < other.Y
	}
	if v.X != other.X {
		return v.X < other.X
	}
	return v.Z < other.Z
}

// Round округляет компоненту так же, как браузерный Math.round (половина вверх)
func Round(f float64) int {
	return int(math.Floor(f + 0.5))
}

// FromPoint возвращает воксель, содержащий точку p
func FromPoint(p mgl64.Vec3) Vec3 {
	return Vec3{
		X: Round(p.X()),
		Y: Round(p.Y()),
		Z: Round(p.Z()),
	}
}
