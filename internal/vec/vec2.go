package vec

// Vec2 представляет координаты колонки вокселей (X, Z)
type Vec2 struct {
	X int `json:"x"`
	Z int `json:"z"`
}

// At возвращает воксель колонки на высоте y
func (v Vec2) At(y int) Vec3 {
	return Vec3{X: v.X, Y: y, Z: v.Z}
}
