// Package noise содержит детерминированные 2D поля высот для генерации ландшафта.
package noise

import (
	"github.com/aquilax/go-perlin"
)

// Field возвращает значение шума в точке плоскости (x, z).
// Реализация обязана быть детерминированной, непрерывной и определённой на всей плоскости.
type Field interface {
	Sample(x, z float64) float64
}

// Параметры шума Перлина по умолчанию
const (
	DefaultAlpha   = 2.0 // Сглаживание шума
	DefaultBeta    = 2.0 // Частота шума
	DefaultOctaves = 3   // Количество октав
)

// Perlin реализует Field поверх шума Перлина с явным сидом
type Perlin struct {
	seed  int64
	noise *perlin.Perlin
}

// NewPerlin создаёт поле шума Перлина с параметрами по умолчанию
func NewPerlin(seed int64) *Perlin {
	return NewPerlinWithParams(seed, DefaultAlpha, DefaultBeta, DefaultOctaves)
}

// NewPerlinWithParams создаёт поле шума Перлина с указанными параметрами
func NewPerlinWithParams(seed int64, alpha, beta float64, octaves int32) *Perlin {
	if octaves <= 0 {
		octaves = DefaultOctaves
	}
	return &Perlin{
		seed:  seed,
		noise: perlin.NewPerlin(alpha, beta, octaves, seed),
	}
}

// Seed возвращает сид поля
func (p *Perlin) Seed() int64 {
	return p.seed
}

// Sample возвращает значение шума в диапазоне [-1, 1]
func (p *Perlin) Sample(x, z float64) float64 {
	return clamp(p.noise.Noise2D(x, z))
}

// Сумма октав может слегка выходить за [-1, 1]
func clamp(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}

// Func адаптирует обычную функцию к интерфейсу Field (удобно в тестах)
type Func func(x, z float64) float64

// Sample вызывает функцию
func (f Func) Sample(x, z float64) float64 {
	return f(x, z)
}

// Flat возвращает поле с постоянным значением
func Flat(value float64) Field {
	v := clamp(value)
	return Func(func(float64, float64) float64 { return v })
}
