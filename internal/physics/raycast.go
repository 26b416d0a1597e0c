package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Ruselmi/mine-and-cheet/internal/vec"
	"github.com/Ruselmi/mine-and-cheet/internal/world/block"
)

// VoxelSource - всё, что нужно лучу от хранилища вокселей
type VoxelSource interface {
	Get(pos vec.Vec3) (block.BlockID, bool)
}

// Hit - результат выбора блока лучом
type Hit struct {
	Position vec.Vec3      `json:"position"` // Координата задетого вокселя
	Block    block.BlockID `json:"block"`
	Normal   vec.Vec3      `json:"normal"`   // Нормаль грани входа (единичная по одной оси)
	Distance float64       `json:"distance"` // Расстояние от начала луча до грани
	Point    mgl64.Vec3    `json:"point"`    // Точка входа луча
}

// Raycast проходит по сетке вокселей алгоритмом Amanatides-Woo и возвращает
// ближайший занятый воксель, грань которого лежит не дальше maxDist.
// Воксель, содержащий начало луча, не учитывается. Нулевое направление - промах.
func Raycast(src VoxelSource, origin, dir mgl64.Vec3, maxDist float64) (Hit, bool) {
	if maxDist < 0 || dir.Len() == 0 {
		return Hit{}, false
	}
	dir = dir.Normalize()

	// Воксель p занимает [p-0.5, p+0.5]; после сдвига на 0.5 ячейка = floor
	var (
		cell  [3]int
		step  [3]int
		tMax  [3]float64
		tStep [3]float64
	)
	start := vec.FromPoint(origin)
	cell = [3]int{start.X, start.Y, start.Z}
	for i := 0; i < 3; i++ {
		o := origin[i] + 0.5
		f := float64(cell[i])

		switch {
		case dir[i] > 0:
			step[i] = 1
			tMax[i] = (f + 1 - o) / dir[i]
			tStep[i] = 1 / dir[i]
		case dir[i] < 0:
			step[i] = -1
			tMax[i] = (o - f) / -dir[i]
			tStep[i] = -1 / dir[i]
		default:
			tMax[i] = math.Inf(1)
			tStep[i] = math.Inf(1)
		}
	}

	for {
		axis := 0
		if tMax[1] < tMax[axis] {
			axis = 1
		}
		if tMax[2] < tMax[axis] {
			axis = 2
		}

		t := tMax[axis]
		if t > maxDist {
			return Hit{}, false
		}

		cell[axis] += step[axis]
		tMax[axis] += tStep[axis]

		pos := vec.Vec3{X: cell[0], Y: cell[1], Z: cell[2]}
		id, ok := src.Get(pos)
		if !ok {
			continue
		}

		return Hit{
			Position: pos,
			Block:    id,
			Normal:   entryFace(axis, step[axis]),
			Distance: t,
			Point:    origin.Add(dir.Mul(t)),
		}, true
	}
}

// faceNormals[axis] - нормали граней оси: для луча в минус и в плюс
var faceNormals = [3][2]vec.Vec3{
	{vec.East, vec.West},
	{vec.Up, vec.Down},
	{vec.South, vec.North},
}

// entryFace возвращает нормаль грани, через которую луч вошёл в воксель
func entryFace(axis, step int) vec.Vec3 {
	if step < 0 {
		return faceNormals[axis][0]
	}
	return faceNormals[axis][1]
}

// Picker выбирает блок под прицелом в пределах дальности
type Picker struct {
	Source VoxelSource
	Range  float64
}

// NewPicker создаёт выборщик блоков
func NewPicker(src VoxelSource, reach float64) *Picker {
	return &Picker{Source: src, Range: reach}
}

// Pick выпускает луч из origin в направлении dir
func (p *Picker) Pick(origin, dir mgl64.Vec3) (Hit, bool) {
	return Raycast(p.Source, origin, dir, p.Range)
}
