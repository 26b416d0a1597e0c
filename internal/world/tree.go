package world

import (
	"github.com/Ruselmi/mine-and-cheet/internal/vec"
	"github.com/Ruselmi/mine-and-cheet/internal/world/block"
)

// Параметры дерева
const (
	TrunkMinLength = 4 // Минимальная длина ствола
	TrunkExtra     = 2 // Длина ствола = TrunkMinLength + Intn(TrunkExtra)
	CanopyRadius   = 2 // Полуширина кроны по X и Z
	CanopyLayers   = 2 // Количество слоёв кроны
)

// PlaceTree ставит ствол из брёвен начиная с root и крону из листвы.
// Возвращает длину ствола.
func PlaceTree(store *Store, root vec.Vec3, rng Rand) int {
	length := TrunkMinLength + rng.Intn(TrunkExtra)

	for i := 0; i < length; i++ {
		store.Set(vec.Vec3{X: root.X, Y: root.Y + i, Z: root.Z}, block.LogBlockID)
	}

	// Основание кроны совпадает с верхним бревном
	base := root.Y + length - 1
	for dy := 0; dy < CanopyLayers; dy++ {
		for dx := -CanopyRadius; dx <= CanopyRadius; dx++ {
			for dz := -CanopyRadius; dz <= CanopyRadius; dz++ {
				if !inCanopy(dx, dy, dz) {
					continue
				}
				store.Set(vec.Vec3{X: root.X + dx, Y: base + dy, Z: root.Z + dz}, block.LeafBlockID)
			}
		}
	}

	return length
}

// inCanopy проверяет, лежит ли смещение внутри кроны.
// В нижнем слое центр занят стволом.
func inCanopy(dx, dy, dz int) bool {
	if dx == 0 && dz == 0 && dy < 1 {
		return false
	}
	return float64(dx*dx+dy*dy+dz*dz) < 5.5-2*float64(dy)
}
