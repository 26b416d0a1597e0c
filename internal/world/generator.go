package world

import (
	"time"

	"github.com/Ruselmi/mine-and-cheet/internal/config"
	"github.com/Ruselmi/mine-and-cheet/internal/logging"
	"github.com/Ruselmi/mine-and-cheet/internal/noise"
	"github.com/Ruselmi/mine-and-cheet/internal/vec"
	"github.com/Ruselmi/mine-and-cheet/internal/world/block"
)

// Rand - источник случайности генератора; *rand.Rand подходит напрямую
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// GenerateStats итоги генерации
type GenerateStats struct {
	Columns  int           `json:"columns"`
	Voxels   int           `json:"voxels"`
	Trees    int           `json:"trees"`
	Duration time.Duration `json:"duration"`
}

// Generator заполняет квадрат мира ландшафтом и деревьями
type Generator struct {
	cfg   config.WorldConfig
	field noise.Field
	rng   Rand
}

// NewGenerator создаёт генератор мира.
// Одинаковые cfg, поле шума и последовательность rng дают одинаковый мир.
func NewGenerator(cfg config.WorldConfig, field noise.Field, rng Rand) *Generator {
	return &Generator{
		cfg:   cfg,
		field: field,
		rng:   rng,
	}
}

// Bounds возвращает полуоткрытый диапазон [min, max) координат X и Z
func (g *Generator) Bounds() (lo, hi int) {
	lo = -g.cfg.Size / 2
	return lo, lo + g.cfg.Size
}

// ColumnHeight возвращает высоту ландшафта по шуму, без учёта правок
func (g *Generator) ColumnHeight(x, z int) int {
	n := g.field.Sample(float64(x)/g.cfg.TerrainScale, float64(z)/g.cfg.TerrainScale)
	return vec.Round((n + 1) / 2 * g.cfg.TerrainHeight)
}

// Generate заполняет хранилище. Вызывается один раз для пустого хранилища.
func (g *Generator) Generate(store *Store) GenerateStats {
	start := time.Now()
	lo, hi := g.Bounds()

	var stats GenerateStats
	for x := lo; x < hi; x++ {
		for z := lo; z < hi; z++ {
			h := g.ColumnHeight(x, z)
			g.fillColumn(store, x, z, h)
			stats.Columns++

			if h > 0 && g.rng.Float64() < g.cfg.TreeChance {
				PlaceTree(store, vec.Vec3{X: x, Y: h + 1, Z: z}, g.rng)
				stats.Trees++
			}
		}
	}

	stats.Voxels = store.Len()
	stats.Duration = time.Since(start)

	logging.Info("🌍 Мир сгенерирован: %d колонок, %d вокселей, %d деревьев за %v",
		stats.Columns, stats.Voxels, stats.Trees, stats.Duration)
	return stats
}

// fillColumn ставит землю под поверхностью и траву на высоте h
func (g *Generator) fillColumn(store *Store, x, z, h int) {
	for y := 0; y < h; y++ {
		store.Set(vec.Vec3{X: x, Y: y, Z: z}, block.DirtBlockID)
	}
	store.Set(vec.Vec3{X: x, Y: h, Z: z}, block.GrassBlockID)
}
