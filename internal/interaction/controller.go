// Package interaction реализует ломание и установку блоков по лучу взгляда.
package interaction

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/Ruselmi/mine-and-cheet/internal/config"
	"github.com/Ruselmi/mine-and-cheet/internal/input"
	"github.com/Ruselmi/mine-and-cheet/internal/logging"
	"github.com/Ruselmi/mine-and-cheet/internal/metrics"
	"github.com/Ruselmi/mine-and-cheet/internal/physics"
	"github.com/Ruselmi/mine-and-cheet/internal/vec"
	"github.com/Ruselmi/mine-and-cheet/internal/world"
	"github.com/Ruselmi/mine-and-cheet/internal/world/block"
)

// Controller держит текущий выбор под прицелом и применяет к нему действия.
// Как и хранилище, используется только из потока тика.
type Controller struct {
	store   *world.Store
	picker  *physics.Picker
	metrics *metrics.Metrics

	placeBlock      block.BlockID
	replaceOccupied bool

	origin mgl64.Vec3
	dir    mgl64.Vec3
	hit    physics.Hit
	hasHit bool
}

// NewController создаёт контроллер взаимодействия
func NewController(store *world.Store, picker *physics.Picker, cfg config.InteractionConfig, m *metrics.Metrics) *Controller {
	return &Controller{
		store:           store,
		picker:          picker,
		metrics:         m,
		placeBlock:      cfg.PlaceBlock,
		replaceOccupied: cfg.ReplaceOccupied,
	}
}

// Update пересчитывает выбор для луча взгляда
func (c *Controller) Update(origin, dir mgl64.Vec3) (physics.Hit, bool) {
	c.origin, c.dir = origin, dir
	c.hit, c.hasHit = c.picker.Pick(origin, dir)
	return c.hit, c.hasHit
}

// Pick возвращает текущий выбор
func (c *Controller) Pick() (physics.Hit, bool) {
	return c.hit, c.hasHit
}

// Highlight возвращает координату подсвеченного вокселя
func (c *Controller) Highlight() (vec.Vec3, bool) {
	return c.hit.Position, c.hasHit
}

// PlaceBlock возвращает тип устанавливаемого блока
func (c *Controller) PlaceBlock() block.BlockID {
	return c.placeBlock
}

// SetPlaceBlock меняет тип устанавливаемого блока; воздух и неизвестные типы игнорируются
func (c *Controller) SetPlaceBlock(id block.BlockID) bool {
	if id == block.AirBlockID || !block.IsValidBlockID(id) {
		return false
	}
	c.placeBlock = id
	return true
}

// Break удаляет выбранный воксель. Без выбора - no-op.
func (c *Controller) Break() bool {
	if !c.hasHit {
		return false
	}

	pos := c.hit.Position
	if !c.store.Remove(pos) {
		return false
	}
	c.metrics.BlockBroken()
	logging.Debug("⛏️ Блок %s сломан в %v", c.hit.Block, pos)

	c.refresh()
	return true
}

// Place ставит блок в клетку, примыкающую к выбранной грани. Без выбора - no-op.
// Занятая клетка перезаписывается, если это разрешено конфигурацией.
func (c *Controller) Place() bool {
	if !c.hasHit {
		return false
	}

	target := c.hit.Position.Add(c.hit.Normal)
	occupied := c.store.IsSolid(target)
	if occupied && !c.replaceOccupied {
		return false
	}

	c.store.Set(target, c.placeBlock)
	c.metrics.BlockPlaced(occupied)
	logging.Debug("🧱 Блок %s установлен в %v", c.placeBlock, target)

	c.refresh()
	return true
}

// Handle выполняет действие кнопки: основная ломает, дополнительная ставит
func (c *Controller) Handle(b input.Button) bool {
	switch b {
	case input.ButtonPrimary:
		return c.Break()
	case input.ButtonSecondary:
		return c.Place()
	default:
		return false
	}
}

// refresh повторяет луч после изменения мира, чтобы следующий клик видел новое состояние
func (c *Controller) refresh() {
	c.Update(c.origin, c.dir)
}
