package implementations

import (
	"github.com/Ruselmi/mine-and-cheet/internal/world/block"
)

// PlanksBehavior описывает дубовые доски - строительный блок игрока
type PlanksBehavior struct{}

// ID возвращает идентификатор блока
func (b *PlanksBehavior) ID() block.BlockID {
	return block.PlanksBlockID
}

// Name возвращает имя блока
func (b *PlanksBehavior) Name() string {
	return "Planks"
}

// Faces возвращает текстуру досок для всех граней
func (b *PlanksBehavior) Faces() block.Faces {
	return block.Uniform("planks_oak")
}

func init() {
	block.Register(block.PlanksBlockID, &PlanksBehavior{})
}
