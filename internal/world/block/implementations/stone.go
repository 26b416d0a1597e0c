package implementations

import (
	"github.com/Ruselmi/mine-and-cheet/internal/world/block"
)

// StoneBehavior реализует блок камня
type StoneBehavior struct{}

// ID возвращает идентификатор блока
func (b *StoneBehavior) ID() block.BlockID {
	return block.StoneBlockID
}

// Name возвращает имя блока
func (b *StoneBehavior) Name() string {
	return "Stone"
}

// Faces возвращает текстуру камня
func (b *StoneBehavior) Faces() block.Faces {
	return block.Uniform("stone")
}

func init() {
	block.Register(block.StoneBlockID, &StoneBehavior{})
}
