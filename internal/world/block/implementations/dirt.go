package implementations

import (
	"github.com/Ruselmi/mine-and-cheet/internal/world/block"
)

// DirtBehavior описывает блок земли, которым заполнены колонки под травой
type DirtBehavior struct{}

// ID возвращает идентификатор блока
func (b *DirtBehavior) ID() block.BlockID {
	return block.DirtBlockID
}

// Name возвращает имя блока
func (b *DirtBehavior) Name() string {
	return "Dirt"
}

// Faces возвращает текстуру суглинка для всех граней
func (b *DirtBehavior) Faces() block.Faces {
	return block.Uniform(textureLoam)
}

func init() {
	block.Register(block.DirtBlockID, &DirtBehavior{})
}
