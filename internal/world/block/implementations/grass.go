package implementations

import (
	"github.com/Ruselmi/mine-and-cheet/internal/world/block"
)

// Текстуры суглинка, которыми покрыт верхний слой ландшафта
const (
	textureGrassTop  = "earth_loam_grass_top"
	textureGrassSide = "earth_loam_grassy_sides"
	textureLoam      = "earth_loam"
)

// GrassBehavior описывает блок травы - верхний блок каждой колонки ландшафта.
// Это же тип по умолчанию для установки блоков игроком.
type GrassBehavior struct{}

// ID возвращает идентификатор блока
func (b *GrassBehavior) ID() block.BlockID {
	return block.GrassBlockID
}

// Name возвращает имя блока
func (b *GrassBehavior) Name() string {
	return "Grass"
}

// Faces возвращает текстуры: трава сверху, травянистые бока, суглинок снизу
func (b *GrassBehavior) Faces() block.Faces {
	return block.Faces{
		Top:    textureGrassTop,
		Side:   textureGrassSide,
		Bottom: textureLoam,
	}
}

func init() {
	block.Register(block.GrassBlockID, &GrassBehavior{})
}
