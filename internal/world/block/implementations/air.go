package implementations

import (
	"github.com/Ruselmi/mine-and-cheet/internal/world/block"
)

// AirBehavior описывает пустоту. В хранилище воздух не хранится:
// отсутствие ключа и есть воздух, регистрация нужна только для справочника имён.
type AirBehavior struct{}

// ID возвращает идентификатор блока
func (b *AirBehavior) ID() block.BlockID {
	return block.AirBlockID
}

// Name возвращает имя блока
func (b *AirBehavior) Name() string {
	return "Air"
}

// Faces у воздуха отсутствуют
func (b *AirBehavior) Faces() block.Faces {
	return block.Faces{}
}

func init() {
	block.Register(block.AirBlockID, &AirBehavior{})
}
