package implementations

import (
	"github.com/Ruselmi/mine-and-cheet/internal/world/block"
)

// SandBehavior описывает блок песка. Генератор его не ставит,
// он доступен только для установки игроком.
type SandBehavior struct{}

// ID возвращает идентификатор блока
func (b *SandBehavior) ID() block.BlockID {
	return block.SandBlockID
}

// Name возвращает имя блока
func (b *SandBehavior) Name() string {
	return "Sand"
}

// Faces возвращает текстуру песка для всех граней
func (b *SandBehavior) Faces() block.Faces {
	return block.Uniform("sand")
}

func init() {
	block.Register(block.SandBlockID, &SandBehavior{})
}
