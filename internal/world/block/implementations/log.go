package implementations

import (
	"github.com/Ruselmi/mine-and-cheet/internal/world/block"
)

// LogBehavior – ствол дерева. Торцы отличаются от коры.
type LogBehavior struct{}

func (b *LogBehavior) ID() block.BlockID { return block.LogBlockID }
func (b *LogBehavior) Name() string      { return "Log" }
func (b *LogBehavior) Faces() block.Faces {
	return block.Faces{Top: "log_oak_top", Side: "log_oak", Bottom: "log_oak_top"}
}

func init() { block.Register(block.LogBlockID, &LogBehavior{}) }
