package implementations

import (
	"github.com/Ruselmi/mine-and-cheet/internal/world/block"
)

// LeafBehavior – листва кроны дерева.
type LeafBehavior struct{}

func (b *LeafBehavior) ID() block.BlockID  { return block.LeafBlockID }
func (b *LeafBehavior) Name() string       { return "Leaf" }
func (b *LeafBehavior) Faces() block.Faces { return block.Uniform("leaves_oak") }

func init() { block.Register(block.LeafBlockID, &LeafBehavior{}) }
