package interaction

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ruselmi/mine-and-cheet/internal/config"
	"github.com/Ruselmi/mine-and-cheet/internal/input"
	"github.com/Ruselmi/mine-and-cheet/internal/metrics"
	"github.com/Ruselmi/mine-and-cheet/internal/physics"
	"github.com/Ruselmi/mine-and-cheet/internal/vec"
	"github.com/Ruselmi/mine-and-cheet/internal/world"
	"github.com/Ruselmi/mine-and-cheet/internal/world/block"
)

var (
	eye  = mgl64.Vec3{0, 0, 0}
	east = mgl64.Vec3{1, 0, 0}
)

func newController(t *testing.T, cfg config.InteractionConfig) (*Controller, *world.Store) {
	t.Helper()
	store := world.NewStore()
	store.Set(vec.Vec3{X: 3}, block.StoneBlockID)
	store.Set(vec.Vec3{X: 4}, block.DirtBlockID)

	c := NewController(store, physics.NewPicker(store, cfg.Reach), cfg, metrics.New(prometheus.NewRegistry()))
	return c, store
}

func TestController_Highlight(t *testing.T) {
	c, _ := newController(t, config.Default().Interaction)

	_, ok := c.Highlight()
	assert.False(t, ok, "до первого Update подсветки нет")

	c.Update(eye, east)
	pos, ok := c.Highlight()
	require.True(t, ok)
	assert.Equal(t, vec.Vec3{X: 3}, pos)

	c.Update(eye, mgl64.Vec3{-1, 0, 0})
	_, ok = c.Highlight()
	assert.False(t, ok)
}

func TestController_BreakRefreshesPick(t *testing.T) {
	c, store := newController(t, config.Default().Interaction)
	c.Update(eye, east)

	require.True(t, c.Handle(input.ButtonPrimary))
	assert.False(t, store.IsSolid(vec.Vec3{X: 3}))

	pos, ok := c.Highlight()
	require.True(t, ok)
	assert.Equal(t, vec.Vec3{X: 4}, pos, "после ломания выбор переходит на следующий блок")

	require.True(t, c.Break())
	assert.False(t, c.Break(), "без выбора ломать нечего")
	assert.Equal(t, 0, store.Len())
}

func TestController_PlaceAdjacent(t *testing.T) {
	c, store := newController(t, config.Default().Interaction)
	c.Update(eye, east)

	require.True(t, c.Handle(input.ButtonSecondary))
	id, ok := store.Get(vec.Vec3{X: 2})
	require.True(t, ok)
	assert.Equal(t, block.GrassBlockID, id, "по умолчанию ставится трава")

	pos, _ := c.Highlight()
	assert.Equal(t, vec.Vec3{X: 2}, pos)
}

func TestController_PlaceOccupied(t *testing.T) {
	cfg := config.Default().Interaction

	// Клетка перед гранью занята блоком, стоящим внутри глаза игрока
	setup := func(replace bool) (*Controller, *world.Store) {
		cfg.ReplaceOccupied = replace
		c, store := newController(t, cfg)
		c.Update(mgl64.Vec3{2, 0, 0}, east)
		store.Set(vec.Vec3{X: 2}, block.SandBlockID)
		return c, store
	}

	c, store := setup(true)
	assert.True(t, c.Place())
	id, _ := store.Get(vec.Vec3{X: 2})
	assert.Equal(t, block.GrassBlockID, id, "занятая клетка перезаписывается")

	c, store = setup(false)
	assert.False(t, c.Place())
	id, _ = store.Get(vec.Vec3{X: 2})
	assert.Equal(t, block.SandBlockID, id)
}

func TestController_NoPickIsNoop(t *testing.T) {
	c, store := newController(t, config.Default().Interaction)
	c.Update(eye, mgl64.Vec3{0, 1, 0})

	assert.False(t, c.Handle(input.ButtonPrimary))
	assert.False(t, c.Handle(input.ButtonSecondary))
	assert.False(t, c.Handle(input.Button(99)))
	assert.Equal(t, 2, store.Len())
}

func TestController_SetPlaceBlock(t *testing.T) {
	c, _ := newController(t, config.Default().Interaction)

	assert.True(t, c.SetPlaceBlock(block.PlanksBlockID))
	assert.Equal(t, block.PlanksBlockID, c.PlaceBlock())
	assert.False(t, c.SetPlaceBlock(block.AirBlockID))
	assert.False(t, c.SetPlaceBlock(block.BlockID(999)))
	assert.Equal(t, block.PlanksBlockID, c.PlaceBlock())
}
