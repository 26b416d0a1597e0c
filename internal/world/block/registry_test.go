package block_test

import (
	"encoding/json"
	"testing"

	"github.com/Ruselmi/mine-and-cheet/internal/world/block"
	// Импортируем реализации блоков для регистрации в init()
	_ "github.com/Ruselmi/mine-and-cheet/internal/world/block/implementations"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryLookup(t *testing.T) {
	for _, id := range []block.BlockID{block.AirBlockID, block.GrassBlockID, block.DirtBlockID, block.LogBlockID, block.LeafBlockID, block.StoneBlockID, block.SandBlockID, block.PlanksBlockID} {
		behavior, ok := block.Get(id)
		require.True(t, ok, "блок %d должен быть зарегистрирован", id)
		assert.Equal(t, id, behavior.ID())

		found, ok := block.Lookup(behavior.Name())
		assert.True(t, ok)
		assert.Equal(t, id, found)
	}

	_, ok := block.Lookup("obsidian")
	assert.False(t, ok)
}

func TestBlockIDText(t *testing.T) {
	assert.Equal(t, "grass", block.GrassBlockID.String())
	assert.Equal(t, "block(999)", block.BlockID(999).String())

	var id block.BlockID
	require.NoError(t, id.UnmarshalText([]byte("Leaf")))
	assert.Equal(t, block.LeafBlockID, id)

	require.NoError(t, id.UnmarshalText([]byte("3")))
	assert.Equal(t, block.LogBlockID, id)

	assert.Error(t, id.UnmarshalText([]byte("lava")))
}

func TestBlockIDJSON(t *testing.T) {
	data, err := json.Marshal(map[string]block.BlockID{"kind": block.DirtBlockID})
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"dirt"}`, string(data))

	var decoded struct {
		Kind block.BlockID `json:"kind"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"kind":"log"}`), &decoded))
	assert.Equal(t, block.LogBlockID, decoded.Kind)
}

func TestGrassFaces(t *testing.T) {
	behavior, ok := block.Get(block.GrassBlockID)
	require.True(t, ok)

	faces := behavior.Faces()
	assert.Equal(t, "earth_loam_grass_top", faces.Top)
	assert.Equal(t, "earth_loam_grassy_sides", faces.Side)
	assert.Equal(t, "earth_loam", faces.Bottom)
}

func TestAllSorted(t *testing.T) {
	all := block.All()
	require.NotEmpty(t, all)
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].ID(), all[i].ID())
	}
}

func TestBuildingBlockFaces(t *testing.T) {
	sand, ok := block.Get(block.SandBlockID)
	require.True(t, ok)
	assert.Equal(t, block.Uniform("sand"), sand.Faces())

	planks, ok := block.Get(block.PlanksBlockID)
	require.True(t, ok)
	assert.Equal(t, "planks", planks.ID().String())
	assert.Equal(t, block.Uniform("planks_oak"), planks.Faces())
}
