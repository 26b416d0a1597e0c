package physics

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ruselmi/mine-and-cheet/internal/config"
	"github.com/Ruselmi/mine-and-cheet/internal/input"
	"github.com/Ruselmi/mine-and-cheet/internal/vec"
)

// heights - поле высот колонок для тестов
type heights map[vec.Vec2]int

func (h heights) HeightAt(x, z int) (int, bool) {
	v, ok := h[vec.Vec2{X: x, Z: z}]
	return v, ok
}

var lookNorth = View{Forward: mgl64.Vec3{0, 0, -1}, Up: mgl64.Vec3{0, 1, 0}}

func defaultKinematics(ground Ground) *Kinematics {
	return NewKinematics(ParamsFromConfig(config.Default().Physics), ground)
}

func TestStep_GroundClamp(t *testing.T) {
	k := defaultKinematics(heights{{}: 5})
	body := Body{
		Position: mgl64.Vec3{0, 7, 0},
		Velocity: mgl64.Vec3{0, -20, 0},
	}

	k.Step(&body, input.Sample{}, lookNorth, 0.1)

	assert.InDelta(t, 6.8, body.Position.Y(), 1e-9, "игрок стоит на высоте колонки плюс глаза")
	assert.Equal(t, 0.0, body.Velocity.Y())
	assert.True(t, body.Grounded)
}

func TestStep_AirborneAboveSurface(t *testing.T) {
	k := defaultKinematics(heights{{}: 0})
	body := Body{Position: mgl64.Vec3{0, 20, 0}, Grounded: true}

	k.Step(&body, input.Sample{}, lookNorth, 0.1)

	assert.False(t, body.Grounded)
	assert.InDelta(t, -1.96, body.Velocity.Y(), 1e-9)
	assert.InDelta(t, 20-0.196, body.Position.Y(), 1e-9)
}

func TestStep_DampingConverges(t *testing.T) {
	k := defaultKinematics(heights{{}: 0})
	body := Body{
		Position: mgl64.Vec3{0, 1.8, 0},
		Velocity: mgl64.Vec3{10, 0, -10},
	}

	prev := body.Velocity.X()
	for i := 0; i < 120; i++ {
		k.Step(&body, input.Sample{}, lookNorth, 1.0/60)
		assert.LessOrEqual(t, body.Velocity.X(), prev, "скорость монотонно убывает")
		assert.GreaterOrEqual(t, body.Velocity.X(), 0.0, "затухание не меняет знак")
		prev = body.Velocity.X()
	}
	assert.InDelta(t, 0, body.Velocity.X(), 1e-6)
	assert.InDelta(t, 0, body.Velocity.Z(), 1e-6)
}

func TestStep_LargeDeltaNeverFlipsVelocity(t *testing.T) {
	k := defaultKinematics(nil)
	k.Ground = heights{}
	floor := -100.0
	k.Params.FallbackFloor = &floor

	body := Body{Velocity: mgl64.Vec3{5, 0, 5}}
	k.Step(&body, input.Sample{}, lookNorth, 0.5)

	assert.Equal(t, 0.0, body.Velocity.X())
	assert.Equal(t, 0.0, body.Velocity.Z())
}

func TestStep_HorizontalVelocityDoesNotMoveBody(t *testing.T) {
	k := defaultKinematics(heights{{}: 0})
	body := k.Spawn(0, 0)
	body.Velocity = mgl64.Vec3{3, 0, -3}

	k.Step(&body, input.Sample{}, lookNorth, 0.05)

	assert.Equal(t, 0.0, body.Position.X(), "без ввода игрок не смещается по X")
	assert.Equal(t, 0.0, body.Position.Z(), "без ввода игрок не смещается по Z")
	assert.InDelta(t, 1.5, body.Velocity.X(), 1e-9, "скорость только затухает")
}

func TestStep_WalkForwardAndStrafe(t *testing.T) {
	k := defaultKinematics(heights{{}: 0, {Z: -1}: 0, {X: -1}: 0})

	body := k.Spawn(0, 0)
	k.Step(&body, input.Sample{Move: input.Move{Forward: 1}}, lookNorth, 0.1)
	assert.InDelta(t, -0.8, body.Position.Z(), 1e-9)
	assert.InDelta(t, 0, body.Position.X(), 1e-9)

	body = k.Spawn(0, 0)
	k.Step(&body, input.Sample{Move: input.Move{Strafe: 1}}, lookNorth, 0.1)
	// up × forward при взгляде на -Z указывает на -X
	assert.InDelta(t, -0.8, body.Position.X(), 1e-9)

	body = k.Spawn(0, 0)
	k.Step(&body, input.Sample{Move: input.Move{Strafe: 1, Forward: 1}}, lookNorth, 0.1)
	dist := mgl64.Vec2{body.Position.X(), body.Position.Z()}.Len()
	assert.InDelta(t, 0.8, dist, 1e-9, "диагональ нормализуется")
}

func TestStep_Jump(t *testing.T) {
	k := defaultKinematics(heights{{}: 3})
	body := k.Spawn(0, 0)
	require.True(t, body.Grounded)
	assert.InDelta(t, 4.8, body.Position.Y(), 1e-9)

	k.Step(&body, input.Sample{Jump: true}, lookNorth, 1.0/60)
	assert.False(t, body.Grounded)
	assert.InDelta(t, 6.0, body.Velocity.Y(), 1e-9)

	k.Step(&body, input.Sample{Jump: true}, lookNorth, 1.0/60)
	assert.Greater(t, body.Position.Y(), 4.8, "в воздухе повторный прыжок не срабатывает")
	assert.Less(t, body.Velocity.Y(), 6.0)
}

func TestStep_EmptyColumn(t *testing.T) {
	k := defaultKinematics(heights{})
	body := k.Spawn(0, 0)
	assert.False(t, body.Grounded)

	for i := 0; i < 10; i++ {
		k.Step(&body, input.Sample{}, lookNorth, 0.1)
	}
	assert.Less(t, body.Position.Y(), 0.0, "без земли игрок падает")
	assert.False(t, body.Grounded)

	floor := -2.0
	k.Params.FallbackFloor = &floor
	k.Step(&body, input.Sample{}, lookNorth, 0.1)
	assert.True(t, body.Grounded)
	assert.InDelta(t, -0.2, body.Position.Y(), 1e-9)
}

func TestStep_LiveHeightEdits(t *testing.T) {
	ground := heights{{}: 2}
	k := defaultKinematics(ground)
	body := k.Spawn(0, 0)

	ground[vec.Vec2{}] = 6
	k.Step(&body, input.Sample{}, lookNorth, 0.01)
	assert.InDelta(t, 7.8, body.Position.Y(), 1e-9, "высота читается из текущего состояния")
}

func TestSurfaceAtRoundsHalfUp(t *testing.T) {
	ground := heights{{X: 1}: 4, {}: 1}
	s, ok := SurfaceAt(ground, mgl64.Vec3{0.5, 0, 0.2}, 1.8, nil)
	require.True(t, ok)
	assert.InDelta(t, 5.8, s, 1e-9)

	s, ok = SurfaceAt(ground, mgl64.Vec3{0.49, 0, -0.5}, 1.8, nil)
	require.True(t, ok)
	assert.InDelta(t, 2.8, s, 1e-9)
}
