package input

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyboardMapping(t *testing.T) {
	k := NewKeyboard()

	assert.True(t, k.Sample().Move.IsZero(), "без нажатий движения нет")

	k.KeyDown(KeyForward)
	k.KeyDown(KeyRight)
	s := k.Sample()
	assert.Equal(t, Move{Strafe: 1, Forward: 1}, s.Move)
	assert.False(t, s.Jump)

	k.KeyDown(KeyBack)
	k.KeyDown(KeyJump)
	s = k.Sample()
	assert.Equal(t, 0.0, s.Move.Forward, "W и S гасят друг друга")
	assert.True(t, s.Jump)

	s = k.Sample()
	assert.True(t, s.Jump, "прыжок - уровень, держится пока нажат")

	k.KeyUp(KeyJump)
	k.KeyUp(KeyRight)
	k.KeyDown(KeyLeft)
	s = k.Sample()
	assert.False(t, s.Jump)
	assert.Equal(t, -1.0, s.Move.Strafe)
}

func TestKeyboardClicksAreDrained(t *testing.T) {
	k := NewKeyboard()
	k.Click(ButtonPrimary)
	k.Click(ButtonSecondary)

	assert.Equal(t, []Button{ButtonPrimary, ButtonSecondary}, k.Sample().Clicks)
	assert.Empty(t, k.Sample().Clicks, "клик обрабатывается ровно один раз")
}

func TestKeyboardPointerLook(t *testing.T) {
	k := NewKeyboard()
	k.PointerMove(100, -50)
	k.PointerMove(100, 0)

	s := k.Sample()
	assert.InDelta(t, -0.4, s.Look.Yaw, 1e-9)
	assert.InDelta(t, 0.1, s.Look.Pitch, 1e-9)
	assert.Equal(t, Look{}, k.Sample().Look)
}

func TestJoystickMapping(t *testing.T) {
	j := NewJoystick()
	j.Move(0.6, -0.8)

	s := j.Sample()
	assert.InDelta(t, 0.8, s.Move.Forward, 1e-9)
	assert.InDelta(t, -0.6, s.Move.Strafe, 1e-9)
	assert.False(t, s.Jump, "у джойстика нет прыжка")

	j.Release()
	assert.True(t, j.Sample().Move.IsZero())
}

func TestTouchDragLooksAndWalks(t *testing.T) {
	tc := NewTouch()

	tc.MoveTo(10, 10)
	assert.Equal(t, Sample{}, tc.Sample(), "движение без касания игнорируется")

	tc.Start(100, 100)
	tc.MoveTo(120, 90)

	s := tc.Sample()
	assert.Equal(t, 1.0, s.Move.Forward)
	assert.InDelta(t, -20*TouchSensitivity, s.Look.Yaw, 1e-9)
	assert.InDelta(t, 10*TouchSensitivity, s.Look.Pitch, 1e-9)

	tc.End()
	s = tc.Sample()
	assert.True(t, s.Move.IsZero())
	assert.Equal(t, Look{}, s.Look)
}

func TestMoveNormalized(t *testing.T) {
	m := Move{Strafe: 1, Forward: 1}.Normalized()
	assert.InDelta(t, 1.0, math.Hypot(m.Strafe, m.Forward), 1e-9)
	assert.Equal(t, Move{}, Move{}.Normalized())
}

func TestOrientation(t *testing.T) {
	var o Orientation
	f := o.Forward()
	assert.InDeltaSlice(t, []float64{0, 0, -1}, f[:], 1e-9)

	o.Apply(Look{Pitch: 10})
	assert.Equal(t, math.Pi/2, o.Pitch, "тангаж ограничен")

	o = Orientation{}
	o.Apply(Look{Yaw: math.Pi / 2})
	f = o.Forward()
	assert.InDeltaSlice(t, []float64{-1, 0, 0}, f[:], 1e-9)
}

func TestSampleJSON(t *testing.T) {
	var s Sample
	require.NoError(t, json.Unmarshal([]byte(`{"move":{"forward":1},"jump":true,"clicks":["primary","secondary"]}`), &s))
	assert.Equal(t, Sample{
		Move:   Move{Forward: 1},
		Jump:   true,
		Clicks: []Button{ButtonPrimary, ButtonSecondary},
	}, s)

	assert.Error(t, json.Unmarshal([]byte(`{"clicks":["middle"]}`), &s))
}

func TestAdaptersImplementInterface(t *testing.T) {
	for _, a := range []Adapter{NewKeyboard(), NewJoystick(), NewTouch()} {
		assert.NotNil(t, a)
	}
}
