package vec

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestRoundHalfUp(t *testing.T) {
	assert.Equal(t, 1, Round(0.5), "0.5 округляется вверх")
	assert.Equal(t, 0, Round(-0.5), "-0.5 округляется вверх, к нулю")
	assert.Equal(t, -1, Round(-0.51))
	assert.Equal(t, 3, Round(2.7))
}

func TestFromPoint(t *testing.T) {
	p := mgl64.Vec3{1.49, -0.2, 3.5}
	assert.Equal(t, Vec3{X: 1, Y: 0, Z: 4}, FromPoint(p))
}

func TestVec3Ops(t *testing.T) {
	a := Vec3{X: 2, Y: 3, Z: 4}

	assert.Equal(t, Vec3{X: 2, Y: 4, Z: 4}, a.Add(Up))
	assert.Equal(t, Vec2{X: 2, Z: 4}, a.Column())
	assert.Equal(t, a, a.Column().At(3))
	assert.True(t, Vec3{Y: 1}.Less(Vec3{Y: 2}))
	assert.True(t, Vec3{X: -1, Y: 2}.Less(Vec3{X: 0, Y: 2}))
}
