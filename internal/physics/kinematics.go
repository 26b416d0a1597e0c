package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Ruselmi/mine-and-cheet/internal/config"
	"github.com/Ruselmi/mine-and-cheet/internal/input"
)

// Body - состояние игрока. Position - точка глаз.
type Body struct {
	Position mgl64.Vec3 `json:"position"`
	Velocity mgl64.Vec3 `json:"velocity"`
	Grounded bool       `json:"grounded"`
}

// Params - константы кинематики
type Params struct {
	Speed         float64
	Damping       float64
	Gravity       float64
	JumpImpulse   float64
	EyeHeight     float64
	FallbackFloor *float64
}

// ParamsFromConfig переносит параметры из конфигурации
func ParamsFromConfig(cfg config.PhysicsConfig) Params {
	return Params{
		Speed:         cfg.Speed,
		Damping:       cfg.Damping,
		Gravity:       cfg.Gravity,
		JumpImpulse:   cfg.JumpImpulse,
		EyeHeight:     cfg.EyeHeight,
		FallbackFloor: cfg.FallbackFloor,
	}
}

// View - базис камеры на текущем тике
type View struct {
	Forward mgl64.Vec3 `json:"forward"`
	Up      mgl64.Vec3 `json:"up"`
}

// Kinematics двигает тело игрока над полем высот
type Kinematics struct {
	Params Params
	Ground Ground
}

// NewKinematics создаёт кинематику игрока
func NewKinematics(params Params, ground Ground) *Kinematics {
	return &Kinematics{Params: params, Ground: ground}
}

// Step продвигает тело на delta секунд.
// Движение идёт вдоль полного вектора взгляда, поэтому взгляд вверх поднимает игрока.
func (k *Kinematics) Step(body *Body, sample input.Sample, view View, delta float64) {
	if delta <= 0 {
		return
	}
	p := k.Params

	// Экспоненциальное затухание; множитель не уходит в минус при большом delta
	damp := math.Max(0, 1-p.Damping*delta)
	body.Velocity[0] *= damp
	body.Velocity[2] *= damp

	body.Velocity[1] -= p.Gravity * delta

	move := sample.Move.Normalized()
	forward := normalizeOrZero(view.Forward)
	right := normalizeOrZero(view.Up.Cross(forward))

	if move.Forward != 0 {
		body.Position = body.Position.Add(forward.Mul(move.Forward * p.Speed * delta))
	}
	if move.Strafe != 0 {
		body.Position = body.Position.Add(right.Mul(move.Strafe * p.Speed * delta))
	}
	// Горизонтальная скорость только затухает; перемещение по X/Z задаёт ввод
	body.Position[1] += body.Velocity[1] * delta

	ResolveGround(body, k.Ground, p.EyeHeight, p.FallbackFloor)

	if body.Grounded && sample.Jump {
		body.Velocity[1] += p.JumpImpulse
		body.Grounded = false
	}
}

// Spawn ставит тело на поверхность колонки (x, z).
// Над пустой колонкой без запасного пола тело появляется на высоте глаз и падает.
func (k *Kinematics) Spawn(x, z int) Body {
	pos := mgl64.Vec3{float64(x), 0, float64(z)}
	surface, ok := SurfaceAt(k.Ground, pos, k.Params.EyeHeight, k.Params.FallbackFloor)
	if !ok {
		pos[1] = k.Params.EyeHeight
		return Body{Position: pos}
	}
	pos[1] = surface
	return Body{Position: pos, Grounded: true}
}

func normalizeOrZero(v mgl64.Vec3) mgl64.Vec3 {
	if v.Len() == 0 {
		return mgl64.Vec3{}
	}
	return v.Normalize()
}
