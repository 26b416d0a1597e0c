// Package game собирает ядро песочницы в одну сессию с тиковым циклом.
package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/Ruselmi/mine-and-cheet/internal/config"
	"github.com/Ruselmi/mine-and-cheet/internal/input"
	"github.com/Ruselmi/mine-and-cheet/internal/interaction"
	"github.com/Ruselmi/mine-and-cheet/internal/logging"
	"github.com/Ruselmi/mine-and-cheet/internal/metrics"
	"github.com/Ruselmi/mine-and-cheet/internal/noise"
	"github.com/Ruselmi/mine-and-cheet/internal/physics"
	"github.com/Ruselmi/mine-and-cheet/internal/vec"
	"github.com/Ruselmi/mine-and-cheet/internal/world"
)

// Frame - вход одного тика.
// Нулевой Camera.Forward означает, что камерой управляет сама сессия по Input.Look.
type Frame struct {
	Camera physics.View `json:"camera"`
	Input  input.Sample `json:"input"`
}

// Update - выход одного тика для отрисовки
type Update struct {
	Tick        uint64             `json:"tick"`
	Player      physics.Body       `json:"player"`
	Orientation input.Orientation  `json:"orientation"`
	Highlight   *vec.Vec3          `json:"highlight,omitempty"`
	Changes     []world.BlockEvent `json:"changes,omitempty"`
}

// Snapshot - полное состояние для первичной отрисовки
type Snapshot struct {
	ID          string            `json:"id"`
	Seed        int64             `json:"seed"`
	Tick        uint64            `json:"tick"`
	Voxels      []world.Voxel     `json:"voxels"`
	Player      physics.Body      `json:"player"`
	Orientation input.Orientation `json:"orientation"`
	Highlight   *vec.Vec3         `json:"highlight,omitempty"`
}

// Session - один приватный мир с одним игроком.
// Tick и Snapshot вызываются из одной горутины.
type Session struct {
	id   string
	seed int64
	cfg  *config.Config

	store       *world.Store
	recorder    *world.Recorder
	kinematics  *physics.Kinematics
	controller  *interaction.Controller
	metrics     *metrics.Metrics
	body        physics.Body
	orientation input.Orientation
	tick        uint64
	closed      bool
}

type options struct {
	rng     world.Rand
	field   noise.Field
	metrics *metrics.Metrics
}

// Option настраивает NewSession
type Option func(*options)

// WithRand задаёт источник случайности генератора
func WithRand(r world.Rand) Option {
	return func(o *options) { o.rng = r }
}

// WithNoise подменяет поле высот
func WithNoise(f noise.Field) Option {
	return func(o *options) { o.field = f }
}

// WithMetrics включает публикацию метрик
func WithMetrics(m *metrics.Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// NewSession генерирует мир и ставит игрока на колонку спавна
func NewSession(cfg *config.Config, opts ...Option) *Session {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	seed := cfg.World.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if o.field == nil {
		o.field = noise.NewPerlin(seed)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(seed))
	}

	s := &Session{
		id:       uuid.NewString(),
		seed:     seed,
		cfg:      cfg,
		store:    world.NewStore(),
		recorder: &world.Recorder{},
		metrics:  o.metrics,
	}

	stats := world.NewGenerator(cfg.World, o.field, o.rng).Generate(s.store)
	// Изменения генерации не нужны в ленте: они уже есть в снимке
	s.store.Subscribe(s.recorder.Record)

	s.kinematics = physics.NewKinematics(physics.ParamsFromConfig(cfg.Physics), s.store)
	s.body = s.kinematics.Spawn(cfg.Session.SpawnX, cfg.Session.SpawnZ)

	picker := physics.NewPicker(s.store, cfg.Interaction.Reach)
	s.controller = interaction.NewController(s.store, picker, cfg.Interaction, o.metrics)
	s.controller.Update(s.body.Position, s.orientation.Forward())

	o.metrics.SessionStarted(s.store.Len(), stats.Duration)
	logging.Info("🎮 Сессия %s создана: seed=%d, вокселей=%d, игрок в %v",
		s.id, seed, s.store.Len(), s.body.Position)
	return s
}

// ID возвращает идентификатор сессии
func (s *Session) ID() string { return s.id }

// Seed возвращает фактический сид мира
func (s *Session) Seed() int64 { return s.seed }

// Store возвращает хранилище мира
func (s *Session) Store() *world.Store { return s.store }

// Controller возвращает контроллер взаимодействия
func (s *Session) Controller() *interaction.Controller { return s.controller }

// Player возвращает состояние игрока
func (s *Session) Player() physics.Body { return s.body }

// Tick продвигает симуляцию на delta секунд
func (s *Session) Tick(delta float64, f Frame) Update {
	start := time.Now()
	s.tick++

	s.orientation.Apply(f.Input.Look)
	view := f.Camera
	if view.Forward.Len() == 0 {
		view.Forward = s.orientation.Forward()
	}
	if view.Up.Len() == 0 {
		view.Up = s.orientation.Up()
	}

	s.kinematics.Step(&s.body, f.Input, view, delta)

	s.controller.Update(s.body.Position, view.Forward)
	for _, b := range f.Input.Clicks {
		s.controller.Handle(b)
	}

	u := Update{
		Tick:        s.tick,
		Player:      s.body,
		Orientation: s.orientation,
		Highlight:   s.highlight(),
		Changes:     s.recorder.Drain(),
	}

	s.metrics.ObserveTick(time.Since(start))
	if len(u.Changes) > 0 {
		logging.Trace("Тик %d сессии %s: %d изменений", s.tick, s.id, len(u.Changes))
	}
	return u
}

// Snapshot возвращает полное текущее состояние
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		ID:          s.id,
		Seed:        s.seed,
		Tick:        s.tick,
		Voxels:      s.store.Voxels(),
		Player:      s.body,
		Orientation: s.orientation,
		Highlight:   s.highlight(),
	}
}

// Run выполняет тики с частотой cfg.Session.TickRate, забирая ввод из src,
// и передаёт результат в out. Завершается при отмене ctx или ошибке out.
func (s *Session) Run(ctx context.Context, src input.Adapter, out func(Update) error) error {
	rate := s.cfg.Session.TickRate
	if rate <= 0 || rate > config.MaxTickRate {
		return fmt.Errorf("недопустимая частота тиков %d", rate)
	}
	interval := time.Second / time.Duration(rate)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			delta := s.clampDelta(now.Sub(last).Seconds())
			last = now

			if err := out(s.Tick(delta, Frame{Input: src.Sample()})); err != nil {
				return err
			}
		}
	}
}

// Close снимает сессию с учёта метрик. Повторный вызов - no-op.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.metrics.SessionEnded(s.store.Len())
	logging.Info("👋 Сессия %s завершена после %d тиков", s.id, s.tick)
}

func (s *Session) clampDelta(delta float64) float64 {
	if limit := s.cfg.Session.MaxDelta; limit > 0 && delta > limit {
		return limit
	}
	return delta
}

func (s *Session) highlight() *vec.Vec3 {
	pos, ok := s.controller.Highlight()
	if !ok {
		return nil
	}
	return &pos
}
