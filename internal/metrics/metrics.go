// Package metrics публикует метрики симуляции в Prometheus.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Namespace - общий префикс метрик песочницы
const Namespace = "sandbox"

// Metrics - набор коллекторов симуляции.
// Nil *Metrics допустим: все методы становятся no-op.
type Metrics struct {
	ticks          prometheus.Counter
	tickDuration   prometheus.Histogram
	blocksBroken   prometheus.Counter
	blocksPlaced   prometheus.Counter
	activeSessions prometheus.Gauge
	voxels         prometheus.Gauge
	worldGenTime   prometheus.Histogram
}

// New создаёт коллекторы и регистрирует их в reg
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ticks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "ticks_total",
			Help:      "Общее число выполненных тиков симуляции.",
		}),
		tickDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "tick_duration_seconds",
			Help:      "Длительность одного тика симуляции.",
			Buckets:   []float64{0.00005, 0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025},
		}),
		blocksBroken: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "blocks_broken_total",
			Help:      "Количество сломанных игроками блоков.",
		}),
		blocksPlaced: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "blocks_placed_total",
			Help:      "Количество установленных игроками блоков.",
		}),
		activeSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "active_sessions",
			Help:      "Текущее число запущенных сессий.",
		}),
		voxels: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "voxels",
			Help:      "Суммарное число вокселей во всех сессиях.",
		}),
		worldGenTime: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "world_generation_seconds",
			Help:      "Время генерации мира для новой сессии.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 10),
		}),
	}

	reg.MustRegister(
		m.ticks,
		m.tickDuration,
		m.blocksBroken,
		m.blocksPlaced,
		m.activeSessions,
		m.voxels,
		m.worldGenTime,
	)
	return m
}

// ObserveTick учитывает выполненный тик
func (m *Metrics) ObserveTick(d time.Duration) {
	if m == nil {
		return
	}
	m.ticks.Inc()
	m.tickDuration.Observe(d.Seconds())
}

// BlockBroken учитывает сломанный блок
func (m *Metrics) BlockBroken() {
	if m == nil {
		return
	}
	m.blocksBroken.Inc()
	m.voxels.Dec()
}

// BlockPlaced учитывает установленный блок; replaced - ячейка была занята
func (m *Metrics) BlockPlaced(replaced bool) {
	if m == nil {
		return
	}
	m.blocksPlaced.Inc()
	if !replaced {
		m.voxels.Inc()
	}
}

// SessionStarted учитывает новую сессию с готовым миром
func (m *Metrics) SessionStarted(voxels int, generation time.Duration) {
	if m == nil {
		return
	}
	m.activeSessions.Inc()
	m.voxels.Add(float64(voxels))
	m.worldGenTime.Observe(generation.Seconds())
}

// SessionEnded снимает сессию с учёта вместе с её вокселями
func (m *Metrics) SessionEnded(voxels int) {
	if m == nil {
		return
	}
	m.activeSessions.Dec()
	m.voxels.Sub(float64(voxels))
}
