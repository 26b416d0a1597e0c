package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/Ruselmi/mine-and-cheet/internal/world/block"
	// Имена блоков в конфиге разбираются через регистр
	_ "github.com/Ruselmi/mine-and-cheet/internal/world/block/implementations"
)

// Config корневая структура конфигурации песочницы.
// Любое поле, отсутствующее в YAML, сохраняет значение из Default().
type Config struct {
	World       WorldConfig       `yaml:"world"`
	Physics     PhysicsConfig     `yaml:"physics"`
	Interaction InteractionConfig `yaml:"interaction"`
	Session     SessionConfig     `yaml:"session"`
	Server      ServerConfig      `yaml:"server"`
	Logging     LoggingConfig     `yaml:"logging"`
	Telemetry   TelemetryConfig   `yaml:"telemetry"`
}

// WorldConfig параметры генерации мира
type WorldConfig struct {
	Seed          int64   `yaml:"seed"`           // 0 - выбрать сид по времени
	Size          int     `yaml:"size"`           // Сторона квадрата генерации в блоках
	TerrainScale  float64 `yaml:"terrain_scale"`  // Делитель координат перед выборкой шума
	TerrainHeight float64 `yaml:"terrain_height"` // Максимальная высота ландшафта
	TreeChance    float64 `yaml:"tree_chance"`    // Вероятность дерева на колонку
}

// PhysicsConfig параметры кинематики игрока
type PhysicsConfig struct {
	Speed         float64  `yaml:"speed"`          // Скорость ходьбы, блоков/с
	Damping       float64  `yaml:"damping"`        // Коэффициент затухания горизонтальной скорости
	Gravity       float64  `yaml:"gravity"`        // Ускорение свободного падения
	JumpImpulse   float64  `yaml:"jump_impulse"`   // Вертикальный импульс прыжка
	EyeHeight     float64  `yaml:"eye_height"`     // Высота глаз над поверхностью
	FallbackFloor *float64 `yaml:"fallback_floor"` // Пол для пустых колонок (nil - бесконечное падение)
}

// InteractionConfig параметры ломания и установки блоков
type InteractionConfig struct {
	Reach           float64       `yaml:"reach"`            // Дальность выбора блока
	PlaceBlock      block.BlockID `yaml:"place_block"`      // Тип устанавливаемого блока
	ReplaceOccupied bool          `yaml:"replace_occupied"` // Перезаписывать занятую ячейку при установке
}

// MaxTickRate - верхняя граница session.tick_rate
const MaxTickRate = 1000

// SessionConfig параметры игрового цикла
type SessionConfig struct {
	TickRate int     `yaml:"tick_rate"` // Тиков в секунду
	MaxDelta float64 `yaml:"max_delta"` // Ограничение шага времени, секунды (0 - без ограничения)
	SpawnX   int     `yaml:"spawn_x"`
	SpawnZ   int     `yaml:"spawn_z"`
}

// ServerConfig параметры HTTP/WebSocket хоста
type ServerConfig struct {
	HTTPPort    int   `yaml:"http_port"`
	ReadLimit   int64 `yaml:"read_limit"`    // Максимальный размер входящего сообщения
	SendBuffer  int   `yaml:"send_buffer"`   // Размер очереди исходящих кадров
	GzipMinSize int   `yaml:"gzip_min_size"` // Снимки меньше этого размера не сжимаются
}

// LoggingConfig параметры логирования
type LoggingConfig struct {
	Level string `yaml:"level"` // trace, debug, info, warn, error
	Dir   string `yaml:"dir"`   // Каталог файлов логов; пусто - только консоль
}

// TelemetryConfig параметры OpenTelemetry
type TelemetryConfig struct {
	Enabled     bool   `yaml:"enabled"`
	ServiceName string `yaml:"service_name"`
	Endpoint    string `yaml:"endpoint"` // host:port OTLP HTTP; пусто - localhost:4318
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	return &Config{
		World: WorldConfig{
			Size:          20,
			TerrainScale:  20,
			TerrainHeight: 8,
			TreeChance:    0.02,
		},
		Physics: PhysicsConfig{
			Speed:       8.0,
			Damping:     10.0,
			Gravity:     9.8 * 2.0,
			JumpImpulse: 6.0,
			EyeHeight:   1.8,
		},
		Interaction: InteractionConfig{
			Reach:           6.0,
			PlaceBlock:      block.GrassBlockID,
			ReplaceOccupied: true,
		},
		Session: SessionConfig{
			TickRate: 60,
			MaxDelta: 0.1,
		},
		Server: ServerConfig{
			ReadLimit:   4096,
			SendBuffer:  16,
			GzipMinSize: 1024,
		},
		Logging: LoggingConfig{
			Level: "info",
			Dir:   "logs",
		},
		Telemetry: TelemetryConfig{
			ServiceName: "mine-and-cheet",
		},
	}
}

// GetHTTPPort возвращает HTTP порт с поддержкой fallback значений
func (s *ServerConfig) GetHTTPPort() int {
	return getPortWithEnvFallback(s.HTTPPort, "SANDBOX_HTTP_PORT", 8088)
}

// getPortWithEnvFallback возвращает порт с приоритетом: config -> env -> default
func getPortWithEnvFallback(configPort int, envVar string, defaultPort int) int {
	if configPort > 0 {
		return configPort
	}

	if envVal := os.Getenv(envVar); envVal != "" {
		if port, err := strconv.Atoi(envVal); err == nil && port > 0 {
			return port
		}
	}

	return defaultPort
}

// Validate проверяет согласованность параметров
func (c *Config) Validate() error {
	var errs []error

	if c.World.Size <= 0 {
		errs = append(errs, fmt.Errorf("world.size должен быть положительным, получено %d", c.World.Size))
	}
	if c.World.TerrainScale <= 0 {
		errs = append(errs, fmt.Errorf("world.terrain_scale должен быть положительным, получено %g", c.World.TerrainScale))
	}
	if c.World.TerrainHeight < 0 {
		errs = append(errs, fmt.Errorf("world.terrain_height не может быть отрицательным, получено %g", c.World.TerrainHeight))
	}
	if c.World.TreeChance < 0 || c.World.TreeChance > 1 {
		errs = append(errs, fmt.Errorf("world.tree_chance должен быть в [0, 1], получено %g", c.World.TreeChance))
	}
	if c.Physics.Damping < 0 || c.Physics.Gravity < 0 || c.Physics.Speed < 0 {
		errs = append(errs, errors.New("physics: скорость, затухание и гравитация не могут быть отрицательными"))
	}
	if c.Physics.EyeHeight < 0 {
		errs = append(errs, fmt.Errorf("physics.eye_height не может быть отрицательным, получено %g", c.Physics.EyeHeight))
	}
	if c.Interaction.Reach <= 0 {
		errs = append(errs, fmt.Errorf("interaction.reach должен быть положительным, получено %g", c.Interaction.Reach))
	}
	if c.Interaction.PlaceBlock == block.AirBlockID || !block.IsValidBlockID(c.Interaction.PlaceBlock) {
		errs = append(errs, fmt.Errorf("interaction.place_block: недопустимый блок %s", c.Interaction.PlaceBlock))
	}
	if c.Session.TickRate <= 0 || c.Session.TickRate > MaxTickRate {
		errs = append(errs, fmt.Errorf("session.tick_rate должен быть в [1, %d], получено %d", MaxTickRate, c.Session.TickRate))
	}
	if c.Session.MaxDelta < 0 {
		errs = append(errs, fmt.Errorf("session.max_delta не может быть отрицательным, получено %g", c.Session.MaxDelta))
	}

	return errors.Join(errs...)
}

// Load читает YAML файл конфигурации поверх значений по умолчанию.
// Если path == "", пытается прочитать путь из ENV SANDBOX_CONFIG;
// если и он не задан, возвращает Default().
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv("SANDBOX_CONFIG")
		if path == "" {
			return cfg, nil // конфиг не задан, используем дефолты
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения конфигурации %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("ошибка разбора конфигурации %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("некорректная конфигурация %s: %w", path, err)
	}

	return cfg, nil
}
