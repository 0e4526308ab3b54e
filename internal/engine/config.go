package engine

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/th3w1zard1/Andastra-sub005/internal/systems"
)

// Config хранит параметры запуска движка
type Config struct {
	// Seed - мастер-зерно симуляции. Один сид = один и тот же прогон.
	Seed int64 `yaml:"seed"`

	// TickDurationMs - длительность одного тика симуляции
	TickDurationMs int `yaml:"tick_duration_ms"`

	// MaxBumps - предохранитель детектора столкновений
	MaxBumps int `yaml:"max_bumps"`

	// Port - порт наблюдательного HTTP/WS сервера
	Port string `yaml:"port"`
}

// NewConfig создает конфиг по умолчанию (случайный сид)
func NewConfig() Config {
	return Config{
		Seed:           time.Now().UnixNano(),
		TickDurationMs: 100,
		MaxBumps:       systems.DefaultMaxBumps,
		Port:           "8080",
	}
}

// LoadConfig читает YAML поверх значений по умолчанию:
// незаполненные поля файла остаются дефолтными.
func LoadConfig(path string) (Config, error) {
	cfg := NewConfig()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if cfg.TickDurationMs <= 0 {
		cfg.TickDurationMs = 100
	}
	return cfg, nil
}

// TickDuration - длительность тика как time.Duration
func (c Config) TickDuration() time.Duration {
	return time.Duration(c.TickDurationMs) * time.Millisecond
}

// Dt - длительность тика в секундах (дельта для Update)
func (c Config) Dt() float64 {
	return float64(c.TickDurationMs) / 1000.0
}
