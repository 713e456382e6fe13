package engine

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/Boxfort/rustlike/pkg/dungeon"
	"github.com/Boxfort/rustlike/pkg/rng"
	"github.com/BurntSushi/toml"
)

// Переменные окружения, перекрывающие файл конфига
const (
	EnvSeed      = "RUSTLIKE_SEED"
	EnvTemplates = "RUSTLIKE_TEMPLATES"
	EnvRecord    = "RUSTLIKE_RECORD"
)

// ErrInvalidConfig возвращается при недопустимых значениях конфига.
var ErrInvalidConfig = errors.New("invalid config")

// Config хранит параметры запуска движка
type Config struct {
	// Seed - мастер-зерно. От него зависят карта, спавн и все броски.
	Seed        int64 `toml:"seed"`
	MaxMonsters int   `toml:"max_monsters"`
	MaxItems    int   `toml:"max_items"`

	// TemplatesPath - YAML с шаблонами сущностей; пусто = встроенные
	TemplatesPath string        `toml:"templates_path"`
	RecordPath    string        `toml:"record_path"`
	FrameDelay    time.Duration `toml:"frame_delay"`

	// Keys - переназначение клавиш: имя привязки -> список клавиш
	Keys map[string][]string `toml:"keys"`
}

// NewConfig создает конфиг по умолчанию (случайный сид)
func NewConfig() Config {
	return Config{
		Seed:        rng.RandomSeed(),
		MaxMonsters: dungeon.DefaultMaxMonsters,
		MaxItems:    dungeon.DefaultMaxItems,
		FrameDelay:  16 * time.Millisecond,
	}
}

// LoadConfig читает TOML поверх значений по умолчанию и применяет
// переменные окружения. Пустой path - только значения по умолчанию и окружение.
func LoadConfig(path string) (Config, error) {
	cfg := NewConfig()

	if path != "" {
		md, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return Config{}, fmt.Errorf("load config %s: %w", path, err)
		}
		// Опечатка в имени ключа иначе молча оставит значение по умолчанию
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return Config{}, fmt.Errorf("unknown key %q: %w", undecoded[0].String(), ErrInvalidConfig)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv(EnvSeed); ok && v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvSeed, v, ErrInvalidConfig)
		}
		c.Seed = seed
	}
	if v := os.Getenv(EnvTemplates); v != "" {
		c.TemplatesPath = v
	}
	if v := os.Getenv(EnvRecord); v != "" {
		c.RecordPath = v
	}
	return nil
}

// Validate проверяет значения конфига.
func (c Config) Validate() error {
	if c.MaxMonsters < 0 {
		return fmt.Errorf("max_monsters %d: %w", c.MaxMonsters, ErrInvalidConfig)
	}
	if c.MaxItems < 0 {
		return fmt.Errorf("max_items %d: %w", c.MaxItems, ErrInvalidConfig)
	}
	if c.FrameDelay < 0 {
		return fmt.Errorf("frame_delay %s: %w", c.FrameDelay, ErrInvalidConfig)
	}
	if _, err := NewKeyMap(c.Keys); err != nil {
		return fmt.Errorf("keys: %w", err)
	}
	return nil
}

// Templates загружает шаблоны из TemplatesPath или встроенные.
func (c Config) Templates() (*dungeon.Templates, error) {
	if c.TemplatesPath == "" {
		return dungeon.DefaultTemplates(), nil
	}
	return dungeon.LoadTemplates(c.TemplatesPath)
}
