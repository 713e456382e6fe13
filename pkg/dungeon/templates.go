package dungeon

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/Boxfort/rustlike/internal/core/types"
	"github.com/Boxfort/rustlike/internal/core/types/enums"
	"gopkg.in/yaml.v3"
)

//go:embed templates.yaml
var defaultTemplatesYAML []byte

// ErrInvalidTemplate возвращается, если шаблон нельзя заспавнить.
var ErrInvalidTemplate = errors.New("invalid template")

// EntityTemplate определяет шаблон для создания существа
type EntityTemplate struct {
	Name     string `yaml:"name"`
	Glyph    string `yaml:"glyph"`
	FG       string `yaml:"fg"`
	BG       string `yaml:"bg"`
	HP       int    `yaml:"hp"`
	Defence  int    `yaml:"defence"`
	Power    int    `yaml:"power"`
	Vision   int    `yaml:"vision"`
	Behavior string `yaml:"behavior"`

	// Разобранные значения, заполняются в Validate
	glyph    byte
	fg, bg   types.RGB
	behavior enums.AIBehavior
}

// ItemTemplate определяет шаблон для создания предмета-сущности
type ItemTemplate struct {
	Name  string `yaml:"name"`
	Glyph string `yaml:"glyph"`
	FG    string `yaml:"fg"`
	BG    string `yaml:"bg"`
	Heal  int    `yaml:"heal"`

	glyph  byte
	fg, bg types.RGB
}

// Templates - набор шаблонов уровня
type Templates struct {
	Player   EntityTemplate   `yaml:"player"`
	Monsters []EntityTemplate `yaml:"monsters"`
	Items    []ItemTemplate   `yaml:"items"`
}

// DefaultTemplates возвращает встроенные шаблоны.
func DefaultTemplates() *Templates {
	t, err := ParseTemplates(defaultTemplatesYAML)
	if err != nil {
		// Встроенный файл проверяется тестами
		panic(fmt.Sprintf("embedded templates: %v", err))
	}
	return t
}

// LoadTemplates читает шаблоны из YAML-файла.
func LoadTemplates(path string) (*Templates, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read templates: %w", err)
	}
	return ParseTemplates(data)
}

// ParseTemplates разбирает и проверяет YAML с шаблонами.
func ParseTemplates(data []byte) (*Templates, error) {
	var t Templates
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// Validate проверяет шаблоны и заполняет разобранные поля.
func (t *Templates) Validate() error {
	if err := t.Player.validate(); err != nil {
		return fmt.Errorf("player: %w", err)
	}
	if len(t.Monsters) == 0 {
		return fmt.Errorf("monsters: %w: list is empty", ErrInvalidTemplate)
	}
	for i := range t.Monsters {
		if err := t.Monsters[i].validate(); err != nil {
			return fmt.Errorf("monsters[%d]: %w", i, err)
		}
	}
	if len(t.Items) == 0 {
		return fmt.Errorf("items: %w: list is empty", ErrInvalidTemplate)
	}
	for i := range t.Items {
		if err := t.Items[i].validate(); err != nil {
			return fmt.Errorf("items[%d]: %w", i, err)
		}
	}
	return nil
}

// Monster ищет шаблон монстра по имени.
func (t *Templates) Monster(name string) (EntityTemplate, bool) {
	for _, m := range t.Monsters {
		if m.Name == name {
			return m, true
		}
	}
	return EntityTemplate{}, false
}

// Item ищет шаблон предмета по имени.
func (t *Templates) Item(name string) (ItemTemplate, bool) {
	for _, it := range t.Items {
		if it.Name == name {
			return it, true
		}
	}
	return ItemTemplate{}, false
}

func (e *EntityTemplate) validate() error {
	if e.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidTemplate)
	}
	if e.HP < 1 {
		return fmt.Errorf("%w: %s has hp %d", ErrInvalidTemplate, e.Name, e.HP)
	}
	if e.Vision < 0 {
		return fmt.Errorf("%w: %s has negative vision", ErrInvalidTemplate, e.Name)
	}
	g, fg, bg, err := parseLook(e.Glyph, e.FG, e.BG)
	if err != nil {
		return fmt.Errorf("%s: %w", e.Name, err)
	}
	behavior, ok := enums.ParseAIBehavior(e.Behavior)
	if !ok {
		return fmt.Errorf("%w: %s has unknown behavior %q", ErrInvalidTemplate, e.Name, e.Behavior)
	}
	e.glyph, e.fg, e.bg, e.behavior = g, fg, bg, behavior
	return nil
}

func (it *ItemTemplate) validate() error {
	if it.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidTemplate)
	}
	if it.Heal < 0 {
		return fmt.Errorf("%w: %s heals a negative amount", ErrInvalidTemplate, it.Name)
	}
	g, fg, bg, err := parseLook(it.Glyph, it.FG, it.BG)
	if err != nil {
		return fmt.Errorf("%s: %w", it.Name, err)
	}
	it.glyph, it.fg, it.bg = g, fg, bg
	return nil
}

func parseLook(glyph, fg, bg string) (byte, types.RGB, types.RGB, error) {
	if len(glyph) != 1 {
		return 0, 0, 0, fmt.Errorf("%w: glyph %q must be one ASCII character", ErrInvalidTemplate, glyph)
	}
	fgc, err := types.ParseRGB(fg)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: fg: %v", ErrInvalidTemplate, err)
	}
	bgc := types.Black
	if bg != "" {
		if bgc, err = types.ParseRGB(bg); err != nil {
			return 0, 0, 0, fmt.Errorf("%w: bg: %v", ErrInvalidTemplate, err)
		}
	}
	return glyph[0], fgc, bgc, nil
}
