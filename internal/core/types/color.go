package types

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// RGB представляет 24-битный цвет в формате 0xRRGGBB.
//
//	[0:8]   - синий
//	[8:16]  - зелёный
//	[16:24] - красный
//
// Старшие 8 бит всегда нулевые.
type RGB uint32

// Константы для битовых операций с RGB
const (
	shiftRed   = 16
	shiftGreen = 8
	maskByte   = 0xFF
	maskColor  = 0xFFFFFF
)

// Именованные цвета, которыми пользуется игра.
const (
	Black    RGB = 0x000000
	White    RGB = 0xFFFFFF
	Red      RGB = 0xFF0000
	Green    RGB = 0x00FF00
	Yellow   RGB = 0xFFFF00
	Magenta  RGB = 0xFF00FF
	DarkGray RGB = 0x404040
)

// MakeRGB собирает цвет из трёх компонент.
//
// Пример:
//
//	// Оранжевый
//	c := MakeRGB(0xFF, 0xA5, 0x00) // 0xFFA500
func MakeRGB(r, g, b uint8) RGB {
	return RGB(uint32(r)<<shiftRed | uint32(g)<<shiftGreen | uint32(b))
}

// RGBFromFloat собирает цвет из компонент в диапазоне [0, 1].
// Значения вне диапазона обрезаются.
func RGBFromFloat(r, g, b float64) RGB {
	return MakeRGB(unitToByte(r), unitToByte(g), unitToByte(b))
}

// R извлекает красную компоненту.
func (c RGB) R() uint8 {
	return uint8((c >> shiftRed) & maskByte)
}

// G извлекает зелёную компоненту.
func (c RGB) G() uint8 {
	return uint8((c >> shiftGreen) & maskByte)
}

// B извлекает синюю компоненту.
func (c RGB) B() uint8 {
	return uint8(c & maskByte)
}

// Greyscale возвращает цвет, приведённый к оттенку серого
// с весами яркости Rec. 709. Используется для разведанных,
// но сейчас не видимых клеток.
func (c RGB) Greyscale() RGB {
	linear := 0.2126*float64(c.R())/255 + 0.7152*float64(c.G())/255 + 0.0722*float64(c.B())/255
	v := unitToByte(linear)
	return MakeRGB(v, v, v)
}

// String возвращает HEX-представление цвета (например, "#00FF00").
// Реализует интерфейс fmt.Stringer.
func (c RGB) String() string {
	return fmt.Sprintf("#%06X", uint32(c)&maskColor)
}

// ParseRGB разбирает цвет вида "#RRGGBB" (решётка необязательна).
func ParseRGB(s string) (RGB, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return Black, fmt.Errorf("color %q: want 6 hex digits", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Black, fmt.Errorf("color %q: %w", s, err)
	}
	return RGB(v), nil
}

func unitToByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(math.Round(v * 255))
}
