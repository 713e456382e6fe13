package types

import (
	"fmt"
	"testing"
)

func TestMakeRGB(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		want    RGB
	}{
		{"orange", 0xFF, 0xA5, 0x00, RGB(0xFFA500)},
		{"black", 0, 0, 0, Black},
		{"white", 0xFF, 0xFF, 0xFF, White},
		{"magenta", 0xFF, 0x00, 0xFF, Magenta},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MakeRGB(tt.r, tt.g, tt.b)
			if got != tt.want {
				t.Errorf("MakeRGB() = 0x%06X, want 0x%06X", uint32(got), uint32(tt.want))
			}
			if got.R() != tt.r || got.G() != tt.g || got.B() != tt.b {
				t.Errorf("components = (%d,%d,%d), want (%d,%d,%d)", got.R(), got.G(), got.B(), tt.r, tt.g, tt.b)
			}
		})
	}
}

func TestRGBFromFloat(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b float64
		want    RGB
	}{
		{"teal floor", 0.0, 0.5, 0.5, RGB(0x008080)},
		{"green wall", 0.0, 1.0, 0.0, Green},
		{"clamped", -1.0, 2.0, 0.0, Green},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RGBFromFloat(tt.r, tt.g, tt.b); got != tt.want {
				t.Errorf("RGBFromFloat() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestRGB_Greyscale(t *testing.T) {
	tests := []struct {
		name string
		c    RGB
		want RGB
	}{
		{"black stays black", Black, Black},
		{"white stays white", White, White},
		{"pure green", Green, MakeRGB(182, 182, 182)},
		{"pure red", Red, MakeRGB(54, 54, 54)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.c.Greyscale()
			if got != tt.want {
				t.Errorf("Greyscale(%s) = %s, want %s", tt.c, got, tt.want)
			}
			if got.R() != got.G() || got.G() != got.B() {
				t.Errorf("Greyscale(%s) = %s is not grey", tt.c, got)
			}
		})
	}
}

func TestRGB_String(t *testing.T) {
	tests := []struct {
		c    RGB
		want string
	}{
		{RGB(0xFFA500), "#FFA500"},
		{Black, "#000000"},
		{RGB(0x010203), "#010203"},
	}

	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("String() = %s, want %s", got, tt.want)
		}
	}
}

// Пример сборки цвета и получения его компонент.
func ExampleMakeRGB() {
	c := MakeRGB(0xFF, 0xA5, 0x00)

	fmt.Println(c)
	fmt.Println(c.R(), c.G(), c.B())

	// Output:
	// #FFA500
	// 255 165 0
}

func TestParseRGB(t *testing.T) {
	tests := []struct {
		input   string
		want    RGB
		wantErr bool
	}{
		{"#FF00FF", Magenta, false},
		{"ffff00", Yellow, false},
		{" #008080 ", RGB(0x008080), false},
		{"#FFF", Black, true},
		{"#GG0000", Black, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseRGB(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseRGB(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseRGB(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
