// Package theme holds the colors shared by every blockfall renderer.
package theme

import (
	"fmt"
	"image/color"

	"github.com/plus3/blockfall/tetris"
)

// Kind selects a palette.
type Kind uint8

const (
	Dark Kind = iota
	Light
)

func (k Kind) String() string {
	if k == Light {
		return "light"
	}
	return "dark"
}

// Toggle returns the other palette.
func (k Kind) Toggle() Kind {
	if k == Light {
		return Dark
	}
	return Light
}

// Parse maps "dark" or "light" to a Kind.
func Parse(s string) (Kind, error) {
	switch s {
	case "dark":
		return Dark, nil
	case "light":
		return Light, nil
	}
	return Dark, fmt.Errorf("unknown theme %q (want dark or light)", s)
}

// Palette is the set of UI colors for one theme.
type Palette struct {
	Background color.RGBA
	Panel      color.RGBA
	Text       color.RGBA
	Grid       color.RGBA
	Accent     color.RGBA
	Highlight  color.RGBA
}

var palettes = [...]Palette{
	Dark: {
		Background: color.RGBA{12, 16, 32, 255},
		Panel:      color.RGBA{20, 28, 52, 255},
		Text:       color.RGBA{220, 225, 240, 255},
		Grid:       color.RGBA{0, 60, 60, 60},
		Accent:     color.RGBA{0, 248, 255, 255},
		Highlight:  color.RGBA{255, 0, 180, 255},
	},
	Light: {
		Background: color.RGBA{235, 230, 245, 255},
		Panel:      color.RGBA{220, 215, 235, 255},
		Text:       color.RGBA{40, 35, 60, 255},
		Grid:       color.RGBA{80, 90, 120, 180},
		Accent:     color.RGBA{20, 120, 160, 255},
		Highlight:  color.RGBA{160, 20, 110, 255},
	},
}

// For returns the palette for k. Unknown kinds fall back to Dark.
func For(k Kind) Palette {
	if int(k) >= len(palettes) {
		return palettes[Dark]
	}
	return palettes[k]
}

// Piece returns the fill color for a tetromino. T takes the palette highlight.
func (p Palette) Piece(t tetris.Tetromino) color.RGBA {
	switch t {
	case tetris.I:
		return color.RGBA{0, 240, 240, 255}
	case tetris.O:
		return color.RGBA{240, 240, 0, 255}
	case tetris.T:
		return p.Highlight
	case tetris.S:
		return color.RGBA{0, 240, 0, 255}
	case tetris.Z:
		return color.RGBA{240, 0, 0, 255}
	case tetris.J:
		return color.RGBA{0, 0, 240, 255}
	case tetris.L:
		return color.RGBA{240, 160, 0, 255}
	}
	return p.Text
}

// Ghost returns c at the alpha used for ghost pieces, premultiplied.
func Ghost(c color.RGBA) color.RGBA {
	const alpha = 70
	return color.RGBA{
		R: uint8(uint16(c.R) * alpha / 255),
		G: uint8(uint16(c.G) * alpha / 255),
		B: uint8(uint16(c.B) * alpha / 255),
		A: alpha,
	}
}

// Floats splits c into 0..1 components, the form ImGui colors take.
func Floats(c color.RGBA) (r, g, b, a float32) {
	return float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A) / 255
}
