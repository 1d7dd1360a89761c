package ansicsi

import "fmt"

// ColorType tracks where a Color value comes from.
type ColorType uint8

const (
	// ColorTypeNone means the terminal's default color.
	ColorTypeNone ColorType = iota
	// ColorTypePalette is an index into the 256 color palette.
	ColorTypePalette
	// ColorTypeRGB is a direct 24-bit color.
	ColorTypeRGB
)

// RGB is a 24-bit color value.
type RGB struct {
	R, G, B uint8
}

// Color is an extended SGR color: unset (terminal default), one of the
// 256 palette entries, or a direct 24-bit value. The zero Color is the
// default color.
type Color struct {
	Type    ColorType
	Palette uint8
	RGB     RGB
}

// PaletteColor selects entry i of the 256 color palette. 0-15 are the
// basic and bright named colors, 16-231 the 6x6x6 cube, 232-255 the gray
// ramp.
func PaletteColor(i uint8) Color {
	return Color{Type: ColorTypePalette, Palette: i}
}

// RGBColor selects a direct 24-bit color.
func RGBColor(r, g, b uint8) Color {
	return Color{Type: ColorTypeRGB, RGB: RGB{R: r, G: g, B: b}}
}

// params renders the SGR parameter list for this color. base is 38 for
// foreground, 48 for background; the matching default codes are 39/49.
func (c Color) params(base int) string {
	switch c.Type {
	case ColorTypePalette:
		return fmt.Sprintf("%d;5;%d", base, c.Palette)
	case ColorTypeRGB:
		return fmt.Sprintf("%d;2;%d;%d;%d", base, c.RGB.R, c.RGB.G, c.RGB.B)
	default:
		return fmt.Sprintf("%d", base+1)
	}
}

// Resolve returns the RGB value this color renders as under the default
// palette. Direct colors resolve to themselves; the default color
// resolves to the palette's white.
func (c Color) Resolve() RGB {
	switch c.Type {
	case ColorTypePalette:
		return DefaultPalette[c.Palette]
	case ColorTypeRGB:
		return c.RGB
	default:
		return DefaultPalette[7]
	}
}

// Foreground sets the foreground to an extended color:
// `38;5;{i}m` for palette entries, `38;2;{r};{g};{b}m` for direct color,
// `39m` for the default.
func (w *Writer) Foreground(c Color) error {
	return w.csi("%sm", c.params(38))
}

// Background sets the background to an extended color, using the 48/49
// parameter family.
func (w *Writer) Background(c Color) error {
	return w.csi("%sm", c.params(48))
}

// named entries 0-15, xterm defaults.
var namedRGB = [16]RGB{
	{0x00, 0x00, 0x00}, // black
	{0xCD, 0x00, 0x00}, // red
	{0x00, 0xCD, 0x00}, // green
	{0xCD, 0xCD, 0x00}, // yellow
	{0x00, 0x00, 0xEE}, // blue
	{0xCD, 0x00, 0xCD}, // magenta
	{0x00, 0xCD, 0xCD}, // cyan
	{0xE5, 0xE5, 0xE5}, // white
	{0x7F, 0x7F, 0x7F}, // bright black
	{0xFF, 0x00, 0x00}, // bright red
	{0x00, 0xFF, 0x00}, // bright green
	{0xFF, 0xFF, 0x00}, // bright yellow
	{0x5C, 0x5C, 0xFF}, // bright blue
	{0xFF, 0x00, 0xFF}, // bright magenta
	{0x00, 0xFF, 0xFF}, // bright cyan
	{0xFF, 0xFF, 0xFF}, // bright white
}

// DefaultPalette is the standard xterm 256 color palette: 16 named
// values, the 6x6x6 color cube, then the 24 step gray ramp.
var DefaultPalette = func() [256]RGB {
	var result [256]RGB

	i := 0
	for ; i < 16; i++ {
		result[i] = namedRGB[i]
	}

	// Cube. Component values are 0 then 95 + 40 per step.
	level := func(v int) uint8 {
		if v == 0 {
			return 0
		}
		return uint8(v*40 + 55)
	}
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				result[i] = RGB{R: level(r), G: level(g), B: level(b)}
				i++
			}
		}
	}

	// Gray ramp.
	for ; i < 256; i++ {
		v := uint8((i-232)*10 + 8)
		result[i] = RGB{v, v, v}
	}

	return result
}()
