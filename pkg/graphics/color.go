package graphics

import (
	"fmt"
	"image/color"
	"math"

	"github.com/go-playground/colors"
)

// ParseHEXColor parses "#rgb" or "#rrggbb" into an opaque color.
func ParseHEXColor(s string) (color.Color, error) {
	hex, err := colors.ParseHEX(s)
	if err != nil {
		return nil, fmt.Errorf("parse color %q: %w", s, err)
	}
	rgba := hex.ToRGBA()
	return color.NRGBA{R: rgba.R, G: rgba.G, B: rgba.B, A: uint8(math.Round(rgba.A * 0xff))}, nil
}

// SetColorsHEX replaces both colors. Empty strings keep the current value.
func (d *DownloadIcon) SetColorsHEX(background, foreground string) error {
	if background != "" {
		c, err := ParseHEXColor(background)
		if err != nil {
			return err
		}
		d.Color.Background = c
	}
	if foreground != "" {
		c, err := ParseHEXColor(foreground)
		if err != nil {
			return err
		}
		d.Color.Foreground = c
	}
	return nil
}

func colorKey(c color.Color) string {
	if c == nil {
		return "none"
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}
