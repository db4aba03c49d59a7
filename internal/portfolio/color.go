package portfolio

import (
	"fmt"
	"math"
	"strconv"

	"emperror.dev/errors"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	// colorLightnessDelta is the amount of HSL lightness added (dark theme) or
	// removed (light theme) from the raw language color.
	colorLightnessDelta = 0.075
	// colorAlpha is the opacity of both themed colors.
	colorAlpha = 0.8
)

// Color is an HSL color with an alpha channel.
type Color struct {
	H, S, L float64
	A       float64
}

// String returns the color as a CSS color, e.g. `hsl(0 100% 57.5% / 0.8)`.
func (c Color) String() string {
	return fmt.Sprintf(
		"hsl(%s %s%% %s%% / %s)",
		formatDecimal(c.H), formatDecimal(c.S*100), formatDecimal(c.L*100), formatDecimal(c.A),
	)
}

// Hex returns the opaque hex representation of the color.
func (c Color) Hex() string {
	return colorful.Hsl(c.H, c.S, c.L).Clamped().Hex()
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// ThemedColors is a pair of display colors derived from a single language
// color so that it reads correctly against either theme's background.
type ThemedColors struct {
	// Dark is used on dark backgrounds.
	Dark Color `json:"dark"`
	// Light is used on light backgrounds.
	Light Color `json:"light"`
}

// DeriveColors lightens the raw hex color for dark backgrounds and darkens it
// for light backgrounds, both with a reduced opacity.
func DeriveColors(raw string) (ThemedColors, error) {
	c, err := colorful.Hex(raw)
	if err != nil {
		return ThemedColors{}, errors.WrapIff(err, "invalid language color %q", raw)
	}
	h, s, l := c.Hsl()
	return ThemedColors{
		Dark:  Color{H: h, S: s, L: clamp01(l + colorLightnessDelta), A: colorAlpha},
		Light: Color{H: h, S: s, L: clamp01(l - colorLightnessDelta), A: colorAlpha},
	}, nil
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// formatDecimal rounds to one decimal and drops a trailing zero.
func formatDecimal(v float64) string {
	return strconv.FormatFloat(math.Round(v*10)/10, 'f', -1, 64)
}
