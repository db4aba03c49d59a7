package portfolio

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeriveColors(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		dark  string
		light string
	}{
		{"red", "#ff0000", "hsl(0 100% 57.5% / 0.8)", "hsl(0 100% 42.5% / 0.8)"},
		{"blue", "#0000ff", "hsl(240 100% 57.5% / 0.8)", "hsl(240 100% 42.5% / 0.8)"},
		{"short hex", "#f00", "hsl(0 100% 57.5% / 0.8)", "hsl(0 100% 42.5% / 0.8)"},
		{"white is clamped", "#ffffff", "hsl(0 0% 100% / 0.8)", "hsl(0 0% 92.5% / 0.8)"},
		{"black is clamped", "#000000", "hsl(0 0% 7.5% / 0.8)", "hsl(0 0% 0% / 0.8)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			colors, err := DeriveColors(tt.raw)
			require.NoError(t, err)
			require.Equal(t, tt.dark, colors.Dark.String())
			require.Equal(t, tt.light, colors.Light.String())
		})
	}
}

func TestDeriveColorsInvalid(t *testing.T) {
	for _, raw := range []string{"", "red", "#12", "#gggggg"} {
		_, err := DeriveColors(raw)
		require.Error(t, err, "color %q should be rejected", raw)
	}
}

func TestThemedColorsJSON(t *testing.T) {
	colors, err := DeriveColors("#ff0000")
	require.NoError(t, err)

	data, err := json.Marshal(colors)
	require.NoError(t, err)
	require.JSONEq(t, `{"dark":"hsl(0 100% 57.5% / 0.8)","light":"hsl(0 100% 42.5% / 0.8)"}`, string(data))
}

func TestColorHex(t *testing.T) {
	colors, err := DeriveColors("#ff0000")
	require.NoError(t, err)
	require.Equal(t, "#ff2626", colors.Dark.Hex())
}
