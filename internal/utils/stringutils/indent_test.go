package stringutils_test

import (
	"testing"

	"github.com/HiDeoo/hideoo.dev/internal/utils/stringutils"
	"github.com/stretchr/testify/require"
)

func TestIndent(t *testing.T) {
	require.Equal(t, "  line1\n  line2", stringutils.Indent("line1\nline2", "  "))
	require.Equal(t, "> ", stringutils.Indent("", "> "))
}

func TestTrimTrailingSlash(t *testing.T) {
	for _, tt := range []struct {
		input    string
		expected string
	}{
		{"https://hideoo.dev", "https://hideoo.dev"},
		{"https://hideoo.dev/", "https://hideoo.dev"},
		{"https://hideoo.dev//", "https://hideoo.dev"},
		{"", ""},
	} {
		require.Equal(t, tt.expected, stringutils.TrimTrailingSlash(tt.input))
	}
}
