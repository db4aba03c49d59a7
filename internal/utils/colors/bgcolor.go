package colors

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// SetupBackgroundColorTypeFromEnv initializes the background color setting based on
// HIDEOO_HAS_LIGHT_BG environment variable.
//
// lipgloss uses COLORFGBG when the terminal sets it, which is not always
// accurate, so the background type can be forced.
func SetupBackgroundColorTypeFromEnv() {
	envvar := strings.ToLower(os.Getenv("HIDEOO_HAS_LIGHT_BG"))
	switch envvar {
	case "true", "1", "yes", "y", "on":
		lipgloss.SetHasDarkBackground(false)
	case "false", "0", "no", "n", "off":
		lipgloss.SetHasDarkBackground(true)
	default:
	}
}
