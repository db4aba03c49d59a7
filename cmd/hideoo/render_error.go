package main

import (
	"fmt"

	"github.com/HiDeoo/hideoo.dev/internal/config"
	"github.com/HiDeoo/hideoo.dev/internal/gh"
	"github.com/HiDeoo/hideoo.dev/internal/utils/colors"
	"github.com/HiDeoo/hideoo.dev/internal/utils/errutils"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

const noGitHubToken = `# ERROR: No GitHub Token

` + "`hideoo`" + ` needs a GitHub API token to fetch repositories and contributions. Provide one of:

1. The ` + "`HIDEOO_GITHUB_TOKEN`" + `, ` + "`GH_TOKEN`" + `, or ` + "`GITHUB_TOKEN`" + ` environment variable.
2. The ` + "`github.token`" + ` key of the ` + "`config.yaml`" + ` configuration file.

A classic token without any scope is enough to read public repositories.
`

const badGitHubToken = `# ERROR: GitHub Token Rejected

The GitHub API answered with ` + "`401 Unauthorized`" + `. The configured token is either
expired or revoked. Generate a new token and try again.
`

// renderError formats err for the terminal. When tty is set, known setup
// errors are rendered as markdown help and others are colored.
func renderError(err error, tty bool) string {
	doc := ""
	if cerr, ok := errutils.As[config.ConfigurationError](err); ok && cerr.Field == "github.token" {
		doc = noGitHubToken
	} else if gh.IsHTTPUnauthorized(err) {
		doc = badGitHubToken
	}

	if !tty {
		return fmt.Sprintf("error: %s\n", err)
	}
	if doc != "" {
		style := glamour.LightStyle
		if lipgloss.HasDarkBackground() {
			style = glamour.DarkStyle
		}
		if out, rerr := glamour.Render(doc, style); rerr == nil {
			return out
		}
	}
	return fmt.Sprint(
		colors.Failure("error: ", err.Error()), "\n",
		colors.Troubleshooting("  run again with --debug for more details"), "\n",
	)
}
