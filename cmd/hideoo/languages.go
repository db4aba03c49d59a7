package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "show the language distribution of the repositories",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		pipeline, err := getPipeline()
		if err != nil {
			return err
		}
		result, err := fetchRepositories(cmd.Context(), pipeline)
		if err != nil {
			return err
		}

		name := lipgloss.NewStyle().Width(16)
		size := lipgloss.NewStyle().Width(5).Align(lipgloss.Right)
		for _, stat := range result.Languages {
			color := lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
				Light: stat.Colors.Light.Hex(),
				Dark:  stat.Colors.Dark.Hex(),
			})
			fmt.Println(lipgloss.JoinHorizontal(
				lipgloss.Top,
				color.Render("● "),
				name.Render(stat.Name),
				size.Render(fmt.Sprintf("%d", stat.Size)),
				" ",
				color.Render(strings.Repeat("▇", max(stat.Size/2, 1))),
			))
		}
		return nil
	},
}
