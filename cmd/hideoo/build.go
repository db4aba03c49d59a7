package main

import (
	"context"
	"fmt"
	"maps"
	"os"
	"slices"
	"time"

	"github.com/HiDeoo/hideoo.dev/internal/config"
	"github.com/HiDeoo/hideoo.dev/internal/feed"
	"github.com/HiDeoo/hideoo.dev/internal/site"
	"github.com/HiDeoo/hideoo.dev/internal/utils/colors"
	"github.com/spf13/cobra"
)

var buildFlags struct {
	Out string
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "build every content collection and the RSS feed",
	Long: `Fetch the repositories, languages, and contributions from GitHub, load the
notes and notebooks, and write every collection as JSON along with the RSS
feed of the most recent notes.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Validate(config.RequireGitHub | config.RequireSite); err != nil {
			return err
		}
		pipeline, err := getPipeline()
		if err != nil {
			return err
		}
		library, err := getLibrary()
		if err != nil {
			return err
		}

		out := buildFlags.Out
		if out == "" {
			out = config.Hideoo.Content.OutputDir
		}
		var summary *site.Summary
		err = withProgress(cmd.Context(), "Building site content", func(ctx context.Context) error {
			var err error
			summary, err = site.Build(ctx, pipeline, library, site.Opts{
				OutputDir:   out,
				RecentCount: config.Hideoo.Repositories.RecentCount,
				Feed:        feed.OptsFromConfig(),
			})
			return err
		})
		if err != nil {
			return err
		}

		for _, collection := range slices.Sorted(maps.Keys(summary.Collections)) {
			fmt.Printf("  %-20s %d\n", collection, summary.Collections[collection])
		}
		fmt.Printf("  %-20s %d\n", site.FeedFile, summary.FeedItems)
		for _, warning := range summary.Warnings {
			_, _ = fmt.Fprintln(os.Stderr, colors.Warning("  skipped "), warning.Repository, colors.Faint("("+warning.Reason+")"))
		}
		fmt.Print(
			colors.Success("Built site content in "), colors.Bold(out),
			colors.Faint(fmt.Sprintf(" (%s)", summary.Elapsed.Round(time.Millisecond))), "\n",
		)
		return nil
	},
}

func init() {
	buildCmd.Flags().StringVarP(
		&buildFlags.Out, "out", "o", "",
		"output directory (defaults to content.outputDir)",
	)
}
