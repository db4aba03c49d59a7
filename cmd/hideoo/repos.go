package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/HiDeoo/hideoo.dev/internal/config"
	"github.com/HiDeoo/hideoo.dev/internal/portfolio"
	"github.com/HiDeoo/hideoo.dev/internal/utils/colors"
	"github.com/HiDeoo/hideoo.dev/internal/utils/stringutils"
	"github.com/dustin/go-humanize"
	"github.com/kr/text"
	"github.com/spf13/cobra"
)

const descriptionWidth = 72

var reposFlags struct {
	Recent bool
	Count  int
}

var reposCmd = &cobra.Command{
	Use:   "repos",
	Short: "list the repositories shown on the site",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		pipeline, err := getPipeline()
		if err != nil {
			return err
		}

		var records []portfolio.RepositoryRecord
		if reposFlags.Recent {
			count := reposFlags.Count
			if count <= 0 {
				count = config.Hideoo.Repositories.RecentCount
			}
			records, err = pipeline.RecentRepositories(cmd.Context(), count)
			if err != nil {
				return err
			}
		} else {
			result, err := fetchRepositories(cmd.Context(), pipeline)
			if err != nil {
				return err
			}
			records = result.Repositories
			if len(result.Warnings) > 0 {
				_, _ = fmt.Fprintf(os.Stderr, "%s\n\n", colors.Warning(fmt.Sprintf(
					"%d repositories skipped (run with --debug for details)", len(result.Warnings),
				)))
			}
		}

		for _, record := range records {
			printRepository(record)
		}
		return nil
	},
}

func fetchRepositories(ctx context.Context, pipeline *portfolio.Pipeline) (*portfolio.RepositoriesResult, error) {
	var result *portfolio.RepositoriesResult
	err := withProgress(ctx, "Fetching repositories", func(ctx context.Context) error {
		var err error
		result, err = pipeline.Repositories(ctx)
		return err
	})
	return result, err
}

func printRepository(record portfolio.RepositoryRecord) {
	names := make([]string, 0, len(record.Languages))
	for _, language := range record.Languages {
		names = append(names, language.Name)
	}
	fmt.Print(colors.Bold(record.Name), " ", colors.Faint("★ "+humanize.Comma(int64(record.Stars))), "\n")
	fmt.Println(stringutils.Indent(colors.Faint(record.URL), "  "))
	if record.Description != "" {
		fmt.Println(stringutils.Indent(text.Wrap(record.Description, descriptionWidth), "  "))
	}
	if len(names) > 0 {
		fmt.Println(stringutils.Indent(colors.CliCmd(strings.Join(names, ", ")), "  "))
	}
	fmt.Println()
}

func init() {
	reposCmd.Flags().BoolVar(
		&reposFlags.Recent, "recent", false,
		"list the most recently created repositories",
	)
	addCountFlag(reposCmd.Flags(), &reposFlags.Count, "number of recent repositories (defaults to repositories.recentCount)")
}
