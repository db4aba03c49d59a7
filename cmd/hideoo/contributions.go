package main

import (
	"fmt"

	"github.com/HiDeoo/hideoo.dev/internal/config"
	"github.com/HiDeoo/hideoo.dev/internal/utils/colors"
	"github.com/spf13/cobra"
)

var contributionsFlags struct {
	Count int
}

var contributionsCmd = &cobra.Command{
	Use:   "contributions",
	Short: "list the repositories recently contributed to",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if contributionsFlags.Count > 0 {
			config.Hideoo.Contributions.Count = contributionsFlags.Count
		}
		pipeline, err := getPipeline()
		if err != nil {
			return err
		}
		records, err := pipeline.RecentContributions(cmd.Context())
		if err != nil {
			return err
		}
		if len(records) == 0 {
			fmt.Println(colors.Faint("No recent contributions."))
			return nil
		}
		for _, record := range records {
			fmt.Print(colors.Bold(record.Name), " ", colors.Faint(record.URL), "\n")
		}
		return nil
	},
}

func init() {
	addCountFlag(contributionsCmd.Flags(), &contributionsFlags.Count, "number of contributions (defaults to contributions.count)")
}
