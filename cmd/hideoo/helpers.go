package main

import (
	"github.com/HiDeoo/hideoo.dev/internal/config"
	"github.com/HiDeoo/hideoo.dev/internal/gh"
	"github.com/HiDeoo/hideoo.dev/internal/notes"
	"github.com/HiDeoo/hideoo.dev/internal/portfolio"
	"github.com/spf13/pflag"
)

// getPipeline validates the GitHub configuration and returns a pipeline
// backed by the GitHub API. Nothing is sent to the API yet.
func getPipeline() (*portfolio.Pipeline, error) {
	if err := config.Validate(config.RequireGitHub); err != nil {
		return nil, err
	}
	client, err := gh.NewClient(config.Hideoo.GitHub.Token, config.Hideoo.GitHub.Endpoint)
	if err != nil {
		return nil, err
	}
	return portfolio.NewPipeline(client, portfolio.PipelineOptsFromConfig())
}

func getLibrary() (*notes.Library, error) {
	return notes.Load(config.Hideoo.Content.NotesDir, config.Hideoo.Content.NotebooksDir)
}

// addCountFlag registers a --count flag. Zero means the configured count.
func addCountFlag(flags *pflag.FlagSet, count *int, usage string) {
	flags.IntVarP(count, "count", "n", 0, usage)
}
