// Package site builds every content collection of the site and writes them
// to the output directory.
package site

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"emperror.dev/errors"
	"github.com/HiDeoo/hideoo.dev/internal/content"
	"github.com/HiDeoo/hideoo.dev/internal/content/jsonfilestore"
	"github.com/HiDeoo/hideoo.dev/internal/feed"
	"github.com/HiDeoo/hideoo.dev/internal/notes"
	"github.com/HiDeoo/hideoo.dev/internal/portfolio"
	"github.com/sirupsen/logrus"
)

const FeedFile = "rss.xml"

type Opts struct {
	OutputDir   string
	RecentCount int
	Feed        feed.Opts
}

// Summary reports what a build produced.
type Summary struct {
	Collections map[content.Collection]int
	Warnings    []portfolio.DataQualityWarning
	FeedItems   int
	Elapsed     time.Duration
}

// Build runs every pipeline, replaces each collection of the JSON store in
// the output directory, and writes the RSS feed next to it. Collections loaded
// before a failure are kept.
func Build(ctx context.Context, pipeline *portfolio.Pipeline, library *notes.Library, opts Opts) (*Summary, error) {
	start := time.Now()

	store, err := jsonfilestore.Open(opts.OutputDir)
	if err != nil {
		return nil, errors.WrapIff(err, "failed to open content store in %q", opts.OutputDir)
	}

	repos := &repositories{pipeline: pipeline}
	loaders := []content.Loader{
		repos.reposLoader(),
		repos.languagesLoader(),
		recentReposLoader(pipeline, opts.RecentCount),
		recentContributionsLoader(pipeline),
		notesLoader(library),
		notebooksLoader(library),
	}
	if err := content.Load(ctx, store, loaders...); err != nil {
		return nil, err
	}

	summary := &Summary{Collections: make(map[content.Collection]int, len(loaders))}
	for _, loader := range loaders {
		summary.Collections[loader.Collection()] = len(store.Entries(loader.Collection()))
	}
	if repos.result != nil {
		summary.Warnings = repos.result.Warnings
	}

	size := opts.Feed.Size
	if size <= 0 {
		size = feed.DefaultSize
	}
	recent := library.Notes(size)
	rss, err := feed.Build(recent, opts.Feed)
	if err != nil {
		return nil, err
	}
	path := filepath.Join(opts.OutputDir, FeedFile)
	if err := os.WriteFile(path, []byte(rss), 0o644); err != nil {
		return nil, errors.WrapIff(err, "failed to write feed %q", path)
	}
	summary.FeedItems = len(recent)
	summary.Elapsed = time.Since(start)

	logrus.WithFields(logrus.Fields{
		"output":  opts.OutputDir,
		"elapsed": summary.Elapsed,
	}).Debug("site built")
	return summary, nil
}
