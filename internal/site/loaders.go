package site

import (
	"context"

	"github.com/HiDeoo/hideoo.dev/internal/content"
	"github.com/HiDeoo/hideoo.dev/internal/notes"
	"github.com/HiDeoo/hideoo.dev/internal/portfolio"
)

// repositories shares a single aggregation between the repository and
// language loaders of a build.
type repositories struct {
	pipeline *portfolio.Pipeline
	result   *portfolio.RepositoriesResult
}

func (r *repositories) get(ctx context.Context) (*portfolio.RepositoriesResult, error) {
	if r.result != nil {
		return r.result, nil
	}
	result, err := r.pipeline.Repositories(ctx)
	if err != nil {
		return nil, err
	}
	r.result = result
	return result, nil
}

func (r *repositories) reposLoader() content.Loader {
	return content.NewLoader("github-repos", content.CollectionRepos, func(ctx context.Context) ([]content.Entry, error) {
		result, err := r.get(ctx)
		if err != nil {
			return nil, err
		}
		return repositoryEntries(result.Repositories), nil
	})
}

func (r *repositories) languagesLoader() content.Loader {
	return content.NewLoader("github-languages", content.CollectionLanguages, func(ctx context.Context) ([]content.Entry, error) {
		result, err := r.get(ctx)
		if err != nil {
			return nil, err
		}
		entries := make([]content.Entry, 0, len(result.Languages))
		for _, stat := range result.Languages {
			entries = append(entries, content.Entry{ID: stat.Name, Data: stat})
		}
		return entries, nil
	})
}

func recentReposLoader(pipeline *portfolio.Pipeline, count int) content.Loader {
	return content.NewLoader("github-recent-repos", content.CollectionRecentRepos, func(ctx context.Context) ([]content.Entry, error) {
		records, err := pipeline.RecentRepositories(ctx, count)
		if err != nil {
			return nil, err
		}
		return repositoryEntries(records), nil
	})
}

func recentContributionsLoader(pipeline *portfolio.Pipeline) content.Loader {
	return content.NewLoader("github-recent-contributions", content.CollectionRecentContributions, func(ctx context.Context) ([]content.Entry, error) {
		records, err := pipeline.RecentContributions(ctx)
		if err != nil {
			return nil, err
		}
		entries := make([]content.Entry, 0, len(records))
		for _, record := range records {
			entries = append(entries, content.Entry{ID: record.Name, Data: record})
		}
		return entries, nil
	})
}

func notesLoader(library *notes.Library) content.Loader {
	return content.NewLoader("notes", content.CollectionNotes, func(context.Context) ([]content.Entry, error) {
		all := library.Notes(0)
		entries := make([]content.Entry, 0, len(all))
		for _, note := range all {
			entries = append(entries, content.Entry{ID: note.Slug, Data: note})
		}
		return entries, nil
	})
}

func notebooksLoader(library *notes.Library) content.Loader {
	return content.NewLoader("notebooks", content.CollectionNotebooks, func(context.Context) ([]content.Entry, error) {
		all := library.Notebooks()
		entries := make([]content.Entry, 0, len(all))
		for _, notebook := range all {
			entries = append(entries, content.Entry{ID: notebook.ID, Data: notebook})
		}
		return entries, nil
	})
}

func repositoryEntries(records []portfolio.RepositoryRecord) []content.Entry {
	entries := make([]content.Entry, 0, len(records))
	for _, record := range records {
		entries = append(entries, content.Entry{ID: record.ID, Data: record})
	}
	return entries
}
