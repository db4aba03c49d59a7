package portfolio

import (
	"context"

	"emperror.dev/errors"
	"github.com/HiDeoo/hideoo.dev/internal/gh"
	"github.com/sirupsen/logrus"
)

// DefaultRecentCount is the number of recent repositories returned when no
// positive count is given.
const DefaultRecentCount = 4

// recentRepositoriesSlack is the number of extra repositories requested for
// the recent repositories so that dropped ones can be replaced.
const recentRepositoriesSlack = 10

// Source is the API the pipeline fetches from. It is implemented by
// *gh.Client.
type Source interface {
	gh.RepositoryPageFetcher
	RecentRepositories(ctx context.Context, first int) ([]gh.RepositoryNode, error)
	PullRequestContributions(ctx context.Context) ([]gh.RepositoryContributions, error)
	Viewer(ctx context.Context) (*gh.Viewer, error)
}

type Pipeline struct {
	source            Source
	normalizer        *Normalizer
	owner             string
	contributionCount int
}

type PipelineOpts struct {
	Normalizer NormalizerOpts
	// Owner is the profile owner login. When empty, it is resolved from the
	// API viewer the first time it is needed.
	Owner             string
	ContributionCount int
}

func NewPipeline(source Source, opts PipelineOpts) (*Pipeline, error) {
	normalizer, err := NewNormalizer(opts.Normalizer)
	if err != nil {
		return nil, err
	}
	return &Pipeline{
		source:            source,
		normalizer:        normalizer,
		owner:             opts.Owner,
		contributionCount: opts.ContributionCount,
	}, nil
}

// RepositoriesResult is the output of a full repository aggregation.
type RepositoriesResult struct {
	Repositories []RepositoryRecord
	Languages    []LanguageStat
	Warnings     []DataQualityWarning
}

// Repositories fetches every repository page, normalizes the nodes, and
// finalizes the language distribution. The whole aggregation is recomputed
// on every call.
func (p *Pipeline) Repositories(ctx context.Context) (*RepositoriesResult, error) {
	nodes, err := gh.FetchAllRepositories(ctx, p.source)
	if err != nil {
		return nil, err
	}
	acc := NewLanguageAccumulator()
	records, warnings := p.normalizer.Normalize(nodes, acc)
	languages := acc.Finalize()
	logrus.WithFields(logrus.Fields{
		"nodes":        len(nodes),
		"repositories": len(records),
		"languages":    len(languages),
		"warnings":     len(warnings),
	}).Debug("aggregated repositories")
	return &RepositoriesResult{Repositories: records, Languages: languages, Warnings: warnings}, nil
}

// RecentRepositories returns the most recently created repositories. A
// count that is not positive falls back to DefaultRecentCount.
func (p *Pipeline) RecentRepositories(ctx context.Context, count int) ([]RepositoryRecord, error) {
	if count <= 0 {
		count = DefaultRecentCount
	}
	nodes, err := p.source.RecentRepositories(ctx, count+recentRepositoriesSlack)
	if err != nil {
		return nil, err
	}
	records, _ := p.normalizer.Normalize(nodes, nil)
	if len(records) > count {
		records = records[:count]
	}
	return records, nil
}

// RecentContributions returns the repositories the profile owner most
// recently opened pull requests against.
func (p *Pipeline) RecentContributions(ctx context.Context) ([]ContributionRecord, error) {
	owner, err := p.Owner(ctx)
	if err != nil {
		return nil, err
	}
	raw, err := p.source.PullRequestContributions(ctx)
	if err != nil {
		return nil, err
	}
	return NormalizeContributions(raw, ContributionOpts{
		Owner:  owner,
		Count:  p.contributionCount,
		Banned: p.normalizer.Banned,
	}), nil
}

// Owner returns the profile owner login.
func (p *Pipeline) Owner(ctx context.Context) (string, error) {
	if p.owner != "" {
		return p.owner, nil
	}
	viewer, err := p.source.Viewer(ctx)
	if err != nil {
		return "", errors.Wrap(err, "failed to determine the profile owner")
	}
	p.owner = viewer.Login
	return p.owner, nil
}
