package portfolio_test

import (
	"testing"
	"time"

	"github.com/HiDeoo/hideoo.dev/internal/gh"
	"github.com/HiDeoo/hideoo.dev/internal/gh/ghtest"
	"github.com/HiDeoo/hideoo.dev/internal/portfolio"
	"github.com/stretchr/testify/require"
)

var (
	t1 = time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	t2 = time.Date(2024, 2, 20, 9, 0, 0, 0, time.UTC)
	t3 = time.Date(2024, 3, 30, 9, 0, 0, 0, time.UTC)
)

func contributionNames(records []portfolio.ContributionRecord) []string {
	names := []string{}
	for _, r := range records {
		names = append(names, r.Name)
	}
	return names
}

func TestNormalizeContributionsOrderingAndExclusion(t *testing.T) {
	raw := []gh.RepositoryContributions{
		ghtest.Contribution("HiDeoo/starlight-blog", false, t3),
		ghtest.Contribution("someone/fork", true, t3),
		ghtest.Contribution("withastro/docs", false, time.Time{}),
		ghtest.Contribution("withastro/astro", false, t1),
		ghtest.Contribution("withastro/starlight", false, t2),
	}

	records := portfolio.NormalizeContributions(raw, portfolio.ContributionOpts{Owner: "HiDeoo"})
	require.Equal(t, []portfolio.ContributionRecord{
		{Name: "withastro/starlight", URL: "https://github.com/withastro/starlight"},
		{Name: "withastro/astro", URL: "https://github.com/withastro/astro"},
	}, records)
}

func TestNormalizeContributionsOwnerIsCaseInsensitive(t *testing.T) {
	raw := []gh.RepositoryContributions{
		ghtest.Contribution("HiDeoo/starlight-blog", false, t3),
		ghtest.Contribution("withastro/starlight", false, t2),
	}

	records := portfolio.NormalizeContributions(raw, portfolio.ContributionOpts{Owner: "hideoo"})
	require.Equal(t, []portfolio.ContributionRecord{
		{Name: "withastro/starlight", URL: "https://github.com/withastro/starlight"},
	}, records)
}

func TestNormalizeContributionsBanList(t *testing.T) {
	n := newNormalizer(t, portfolio.NormalizerOpts{})
	raw := []gh.RepositoryContributions{
		ghtest.Contribution("withastro/.github", false, t3),
		ghtest.Contribution("withastro/starlight-repro", false, t2),
		ghtest.Contribution("withastro/astro", false, t1),
	}

	records := portfolio.NormalizeContributions(raw, portfolio.ContributionOpts{Owner: "HiDeoo", Banned: n.Banned})
	require.Equal(t, []string{"withastro/astro"}, contributionNames(records))
}

func TestNormalizeContributionsCount(t *testing.T) {
	var raw []gh.RepositoryContributions
	for i := 0; i < 12; i++ {
		raw = append(raw, ghtest.Contribution(
			"org/repo-"+string(rune('a'+i)), false, t1.Add(time.Duration(i)*time.Hour),
		))
	}

	records := portfolio.NormalizeContributions(raw, portfolio.ContributionOpts{Owner: "HiDeoo"})
	require.Len(t, records, portfolio.DefaultContributionCount)
	require.Equal(t, "org/repo-l", records[0].Name)
	require.Equal(t, "org/repo-e", records[7].Name)

	records = portfolio.NormalizeContributions(raw, portfolio.ContributionOpts{Owner: "HiDeoo", Count: 3})
	require.Equal(t, []string{"org/repo-l", "org/repo-k", "org/repo-j"}, contributionNames(records))
}

func TestNormalizeContributionsUsesLatestPullRequest(t *testing.T) {
	multi := ghtest.Contribution("org/multi", false, t1)
	var later gh.PullRequestContribution
	later.PullRequest.CreatedAt = t3
	multi.Contributions.Nodes = append(multi.Contributions.Nodes, later)

	records := portfolio.NormalizeContributions([]gh.RepositoryContributions{
		ghtest.Contribution("org/single", false, t2),
		multi,
	}, portfolio.ContributionOpts{Owner: "HiDeoo"})
	require.Equal(t, []string{"org/multi", "org/single"}, contributionNames(records))
}

func TestNormalizeContributionsEmpty(t *testing.T) {
	records := portfolio.NormalizeContributions(nil, portfolio.ContributionOpts{Owner: "HiDeoo"})
	require.NotNil(t, records)
	require.Empty(t, records)
}
