package portfolio

import (
	"sort"
	"strings"
	"time"

	"github.com/HiDeoo/hideoo.dev/internal/gh"
	"github.com/sirupsen/logrus"
)

// DefaultContributionCount is the number of contributions kept when no count
// is given.
const DefaultContributionCount = 8

// ContributionRecord is a repository the profile owner recently contributed
// to.
type ContributionRecord struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type ContributionOpts struct {
	// Owner is the login of the profile owner whose own repositories are
	// excluded.
	Owner string
	Count int
	// Banned, if set, excludes repositories whose name it matches.
	Banned func(name string) bool
}

type datedContribution struct {
	record ContributionRecord
	latest time.Time
}

// NormalizeContributions filters out contributions to repositories owned by
// the profile owner, forks, banned repositories, and repositories without any
// pull request, then returns the most recently contributed to repositories
// first.
func NormalizeContributions(raw []gh.RepositoryContributions, opts ContributionOpts) []ContributionRecord {
	count := opts.Count
	if count <= 0 {
		count = DefaultContributionCount
	}

	var contributions []datedContribution
	for _, c := range raw {
		repo := c.Repository
		log := logrus.WithField("repository", repo.NameWithOwner)
		switch {
		case strings.EqualFold(repo.Owner.Login, opts.Owner):
			log.Debug("skipping contribution to an owned repository")
			continue
		case repo.IsFork:
			log.Debug("skipping contribution to a fork")
			continue
		case len(c.Contributions.Nodes) == 0:
			log.Debug("skipping repository without pull request")
			continue
		case opts.Banned != nil && opts.Banned(repo.Name):
			log.Debug("skipping contribution to a banned repository")
			continue
		}

		var latest time.Time
		for _, node := range c.Contributions.Nodes {
			if node.PullRequest.CreatedAt.After(latest) {
				latest = node.PullRequest.CreatedAt
			}
		}
		contributions = append(contributions, datedContribution{
			record: ContributionRecord{Name: repo.NameWithOwner, URL: repo.URL},
			latest: latest,
		})
	}

	sort.SliceStable(contributions, func(i, j int) bool {
		return contributions[i].latest.After(contributions[j].latest)
	})

	records := make([]ContributionRecord, 0, min(count, len(contributions)))
	for _, c := range contributions {
		if len(records) == count {
			break
		}
		records = append(records, c.record)
	}
	return records
}
