package gh

import (
	"context"
	"time"

	"emperror.dev/errors"
)

const pullRequestContributionsQuery = `
query Contributions {
  viewer {
    contributionsCollection {
      pullRequestContributionsByRepository(maxRepositories: 100) {
        repository {
          isFork
          nameWithOwner
          name
          owner {
            login
          }
          url
        }
        contributions(last: 1, orderBy: { direction: ASC }) {
          nodes {
            pullRequest {
              createdAt
            }
          }
        }
      }
    }
  }
}`

type ContributionRepository struct {
	IsFork        bool   `json:"isFork"`
	Name          string `json:"name"`
	NameWithOwner string `json:"nameWithOwner"`
	Owner         struct {
		Login string `json:"login"`
	} `json:"owner"`
	URL string `json:"url"`
}

type PullRequestContribution struct {
	PullRequest struct {
		CreatedAt time.Time `json:"createdAt"`
	} `json:"pullRequest"`
}

// RepositoryContributions groups the pull request contributions made by the
// viewer to a single repository.
type RepositoryContributions struct {
	Repository    ContributionRepository `json:"repository"`
	Contributions struct {
		Nodes []PullRequestContribution `json:"nodes"`
	} `json:"contributions"`
}

// PullRequestContributions fetches the viewer's pull request contributions
// grouped by repository.
func (c *Client) PullRequestContributions(ctx context.Context) ([]RepositoryContributions, error) {
	var data struct {
		Viewer struct {
			ContributionsCollection struct {
				PullRequestContributionsByRepository []RepositoryContributions `json:"pullRequestContributionsByRepository"`
			} `json:"contributionsCollection"`
		} `json:"viewer"`
	}
	if err := c.callInto(ctx, pullRequestContributionsQuery, nil, &data); err != nil {
		return nil, errors.Wrap(err, "failed to query pull request contributions")
	}
	return data.Viewer.ContributionsCollection.PullRequestContributionsByRepository, nil
}
