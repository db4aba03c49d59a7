package gh

import (
	"context"

	"emperror.dev/errors"
)

// repositoryFragment selects every field the site needs from a repository
// connection. Languages are ordered by size so that the largest ones survive
// the `first: 10` limit.
const repositoryFragment = `fragment Repo on RepositoryConnection {
  nodes {
    description
    id
    languages(first: 10, orderBy: { direction: DESC, field: SIZE }) {
      edges {
        size
        node {
          color
          name
        }
      }
    }
    name
    nameWithOwner
    stargazerCount
    url
  }
}`

const repositoriesPageQuery = repositoryFragment + `
query Repos($after: String) {
  viewer {
    repositories(
      after: $after,
      first: 100,
      isFork: false,
      orderBy: { direction: DESC, field: STARGAZERS },
      ownerAffiliations: [OWNER],
      privacy: PUBLIC
    ) {
      ...Repo
      pageInfo {
        hasNextPage
        endCursor
      }
    }
  }
}`

const recentRepositoriesQuery = repositoryFragment + `
query RecentRepos($count: Int) {
  viewer {
    repositories(
      first: $count,
      isFork: false,
      orderBy: { direction: DESC, field: CREATED_AT },
      ownerAffiliations: [OWNER],
      privacy: PUBLIC
    ) {
      ...Repo
    }
  }
}`

type LanguageNode struct {
	Name string `json:"name"`
	// Color is the hex color GitHub associates with the language. Some
	// languages have none.
	Color *string `json:"color"`
}

type LanguageEdge struct {
	Size int          `json:"size"`
	Node LanguageNode `json:"node"`
}

// RepositoryNode is a repository as returned by the API, before any
// normalization.
type RepositoryNode struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	NameWithOwner  string  `json:"nameWithOwner"`
	Description    *string `json:"description"`
	StargazerCount int     `json:"stargazerCount"`
	URL            string  `json:"url"`
	Languages      struct {
		Edges []LanguageEdge `json:"edges"`
	} `json:"languages"`
}

type PageInfo struct {
	HasNextPage bool    `json:"hasNextPage"`
	EndCursor   *string `json:"endCursor"`
}

type RepositoryPage struct {
	Nodes    []RepositoryNode `json:"nodes"`
	PageInfo PageInfo         `json:"pageInfo"`
}

// RepositoriesPage fetches one page of the viewer's public, non-fork
// repositories ordered by descending star count. A nil cursor requests the
// first page.
func (c *Client) RepositoriesPage(ctx context.Context, after *string) (*RepositoryPage, error) {
	var data struct {
		Viewer struct {
			Repositories RepositoryPage `json:"repositories"`
		} `json:"viewer"`
	}
	if err := c.callInto(ctx, repositoriesPageQuery, map[string]any{
		"after": after,
	}, &data); err != nil {
		return nil, errors.Wrap(err, "failed to query repositories")
	}
	return &data.Viewer.Repositories, nil
}

// RecentRepositories fetches the first repositories of the viewer ordered by
// descending creation date.
func (c *Client) RecentRepositories(ctx context.Context, first int) ([]RepositoryNode, error) {
	var data struct {
		Viewer struct {
			Repositories RepositoryPage `json:"repositories"`
		} `json:"viewer"`
	}
	if err := c.callInto(ctx, recentRepositoriesQuery, map[string]any{
		"count": first,
	}, &data); err != nil {
		return nil, errors.Wrap(err, "failed to query recent repositories")
	}
	return data.Viewer.Repositories.Nodes, nil
}
