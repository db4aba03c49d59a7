package ghtest

import (
	"strings"
	"time"

	"github.com/HiDeoo/hideoo.dev/internal/gh"
)

// Ptr returns a pointer to the argument.
func Ptr[T any](v T) *T {
	return &v
}

// Edge builds a language edge. An empty color yields a colorless language.
func Edge(name string, color string, size int) gh.LanguageEdge {
	edge := gh.LanguageEdge{Size: size, Node: gh.LanguageNode{Name: name}}
	if color != "" {
		edge.Node.Color = Ptr(color)
	}
	return edge
}

// Repo builds a repository node owned by HiDeoo.
func Repo(name string, description string, stars int, edges ...gh.LanguageEdge) gh.RepositoryNode {
	node := gh.RepositoryNode{
		ID:             "R_" + name,
		Name:           name,
		NameWithOwner:  "HiDeoo/" + name,
		StargazerCount: stars,
		URL:            "https://github.com/HiDeoo/" + name,
	}
	if description != "" {
		node.Description = Ptr(description)
	}
	node.Languages.Edges = edges
	return node
}

// Page builds a repository page. An empty cursor marks the last page.
func Page(cursor string, nodes ...gh.RepositoryNode) gh.RepositoryPage {
	page := gh.RepositoryPage{Nodes: nodes}
	if cursor != "" {
		page.PageInfo = gh.PageInfo{HasNextPage: true, EndCursor: Ptr(cursor)}
	}
	return page
}

// Contribution builds the contributions of the viewer to a repository with a
// single pull request created at the given time. A zero time yields a
// repository without pull request.
func Contribution(nameWithOwner string, isFork bool, createdAt time.Time) gh.RepositoryContributions {
	var c gh.RepositoryContributions
	owner, name, _ := strings.Cut(nameWithOwner, "/")
	c.Repository.Name = name
	c.Repository.NameWithOwner = nameWithOwner
	c.Repository.Owner.Login = owner
	c.Repository.IsFork = isFork
	c.Repository.URL = "https://github.com/" + nameWithOwner
	c.Contributions.Nodes = []gh.PullRequestContribution{}
	if !createdAt.IsZero() {
		var pr gh.PullRequestContribution
		pr.PullRequest.CreatedAt = createdAt
		c.Contributions.Nodes = append(c.Contributions.Nodes, pr)
	}
	return c
}
