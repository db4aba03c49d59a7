package gh

import (
	"context"

	"emperror.dev/errors"
	"github.com/sirupsen/logrus"
)

// maxStalledPages is the number of consecutive pages that may report more
// results without handing out a cursor before pagination is aborted.
const maxStalledPages = 3

type RepositoryPageFetcher interface {
	RepositoriesPage(ctx context.Context, after *string) (*RepositoryPage, error)
}

// FetchAllRepositories requests pages until the server reports that there is
// no next page and returns the nodes of every page in server order.
//
// The cursor is opaque and passed back verbatim. If a page reports more
// results but carries no cursor, the last known cursor is reused.
func FetchAllRepositories(ctx context.Context, fetcher RepositoryPageFetcher) ([]RepositoryNode, error) {
	var (
		nodes   []RepositoryNode
		cursor  *string
		stalled int
	)
	for page := 1; ; page++ {
		res, err := fetcher.RepositoriesPage(ctx, cursor)
		if err != nil {
			return nil, errors.WrapIff(err, "failed to fetch repositories page %d", page)
		}
		nodes = append(nodes, res.Nodes...)
		logrus.WithFields(logrus.Fields{
			"page":  page,
			"nodes": len(res.Nodes),
			"more":  res.PageInfo.HasNextPage,
		}).Debug("fetched repositories page")

		if !res.PageInfo.HasNextPage {
			return nodes, nil
		}
		if res.PageInfo.EndCursor == nil {
			stalled++
			if stalled >= maxStalledPages {
				return nil, errors.Errorf(
					"pagination stalled: %d consecutive pages reported more results without a cursor",
					stalled,
				)
			}
			logrus.WithField("page", page).Warn("repositories page has more results but no cursor, reusing the last one")
			continue
		}
		stalled = 0
		next := *res.PageInfo.EndCursor
		cursor = &next
	}
}
