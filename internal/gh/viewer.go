package gh

import (
	"context"

	"emperror.dev/errors"
)

type Viewer struct {
	Name  string `graphql:"name"`
	Login string `graphql:"login"`
}

func (c *Client) Viewer(ctx context.Context) (*Viewer, error) {
	var query struct {
		Viewer Viewer `graphql:"viewer"`
	}
	err := c.query(ctx, &query, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query GitHub viewer")
	}
	if query.Viewer.Login == "" {
		return nil, errors.New("GitHub viewer has no login")
	}
	return &query.Viewer, nil
}
