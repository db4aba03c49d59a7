package portfolio

import "github.com/HiDeoo/hideoo.dev/internal/content"

func (r RepositoryRecord) Validate() error {
	return content.FirstError(
		content.RequireString("id", r.ID),
		content.RequireString("name", r.Name),
		content.RequireURL("url", r.URL),
		content.RequireNonNegative("stars", r.Stars),
	)
}

func (c ContributionRecord) Validate() error {
	return content.FirstError(
		content.RequireString("name", c.Name),
		content.RequireURL("url", c.URL),
	)
}

func (s LanguageStat) Validate() error {
	return content.FirstError(
		content.RequireString("name", s.Name),
		content.RequireNonNegative("size", s.Size),
	)
}
