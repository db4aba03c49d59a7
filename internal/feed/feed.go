// Package feed builds the RSS feed of the most recent notes.
package feed

import (
	"net/url"

	"emperror.dev/errors"
	"github.com/HiDeoo/hideoo.dev/internal/config"
	"github.com/HiDeoo/hideoo.dev/internal/notes"
	"github.com/HiDeoo/hideoo.dev/internal/utils/stringutils"
	"github.com/gorilla/feeds"
	"github.com/sirupsen/logrus"
)

const DefaultSize = 25

type Opts struct {
	SiteURL     string
	Title       string
	Description string
	Language    string
	// Size is the maximum number of items in the feed.
	Size int
}

// OptsFromConfig builds the feed options from the loaded configuration.
func OptsFromConfig() Opts {
	return Opts{
		SiteURL:     config.Hideoo.Site.URL,
		Title:       config.Hideoo.Site.Title,
		Description: config.Hideoo.Site.Description,
		Language:    config.Hideoo.Site.Language,
		Size:        config.Hideoo.Content.FeedSize,
	}
}

// Build renders the RSS 2.0 document of the given notes, which must be sorted
// newest first.
func Build(all []notes.Note, opts Opts) (string, error) {
	if opts.SiteURL == "" {
		return "", config.ConfigurationError{Field: "site.url", Reason: "missing site URL to generate the RSS feed"}
	}
	if u, err := url.Parse(opts.SiteURL); err != nil || u.Scheme == "" || u.Host == "" {
		return "", config.ConfigurationError{Field: "site.url", Reason: "site URL must be absolute"}
	}
	if opts.Size <= 0 {
		opts.Size = DefaultSize
	}
	if opts.Language == "" {
		opts.Language = "en-us"
	}
	if len(all) > opts.Size {
		all = all[:opts.Size]
	}

	base := stringutils.TrimTrailingSlash(opts.SiteURL)
	f := &feeds.Feed{
		Title:       opts.Title,
		Link:        &feeds.Link{Href: base + "/"},
		Description: opts.Description,
	}
	if len(all) > 0 {
		f.Created = all[0].Date
	}

	sanitizer := newSanitizer()
	for _, note := range all {
		link := base + note.Href
		f.Items = append(f.Items, &feeds.Item{
			Id:          link,
			Title:       note.Title,
			Link:        &feeds.Link{Href: link},
			Description: note.Description,
			Created:     note.Date,
			Content:     sanitizer.Sanitize(notes.RenderHTML(note.Body, base)),
		})
	}

	rss := (&feeds.Rss{Feed: f}).RssFeed()
	rss.Language = opts.Language
	xml, err := feeds.ToXML(rss)
	if err != nil {
		return "", errors.Wrap(err, "failed to encode RSS feed")
	}
	logrus.WithField("items", len(f.Items)).Debug("built RSS feed")
	return xml, nil
}
