package portfolio

import (
	"fmt"
	"regexp"

	"emperror.dev/errors"
	"github.com/HiDeoo/hideoo.dev/internal/gh"
	"github.com/sirupsen/logrus"
)

const (
	shellLanguage = "Shell"
	// minShellSize is the size under which a Shell language edge is ignored:
	// in most repositories, shell code only comes from tooling hooks.
	minShellSize = 2000
)

// RepositoryRecord is a normalized repository.
type RepositoryRecord struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Stars       int             `json:"stars"`
	URL         string          `json:"url"`
	Languages   []LanguageUsage `json:"languages"`
}

// DataQualityWarning describes a repository that was dropped during
// normalization. It is never fatal.
type DataQualityWarning struct {
	Repository string
	Reason     string
}

func (w DataQualityWarning) Error() string {
	return fmt.Sprintf("repository %q: %s", w.Repository, w.Reason)
}

// PartialEdge is a hand-specified language edge. It has no size and therefore
// never contributes to the language distribution.
type PartialEdge struct {
	Name  string
	Color string
}

// LanguageEdges is either the languages detected by the API (Detected) or a
// hand-specified replacement (Overridden).
type LanguageEdges interface {
	edges() []edge
}

type Detected []gh.LanguageEdge

type Overridden []PartialEdge

type edge struct {
	name  string
	color string
	size  int
	sized bool
}

func (d Detected) edges() []edge {
	edges := make([]edge, 0, len(d))
	for _, e := range d {
		var color string
		if e.Node.Color != nil {
			color = *e.Node.Color
		}
		edges = append(edges, edge{name: e.Node.Name, color: color, size: e.Size, sized: true})
	}
	return edges
}

func (o Overridden) edges() []edge {
	edges := make([]edge, 0, len(o))
	for _, e := range o {
		edges = append(edges, edge{name: e.Name, color: e.Color})
	}
	return edges
}

type NormalizerOpts struct {
	// BanList is a list of regular expressions matched against repository
	// names.
	BanList []string
	// LanguageOverrides is keyed by full repository identity (owner/name).
	LanguageOverrides map[string]Overridden
	// ColorOverrides is keyed by language name and replaces the API color.
	ColorOverrides map[string]string
}

// Normalizer converts raw repository nodes into repository records.
type Normalizer struct {
	banList           []*regexp.Regexp
	languageOverrides map[string]Overridden
	colorOverrides    map[string]string
}

func NewNormalizer(opts NormalizerOpts) (*Normalizer, error) {
	n := &Normalizer{
		languageOverrides: opts.LanguageOverrides,
		colorOverrides:    opts.ColorOverrides,
	}
	for _, pattern := range opts.BanList {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, errors.WrapIff(err, "invalid ban list pattern %q", pattern)
		}
		n.banList = append(n.banList, re)
	}
	return n, nil
}

// Banned reports whether the repository name matches a ban list pattern.
func (n *Normalizer) Banned(name string) bool {
	for _, re := range n.banList {
		if re.MatchString(name) {
			return true
		}
	}
	return false
}

// Normalize converts the nodes into repository records, preserving their
// order. Banned nodes are silently skipped; nodes without a description or
// without any language are dropped with a warning. Every sized language edge
// is added to acc, which may be nil when the distribution is not needed.
func (n *Normalizer) Normalize(nodes []gh.RepositoryNode, acc *LanguageAccumulator) ([]RepositoryRecord, []DataQualityWarning) {
	if acc == nil {
		acc = NewLanguageAccumulator()
	}
	var (
		records  []RepositoryRecord
		warnings []DataQualityWarning
	)
	warn := func(node gh.RepositoryNode, reason string) {
		logrus.WithFields(logrus.Fields{
			"repository": node.NameWithOwner,
			"reason":     reason,
		}).Warn("skipping repository")
		warnings = append(warnings, DataQualityWarning{Repository: node.NameWithOwner, Reason: reason})
	}

	for _, node := range nodes {
		if n.Banned(node.Name) {
			logrus.WithField("repository", node.NameWithOwner).Debug("skipping banned repository")
			continue
		}
		if node.Description == nil || *node.Description == "" {
			warn(node, "no description found")
			continue
		}

		edges := n.languageEdges(node).edges()
		if len(edges) == 0 {
			warn(node, "no languages found")
			continue
		}

		languages := []LanguageUsage{}
		for _, e := range edges {
			if e.color == "" {
				continue
			}
			if e.sized && e.name == shellLanguage && e.size < minShellSize {
				continue
			}
			color := e.color
			if override, ok := n.colorOverrides[e.name]; ok {
				color = override
			}
			colors, err := DeriveColors(color)
			if err != nil {
				logrus.WithError(err).WithFields(logrus.Fields{
					"repository": node.NameWithOwner,
					"language":   e.name,
				}).Warn("skipping language with an invalid color")
				continue
			}
			if e.sized {
				acc.Add(e.name, colors, e.size)
			}
			languages = append(languages, LanguageUsage{Name: e.name, Colors: colors})
		}

		records = append(records, RepositoryRecord{
			ID:          node.ID,
			Name:        node.Name,
			Description: *node.Description,
			Stars:       node.StargazerCount,
			URL:         node.URL,
			Languages:   languages,
		})
	}
	return records, warnings
}

// languageEdges resolves the edges of a node once, before aggregation. An
// override replaces the detected edges entirely.
func (n *Normalizer) languageEdges(node gh.RepositoryNode) LanguageEdges {
	if override, ok := n.languageOverrides[node.NameWithOwner]; ok {
		return override
	}
	return Detected(node.Languages.Edges)
}
