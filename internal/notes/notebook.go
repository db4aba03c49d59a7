package notes

import (
	"cmp"
	"math"
	"slices"
	"time"

	"github.com/HiDeoo/hideoo.dev/internal/content"
)

// MaxNotebookReadingMinutes is the longest supported notebook.
const MaxNotebookReadingMinutes = 60

type Notebook struct {
	ID          string     `json:"id"`
	Href        string     `json:"href"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Date        time.Time  `json:"date"`
	Updated     *time.Time `json:"updated,omitempty"`
	Meta
	Notes []Link `json:"notes"`

	notes []Note
}

func (n Notebook) Validate() error {
	return content.FirstError(
		content.RequireString("title", n.Title),
		content.RequireString("description", n.Description),
		content.RequireString("href", n.Href),
	)
}

// SectionNotes returns the notes of the notebook ordered by their notebook
// order. An empty section matches every note. Notes without an order are
// sorted last.
func (n Notebook) SectionNotes(section string) []Note {
	var notes []Note
	for _, note := range n.notes {
		if section == "" || note.Notebook.Section == section {
			notes = append(notes, note)
		}
	}
	slices.SortStableFunc(notes, func(a, b Note) int {
		return cmp.Compare(noteOrder(a), noteOrder(b))
	})
	return notes
}

func noteOrder(note Note) int {
	if note.Notebook == nil || note.Notebook.Order == nil {
		return math.MaxInt
	}
	return *note.Notebook.Order
}

type notebookFrontMatter struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// newNotebook aggregates the notes of a notebook. notes must already be
// sorted and filtered to the notebook.
func newNotebook(id string, fm notebookFrontMatter, notes []Note) (Notebook, error) {
	violation := func(field, reason string) error {
		return content.InvariantViolation{
			Collection: content.CollectionNotebooks, ID: id, Field: field, Reason: reason,
		}
	}
	if len(notes) == 0 {
		return Notebook{}, violation("notes", "notebook has no notes")
	}

	var minutes int
	var published time.Time
	var updated *time.Time
	links := make([]Link, 0, len(notes))
	for _, note := range notes {
		if note.ReadingMinutes <= 0 {
			return Notebook{}, violation("readingTime", "note "+note.Slug+" has no reading time")
		}
		minutes += note.ReadingMinutes
		if published.IsZero() || note.Date.Before(published) {
			published = note.Date
		}
		if note.Updated != nil && (updated == nil || note.Updated.After(*updated)) {
			updated = note.Updated
		}
		links = append(links, note.Link())
	}
	if minutes > MaxNotebookReadingMinutes {
		return Notebook{}, violation("readingTime", "reading time exceeds 60 minutes")
	}

	return Notebook{
		ID:          id,
		Href:        "/notebooks/" + id,
		Title:       fm.Title,
		Description: fm.Description,
		Date:        published,
		Updated:     updated,
		Meta:        newMeta(published, updated, minutes),
		Notes:       links,
		notes:       notes,
	}, nil
}
