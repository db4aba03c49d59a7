// Package notes loads the markdown notes and notebooks of the site.
package notes

import (
	"os"
	"slices"
	"strings"

	"emperror.dev/errors"
	"github.com/HiDeoo/hideoo.dev/internal/content"
	"github.com/sirupsen/logrus"
)

// Library holds every note and notebook, newest first.
type Library struct {
	notes     []Note
	notebooks []Notebook
}

// Load reads the notes of notesDir and the notebook descriptors of
// notebooksDir.
func Load(notesDir string, notebooksDir string) (*Library, error) {
	notes, err := loadNotes(notesDir)
	if err != nil {
		return nil, err
	}
	notebooks, err := loadNotebooks(notebooksDir, notes)
	if err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{
		"notes":     len(notes),
		"notebooks": len(notebooks),
	}).Debug("loaded notes")
	return &Library{notes: notes, notebooks: notebooks}, nil
}

func loadNotes(dir string) ([]Note, error) {
	files, err := markdownFiles(dir)
	if err != nil {
		return nil, err
	}

	notes := make([]Note, 0, len(files))
	for _, file := range files {
		src, err := os.ReadFile(file.path)
		if err != nil {
			return nil, errors.WrapIff(err, "failed to read note %q", file.path)
		}
		note, err := noteFromFile(file.slug, src)
		if err != nil {
			return nil, err
		}
		notes = append(notes, note)
	}

	slices.SortStableFunc(notes, func(a, b Note) int {
		if c := b.Date.Compare(a.Date); c != 0 {
			return c
		}
		return strings.Compare(a.Slug, b.Slug)
	})
	for i := range notes {
		if i > 0 {
			prev := notes[i-1].Link()
			notes[i].Prev = &prev
		}
		if i < len(notes)-1 {
			next := notes[i+1].Link()
			notes[i].Next = &next
		}
	}
	return notes, nil
}

func loadNotebooks(dir string, notes []Note) ([]Notebook, error) {
	files, err := markdownFiles(dir)
	if err != nil {
		return nil, err
	}

	ids := make(map[string]bool, len(files))
	notebooks := make([]Notebook, 0, len(files))
	for _, file := range files {
		src, err := os.ReadFile(file.path)
		if err != nil {
			return nil, errors.WrapIff(err, "failed to read notebook %q", file.path)
		}
		var fm notebookFrontMatter
		if _, err := parseFrontMatter(src, &fm); err != nil {
			return nil, content.InvariantViolation{
				Collection: content.CollectionNotebooks, ID: file.slug, Field: "frontmatter", Reason: err.Error(),
			}
		}

		var members []Note
		for _, note := range notes {
			if note.Notebook != nil && note.Notebook.Name == file.slug {
				members = append(members, note)
			}
		}
		notebook, err := newNotebook(file.slug, fm, members)
		if err != nil {
			return nil, err
		}
		ids[file.slug] = true
		notebooks = append(notebooks, notebook)
	}

	for _, note := range notes {
		if note.Notebook != nil && !ids[note.Notebook.Name] {
			return nil, content.InvariantViolation{
				Collection: content.CollectionNotes,
				ID:         note.Slug,
				Field:      "notebook.name",
				Reason:     "unknown notebook " + note.Notebook.Name,
			}
		}
	}

	slices.SortStableFunc(notebooks, func(a, b Notebook) int {
		return b.Date.Compare(a.Date)
	})
	return notebooks, nil
}

// Notes returns the count most recent notes, or all of them when count is 0.
func (l *Library) Notes(count int) []Note {
	if count > 0 && count < len(l.notes) {
		return l.notes[:count]
	}
	return l.notes
}

func (l *Library) Note(slug string) (Note, bool) {
	i := slices.IndexFunc(l.notes, func(n Note) bool { return n.Slug == slug })
	if i < 0 {
		return Note{}, false
	}
	return l.notes[i], true
}

func (l *Library) Notebooks() []Notebook {
	return l.notebooks
}

func (l *Library) Notebook(id string) (Notebook, bool) {
	i := slices.IndexFunc(l.notebooks, func(n Notebook) bool { return n.ID == id })
	if i < 0 {
		return Notebook{}, false
	}
	return l.notebooks[i], true
}

// NotebookOf returns a link to the notebook of a note.
func (l *Library) NotebookOf(note Note) (Link, error) {
	if note.Notebook == nil {
		return Link{}, errors.Errorf("note %q has no notebook", note.Slug)
	}
	notebook, ok := l.Notebook(note.Notebook.Name)
	if !ok {
		return Link{}, errors.Errorf("note %q references unknown notebook %q", note.Slug, note.Notebook.Name)
	}
	return Link{Href: notebook.Href, Title: notebook.Title}, nil
}
