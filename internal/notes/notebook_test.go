package notes_test

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/HiDeoo/hideoo.dev/internal/content"
	"github.com/HiDeoo/hideoo.dev/internal/notes"
	"github.com/HiDeoo/hideoo.dev/internal/utils/errutils"
	"github.com/stretchr/testify/require"
)

func notebookNote(name string, date string, notebook string, extra string, wordCount int) string {
	return fmt.Sprintf(`---
title: %s
description: %s description
publishDate: %s
notebook:
  name: %s
%s---
%s`, name, name, date, notebook, extra, words(wordCount))
}

func TestNotebooks(t *testing.T) {
	root := t.TempDir()
	notesDir := filepath.Join(root, "notes")
	notebooksDir := filepath.Join(root, "notebooks")

	writeFile(t, notebooksDir, "go.md", "---\ntitle: Go\ndescription: Learning Go\n---\n")
	writeFile(t, notebooksDir, "rust.md", "---\ntitle: Rust\ndescription: Learning Rust\n---\n")

	writeFile(t, notesDir, "go-1.md", notebookNote("Go 1", "2024-01-03", "go", "  section: basics\n  order: 2\n", 300))
	writeFile(t, notesDir, "go-2.md", notebookNote("Go 2", "2024-01-01", "go", "  section: basics\n  order: 1\n", 100))
	writeFile(t, notesDir, "go-3.md", notebookNote("Go 3", "2024-01-02", "go", "  section: advanced\n", 100))
	writeFile(t, notesDir, "go-4.md", `---
title: Go 4
description: Go 4 description
publishDate: 2024-01-04
updateDate: 2024-02-10
notebook:
  name: go
  section: basics
---
`)
	writeFile(t, notesDir, "rust-1.md", notebookNote("Rust 1", "2024-05-01", "rust", "", 10))
	writeFile(t, notesDir, "standalone.md", "---\ntitle: Alone\ndescription: Alone\npublishDate: 2024-06-01\n---\n")

	lib, err := notes.Load(notesDir, notebooksDir)
	require.NoError(t, err)

	notebooks := lib.Notebooks()
	require.Len(t, notebooks, 2)
	require.Equal(t, "rust", notebooks[0].ID, "notebooks are sorted by publish date descending")

	goBook, ok := lib.Notebook("go")
	require.True(t, ok)
	require.Equal(t, "/notebooks/go", goBook.Href)
	require.Equal(t, "Jan 1, 2024", goBook.PublishDate, "publish date is the earliest note publish date")
	require.Equal(t, "Feb 10, 2024", goBook.UpdateDate, "update date is the latest note update date")
	require.Equal(t, "5min", goBook.ReadingTime)
	require.Equal(t, "PT5M", goBook.ReadingDatetime)
	require.Len(t, goBook.Notes, 4)

	var titles []string
	for _, note := range goBook.SectionNotes("basics") {
		titles = append(titles, note.Title)
	}
	require.Equal(t, []string{"Go 2", "Go 1", "Go 4"}, titles, "unordered notes sort last")
	require.Len(t, goBook.SectionNotes(""), 4)
	require.Empty(t, goBook.SectionNotes("unknown"))

	note, _ := lib.Note("go-3")
	link, err := lib.NotebookOf(note)
	require.NoError(t, err)
	require.Equal(t, notes.Link{Href: "/notebooks/go", Title: "Go"}, link)

	note, _ = lib.Note("standalone")
	_, err = lib.NotebookOf(note)
	require.Error(t, err)
}

func TestNotebookInvariants(t *testing.T) {
	for _, tt := range []struct {
		name       string
		notes      map[string]string
		collection content.Collection
		field      string
	}{
		{
			name:       "no notes",
			notes:      map[string]string{},
			collection: content.CollectionNotebooks,
			field:      "notes",
		},
		{
			name: "too long",
			notes: map[string]string{
				"a.md": notebookNote("A", "2024-01-01", "book", "", 6000),
				"b.md": notebookNote("B", "2024-01-02", "book", "", 6200),
			},
			collection: content.CollectionNotebooks,
			field:      "readingTime",
		},
		{
			name: "unknown notebook",
			notes: map[string]string{
				"a.md": notebookNote("A", "2024-01-01", "book", "", 10),
				"b.md": notebookNote("B", "2024-01-02", "other", "", 10),
			},
			collection: content.CollectionNotes,
			field:      "notebook.name",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			writeFile(t, root, "notebooks/book.md", "---\ntitle: Book\ndescription: Book\n---\n")
			for name, body := range tt.notes {
				writeFile(t, root, filepath.Join("notes", name), body)
			}

			_, err := notes.Load(filepath.Join(root, "notes"), filepath.Join(root, "notebooks"))
			violation, ok := errutils.As[content.InvariantViolation](err)
			require.True(t, ok, "expected an InvariantViolation, got %v", err)
			require.Equal(t, tt.collection, violation.Collection)
			require.Equal(t, tt.field, violation.Field)
		})
	}
}

func TestNotebookAtReadingLimit(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "notebooks/book.md", "---\ntitle: Book\ndescription: Book\n---\n")
	writeFile(t, root, "notes/a.md", notebookNote("A", "2024-01-01", "book", "", 6000))
	writeFile(t, root, "notes/b.md", notebookNote("B", "2024-01-02", "book", "", 6000))

	lib, err := notes.Load(filepath.Join(root, "notes"), filepath.Join(root, "notebooks"))
	require.NoError(t, err)
	book, _ := lib.Notebook("book")
	require.Equal(t, "60min", book.ReadingTime)
}
