package notes_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/HiDeoo/hideoo.dev/internal/content"
	"github.com/HiDeoo/hideoo.dev/internal/notes"
	"github.com/HiDeoo/hideoo.dev/internal/utils/errutils"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir string, name string, body string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func words(n int) string {
	return strings.TrimSpace(strings.Repeat("word ", n))
}

func TestLoadNotes(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "first.md", `---
title: First
description: The first note
publishDate: 2023-01-10
---
`+words(450))
	writeFile(t, dir, "guides/second.md", `---
title: Second
description: The second note
publishDate: "2024-03-05"
updateDate: 2024-04-01
---
See [about](/about) and [anchor](#top).
`)
	writeFile(t, dir, "third.md", "---\r\ntitle: Third\r\ndescription: The third note\r\npublishDate: 2023-06-01T12:00:00Z\r\n---\r\nbody\r\n")
	writeFile(t, dir, "_draft.md", "not even front matter")
	writeFile(t, dir, "readme.txt", "ignored")

	lib, err := notes.Load(dir, filepath.Join(dir, "missing"))
	require.NoError(t, err)

	all := lib.Notes(0)
	require.Len(t, all, 3)
	require.Equal(t, []string{"guides/second", "third", "first"}, []string{all[0].Slug, all[1].Slug, all[2].Slug})

	second := all[0]
	require.Equal(t, "/notes/guides/second", second.Href)
	require.Equal(t, "Mar 5, 2024", second.PublishDate)
	require.Equal(t, "3/5/24", second.PublishDatetime)
	require.Equal(t, "Apr 1, 2024", second.UpdateDate)
	require.Equal(t, "4/1/24", second.UpdateDatetime)
	require.Equal(t, "1min", second.ReadingTime)
	require.Equal(t, "PT1M", second.ReadingDatetime)
	require.Contains(t, second.HTML, `href="/about"`)
	require.Nil(t, second.Prev)
	require.Equal(t, &notes.Link{Href: "/notes/third", Title: "Third"}, second.Next)

	first := all[2]
	require.Equal(t, "3min", first.ReadingTime)
	require.Empty(t, first.UpdateDate)
	require.Equal(t, &notes.Link{Href: "/notes/third", Title: "Third"}, first.Prev)
	require.Nil(t, first.Next)

	require.Len(t, lib.Notes(2), 2)
	require.Len(t, lib.Notes(10), 3)

	note, ok := lib.Note("third")
	require.True(t, ok)
	require.Equal(t, "Third", note.Title)
	_, ok = lib.Note("_draft")
	require.False(t, ok)
}

func TestLoadNotesInvalidFrontMatter(t *testing.T) {
	for _, tt := range []struct {
		name  string
		body  string
		field string
	}{
		{"no front matter", "# Title", "frontmatter"},
		{"unterminated", "---\ntitle: A\n", "frontmatter"},
		{"missing title", "---\ndescription: A\npublishDate: 2023-01-01\n---\n", "title"},
		{"missing description", "---\ntitle: A\npublishDate: 2023-01-01\n---\n", "description"},
		{"missing publish date", "---\ntitle: A\ndescription: A\n---\n", "publishDate"},
		{"bad date", "---\ntitle: A\ndescription: A\npublishDate: yesterday\n---\n", "frontmatter"},
		{"notebook without name", "---\ntitle: A\ndescription: A\npublishDate: 2023-01-01\nnotebook:\n  order: 1\n---\n", "notebook.name"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, dir, "note.md", tt.body)

			_, err := notes.Load(dir, "")
			violation, ok := errutils.As[content.InvariantViolation](err)
			require.True(t, ok, "expected an InvariantViolation, got %v", err)
			require.Equal(t, tt.field, violation.Field)
			require.Equal(t, "note", violation.ID)
		})
	}
}

func TestReadingMinutes(t *testing.T) {
	require.Equal(t, 1, notes.ReadingMinutes(""))
	require.Equal(t, 1, notes.ReadingMinutes(words(200)))
	require.Equal(t, 2, notes.ReadingMinutes(words(201)))
	require.Equal(t, 5, notes.ReadingMinutes(words(1000)))
}

func TestRenderHTML(t *testing.T) {
	md := "[about](/about) [home](/) [ext](https://example.com) [proto](//cdn.example.com/x) [anchor](#top)\n\n![img](/images/a.png)\n"

	html := notes.RenderHTML(md, "https://hideoo.dev")
	require.Contains(t, html, `href="https://hideoo.dev/about"`)
	require.Contains(t, html, `href="https://hideoo.dev/"`)
	require.Contains(t, html, `href="https://example.com"`)
	require.Contains(t, html, `href="//cdn.example.com/x"`)
	require.Contains(t, html, `href="#top"`)
	require.Contains(t, html, `src="https://hideoo.dev/images/a.png"`)

	html = notes.RenderHTML(md, "")
	require.Contains(t, html, `href="/about"`)
}
