package notes

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"emperror.dev/errors"
	"github.com/HiDeoo/hideoo.dev/internal/content"
)

// Link points to another page of the site.
type Link struct {
	Href  string `json:"href"`
	Title string `json:"title"`
}

type Note struct {
	Slug        string       `json:"slug"`
	Href        string       `json:"href"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Date        time.Time    `json:"date"`
	Updated     *time.Time   `json:"updated,omitempty"`
	Notebook    *NotebookRef `json:"notebook,omitempty"`
	Meta
	// Prev is the next newer note and Next the next older one.
	Prev *Link `json:"prev,omitempty"`
	Next *Link `json:"next,omitempty"`
	HTML string `json:"html"`

	Body           string `json:"-"`
	ReadingMinutes int    `json:"-"`
}

func (n Note) Validate() error {
	return content.FirstError(
		content.RequireString("title", n.Title),
		content.RequireString("description", n.Description),
		content.RequireString("href", n.Href),
	)
}

func (n Note) Link() Link {
	return Link{Href: n.Href, Title: n.Title}
}

func noteFromFile(slug string, src []byte) (Note, error) {
	var fm FrontMatter
	body, err := parseFrontMatter(src, &fm)
	if err != nil {
		return Note{}, content.InvariantViolation{
			Collection: content.CollectionNotes, ID: slug, Field: "frontmatter", Reason: err.Error(),
		}
	}

	violation := func(field string) error {
		return content.InvariantViolation{
			Collection: content.CollectionNotes, ID: slug, Field: field, Reason: "missing value",
		}
	}
	switch {
	case fm.Title == "":
		return Note{}, violation("title")
	case fm.Description == "":
		return Note{}, violation("description")
	case fm.PublishDate == nil:
		return Note{}, violation("publishDate")
	case fm.Notebook != nil && fm.Notebook.Name == "":
		return Note{}, violation("notebook.name")
	}

	var updated *time.Time
	if fm.UpdateDate != nil {
		updated = &fm.UpdateDate.Time
	}
	minutes := ReadingMinutes(string(body))

	return Note{
		Slug:           slug,
		Href:           "/notes/" + slug,
		Title:          fm.Title,
		Description:    fm.Description,
		Date:           fm.PublishDate.Time,
		Updated:        updated,
		Notebook:       fm.Notebook,
		Meta:           newMeta(fm.PublishDate.Time, updated, minutes),
		HTML:           RenderHTML(string(body), ""),
		Body:           string(body),
		ReadingMinutes: minutes,
	}, nil
}

type markdownFile struct {
	slug string
	path string
}

// markdownFiles lists the markdown files below dir, skipping the ones whose
// name starts with an underscore. A missing directory has no files.
func markdownFiles(dir string) ([]markdownFile, error) {
	if dir == "" {
		return nil, nil
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil, nil
	}

	var files []markdownFile
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ".md" || strings.HasPrefix(d.Name(), "_") {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		files = append(files, markdownFile{
			slug: filepath.ToSlash(strings.TrimSuffix(rel, ".md")),
			path: path,
		})
		return nil
	})
	if err != nil {
		return nil, errors.WrapIff(err, "failed to list markdown files in %q", dir)
	}
	return files, nil
}
