package notes

import (
	"bytes"
	"time"

	"emperror.dev/errors"
	"github.com/HiDeoo/hideoo.dev/internal/utils/timeutils"
	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"
)

// Date is a front matter date. Both bare dates and RFC 3339 timestamps are
// accepted, quoted or not.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalYAML(value *yaml.Node) error {
	t, err := timeutils.ParseDate(value.Value)
	if err != nil {
		return errors.WrapIff(err, "invalid date %q", value.Value)
	}
	d.Time = t
	return nil
}

type NotebookRef struct {
	Name    string `yaml:"name"    json:"name"`
	Section string `yaml:"section" json:"section,omitempty"`
	Order   *int   `yaml:"order"   json:"order,omitempty"`
}

type FrontMatter struct {
	Title       string       `yaml:"title"`
	Description string       `yaml:"description"`
	PublishDate *Date        `yaml:"publishDate"`
	UpdateDate  *Date        `yaml:"updateDate"`
	Notebook    *NotebookRef `yaml:"notebook"`
}

var yamlFormat = frontmatter.NewFormat("---", "---", yaml.Unmarshal)

// parseFrontMatter decodes the YAML front matter delimited by "---" lines into
// out and returns the markdown body that follows it.
func parseFrontMatter(src []byte, out any) (body []byte, err error) {
	src = bytes.ReplaceAll(src, []byte("\r\n"), []byte("\n"))
	body, err = frontmatter.MustParse(bytes.NewReader(src), out, yamlFormat)
	if errors.Is(err, frontmatter.ErrNotFound) {
		return nil, errors.New("missing or unterminated front matter")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode front matter")
	}
	return body, nil
}
