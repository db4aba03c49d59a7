package notes

import (
	"bytes"
	"io"

	"github.com/russross/blackfriday/v2"
)

// absoluteRenderer rewrites root-relative link and image destinations to
// absolute URLs below base.
type absoluteRenderer struct {
	*blackfriday.HTMLRenderer
	base []byte
}

func (r absoluteRenderer) RenderNode(w io.Writer, node *blackfriday.Node, entering bool) blackfriday.WalkStatus {
	if entering && len(r.base) > 0 && (node.Type == blackfriday.Link || node.Type == blackfriday.Image) {
		dest := node.LinkData.Destination
		if bytes.HasPrefix(dest, []byte("/")) && !bytes.HasPrefix(dest, []byte("//")) {
			node.LinkData.Destination = append(bytes.Clone(r.base), dest...)
		}
	}
	return r.HTMLRenderer.RenderNode(w, node, entering)
}

// RenderHTML renders markdown to HTML. When base is not empty, root-relative
// links and images are made absolute using base, which must not end with a
// slash.
func RenderHTML(markdown string, base string) string {
	renderer := absoluteRenderer{
		HTMLRenderer: blackfriday.NewHTMLRenderer(blackfriday.HTMLRendererParameters{
			Flags: blackfriday.CommonHTMLFlags,
		}),
		base: []byte(base),
	}
	return string(blackfriday.Run(
		[]byte(markdown),
		blackfriday.WithRenderer(renderer),
		blackfriday.WithExtensions(blackfriday.CommonExtensions),
	))
}
