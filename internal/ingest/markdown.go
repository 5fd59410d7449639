package ingest

import (
	"bytes"
	"io"
	"strings"

	"github.com/dgallion1/manualkb/internal/manual"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownIngestor flattens Markdown into page text using goldmark.
// Headings are emitted on their own line so the heading classifier can see
// them; thematic breaks (---) start a new page.
type MarkdownIngestor struct{}

func (p *MarkdownIngestor) Pages(r io.Reader, filename string) ([]manual.Page, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	md := goldmark.New()
	reader := text.NewReader(src)
	doc := md.Parser().Parse(reader)

	var pages []manual.Page
	var current strings.Builder

	flushPage := func() {
		if strings.TrimSpace(current.String()) != "" {
			pages = append(pages, manual.Page{Number: len(pages) + 1, Text: current.String()})
		}
		current.Reset()
	}

	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			if current.Len() > 0 {
				current.WriteString("\n")
			}
			current.WriteString(string(node.Text(src)))
			current.WriteString("\n")
		case *ast.ThematicBreak:
			flushPage()
		default:
			if t := blockText(n, src); t != "" {
				if current.Len() > 0 {
					current.WriteString("\n")
				}
				current.WriteString(t)
				current.WriteString("\n")
			}
		}
	}
	flushPage()

	return pages, nil
}

// blockText gets the text content of a goldmark AST node.
func blockText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	if n.Type() == ast.TypeBlock {
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			line := lines.At(i)
			buf.Write(line.Value(src))
		}
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Value(src))
			if t.HardLineBreak() || t.SoftLineBreak() {
				buf.WriteByte('\n')
			}
		} else {
			buf.WriteString(blockText(c, src))
		}
	}
	return strings.TrimSpace(buf.String())
}
