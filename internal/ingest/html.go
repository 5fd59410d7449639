package ingest

import (
	"fmt"
	"io"
	"strings"

	"github.com/dgallion1/manualkb/internal/manual"
	"golang.org/x/net/html"
)

// HTMLIngestor flattens HTML manuals into page text. Heading tags are
// emitted on their own line; <hr> starts a new page.
type HTMLIngestor struct{}

func (p *HTMLIngestor) Pages(r io.Reader, filename string) ([]manual.Page, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	var pages []manual.Page
	var current strings.Builder

	flushPage := func() {
		if strings.TrimSpace(current.String()) != "" {
			pages = append(pages, manual.Page{Number: len(pages) + 1, Text: current.String()})
		}
		current.Reset()
	}
	emitLine := func(t string) {
		if t == "" {
			return
		}
		if current.Len() > 0 {
			current.WriteString("\n")
		}
		current.WriteString(t)
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "h1", "h2", "h3", "h4", "h5", "h6":
				emitLine(textContent(n))
				return
			case "hr":
				flushPage()
				return
			case "script", "style", "nav", "footer", "header":
				return
			case "p", "li", "td", "blockquote":
				emitLine(textContent(n))
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	if body := findBody(doc); body != nil {
		walk(body)
	} else {
		walk(doc)
	}
	flushPage()

	return pages, nil
}

func textContent(n *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.TrimSpace(buf.String())
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBody(c); b != nil {
			return b
		}
	}
	return nil
}
