package document

import (
	"bytes"
	"io"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Document is the parsed form of a fetched page: the node tree plus its
// lowercased visible text. It answers tag, attribute and text queries.
type Document struct {
	root  *html.Node
	title string
	text  string
}

// Parse decodes input using the charset declared in contentType or sniffed from
// the markup, then builds the node tree. Malformed markup never fails: the
// HTML5 parser recovers, and a decoding problem falls back to the raw bytes.
// Scripting is disabled so <noscript> content is parsed as elements.
func Parse(input []byte, contentType string) *Document {
	var r io.Reader = bytes.NewReader(input)
	if decoded, err := charset.NewReader(bytes.NewReader(input), contentType); err == nil {
		r = decoded
	}
	node, err := html.ParseWithOptions(r, html.ParseOptionEnableScripting(false))
	if err != nil || node == nil {
		node = &html.Node{Type: html.DocumentNode}
	}

	var b strings.Builder
	collectText(&b, node)
	return &Document{
		root:  node,
		title: strings.TrimSpace(findTitle(node)),
		text:  cases.Lower(language.Und).String(b.String()),
	}
}

// Title returns the trimmed <title> text, or "".
func (d *Document) Title() string { return d.title }

// FullText returns all visible text of the page, lowercased.
func (d *Document) FullText() string { return d.text }

// TextLength counts characters, not bytes.
func (d *Document) TextLength() int { return utf8.RuneCountInString(d.text) }

// ContainsText reports whether the lowercased full text contains sub.
func (d *Document) ContainsText(sub string) bool {
	return strings.Contains(d.text, sub)
}

// TextMatches reports whether re matches anywhere in the full text.
func (d *Document) TextMatches(re *regexp.Regexp) bool {
	return re.MatchString(d.text)
}

// HasElement reports whether an element named tag exists.
func (d *Document) HasElement(tag string) bool {
	return findFirst(d.root, func(n *html.Node) bool {
		return n.Type == html.ElementNode && strings.EqualFold(n.Data, tag)
	}) != nil
}

// HasAttribute reports whether any element carries the attribute name,
// regardless of its value.
func (d *Document) HasAttribute(name string) bool {
	return findFirst(d.root, func(n *html.Node) bool {
		if n.Type != html.ElementNode {
			return false
		}
		for _, a := range n.Attr {
			if strings.EqualFold(a.Key, name) {
				return true
			}
		}
		return false
	}) != nil
}

// AnchorTextMatches reports whether the text of any <a> element matches re.
func (d *Document) AnchorTextMatches(re *regexp.Regexp) bool {
	return findFirst(d.root, func(n *html.Node) bool {
		if n.Type != html.ElementNode || !strings.EqualFold(n.Data, "a") {
			return false
		}
		var b strings.Builder
		collectText(&b, n)
		return re.MatchString(b.String())
	}) != nil
}

func findTitle(n *html.Node) string {
	t := findFirst(n, func(cur *html.Node) bool {
		return cur.Type == html.ElementNode && strings.EqualFold(cur.Data, "title")
	})
	if t == nil {
		return ""
	}
	var b strings.Builder
	collectText(&b, t)
	return b.String()
}

func findFirst(n *html.Node, match func(*html.Node) bool) *html.Node {
	if n == nil {
		return nil
	}
	var res *html.Node
	var dfs func(*html.Node)
	dfs = func(cur *html.Node) {
		if res != nil {
			return
		}
		if match(cur) {
			res = cur
			return
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			dfs(c)
			if res != nil {
				return
			}
		}
	}
	dfs(n)
	return res
}

// collectText concatenates text nodes below n, skipping non-rendered
// containers. Comments and doctype nodes are not text nodes.
func collectText(b *strings.Builder, n *html.Node) {
	if n.Type == html.ElementNode {
		switch strings.ToLower(n.Data) {
		case "script", "style", "template":
			return
		}
	}
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(b, c)
	}
}
