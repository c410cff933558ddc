package render

import (
	"io"
	"os"

	"github.com/nao1215/markdown"

	"github.com/hyperifyio/goheuristics/internal/heuristics"
)

// WriteMarkdown writes r as a Markdown document: a title, the analysed URL,
// and one section per heuristic with its findings as a bullet list.
func WriteMarkdown(w io.Writer, r heuristics.Report) error {
	md := markdown.NewMarkdown(w)
	md.H1(Title)
	md.PlainText("")
	if r.URL != "" {
		md.PlainText("Analyzed page: " + r.URL)
		md.PlainText("")
	}
	for _, s := range r.Sections {
		md.H2(s.Heuristic.Label())
		md.PlainText("")
		md.BulletList(s.Findings...)
		md.PlainText("")
	}
	return md.Build()
}

// WriteMarkdownFile writes the Markdown rendering of r to outPath.
func WriteMarkdownFile(r heuristics.Report, outPath string) error {
	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	if err := WriteMarkdown(f, r); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
