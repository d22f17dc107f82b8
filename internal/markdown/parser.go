package markdown

import (
	"bytes"
	"fmt"
	"html"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"go.abhg.dev/goldmark/frontmatter"
)

type Parser struct {
	md goldmark.Markdown
}

// Document is a parsed markdown file: rendered HTML, its front matter and the plain
// text of the body used for excerpts and reading time.
type Document struct {
	HTML      []byte
	PlainText string
	meta      *frontmatter.Data
}

func NewParser() *Parser {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Footnote,
			extension.Typographer,
			&frontmatter.Extender{},
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			goldmarkhtml.WithHardWraps(),
			goldmarkhtml.WithXHTML(),
			goldmarkhtml.WithUnsafe(),
		),
	)

	return &Parser{
		md: md,
	}
}

// Parse converts source once and keeps the AST around long enough to pull out plain text.
func (p *Parser) Parse(source []byte) (*Document, error) {
	context := parser.NewContext()
	root := p.md.Parser().Parse(text.NewReader(source), parser.WithContext(context))

	var buf bytes.Buffer
	err := p.md.Renderer().Render(&buf, source, root)
	if err != nil {
		return nil, fmt.Errorf("failed to render markdown: %w", err)
	}

	return &Document{
		HTML:      buf.Bytes(),
		PlainText: plainText(root, source),
		meta:      frontmatter.Get(context),
	}, nil
}

// HasFrontmatter reports whether the source started with a front matter block.
func (d *Document) HasFrontmatter() bool {
	return d.meta != nil
}

// DecodeFrontmatter decodes the front matter block into v. Sources without front
// matter leave v untouched.
func (d *Document) DecodeFrontmatter(v any) error {
	if d.meta == nil {
		return nil
	}
	err := d.meta.Decode(v)
	if err != nil {
		return fmt.Errorf("failed to decode frontmatter: %w", err)
	}
	return nil
}

// plainText collects the visible text of a document. Code blocks and raw HTML are
// skipped; block boundaries and line breaks become single spaces.
func plainText(root ast.Node, source []byte) string {
	var buf bytes.Buffer

	space := func() {
		if buf.Len() > 0 && buf.Bytes()[buf.Len()-1] != ' ' {
			buf.WriteByte(' ')
		}
	}

	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		switch node := n.(type) {
		case *ast.FencedCodeBlock, *ast.CodeBlock, *ast.HTMLBlock, *ast.RawHTML:
			return ast.WalkSkipChildren, nil
		case *ast.Text:
			if entering {
				buf.Write(node.Segment.Value(source))
				if node.SoftLineBreak() || node.HardLineBreak() {
					space()
				}
			}
		case *ast.String:
			if entering {
				buf.WriteString(html.UnescapeString(string(node.Value)))
			}
		case *ast.AutoLink:
			if entering {
				buf.Write(node.Label(source))
			}
			return ast.WalkSkipChildren, nil
		default:
			if n.Type() == ast.TypeBlock {
				space()
			}
		}
		return ast.WalkContinue, nil
	})

	return string(bytes.Join(bytes.Fields(buf.Bytes()), []byte(" ")))
}
