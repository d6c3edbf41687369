package render

import (
	"bytes"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// fragmentKey holds the template.HTML a rating tag expands to. Without it
// rating tags stay literal text.
var fragmentKey = parser.NewContextKey()

var (
	kindRatingTag   = ast.NewNodeKind("RatingTag")
	kindRatingBlock = ast.NewNodeKind("RatingBlock")
)

// ratingTag is a rating tag in running text. Its single child holds the
// literal tag, which is what plain-text contexts such as image alt text see.
type ratingTag struct {
	ast.BaseInline
	Fragment template.HTML
}

func (n *ratingTag) Kind() ast.NodeKind { return kindRatingTag }

func (n *ratingTag) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, nil, nil)
}

// ratingBlock replaces a paragraph holding nothing but a rating tag.
type ratingBlock struct {
	ast.BaseBlock
	Fragment template.HTML
}

func (n *ratingBlock) Kind() ast.NodeKind { return kindRatingBlock }

func (n *ratingBlock) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, nil, nil)
}

type ratingTagParser struct{}

func (ratingTagParser) Trigger() []byte {
	return []byte{'['}
}

func (ratingTagParser) Parse(_ ast.Node, block text.Reader, pc parser.Context) ast.Node {
	fragment, ok := pc.Get(fragmentKey).(template.HTML)
	if !ok {
		return nil
	}
	line, segment := block.PeekLine()
	if !bytes.HasPrefix(line, []byte(RatingTag)) {
		return nil
	}

	n := &ratingTag{Fragment: fragment}
	n.AppendChild(n, ast.NewTextSegment(segment.WithStop(segment.Start+len(RatingTag))))
	block.Advance(len(RatingTag))
	return n
}

type standaloneTagTransformer struct{}

func (standaloneTagTransformer) Transform(doc *ast.Document, _ text.Reader, _ parser.Context) {
	var standalone []*ast.Paragraph
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		p, ok := n.(*ast.Paragraph)
		if !ok {
			return ast.WalkContinue, nil
		}
		if p.ChildCount() == 1 && p.FirstChild().Kind() == kindRatingTag {
			standalone = append(standalone, p)
		}
		return ast.WalkSkipChildren, nil
	})

	for _, p := range standalone {
		tag := p.FirstChild().(*ratingTag)
		p.Parent().ReplaceChild(p.Parent(), p, &ratingBlock{Fragment: tag.Fragment})
	}
}

type ratingTagRenderer struct{}

func (r ratingTagRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(kindRatingTag, r.renderTag)
	reg.Register(kindRatingBlock, r.renderBlock)
}

func (ratingTagRenderer) renderTag(
	w util.BufWriter, _ []byte, n ast.Node, entering bool,
) (ast.WalkStatus, error) {
	if entering {
		_, _ = w.WriteString(string(n.(*ratingTag).Fragment))
	}
	return ast.WalkSkipChildren, nil
}

func (ratingTagRenderer) renderBlock(
	w util.BufWriter, _ []byte, n ast.Node, entering bool,
) (ast.WalkStatus, error) {
	if entering {
		if fragment := n.(*ratingBlock).Fragment; fragment != "" {
			_, _ = w.WriteString(string(fragment))
			_ = w.WriteByte('\n')
		}
	}
	return ast.WalkSkipChildren, nil
}

// ratingTags expands rating tags found in ordinary text. Tags in code spans,
// code blocks, raw HTML or escaped with a backslash are left alone.
type ratingTags struct{}

func (ratingTags) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(
		// Ahead of the link parser, which also triggers on '['.
		parser.WithInlineParsers(util.Prioritized(ratingTagParser{}, 199)),
		parser.WithASTTransformers(util.Prioritized(standaloneTagTransformer{}, 100)),
	)
	m.Renderer().AddOptions(
		renderer.WithNodeRenderers(util.Prioritized(ratingTagRenderer{}, 100)),
	)
}
