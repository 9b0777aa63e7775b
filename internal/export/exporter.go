// Package export renders a document block tree into the PDF artifact
// delivered to the user. Delivery itself (download, file system) is the
// caller's job; this package only produces bytes and a suggested name.
package export

import (
	"context"
	"fmt"

	"github.com/instacotiza/cotiza/internal/document"
	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/core/entity"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"go.uber.org/zap"
)

// Artifact is a rendered document ready for download.
type Artifact struct {
	Bytes             []byte
	SuggestedFileName string
}

type Exporter struct {
	log *zap.Logger
}

func NewExporter(log *zap.Logger) *Exporter {
	return &Exporter{log: log.Named("export.service")}
}

// Export renders the block tree to PDF bytes. On any rendering failure it
// returns a *document.BuildError and no partial artifact.
func (e *Exporter) Export(ctx context.Context, doc *document.Document) (*Artifact, error) {
	if err := ctx.Err(); err != nil {
		return nil, &document.BuildError{Op: "export", Err: err}
	}

	m := maroto.New(pageConfig(doc.Page))

	if err := m.RegisterHeader(headerRow(doc.Header)); err != nil {
		return nil, &document.BuildError{Op: "register header", Err: err}
	}
	if err := m.RegisterFooter(footerRows(doc.Footer)...); err != nil {
		return nil, &document.BuildError{Op: "register footer", Err: err}
	}

	for _, block := range doc.Blocks {
		m.AddRows(blockRows(block)...)
	}

	rendered, err := m.Generate()
	if err != nil {
		e.log.Error("pdf generation failed",
			zap.String("quote_number", doc.Meta.QuoteNumber),
			zap.Error(err),
		)
		return nil, &document.BuildError{Op: "generate", Err: err}
	}

	name := SuggestedFileName(doc.Meta)
	e.log.Info("artifact exported",
		zap.String("quote_number", doc.Meta.QuoteNumber),
		zap.String("file_name", name),
	)

	return &Artifact{
		Bytes:             rendered.GetBytes(),
		SuggestedFileName: name,
	}, nil
}

// SuggestedFileName derives the artifact download name from the quotation
// identifiers. The values are used verbatim; the pattern is part of the
// export contract.
func SuggestedFileName(meta document.Meta) string {
	return fmt.Sprintf("quote.%s_%s_%s.pdf", meta.QuoteNumber, meta.ClientName, meta.ClientSite)
}

func pageConfig(page document.PageGeometry) *entity.Config {
	return config.NewBuilder().
		WithPageSize(pagesize.Letter).
		WithOrientation(orientation.Vertical).
		WithLeftMargin(mm(page.MarginLeftIn)).
		WithTopMargin(mm(page.MarginTopIn)).
		WithRightMargin(mm(page.MarginRightIn)).
		Build()
}

func mm(inches float64) float64 {
	return inches * 25.4
}

func headerRow(header document.HeaderBlock) core.Row {
	company := col.New(8).Add(
		text.New(header.CompanyName, props.Text{Style: fontstyle.Bold, Size: 10}),
	)
	top := 5.0
	for _, l := range header.Lines {
		company.Add(text.New(l, props.Text{Top: top, Size: 8}))
		top += 4
	}

	trailing := col.New(4)
	if len(header.Logo) > 0 {
		logoExt := extension.Png
		if header.LogoExt == "jpg" {
			logoExt = extension.Jpg
		}
		trailing = image.NewFromBytesCol(4, header.Logo, logoExt, props.Rect{
			Percent: 70,
		})
	}

	return row.New(26).Add(company, trailing)
}

func footerRows(footer document.FooterBlock) []core.Row {
	rows := make([]core.Row, 0, len(footer.Lines))
	for _, l := range footer.Lines {
		rows = append(rows, row.New(5).Add(
			text.NewCol(12, l, props.Text{
				Size:  8,
				Style: fontstyle.Italic,
				Align: align.Center,
			}),
		))
	}
	return rows
}

func blockRows(block document.Block) []core.Row {
	switch b := block.(type) {
	case document.TitleBlock:
		return []core.Row{row.New(10).Add(
			text.NewCol(12, b.Text, props.Text{Size: 14, Style: fontstyle.Bold, Align: align.Center}),
		)}
	case document.SeparatorBlock:
		return []core.Row{row.New(2).Add(line.NewCol(12))}
	case document.SubtitleBlock:
		return []core.Row{row.New(8).Add(
			text.NewCol(12, b.Text, props.Text{Size: 10, Style: fontstyle.BoldItalic, Align: align.Center}),
		)}
	case document.SpacerBlock:
		return []core.Row{row.New(b.Height).Add(col.New(12))}
	case document.TableBlock:
		return tableRows(b)
	case document.TermsBlock:
		return termsRows(b)
	default:
		return nil
	}
}

func tableRows(table document.TableBlock) []core.Row {
	rows := make([]core.Row, 0, len(table.Rows)+1)
	if len(table.Header) > 0 {
		rows = append(rows, cellRow(table.Widths, table.Header, 7, 9))
	}
	for i, cells := range table.Rows {
		size := 9.0
		if table.EmphasizeLastRow && i == len(table.Rows)-1 {
			size = 10
		}
		rows = append(rows, cellRow(table.Widths, cells, 6, size))
	}
	return rows
}

func cellRow(widths []int, cells []document.Cell, height, size float64) core.Row {
	cols := make([]core.Col, 0, len(cells))
	for i, cell := range cells {
		width := 12 / len(cells)
		if i < len(widths) {
			width = widths[i]
		}
		cols = append(cols, text.NewCol(width, cell.Text, props.Text{
			Size:  size,
			Style: styleOf(cell.Bold),
			Align: alignOf(cell.Align),
		}))
	}
	return row.New(height).Add(cols...)
}

func termsRows(terms document.TermsBlock) []core.Row {
	rows := make([]core.Row, 0, len(terms.Lines)+1)
	rows = append(rows, row.New(8).Add(
		text.NewCol(12, terms.Heading, props.Text{Size: 11, Style: fontstyle.Bold}),
	))
	for _, l := range terms.Lines {
		rows = append(rows, row.New(5).Add(
			text.NewCol(12, l, props.Text{Size: 9}),
		))
	}
	return rows
}

func styleOf(bold bool) fontstyle.Type {
	if bold {
		return fontstyle.Bold
	}
	return fontstyle.Normal
}

func alignOf(a document.Alignment) align.Type {
	switch a {
	case document.AlignCenter:
		return align.Center
	case document.AlignRight:
		return align.Right
	default:
		return align.Left
	}
}
