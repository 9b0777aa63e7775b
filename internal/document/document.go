// Package document builds the paginated block tree for a quotation
// artifact. The tree is a pure layout description; rendering it to bytes is
// the exporter's job.
package document

// Alignment of text inside a cell.
type Alignment string

const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
)

// PageGeometry describes the fixed page the document is laid out on.
// Dimensions are in inches; orientation is always portrait.
type PageGeometry struct {
	WidthIn        float64
	HeightIn       float64
	MarginTopIn    float64
	MarginBottomIn float64
	MarginLeftIn   float64
	MarginRightIn  float64
}

// LetterGeometry is the single supported page: US letter with the margins
// the original layout used.
func LetterGeometry() PageGeometry {
	return PageGeometry{
		WidthIn:        8.5,
		HeightIn:       11,
		MarginTopIn:    0.8,
		MarginBottomIn: 0.8,
		MarginLeftIn:   0.75,
		MarginRightIn:  0.75,
	}
}

// Cell is one table cell with its styling.
type Cell struct {
	Text  string
	Bold  bool
	Align Alignment
}

// Block is one ordered element of the document body.
type Block interface {
	isBlock()
}

// TitleBlock is the centered main title.
type TitleBlock struct {
	Text string
}

// SeparatorBlock draws a horizontal rule under the title.
type SeparatorBlock struct{}

// SubtitleBlock is the centered bold-italic subtitle.
type SubtitleBlock struct {
	Text string
}

// SpacerBlock inserts vertical whitespace, in millimeters.
type SpacerBlock struct {
	Height float64
}

// TableBlock lays cells on a 12-column grid. Widths apply per column to the
// optional header row and every body row.
type TableBlock struct {
	Widths           []int
	Header           []Cell
	Rows             [][]Cell
	EmphasizeLastRow bool
}

// TermsBlock holds the commercial terms paragraph.
type TermsBlock struct {
	Heading string
	Lines   []string
}

func (TitleBlock) isBlock()     {}
func (SeparatorBlock) isBlock() {}
func (SubtitleBlock) isBlock()  {}
func (SpacerBlock) isBlock()    {}
func (TableBlock) isBlock()     {}
func (TermsBlock) isBlock()     {}

// HeaderBlock repeats at the top of every page: company identity on the
// leading side, optional logo on the trailing side.
type HeaderBlock struct {
	CompanyName string
	Lines       []string

	// Logo is set only when the image bytes were recognized; LogoExt is the
	// sniffed format ("png" or "jpg").
	Logo    []byte
	LogoExt string
}

// FooterBlock repeats at the bottom of every page, centered and italic.
type FooterBlock struct {
	Lines []string
}

// Meta carries the identifiers the exporter derives the artifact file name
// from.
type Meta struct {
	QuoteNumber string
	ClientName  string
	ClientSite  string
}

// Document is the ordered, paginated block tree for one quotation.
type Document struct {
	Page   PageGeometry
	Header HeaderBlock
	Footer FooterBlock
	Blocks []Block
	Meta   Meta
}
