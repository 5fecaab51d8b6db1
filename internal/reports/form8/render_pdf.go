package form8

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/page"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/border"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontfamily"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/core/entity"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/johnfercher/maroto/v2/pkg/repository"
)

const (
	pdfFontSize      = 7
	pdfTitleFontSize = 12
)

var pdfBorder = &props.Cell{
	BorderType:      border.Full,
	BorderColor:     &props.Color{Red: 0, Green: 0, Blue: 0},
	BorderThickness: 0.2,
}

// PDFRenderer - альбомный A4 на сетке из GridSize колонок.
type PDFRenderer struct {
	fonts FontSet
}

func NewPDFRenderer(fonts FontSet) *PDFRenderer {
	return &PDFRenderer{fonts: fonts}
}

func (r *PDFRenderer) ContentType() string { return MIMEPDF }

func (r *PDFRenderer) Extension() string { return "pdf" }

func (r *PDFRenderer) Render(doc Document) ([]byte, error) {
	cfg, err := r.config()
	if err != nil {
		return nil, err
	}
	m := maroto.New(cfg)

	var pending []core.Row
	for _, s := range doc.Sections {
		for _, rw := range s.Rows {
			pending = append(pending, r.row(rw))
		}
		if s.BreakAfter {
			m.AddPages(page.New().Add(pending...))
			pending = nil
		}
	}
	if len(pending) > 0 {
		m.AddPages(page.New().Add(pending...))
	}

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("ошибка формирования PDF: %w", err)
	}
	return out.GetBytes(), nil
}

func (r *PDFRenderer) config() (*entity.Config, error) {
	builder := config.NewBuilder().
		WithOrientation(orientation.Horizontal).
		WithPageSize(pagesize.A4).
		WithMaxGridSize(GridSize).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10)

	regular, _ := r.face(false)
	if !r.fonts.Regular.BuiltIn() || !r.fonts.Bold.BuiltIn() {
		repo := repository.New()
		if !r.fonts.Regular.BuiltIn() {
			repo = repo.AddUTF8FontFromBytes(FamilyRegular, fontstyle.Normal, r.fonts.Regular.Data)
		}
		if !r.fonts.Bold.BuiltIn() {
			repo = repo.AddUTF8FontFromBytes(FamilyBold, fontstyle.Bold, r.fonts.Bold.Data)
		}
		custom, err := repo.Load()
		if err != nil {
			return nil, fmt.Errorf("ошибка загрузки шрифтов: %w", err)
		}
		builder = builder.WithCustomFonts(custom)
	}

	return builder.WithDefaultFont(&props.Font{Family: regular, Style: fontstyle.Normal, Size: pdfFontSize}).Build(), nil
}

// face - семейство и начертание для обычного или жирного текста.
func (r *PDFRenderer) face(bold bool) (string, fontstyle.Type) {
	if !bold {
		if r.fonts.Regular.BuiltIn() {
			return fontfamily.Arial, fontstyle.Normal
		}
		return FamilyRegular, fontstyle.Normal
	}
	if r.fonts.Bold.BuiltIn() {
		return fontfamily.Arial, fontstyle.Bold
	}
	return FamilyBold, fontstyle.Bold
}

func (r *PDFRenderer) row(rw Row) core.Row {
	size := float64(pdfFontSize)
	if rw.Kind == RowTitle {
		size = pdfTitleFontSize
	}

	cols := make([]core.Col, 0, len(rw.Cells))
	for _, c := range rw.Cells {
		cl := col.New(c.Span)
		if c.Text != "" {
			family, style := r.face(c.Bold)
			cl = cl.Add(text.New(c.Text, props.Text{
				Family: family,
				Style:  style,
				Size:   size,
				Align:  pdfAlign(c.Align),
				Top:    1,
				Left:   0.5,
				Right:  0.5,
			}))
		}
		if c.Border {
			cl = cl.WithStyle(pdfBorder)
		}
		cols = append(cols, cl)
	}
	return row.New(rw.Height).Add(cols...)
}

func pdfAlign(a Align) align.Type {
	switch a {
	case AlignCenter:
		return align.Center
	case AlignRight:
		return align.Right
	default:
		return align.Left
	}
}
