package form8

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const (
	xlsxSheet    = "Форма 8"
	xlsxA4       = 9
	mmToPoints   = 2.835
	xlsxColWidth = 7
)

// XLSXRenderer выгружает ту же раскладку в один лист с разрывами страниц между секциями.
type XLSXRenderer struct{}

func NewXLSXRenderer() *XLSXRenderer { return &XLSXRenderer{} }

func (r *XLSXRenderer) ContentType() string { return MIMEXLSX }

func (r *XLSXRenderer) Extension() string { return "xlsx" }

type xlsxStyleKey struct {
	bold   bool
	border bool
	align  Align
}

func (r *XLSXRenderer) Render(doc Document) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", xlsxSheet); err != nil {
		return nil, err
	}
	lastCol, _ := excelize.ColumnNumberToName(GridSize)
	if err := f.SetColWidth(xlsxSheet, "A", lastCol, xlsxColWidth); err != nil {
		return nil, err
	}
	landscape, size := "landscape", xlsxA4
	if err := f.SetPageLayout(xlsxSheet, &excelize.PageLayoutOptions{Orientation: &landscape, Size: &size}); err != nil {
		return nil, err
	}

	styles := make(map[xlsxStyleKey]int)
	styleFor := func(c Cell) (int, error) {
		key := xlsxStyleKey{bold: c.Bold, border: c.Border, align: c.Align}
		if id, ok := styles[key]; ok {
			return id, nil
		}
		id, err := f.NewStyle(xlsxStyle(key))
		if err != nil {
			return 0, err
		}
		styles[key] = id
		return id, nil
	}

	rowIdx := 1
	for _, s := range doc.Sections {
		for _, rw := range s.Rows {
			colIdx := 1
			for _, c := range rw.Cells {
				from, _ := excelize.CoordinatesToCellName(colIdx, rowIdx)
				to, _ := excelize.CoordinatesToCellName(colIdx+c.Span-1, rowIdx)
				if err := f.SetCellValue(xlsxSheet, from, c.Text); err != nil {
					return nil, err
				}
				if c.Span > 1 {
					if err := f.MergeCell(xlsxSheet, from, to); err != nil {
						return nil, err
					}
				}
				styleID, err := styleFor(c)
				if err != nil {
					return nil, err
				}
				if err := f.SetCellStyle(xlsxSheet, from, to, styleID); err != nil {
					return nil, err
				}
				colIdx += c.Span
			}
			if err := f.SetRowHeight(xlsxSheet, rowIdx, rw.Height*mmToPoints); err != nil {
				return nil, err
			}
			rowIdx++
		}
		if s.BreakAfter {
			cell, _ := excelize.CoordinatesToCellName(1, rowIdx)
			if err := f.InsertPageBreak(xlsxSheet, cell); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("ошибка формирования xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

func xlsxStyle(key xlsxStyleKey) *excelize.Style {
	horizontal := "left"
	switch key.align {
	case AlignCenter:
		horizontal = "center"
	case AlignRight:
		horizontal = "right"
	}
	style := &excelize.Style{
		Font:      &excelize.Font{Bold: key.bold, Size: 9, Family: "Times New Roman"},
		Alignment: &excelize.Alignment{Horizontal: horizontal, Vertical: "center", WrapText: true},
	}
	if key.border {
		style.Border = []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
		}
	}
	return style
}
