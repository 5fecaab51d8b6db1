package form8

import "fmt"

// GridSize - ширина сетки в колонках; сумма Span в каждой строке равна GridSize.
const GridSize = 24

const (
	FormNumber = "Форма № 8"
	Title      = "КНИГА УЧЕТА МАТЕРИАЛЬНЫХ ЦЕННОСТЕЙ"
)

type SectionKind string

const (
	SectionCover  SectionKind = "cover"
	SectionNotes  SectionKind = "notes"
	SectionLedger SectionKind = "ledger"
)

type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

type RowKind string

const (
	RowTitle       RowKind = "title"
	RowText        RowKind = "text"
	RowInfo        RowKind = "info"
	RowBlockHeader RowKind = "block_header"
	RowBlockValues RowKind = "block_values"
	RowBanner      RowKind = "banner"
	RowTableHeader RowKind = "table_header"
	RowData        RowKind = "data"
	RowTotal       RowKind = "total"
)

type Cell struct {
	Text   string `json:"text"`
	Span   int    `json:"span"`
	Bold   bool   `json:"bold,omitempty"`
	Align  Align  `json:"align,omitempty"`
	Border bool   `json:"border,omitempty"`
}

type Row struct {
	Kind   RowKind `json:"kind"`
	Height float64 `json:"height"`
	Cells  []Cell  `json:"cells"`
}

type Section struct {
	Kind       SectionKind `json:"kind"`
	Rows       []Row       `json:"rows"`
	BreakAfter bool        `json:"break_after"`
}

// Document - раскладка отчета, не зависящая от формата выгрузки.
type Document struct {
	Sections []Section `json:"sections"`
}

// Ширины граф книги: №, дата, документ (наим., дата/номер), от кого/кому,
// заводской №, инвентарный №, приход, расход, остаток, контроль.
var ledgerColumns = []struct {
	Title string
	Span  int
}{
	{"№ п/п", 1},
	{"Дата записи", 2},
	{"Документ: наименование", 2},
	{"Документ: дата, номер", 3},
	{"От кого получено / кому отпущено", 4},
	{"Заводской номер", 2},
	{"Инвентарный номер", 2},
	{"Приход", 2},
	{"Расход", 2},
	{"Остаток", 2},
	{"Контроль", 2},
}

// totalLabelSpan - графы до "Прихода" в итоговой строке.
const totalLabelSpan = 16

var blockLabels = []string{
	"Склад", "Стеллаж", "Ячейка", "Ед. изм.: наименование", "Ед. изм.: код", "Цена",
	"Марка", "Сорт", "Профиль", "Размер", "Норма запаса", "Срок годности",
}

var notes = []string{
	"1. Книга ведется материально ответственным лицом по каждой номенклатурной группе на отдельном листе.",
	"2. Записи производятся на основании приходных и расходных документов в день совершения операции.",
	"3. Графа \"Остаток\" заполняется нарастающим итогом после каждой записи.",
	"4. Графа \"Контроль\" заполняется лицом, проверяющим правильность записей.",
	"5. Исправления оговариваются и заверяются подписью материально ответственного лица.",
}

const (
	heightTitle  = 10
	heightText   = 6
	heightHeader = 12
	heightData   = 7
)

// Layout собирает документ: титул, пояснения и по листу на каждую группу.
// Разрыв страницы ставится после каждой секции, кроме последней.
func Layout(header Header, groups []Group) Document {
	sections := make([]Section, 0, len(groups)+2)
	sections = append(sections, coverSection(header), notesSection())
	for _, g := range groups {
		sections = append(sections, ledgerSection(g))
	}
	for i := range sections {
		sections[i].BreakAfter = i < len(sections)-1
	}
	return Document{Sections: sections}
}

func coverSection(h Header) Section {
	info := func(label, value string) Row {
		return Row{Kind: RowInfo, Height: heightText, Cells: []Cell{
			{Text: label, Span: 8},
			{Text: value, Span: 16, Bold: value != ""},
		}}
	}
	return Section{Kind: SectionCover, Rows: []Row{
		{Kind: RowText, Height: heightText, Cells: []Cell{{Text: FormNumber, Span: GridSize, Align: AlignRight}}},
		{Kind: RowTitle, Height: heightTitle, Cells: []Cell{{Text: Title, Span: GridSize, Bold: true, Align: AlignCenter}}},
		info("Учреждение", h.Institution),
		info("Структурное подразделение", h.Department),
		info("Материально ответственное лицо", h.Custodian),
		info("Начата", "«___» ____________ 20__ г."),
		info("Окончена", "«___» ____________ 20__ г."),
	}}
}

func notesSection() Section {
	rows := []Row{{Kind: RowTitle, Height: heightTitle, Cells: []Cell{{Text: "Пояснения", Span: GridSize, Bold: true, Align: AlignCenter}}}}
	for _, n := range notes {
		rows = append(rows, Row{Kind: RowText, Height: heightText, Cells: []Cell{{Text: n, Span: GridSize}}})
	}
	return Section{Kind: SectionNotes, Rows: rows}
}

func ledgerSection(g Group) Section {
	span := GridSize / len(blockLabels)

	labels := make([]Cell, 0, len(blockLabels))
	for _, l := range blockLabels {
		labels = append(labels, Cell{Text: l, Span: span, Bold: true, Align: AlignCenter, Border: true})
	}
	values := make([]Cell, 0, len(blockLabels))
	for _, v := range []string{
		g.Warehouse, g.Rack, g.Cell, g.UnitName, g.UnitCode, g.Price,
		g.Brand, g.Category, g.Profile, g.Size, g.StockNorm, g.ServiceLifeEnd,
	} {
		values = append(values, Cell{Text: v, Span: span, Align: AlignCenter, Border: true})
	}

	head := make([]Cell, 0, len(ledgerColumns))
	for _, c := range ledgerColumns {
		head = append(head, Cell{Text: c.Title, Span: c.Span, Bold: true, Align: AlignCenter, Border: true})
	}

	rows := []Row{
		{Kind: RowBlockHeader, Height: heightHeader, Cells: labels},
		{Kind: RowBlockValues, Height: heightData, Cells: values},
		{Kind: RowBanner, Height: heightData, Cells: []Cell{{
			Text: fmt.Sprintf("Наименование: %s", g.Name), Span: GridSize, Bold: true, Border: true,
		}}},
		{Kind: RowTableHeader, Height: heightHeader, Cells: head},
	}

	for _, r := range g.Rows {
		texts := []string{
			fmt.Sprintf("%d", r.Seq), r.RecordDate, r.DocumentName, r.DocumentRef, r.Counterparty,
			r.SerialNumber, r.InventoryNumber, r.Receipt, r.Expense, r.Balance, r.Control,
		}
		cells := make([]Cell, 0, len(ledgerColumns))
		for i, c := range ledgerColumns {
			cells = append(cells, Cell{Text: texts[i], Span: c.Span, Align: columnAlign(i), Border: true})
		}
		rows = append(rows, Row{Kind: RowData, Height: heightData, Cells: cells})
	}

	rows = append(rows, Row{Kind: RowTotal, Height: heightData, Cells: []Cell{
		{Text: "Итого", Span: totalLabelSpan, Bold: true, Align: AlignRight, Border: true},
		{Text: g.TotalText, Span: 2, Bold: true, Align: AlignRight, Border: true},
		{Text: "", Span: 2, Border: true},
		{Text: g.TotalText, Span: 2, Bold: true, Align: AlignRight, Border: true},
		{Text: "", Span: 2, Border: true},
	}})

	return Section{Kind: SectionLedger, Rows: rows}
}

// суммы выравниваются вправо, номер и даты по центру
func columnAlign(i int) Align {
	switch {
	case i >= 7 && i <= 9:
		return AlignRight
	case i <= 1:
		return AlignCenter
	default:
		return AlignLeft
	}
}
