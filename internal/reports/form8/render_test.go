package form8

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestPDFRenderer_BuiltInFonts(t *testing.T) {
	doc := Layout(Header{Institution: "Org", Department: "IT", Custodian: "Ivanov"}, ivanovGroups(t))

	r := NewPDFRenderer(FontSet{Regular: FontFace{Kind: FontBuiltIn}, Bold: FontFace{Kind: FontBuiltIn}})
	out, err := r.Render(doc)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
	assert.Equal(t, "application/pdf", r.ContentType())
	assert.Equal(t, "pdf", r.Extension())
}

func TestXLSXRenderer_TotalsAndMerges(t *testing.T) {
	doc := Layout(Header{Department: "IT Отдел", Custodian: "Ivanov"}, ivanovGroups(t))

	out, err := NewXLSXRenderer().Render(doc)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(xlsxSheet)
	require.NoError(t, err)

	var total []string
	for _, r := range rows {
		if len(r) > 0 && r[0] == "Итого" {
			total = r
		}
	}
	require.NotNil(t, total, "нет итоговой строки")
	require.GreaterOrEqual(t, len(total), 21)
	assert.Equal(t, "350.50", total[16])
	assert.Equal(t, "350.50", total[20])

	merges, err := f.GetMergeCells(xlsxSheet)
	require.NoError(t, err)
	assert.NotEmpty(t, merges)
}
