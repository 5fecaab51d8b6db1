package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"inventory-system/internal/entities"
	"inventory-system/internal/reports/form8"
	apperrors "inventory-system/pkg/errors"
	"inventory-system/pkg/metrics"
)

type reportFixture struct {
	departments   *fakeDepartmentRepo
	organizations *fakeOrganizationRepo
	users         *fakeUserRepo
	places        *fakePlaceRepo
	vendors       *fakeVendorRepo
	nomenclatures *fakeNomenclatureRepo
	equipment     *fakeEquipmentRepo
	invoices      *fakeInvoiceRepo
	registry      *prometheus.Registry
	metrics       *metrics.ReportMetrics
	service       *reportService
	deptID        uint64
}

func newReportFixture(t *testing.T) *reportFixture {
	t.Helper()
	f := &reportFixture{
		departments:   newFakeDepartmentRepo(),
		organizations: newFakeOrganizationRepo(),
		users:         newFakeUserRepo(),
		places:        newFakePlaceRepo(),
		vendors:       newFakeVendorRepo(),
		nomenclatures: newFakeNomenclatureRepo(),
		equipment:     newFakeEquipmentRepo(),
		invoices:      newFakeInvoiceRepo(),
		registry:      prometheus.NewRegistry(),
	}
	f.metrics = metrics.NewReportMetrics(f.registry)

	org := f.organizations.t.insert(entities.Organization{Name: "ГБУ Тест"})
	custodian := f.users.t.insert(entities.User{Login: "ivanov", Fio: "Иванов И.И."})
	dept := f.departments.t.insert(entities.Department{Name: "IT Отдел", OrganizationID: org.ID, CustodianID: &custodian.ID})
	f.deptID = dept.ID

	lookup := NewReportLookup(f.nomenclatures, f.vendors, f.places, f.users, f.invoices)
	svc := NewReportService(f.departments, f.organizations, f.users, f.equipment, lookup,
		form8.FontSet{Regular: form8.FontFace{Kind: form8.FontBuiltIn}, Bold: form8.FontFace{Kind: form8.FontBuiltIn}},
		f.metrics, time.UTC, zap.NewNop())
	f.service = svc.(*reportService)
	f.service.now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }
	return f
}

// addGroupSeven - две единицы группы 7 стоимостью 100.00 и 250.50.
func (f *reportFixture) addGroupSeven() {
	vendor := f.vendors.t.insert(entities.Vendor{Name: "Dell"})
	f.nomenclatures.seed(entities.Nomenclature{ID: 7, Name: "Ноутбуки", VendorID: &vendor.ID})
	place := f.places.t.insert(entities.Place{Name: "Центральный склад"})
	custodianID := uint64(1)
	for _, cost := range []string{"100.00", "250.50"} {
		f.equipment.t.insert(entities.Equipment{
			Name:           "Ноутбук",
			NomenclatureID: 7,
			PlaceID:        place.ID,
			UserID:         &custodianID,
			DepartmentID:   &f.deptID,
			Cost:           decimal.NewNullDecimal(decimal.RequireFromString(cost)),
		})
	}
}

func (n *fakeNomenclatureRepo) seed(v entities.Nomenclature) {
	n.t.rows[v.ID] = v
	if v.ID > n.t.nextID {
		n.t.nextID = v.ID
	}
}

func TestReportService_Form8Data(t *testing.T) {
	f := newReportFixture(t)
	f.addGroupSeven()

	data, err := f.service.Form8Data(context.Background(), f.deptID)
	require.NoError(t, err)

	assert.Equal(t, form8.Header{Institution: "ГБУ Тест", Department: "IT Отдел", Custodian: "Иванов И.И."}, data.Header)
	require.Len(t, data.Groups, 1)
	g := data.Groups[0]
	assert.Equal(t, "Ноутбуки", g.Name)
	assert.Equal(t, "Dell", g.Brand)
	assert.Equal(t, "Центральный склад", g.Warehouse)
	assert.Equal(t, "100.00", g.Price)
	assert.Equal(t, "350.50", g.TotalText)
	// накладных нет - в графе логин МОЛ
	assert.Equal(t, "ivanov", g.Rows[0].Counterparty)

	f.assertCounter(t, "generated_total", "json", 1)
}

func TestReportService_Form8FilePDF(t *testing.T) {
	f := newReportFixture(t)
	f.addGroupSeven()

	file, err := f.service.Form8File(context.Background(), f.deptID, "")
	require.NoError(t, err)

	assert.Equal(t, "form8_IT Отдел_20240102_030405.pdf", file.Name)
	assert.Equal(t, form8.MIMEPDF, file.ContentType)
	assert.True(t, bytes.HasPrefix(file.Data, []byte("%PDF")))
}

func TestReportService_Form8FileXLSX(t *testing.T) {
	f := newReportFixture(t)
	f.addGroupSeven()

	file, err := f.service.Form8File(context.Background(), f.deptID, "XLSX")
	require.NoError(t, err)
	assert.Equal(t, "form8_IT Отдел_20240102_030405.xlsx", file.Name)
	assert.Equal(t, form8.MIMEXLSX, file.ContentType)

	x, err := excelize.OpenReader(bytes.NewReader(file.Data))
	require.NoError(t, err)
	defer x.Close()
	assert.NotEmpty(t, x.GetSheetList())
}

func TestReportService_Form8File_UsesEarliestInvoice(t *testing.T) {
	f := newReportFixture(t)
	f.addGroupSeven()
	warehouse := f.places.t.insert(entities.Place{Name: "Склад №2"})
	_, err := f.invoices.Create(context.Background(), nil, entities.Invoice{
		Number:       "15",
		TransferType: entities.TransferWarehouseToCustodian,
		InvoiceDate:  time.Date(2023, 5, 10, 0, 0, 0, 0, time.UTC),
		PlaceID:      &warehouse.ID,
		Lines:        []entities.InvoiceLine{{EquipmentID: 1}},
	})
	require.NoError(t, err)

	data, err := f.service.Form8Data(context.Background(), f.deptID)
	require.NoError(t, err)

	row := data.Groups[0].Rows[0]
	assert.Equal(t, "Приходный ордер", row.DocumentName)
	assert.Equal(t, "10.05.2023 № 15", row.DocumentRef)
	assert.Equal(t, "Склад №2", row.Counterparty)
	assert.Equal(t, "ivanov", data.Groups[0].Rows[1].Counterparty)
}

func TestReportService_EmptyDepartment(t *testing.T) {
	f := newReportFixture(t)

	file, err := f.service.Form8File(context.Background(), f.deptID, "pdf")

	assert.Nil(t, file)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	f.assertCounter(t, "failed_total", "pdf", 1)
}

func TestReportService_UnknownDepartment(t *testing.T) {
	f := newReportFixture(t)

	_, err := f.service.Form8File(context.Background(), 999, "pdf")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestReportService_UnsupportedFormat(t *testing.T) {
	f := newReportFixture(t)
	f.addGroupSeven()

	_, err := f.service.Form8File(context.Background(), f.deptID, "docx")

	var invalid *apperrors.InvalidInputError
	assert.True(t, errors.As(err, &invalid))
}

func TestReportService_MissingOrganizationAndCustodian(t *testing.T) {
	f := newReportFixture(t)
	f.addGroupSeven()
	missing := uint64(404)
	dept := f.departments.t.insert(entities.Department{Name: "Склад", OrganizationID: 404, CustodianID: &missing})
	f.equipment.t.insert(entities.Equipment{Name: "Стол", NomenclatureID: 7, DepartmentID: &dept.ID})

	data, err := f.service.Form8Data(context.Background(), dept.ID)
	require.NoError(t, err)
	assert.Equal(t, form8.Header{Department: "Склад"}, data.Header)
}

func TestReportService_RepositoryFailure(t *testing.T) {
	f := newReportFixture(t)
	f.equipment.listErr = errors.New("connection reset")

	_, err := f.service.Form8File(context.Background(), f.deptID, "pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
	assert.NotErrorIs(t, err, apperrors.ErrInvalidInput)
}

func (f *reportFixture) assertCounter(t *testing.T, name, format string, value int) {
	t.Helper()
	help := map[string]string{
		"generated_total": "Количество успешно сформированных отчетов.",
		"failed_total":    "Количество отчетов, завершившихся ошибкой.",
	}[name]
	metric := "inventory_reports_" + name
	expected := fmt.Sprintf("# HELP %s %s\n# TYPE %s counter\n%s{format=%q,report=\"form8\"} %d\n",
		metric, help, metric, metric, format, value)
	assert.NoError(t, testutil.GatherAndCompare(f.registry, strings.NewReader(expected), metric))
}
