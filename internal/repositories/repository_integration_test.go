package repositories

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"inventory-system/internal/entities"
	"inventory-system/migrations"
	apperrors "inventory-system/pkg/errors"
	"inventory-system/pkg/types"
)

// RepositorySuite гоняет репозитории на живой БД; без TEST_DATABASE_URL пропускается.
type RepositorySuite struct {
	suite.Suite
	pool *pgxpool.Pool
	tx   TxManagerInterface

	organizations OrganizationRepositoryInterface
	departments   DepartmentRepositoryInterface
	places        PlaceRepositoryInterface
	users         UserRepositoryInterface
	vendors       VendorRepositoryInterface
	nomenclatures NomenclatureRepositoryInterface
	equipment     EquipmentRepositoryInterface
	invoices      InvoiceRepositoryInterface
}

func TestRepositorySuite(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL не задан")
	}
	suite.Run(t, &RepositorySuite{})
}

func (s *RepositorySuite) SetupSuite() {
	dsn := os.Getenv("TEST_DATABASE_URL")
	ctx := context.Background()

	db, err := migrations.Open(dsn)
	s.Require().NoError(err)
	defer db.Close()
	s.Require().NoError(migrations.Up(ctx, db))

	s.pool, err = pgxpool.New(ctx, dsn)
	s.Require().NoError(err)

	logger := zap.NewNop()
	s.tx = NewTxManager(s.pool)
	s.organizations = NewOrganizationRepository(s.pool, logger)
	s.departments = NewDepartmentRepository(s.pool, logger)
	s.places = NewPlaceRepository(s.pool, logger)
	s.users = NewUserRepository(s.pool, logger)
	s.vendors = NewVendorRepository(s.pool, logger)
	s.nomenclatures = NewNomenclatureRepository(s.pool, logger)
	s.equipment = NewEquipmentRepository(s.pool, logger)
	s.invoices = NewInvoiceRepository(s.pool, logger)
}

func (s *RepositorySuite) TearDownSuite() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *RepositorySuite) SetupTest() {
	_, err := s.pool.Exec(context.Background(), `TRUNCATE TABLE invoice_lines, invoices, equipments, nomenclatures, vendors, users, departments, places, organizations RESTART IDENTITY CASCADE`)
	s.Require().NoError(err)
}

type fixture struct {
	department *entities.Department
	place      *entities.Place
	user       *entities.User
	group      *entities.Nomenclature
}

func (s *RepositorySuite) seed() fixture {
	ctx := context.Background()
	t := s.T()

	org, err := s.organizations.Create(ctx, nil, entities.Organization{Name: "ООО Ромашка"})
	require.NoError(t, err)
	dept, err := s.departments.Create(ctx, nil, entities.Department{Name: "IT Отдел", OrganizationID: org.ID})
	require.NoError(t, err)
	place, err := s.places.Create(ctx, nil, entities.Place{Name: "Центральный склад"})
	require.NoError(t, err)
	user, err := s.users.Create(ctx, nil, entities.User{Login: "ivanov", Fio: "Иванов И.И.", PasswordHash: "x", DepartmentID: &dept.ID})
	require.NoError(t, err)
	vendor, err := s.vendors.Create(ctx, nil, entities.Vendor{Name: "Dell"})
	require.NoError(t, err)
	category := int16(2)
	group, err := s.nomenclatures.Create(ctx, nil, entities.Nomenclature{Name: "Ноутбуки", VendorID: &vendor.ID, Category: &category})
	require.NoError(t, err)

	return fixture{department: dept, place: place, user: user, group: group}
}

func (s *RepositorySuite) newEquipment(f fixture, name string, cost string) *entities.Equipment {
	e := entities.Equipment{
		Name:            name,
		InventoryNumber: "INV-" + name,
		NomenclatureID:  f.group.ID,
		PlaceID:         f.place.ID,
		UserID:          &f.user.ID,
		DepartmentID:    &f.department.ID,
		UnitCode:        "796",
	}
	if cost != "" {
		e.Cost = decimal.NewNullDecimal(decimal.RequireFromString(cost))
	}
	created, err := s.equipment.Create(context.Background(), nil, e)
	s.Require().NoError(err)
	return created
}

func (s *RepositorySuite) TestFindMissingReturnsNotFound() {
	ctx := context.Background()
	_, err := s.places.FindByID(ctx, nil, 999)
	s.ErrorIs(err, apperrors.ErrNotFound)
	s.ErrorIs(s.vendors.Delete(ctx, nil, 999), apperrors.ErrNotFound)
}

func (s *RepositorySuite) TestEquipmentRoundTripAndDepartmentOrder() {
	f := s.seed()
	ctx := context.Background()

	first := s.newEquipment(f, "A", "100.00")
	second := s.newEquipment(f, "B", "")

	got, err := s.equipment.FindByID(ctx, nil, first.ID)
	s.Require().NoError(err)
	s.True(got.Cost.Valid)
	s.Equal("100", got.Cost.Decimal.String())
	s.Equal("796", got.UnitCode)

	list, err := s.equipment.ListByDepartment(ctx, f.department.ID)
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal(first.ID, list[0].ID)
	s.Equal(second.ID, list[1].ID)
	s.False(list[1].Cost.Valid)

	byNumber, err := s.equipment.FindByInventoryNumber(ctx, nil, "INV-B")
	s.Require().NoError(err)
	s.Equal(second.ID, byNumber.ID)
}

func (s *RepositorySuite) TestListFilterAndSearch() {
	f := s.seed()
	s.newEquipment(f, "Latitude", "10")
	s.newEquipment(f, "Vostro", "20")

	items, total, err := s.equipment.GetAll(context.Background(), types.Filter{
		Search:         "lati",
		Filter:         map[string]interface{}{"place_id": f.place.ID},
		Limit:          10,
		WithPagination: true,
	})
	s.Require().NoError(err)
	s.Equal(uint64(1), total)
	s.Require().Len(items, 1)
	s.Equal("Latitude", items[0].Name)
}

func (s *RepositorySuite) TestEarliestInvoiceLine() {
	f := s.seed()
	ctx := context.Background()
	item := s.newEquipment(f, "A", "1")

	day := func(d int) time.Time { return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC) }

	err := s.tx.RunInTransaction(ctx, func(tx pgx.Tx) error {
		for _, inv := range []entities.Invoice{
			{Number: "15", TransferType: entities.TransferCustodianToCustodian, InvoiceDate: day(10), FromUserID: &f.user.ID},
			{Number: "7", TransferType: entities.TransferWarehouseToCustodian, InvoiceDate: day(3), PlaceID: &f.place.ID},
		} {
			inv.Lines = []entities.InvoiceLine{{EquipmentID: item.ID}}
			if _, err := s.invoices.Create(ctx, tx, inv); err != nil {
				return err
			}
		}
		return nil
	})
	s.Require().NoError(err)

	line, err := s.invoices.EarliestLineForEquipment(ctx, item.ID)
	s.Require().NoError(err)
	s.Require().NotNil(line.Invoice)
	s.Equal("7", line.Invoice.Number)
	s.Equal(entities.TransferWarehouseToCustodian, line.Invoice.TransferType)
	s.Equal(f.place.ID, *line.Invoice.PlaceID)

	_, err = s.invoices.EarliestLineForEquipment(ctx, item.ID+100)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *RepositorySuite) TestInvoiceCreateRollsBackOnBadLine() {
	s.seed()
	ctx := context.Background()

	err := s.tx.RunInTransaction(ctx, func(tx pgx.Tx) error {
		_, err := s.invoices.Create(ctx, tx, entities.Invoice{
			Number:       "1",
			TransferType: entities.TransferWarehouseToCustodian,
			InvoiceDate:  time.Now(),
			Lines:        []entities.InvoiceLine{{EquipmentID: 12345}},
		})
		return err
	})
	s.ErrorIs(err, apperrors.ErrConflict)

	_, total, err := s.invoices.GetAll(ctx, types.Filter{})
	s.Require().NoError(err)
	assert.Zero(s.T(), total)
}
