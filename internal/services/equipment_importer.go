package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	"inventory-system/internal/repositories"
	apperrors "inventory-system/pkg/errors"
)

type importColumn int

const (
	colName importColumn = iota
	colInventory
	colSerial
	colNomenclature
	colPlace
	colCost
	colAcquired
	colRack
	colCell
	colUnitCode
	colUnitName
	colProfile
	colSize
	colStockNorm
	colServiceLife
	columnCount
)

// Ключевые слова проверяются по порядку: "наименование" последним,
// иначе "Наименование номенклатуры" уйдет в имя.
var importKeywords = []struct {
	word string
	col  importColumn
}{
	{"номенклатур", colNomenclature},
	{"инвентарн", colInventory},
	{"заводск", colSerial},
	{"серийн", colSerial},
	{"склад", colPlace},
	{"место хранения", colPlace},
	{"стоимост", colCost},
	{"цена", colCost},
	{"дата", colAcquired},
	{"стеллаж", colRack},
	{"ячейк", colCell},
	{"океи", colUnitCode},
	{"единиц", colUnitName},
	{"ед. изм", colUnitName},
	{"профил", colProfile},
	{"размер", colSize},
	{"норма", colStockNorm},
	{"срок", colServiceLife},
	{"наименован", colName},
}

var importDateLayouts = []string{"02.01.2006", "2006-01-02", "01-02-06", "1/2/06", "02.01.06"}

type EquipmentImportServiceInterface interface {
	Import(ctx context.Context, r io.Reader, departmentID *uint64) (*dto.ImportResultDTO, error)
}

type EquipmentImportService struct {
	txManager        repositories.TxManagerInterface
	equipmentRepo    repositories.EquipmentRepositoryInterface
	nomenclatureRepo repositories.NomenclatureRepositoryInterface
	placeRepo        repositories.PlaceRepositoryInterface
	logger           *zap.Logger
}

func NewEquipmentImportService(
	txManager repositories.TxManagerInterface,
	equipmentRepo repositories.EquipmentRepositoryInterface,
	nomenclatureRepo repositories.NomenclatureRepositoryInterface,
	placeRepo repositories.PlaceRepositoryInterface,
	logger *zap.Logger,
) EquipmentImportServiceInterface {
	return &EquipmentImportService{
		txManager:        txManager,
		equipmentRepo:    equipmentRepo,
		nomenclatureRepo: nomenclatureRepo,
		placeRepo:        placeRepo,
		logger:           logger,
	}
}

// Import читает первую таблицу с распознанной шапкой. Строка с известным
// инвентарным номером обновляет запись, остальные создают новую.
// Склад и номенклатура создаются по имени, если их еще нет.
func (s *EquipmentImportService) Import(ctx context.Context, r io.Reader, departmentID *uint64) (*dto.ImportResultDTO, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, apperrors.NewInvalidInputError("не удалось прочитать xlsx: %v", err)
	}
	defer f.Close()

	rows, cols, headerRow, err := findImportHeader(f)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Шапка таблицы импорта найдена", zap.Int("row", headerRow+1))

	result := &dto.ImportResultDTO{}
	for i := headerRow + 1; i < len(rows); i++ {
		row := rows[i]
		lineNum := i + 1

		name := safeGet(row, cols[colName])
		if isTrash(name) {
			result.Skipped++
			continue
		}

		created, err := s.importRow(ctx, row, cols, departmentID)
		if err != nil {
			s.logger.Warn("Строка импорта пропущена", zap.Int("line", lineNum), zap.String("name", name), zap.Error(err))
			result.Errors = append(result.Errors, fmt.Sprintf("строка %d (%s): %v", lineNum, name, err))
			continue
		}
		if created {
			result.Created++
		} else {
			result.Updated++
		}
	}

	s.logger.Info("Импорт оборудования завершен",
		zap.Int("created", result.Created),
		zap.Int("updated", result.Updated),
		zap.Int("skipped", result.Skipped),
		zap.Int("errors", len(result.Errors)),
	)
	return result, nil
}

func (s *EquipmentImportService) importRow(ctx context.Context, row []string, cols [columnCount]int, departmentID *uint64) (created bool, err error) {
	e, placeName, nomenclatureName, err := equipmentFromRow(row, cols)
	if err != nil {
		return false, err
	}
	e.DepartmentID = departmentID

	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		place, err := s.getOrCreatePlace(ctx, tx, placeName)
		if err != nil {
			return err
		}
		nomenclature, err := s.getOrCreateNomenclature(ctx, tx, nomenclatureName)
		if err != nil {
			return err
		}
		e.PlaceID = place.ID
		e.NomenclatureID = nomenclature.ID

		if e.InventoryNumber != "" {
			existing, err := s.equipmentRepo.FindByInventoryNumber(ctx, tx, e.InventoryNumber)
			switch {
			case err == nil:
				mergeImported(existing, e)
				_, err = s.equipmentRepo.Update(ctx, tx, existing.ID, *existing)
				return err
			case !errors.Is(err, apperrors.ErrNotFound):
				return err
			}
		}
		created = true
		_, err = s.equipmentRepo.Create(ctx, tx, e)
		return err
	})
	return created, err
}

func (s *EquipmentImportService) getOrCreatePlace(ctx context.Context, tx pgx.Tx, name string) (*entities.Place, error) {
	place, err := s.placeRepo.FindByName(ctx, tx, name)
	if errors.Is(err, apperrors.ErrNotFound) {
		s.logger.Debug("Создаю склад из импорта", zap.String("name", name))
		return s.placeRepo.Create(ctx, tx, entities.Place{Name: name})
	}
	return place, err
}

func (s *EquipmentImportService) getOrCreateNomenclature(ctx context.Context, tx pgx.Tx, name string) (*entities.Nomenclature, error) {
	n, err := s.nomenclatureRepo.FindByName(ctx, tx, name)
	if errors.Is(err, apperrors.ErrNotFound) {
		s.logger.Debug("Создаю номенклатуру из импорта", zap.String("name", name))
		return s.nomenclatureRepo.Create(ctx, tx, entities.Nomenclature{Name: name})
	}
	return n, err
}

func findImportHeader(f *excelize.File) ([][]string, [columnCount]int, int, error) {
	var cols [columnCount]int
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			continue
		}
		for rIdx, row := range rows {
			rowStr := strings.ToLower(strings.Join(row, "|"))
			if !strings.Contains(rowStr, "наименован") {
				continue
			}
			if !strings.Contains(rowStr, "инвентарн") && !strings.Contains(rowStr, "номенклатур") {
				continue
			}
			cols = mapImportColumns(row)
			if cols[colName] != -1 {
				return rows, cols, rIdx, nil
			}
		}
	}
	return nil, cols, -1, apperrors.NewInvalidInputError(
		"не найдена шапка таблицы: нужны колонки 'Наименование' и 'Инвентарный номер' или 'Номенклатура'")
}

func mapImportColumns(header []string) [columnCount]int {
	var cols [columnCount]int
	for i := range cols {
		cols[i] = -1
	}
	for cIdx, title := range header {
		lower := strings.ToLower(strings.TrimSpace(title))
		for _, kw := range importKeywords {
			if strings.Contains(lower, kw.word) {
				if cols[kw.col] == -1 {
					cols[kw.col] = cIdx
				}
				break
			}
		}
	}
	return cols
}

func equipmentFromRow(row []string, cols [columnCount]int) (entities.Equipment, string, string, error) {
	get := func(c importColumn) string { return safeGet(row, cols[c]) }

	e := entities.Equipment{
		Name:            get(colName),
		InventoryNumber: get(colInventory),
		SerialNumber:    get(colSerial),
		Rack:            get(colRack),
		Cell:            get(colCell),
		UnitName:        get(colUnitName),
		UnitCode:        get(colUnitCode),
		Profile:         get(colProfile),
		Size:            get(colSize),
		StockNorm:       get(colStockNorm),
	}

	placeName := get(colPlace)
	if placeName == "" {
		return e, "", "", errors.New("не указан склад")
	}
	nomenclatureName := get(colNomenclature)
	if nomenclatureName == "" {
		nomenclatureName = e.Name
	}

	if raw := get(colCost); raw != "" {
		cost, err := parseImportMoney(raw)
		if err != nil {
			return e, "", "", fmt.Errorf("некорректная стоимость %q", raw)
		}
		e.Cost = decimal.NewNullDecimal(cost)
	}
	if raw := get(colAcquired); raw != "" {
		t, err := parseImportDate(raw)
		if err != nil {
			return e, "", "", fmt.Errorf("некорректная дата %q", raw)
		}
		e.AcquiredAt = &t
	}
	if raw := get(colServiceLife); raw != "" {
		t, err := parseImportDate(raw)
		if err != nil {
			return e, "", "", fmt.Errorf("некорректный срок службы %q", raw)
		}
		e.ServiceLifeEnd = &t
	}
	return e, placeName, nomenclatureName, nil
}

// mergeImported переносит в existing только заполненные в файле значения.
func mergeImported(existing *entities.Equipment, in entities.Equipment) {
	setIf := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	setIf(&existing.Name, in.Name)
	setIf(&existing.SerialNumber, in.SerialNumber)
	setIf(&existing.Rack, in.Rack)
	setIf(&existing.Cell, in.Cell)
	setIf(&existing.UnitName, in.UnitName)
	setIf(&existing.UnitCode, in.UnitCode)
	setIf(&existing.Profile, in.Profile)
	setIf(&existing.Size, in.Size)
	setIf(&existing.StockNorm, in.StockNorm)

	existing.PlaceID = in.PlaceID
	existing.NomenclatureID = in.NomenclatureID
	if in.Cost.Valid {
		existing.Cost = in.Cost
	}
	if in.AcquiredAt != nil {
		existing.AcquiredAt = in.AcquiredAt
	}
	if in.ServiceLifeEnd != nil {
		existing.ServiceLifeEnd = in.ServiceLifeEnd
	}
	if in.DepartmentID != nil {
		existing.DepartmentID = in.DepartmentID
	}
}

func parseImportMoney(raw string) (decimal.Decimal, error) {
	clean := strings.NewReplacer(" ", "", "\u00a0", "", ",", ".").Replace(raw)
	return decimal.NewFromString(clean)
}

func parseImportDate(raw string) (time.Time, error) {
	var lastErr error
	for _, layout := range importDateLayouts {
		t, err := time.Parse(layout, strings.TrimSpace(raw))
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func safeGet(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// isTrash - пустые строки и итоговые строки выгрузок.
func isTrash(val string) bool {
	v := strings.ToLower(strings.TrimSpace(val))
	if v == "" {
		return true
	}
	return strings.Contains(v, "итого") || strings.Contains(v, "всего")
}
