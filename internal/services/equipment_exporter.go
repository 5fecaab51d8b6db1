package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"inventory-system/internal/entities"
	"inventory-system/internal/repositories"
	apperrors "inventory-system/pkg/errors"
	"inventory-system/pkg/types"
)

const exportSheet = "Оборудование"

// Заголовки совпадают с ключевыми словами импорта, выгрузку можно загрузить обратно.
var exportHeaders = []string{
	"Наименование", "Инвентарный номер", "Заводской номер", "Номенклатура", "Склад",
	"Стоимость", "Дата приобретения", "Стеллаж", "Ячейка", "Код ОКЕИ", "Единица измерения",
	"Профиль", "Размер", "Норма запаса", "Срок службы до",
}

type EquipmentExportServiceInterface interface {
	Export(ctx context.Context, filter types.Filter) ([]byte, error)
}

type EquipmentExportService struct {
	equipmentRepo    repositories.EquipmentRepositoryInterface
	nomenclatureRepo repositories.NomenclatureRepositoryInterface
	placeRepo        repositories.PlaceRepositoryInterface
	logger           *zap.Logger
}

func NewEquipmentExportService(
	equipmentRepo repositories.EquipmentRepositoryInterface,
	nomenclatureRepo repositories.NomenclatureRepositoryInterface,
	placeRepo repositories.PlaceRepositoryInterface,
	logger *zap.Logger,
) EquipmentExportServiceInterface {
	return &EquipmentExportService{
		equipmentRepo:    equipmentRepo,
		nomenclatureRepo: nomenclatureRepo,
		placeRepo:        placeRepo,
		logger:           logger,
	}
}

// Export выгружает все оборудование под фильтром, без пагинации.
func (s *EquipmentExportService) Export(ctx context.Context, filter types.Filter) ([]byte, error) {
	filter.Limit, filter.Offset = 0, 0
	items, _, err := s.equipmentRepo.GetAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	names := newNameCache(s.nomenclatureRepo, s.placeRepo)

	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(exportSheet, "A1", &exportHeaders); err != nil {
		return nil, err
	}
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	lastCol, _ := excelize.ColumnNumberToName(len(exportHeaders))
	_ = f.SetCellStyle(exportSheet, "A1", lastCol+"1", style)
	_ = f.SetColWidth(exportSheet, "A", lastCol, 18)

	for i, e := range items {
		nomenclature, err := names.nomenclature(ctx, e.NomenclatureID)
		if err != nil {
			return nil, err
		}
		place, err := names.place(ctx, e.PlaceID)
		if err != nil {
			return nil, err
		}

		row := []interface{}{
			e.Name, e.InventoryNumber, e.SerialNumber, nomenclature, place,
			exportMoney(e), exportDate(e.AcquiredAt), e.Rack, e.Cell, e.UnitCode, e.UnitName,
			e.Profile, e.Size, e.StockNorm, exportDate(e.ServiceLifeEnd),
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("ошибка записи xlsx: %w", err)
	}
	s.logger.Info("Выгрузка оборудования сформирована", zap.Int("rows", len(items)))
	return buf.Bytes(), nil
}

func exportMoney(e entities.Equipment) string {
	if !e.Cost.Valid {
		return ""
	}
	return e.Cost.Decimal.StringFixed(2)
}

func exportDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("02.01.2006")
}

// nameCache - имена справочников на время одной выгрузки.
type nameCache struct {
	nomenclatureRepo repositories.NomenclatureRepositoryInterface
	placeRepo        repositories.PlaceRepositoryInterface
	nomenclatures    map[uint64]string
	places           map[uint64]string
}

func newNameCache(n repositories.NomenclatureRepositoryInterface, p repositories.PlaceRepositoryInterface) *nameCache {
	return &nameCache{
		nomenclatureRepo: n,
		placeRepo:        p,
		nomenclatures:    make(map[uint64]string),
		places:           make(map[uint64]string),
	}
}

func (c *nameCache) nomenclature(ctx context.Context, id uint64) (string, error) {
	if name, ok := c.nomenclatures[id]; ok {
		return name, nil
	}
	n, err := c.nomenclatureRepo.FindByID(ctx, nil, id)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return "", err
	}
	var name string
	if n != nil {
		name = n.Name
	}
	c.nomenclatures[id] = name
	return name, nil
}

func (c *nameCache) place(ctx context.Context, id uint64) (string, error) {
	if name, ok := c.places[id]; ok {
		return name, nil
	}
	p, err := c.placeRepo.FindByID(ctx, nil, id)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return "", err
	}
	var name string
	if p != nil {
		name = p.Name
	}
	c.places[id] = name
	return name, nil
}
