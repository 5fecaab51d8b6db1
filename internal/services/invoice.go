package services

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	"inventory-system/internal/repositories"
	"inventory-system/pkg/types"
)

type InvoiceServiceInterface interface {
	GetAll(ctx context.Context, filter types.Filter) ([]entities.Invoice, uint64, error)
	FindByID(ctx context.Context, id uint64) (*entities.Invoice, error)
	Create(ctx context.Context, d dto.CreateInvoiceDTO) (*entities.Invoice, error)
	Update(ctx context.Context, id uint64, d dto.UpdateInvoiceDTO) (*entities.Invoice, error)
	Delete(ctx context.Context, id uint64) error
}

type InvoiceService struct {
	txManager repositories.TxManagerInterface
	repo      repositories.InvoiceRepositoryInterface
	logger    *zap.Logger
}

func NewInvoiceService(
	txManager repositories.TxManagerInterface,
	repo repositories.InvoiceRepositoryInterface,
	logger *zap.Logger,
) InvoiceServiceInterface {
	return &InvoiceService{txManager: txManager, repo: repo, logger: logger}
}

func (s *InvoiceService) GetAll(ctx context.Context, filter types.Filter) ([]entities.Invoice, uint64, error) {
	return s.repo.GetAll(ctx, filter)
}

func (s *InvoiceService) FindByID(ctx context.Context, id uint64) (*entities.Invoice, error) {
	return s.repo.FindByID(ctx, nil, id)
}

// Create сохраняет шапку и строки накладной одной транзакцией.
func (s *InvoiceService) Create(ctx context.Context, d dto.CreateInvoiceDTO) (*entities.Invoice, error) {
	inv := entities.Invoice{
		Number:       d.Number,
		TransferType: entities.ParseTransferType(d.TransferType),
		InvoiceDate:  d.InvoiceDate,
		FromUserID:   d.FromUserID.Ptr(),
		ToUserID:     d.ToUserID.Ptr(),
		PlaceID:      d.PlaceID.Ptr(),
		Lines:        linesFor(d.EquipmentIDs),
	}

	var created *entities.Invoice
	err := s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		var err error
		created, err = s.repo.Create(ctx, tx, inv)
		return err
	})
	if err != nil {
		s.logger.Error("Ошибка при создании накладной", zap.String("number", d.Number), zap.Error(err))
		return nil, err
	}
	s.logger.Info("Накладная создана",
		zap.Uint64("id", created.ID),
		zap.String("transfer_type", created.TransferType.String()),
		zap.Int("lines", len(created.Lines)),
	)
	return created, nil
}

func (s *InvoiceService) Update(ctx context.Context, id uint64, d dto.UpdateInvoiceDTO) (*entities.Invoice, error) {
	var result *entities.Invoice
	err := s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		current, err := s.repo.FindByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if d.Number != nil {
			current.Number = *d.Number
		}
		if d.TransferType != nil {
			current.TransferType = entities.ParseTransferType(*d.TransferType)
		}
		if d.InvoiceDate != nil {
			current.InvoiceDate = *d.InvoiceDate
		}
		if d.FromUserID.Valid {
			current.FromUserID = d.FromUserID.Ptr()
		}
		if d.ToUserID.Valid {
			current.ToUserID = d.ToUserID.Ptr()
		}
		if d.PlaceID.Valid {
			current.PlaceID = d.PlaceID.Ptr()
		}

		lines := current.Lines
		result, err = s.repo.Update(ctx, tx, id, *current)
		if err != nil {
			return err
		}
		if len(d.EquipmentIDs) == 0 {
			result.Lines = lines
			return nil
		}
		result.Lines, err = s.repo.ReplaceLines(ctx, tx, id, d.EquipmentIDs)
		return err
	})
	if err != nil {
		s.logger.Error("Ошибка при обновлении накладной", zap.Uint64("id", id), zap.Error(err))
		return nil, err
	}
	return result, nil
}

func (s *InvoiceService) Delete(ctx context.Context, id uint64) error {
	return s.repo.Delete(ctx, nil, id)
}

func linesFor(equipmentIDs []uint64) []entities.InvoiceLine {
	lines := make([]entities.InvoiceLine, 0, len(equipmentIDs))
	for _, id := range equipmentIDs {
		lines = append(lines, entities.InvoiceLine{EquipmentID: id})
	}
	return lines
}
