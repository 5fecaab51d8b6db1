package services

import (
	"context"
	"testing"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	apperrors "inventory-system/pkg/errors"
)

func TestInvoiceService_CreateInTransaction(t *testing.T) {
	tx := &fakeTxManager{}
	repo := newFakeInvoiceRepo()
	svc := NewInvoiceService(tx, repo, zap.NewNop())

	inv, err := svc.Create(context.Background(), dto.CreateInvoiceDTO{
		Number:       "7",
		TransferType: "Склад-МОЛ",
		InvoiceDate:  time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		PlaceID:      null.Uint64From(3),
		EquipmentIDs: []uint64{10, 11},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, tx.calls)
	assert.Equal(t, entities.TransferWarehouseToCustodian, inv.TransferType)
	require.Len(t, inv.Lines, 2)
	assert.Equal(t, uint64(11), inv.Lines[1].EquipmentID)
	require.NotNil(t, inv.PlaceID)
	assert.Equal(t, uint64(3), *inv.PlaceID)
	assert.Nil(t, inv.FromUserID)
}

func TestInvoiceService_UpdateKeepsOrReplacesLines(t *testing.T) {
	tx := &fakeTxManager{}
	repo := newFakeInvoiceRepo()
	svc := NewInvoiceService(tx, repo, zap.NewNop())
	ctx := context.Background()

	inv, err := svc.Create(ctx, dto.CreateInvoiceDTO{
		Number: "1", TransferType: "custodian_to_custodian", InvoiceDate: time.Now(), EquipmentIDs: []uint64{1},
	})
	require.NoError(t, err)

	number := "1-А"
	updated, err := svc.Update(ctx, inv.ID, dto.UpdateInvoiceDTO{Number: &number})
	require.NoError(t, err)
	assert.Equal(t, "1-А", updated.Number)
	require.Len(t, updated.Lines, 1)
	assert.Equal(t, 1, repo.replaced)

	updated, err = svc.Update(ctx, inv.ID, dto.UpdateInvoiceDTO{EquipmentIDs: []uint64{2, 3}})
	require.NoError(t, err)
	assert.Len(t, updated.Lines, 2)
	assert.Equal(t, 2, repo.replaced)
	assert.Equal(t, entities.TransferCustodianToCustodian, updated.TransferType)
}

func TestInvoiceService_UpdateMissing(t *testing.T) {
	svc := NewInvoiceService(&fakeTxManager{}, newFakeInvoiceRepo(), zap.NewNop())

	_, err := svc.Update(context.Background(), 42, dto.UpdateInvoiceDTO{})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
