package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/pkg/utils"
)

func TestUserService_PasswordIsHashed(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, zap.NewNop())
	ctx := context.Background()

	u, err := svc.Create(ctx, dto.CreateUserDTO{Login: "petrov", Password: "secret1"})
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", u.PasswordHash)
	assert.NoError(t, utils.ComparePasswords(u.PasswordHash, "secret1"))

	fio := "Петров П.П."
	newPassword := "secret2"
	u, err = svc.Update(ctx, u.ID, dto.UpdateUserDTO{Fio: &fio, Password: &newPassword})
	require.NoError(t, err)
	assert.Equal(t, "Петров П.П.", u.DisplayName())
	assert.NoError(t, utils.ComparePasswords(u.PasswordHash, "secret2"))
	assert.Error(t, utils.ComparePasswords(u.PasswordHash, "secret1"))
}
