package repositories

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"inventory-system/internal/entities"
	"inventory-system/pkg/types"
)

var userMap = map[string]string{
	"id":            "u.id",
	"login":         "u.login",
	"fio":           "u.fio",
	"department_id": "u.department_id",
	"created_at":    "u.created_at",
	"updated_at":    "u.updated_at",
}

var userColumns = []string{"u.id", "u.login", "u.fio", "u.password_hash", "u.department_id", "u.created_at", "u.updated_at"}

const userReturning = "RETURNING u.id, u.login, u.fio, u.password_hash, u.department_id, u.created_at, u.updated_at"

type UserRepositoryInterface interface {
	GetAll(ctx context.Context, filter types.Filter) ([]entities.User, uint64, error)
	FindByID(ctx context.Context, tx pgx.Tx, id uint64) (*entities.User, error)
	FindByLogin(ctx context.Context, tx pgx.Tx, login string) (*entities.User, error)
	Create(ctx context.Context, tx pgx.Tx, u entities.User) (*entities.User, error)
	Update(ctx context.Context, tx pgx.Tx, id uint64, u entities.User) (*entities.User, error)
	Delete(ctx context.Context, tx pgx.Tx, id uint64) error
}

type userRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewUserRepository(storage *pgxpool.Pool, logger *zap.Logger) UserRepositoryInterface {
	return &userRepository{storage: storage, logger: logger}
}

func (r *userRepository) getQuerier(tx pgx.Tx) Querier {
	if tx != nil {
		return tx
	}
	return r.storage
}

func scanUser(row pgx.Row) (*entities.User, error) {
	var u entities.User
	err := row.Scan(&u.ID, &u.Login, &u.Fio, &u.PasswordHash, &u.DepartmentID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, wrapScanError(err, "user")
	}
	return &u, nil
}

func (r *userRepository) GetAll(ctx context.Context, filter types.Filter) ([]entities.User, uint64, error) {
	return fetchList(ctx, r.storage, listQuery{
		From:         "users AS u",
		Columns:      userColumns,
		SearchFields: []string{"u.login", "u.fio"},
		FieldMap:     userMap,
		DefaultOrder: "u.fio ASC, u.id ASC",
	}, filter, scanUser)
}

func (r *userRepository) findOne(ctx context.Context, q Querier, where sq.Sqlizer) (*entities.User, error) {
	query, args, err := psql.Select(userColumns...).From("users u").Where(where).Limit(1).ToSql()
	if err != nil {
		return nil, err
	}
	return scanUser(q.QueryRow(ctx, query, args...))
}

func (r *userRepository) FindByID(ctx context.Context, tx pgx.Tx, id uint64) (*entities.User, error) {
	return r.findOne(ctx, r.getQuerier(tx), sq.Eq{"u.id": id})
}

func (r *userRepository) FindByLogin(ctx context.Context, tx pgx.Tx, login string) (*entities.User, error) {
	return r.findOne(ctx, r.getQuerier(tx), sq.Expr("LOWER(u.login) = LOWER(?)", login))
}

func (r *userRepository) Create(ctx context.Context, tx pgx.Tx, u entities.User) (*entities.User, error) {
	query := `
		INSERT INTO users AS u (login, fio, password_hash, department_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW()) ` + userReturning
	return scanUser(r.getQuerier(tx).QueryRow(ctx, query, u.Login, u.Fio, u.PasswordHash, u.DepartmentID))
}

func (r *userRepository) Update(ctx context.Context, tx pgx.Tx, id uint64, u entities.User) (*entities.User, error) {
	query := `
		UPDATE users AS u
		SET login = $1, fio = $2, password_hash = $3, department_id = $4, updated_at = NOW()
		WHERE u.id = $5 ` + userReturning
	return scanUser(r.getQuerier(tx).QueryRow(ctx, query, u.Login, u.Fio, u.PasswordHash, u.DepartmentID, id))
}

func (r *userRepository) Delete(ctx context.Context, tx pgx.Tx, id uint64) error {
	return execAffectingOne(ctx, r.getQuerier(tx), `DELETE FROM users WHERE id = $1`, id)
}
