package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"inventory-system/internal/infrastructure/bd"
	apperrors "inventory-system/pkg/errors"
	"inventory-system/pkg/types"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// listQuery описывает выборку списка: базовый запрос, колонки для поиска и белый список полей.
type listQuery struct {
	From         string
	Joins        []string
	Columns      []string
	SearchFields []string
	FieldMap     map[string]string
	DefaultOrder string
}

func (s listQuery) base(columns ...string) sq.SelectBuilder {
	b := psql.Select(columns...).From(s.From)
	for _, j := range s.Joins {
		b = b.LeftJoin(j)
	}
	return b
}

// fetchList считает total без пагинации, затем выбирает страницу и сканирует строки.
func fetchList[T any](ctx context.Context, q Querier, lq listQuery, filter types.Filter, scan func(pgx.Row) (*T, error)) ([]T, uint64, error) {
	countFilter := filter
	countFilter.WithPagination = false
	countFilter.Sort = nil

	countBuilder := bd.ApplySearch(lq.base("COUNT(*)"), filter.Search, lq.SearchFields...)
	countBuilder = bd.ApplyListParams(countBuilder, countFilter, lq.FieldMap)

	sqlCount, argsCount, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("ошибка сборки запроса count: %w", err)
	}

	var total uint64
	if err := q.QueryRow(ctx, sqlCount, argsCount...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []T{}, 0, nil
	}

	builder := bd.ApplySearch(lq.base(lq.Columns...), filter.Search, lq.SearchFields...)
	if len(filter.Sort) == 0 && lq.DefaultOrder != "" {
		builder = builder.OrderBy(lq.DefaultOrder)
	}
	builder = bd.ApplyListParams(builder, filter, lq.FieldMap)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("ошибка сборки запроса: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, *item)
	}
	return items, total, rows.Err()
}

// mapPgError переводит нарушения ограничений PostgreSQL в доменные ошибки.
func mapPgError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%w: %s", apperrors.ErrConflict, pgErr.ConstraintName)
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: связанная запись (%s)", apperrors.ErrConflict, pgErr.ConstraintName)
		case pgCheckViolation:
			return apperrors.NewInvalidInputError("нарушено ограничение %s", pgErr.ConstraintName)
		}
	}
	return err
}

// execAffectingOne выполняет UPDATE/DELETE и возвращает ErrNotFound, если строка не найдена.
func execAffectingOne(ctx context.Context, q Querier, query string, args ...interface{}) error {
	result, err := q.Exec(ctx, query, args...)
	if err != nil {
		return mapPgError(err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func wrapScanError(err error, entity string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return mapPgError(err)
	}
	return fmt.Errorf("ошибка сканирования %s: %w", entity, err)
}
