package database

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/Rana718/spring-helper/internal/logger"
	"github.com/Rana718/spring-helper/internal/types"
	"github.com/jackc/pgx/v5"
)

// Querier is the part of a pgx pool the introspector needs. Both
// *pgxpool.Pool and pgxmock pools satisfy it.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type Introspector struct {
	db  Querier
	qb  squirrel.StatementBuilderType
	log logger.Logger
}

func NewIntrospector(db Querier, log logger.Logger) *Introspector {
	if log == nil {
		log = logger.Discard()
	}
	return &Introspector{
		db:  db,
		qb:  squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		log: log,
	}
}

// ListTables returns the tables of ref's schema in catalog order.
func (i *Introspector) ListTables(ctx context.Context, ref types.SchemaRef) ([]types.TableDescriptor, error) {
	query := i.qb.Select("table_name").From("information_schema.tables").
		Where(squirrel.Eq{"table_schema": ref.SchemaName})

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build table query: %w", err)
	}
	i.log.Debug("listing tables", "sql", sql, "schema", ref.SchemaName)

	rows, err := i.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query tables of schema %s: %w", ref.SchemaName, err)
	}
	defer rows.Close()

	tables := make([]types.TableDescriptor, 0, 16)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan table name: %w", err)
		}
		tables = append(tables, types.TableDescriptor{Name: name})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read tables of schema %s: %w", ref.SchemaName, err)
	}
	return tables, nil
}

// ListColumns returns the columns of a table in declaration order. Position
// follows that order.
func (i *Introspector) ListColumns(ctx context.Context, tableName string, ref types.SchemaRef) ([]types.ColumnDescriptor, error) {
	query := i.qb.Select("column_name", "udt_name").From("information_schema.columns").
		Where(squirrel.Eq{"table_name": tableName}).
		Where(squirrel.Eq{"table_schema": ref.SchemaName}).
		OrderBy("ordinal_position")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build column query: %w", err)
	}
	i.log.Debug("listing columns", "sql", sql, "table", tableName, "schema", ref.SchemaName)

	rows, err := i.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query columns of %s.%s: %w", ref.SchemaName, tableName, err)
	}
	defer rows.Close()

	columns := make([]types.ColumnDescriptor, 0, 16)
	for rows.Next() {
		var name, udtName string
		if err := rows.Scan(&name, &udtName); err != nil {
			return nil, fmt.Errorf("failed to scan column of %s: %w", tableName, err)
		}
		columns = append(columns, types.ColumnDescriptor{
			Name:       name,
			NativeType: udtName,
			Position:   len(columns),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read columns of %s.%s: %w", ref.SchemaName, tableName, err)
	}
	return columns, nil
}
