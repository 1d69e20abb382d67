package typemap

import (
	"context"
	"errors"
	"fmt"

	"github.com/Rana718/spring-helper/internal/types"
)

// ErrUnrecognizedType is returned by a Resolver that has no answer for a
// column's native type. A Mapper moves on to the next resolver when it sees it.
var ErrUnrecognizedType = errors.New("unrecognized native type")

var javaTypes = map[string]string{
	"int4": "Integer", "_int4": "List<Integer>",
	"varchar": "String", "text": "String", "_varchar": "List<String>",
	"date": "LocalDate", "time": "LocalTime", "timestamp": "LocalDateTime",
	"bool": "Boolean", "numeric": "BigDecimal",
}

// Lookup returns the built-in Java field type for a PostgreSQL udt name.
func Lookup(nativeType string) (string, bool) {
	javaType, ok := javaTypes[nativeType]
	return javaType, ok
}

// Resolver answers the Java type of one column. A blocking resolver must
// return once ctx is done.
type Resolver interface {
	ResolveType(ctx context.Context, column types.ColumnDescriptor) (string, error)
}

// FixedResolver answers from the built-in table only.
type FixedResolver struct{}

func (FixedResolver) ResolveType(_ context.Context, column types.ColumnDescriptor) (string, error) {
	if javaType, ok := Lookup(column.NativeType); ok {
		return javaType, nil
	}
	return "", fmt.Errorf("%w: column %q has type %q", ErrUnrecognizedType, column.Name, column.NativeType)
}

// Mapper tries each resolver in order.
type Mapper struct {
	resolvers []Resolver
}

func NewMapper(resolvers ...Resolver) *Mapper {
	return &Mapper{resolvers: resolvers}
}

func (m *Mapper) Resolve(ctx context.Context, column types.ColumnDescriptor) (types.ResolvedColumn, error) {
	resolved := types.ResolvedColumn{
		ColumnDescriptor: column,
		IsPrimaryKey:     column.Position == 0,
	}

	for _, r := range m.resolvers {
		javaType, err := r.ResolveType(ctx, column)
		if errors.Is(err, ErrUnrecognizedType) {
			continue
		}
		if err != nil {
			return resolved, fmt.Errorf("failed to resolve type of column %s: %w", column.Name, err)
		}
		resolved.MappedType = javaType
		return resolved, nil
	}

	return resolved, fmt.Errorf("%w: column %q has type %q and no resolver answered", ErrUnrecognizedType, column.Name, column.NativeType)
}

// ResolveAll resolves columns sequentially, in catalog order.
func (m *Mapper) ResolveAll(ctx context.Context, columns []types.ColumnDescriptor) ([]types.ResolvedColumn, error) {
	resolved := make([]types.ResolvedColumn, 0, len(columns))
	for _, column := range columns {
		rc, err := m.Resolve(ctx, column)
		if err != nil {
			return resolved, err
		}
		resolved = append(resolved, rc)
	}
	return resolved, nil
}
