package quickstart

import (
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
	"unicode"

	"github.com/Rana718/spring-helper/internal/logger"
	"github.com/Rana718/spring-helper/internal/naming"
	"github.com/Rana718/spring-helper/internal/typemap"
	"github.com/Rana718/spring-helper/internal/types"
	"github.com/Rana718/spring-helper/template"
	"github.com/fatih/color"
)

var ErrInvalidArgument = errors.New("invalid argument")

var packageNameRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)*$`)

// validSchemaName accepts anything PostgreSQL can name when quoted. The
// schema is only ever passed as a bound parameter.
func validSchemaName(name string) bool {
	if name == "" {
		return false
	}
	return strings.IndexFunc(name, unicode.IsControl) < 0
}

type Catalog interface {
	ListTables(ctx context.Context, ref types.SchemaRef) ([]types.TableDescriptor, error)
	ListColumns(ctx context.Context, tableName string, ref types.SchemaRef) ([]types.ColumnDescriptor, error)
}

type FileWriter interface {
	Write(file types.GeneratedFile) (string, error)
}

type Options struct {
	Ref     types.SchemaRef
	Package string
	IDType  string
}

func (o Options) Validate() error {
	if !validSchemaName(o.Ref.SchemaName) {
		return fmt.Errorf("%w: schema name %q is empty or contains control characters", ErrInvalidArgument, o.Ref.SchemaName)
	}
	if !packageNameRe.MatchString(o.Package) {
		return fmt.Errorf("%w: package name %q is not a dotted Java package, e.g. tw.mingchang.project", ErrInvalidArgument, o.Package)
	}
	return nil
}

type Service struct {
	catalog Catalog
	mapper  *typemap.Mapper
	writer  FileWriter
	out     io.Writer
	log     logger.Logger
}

func NewService(catalog Catalog, mapper *typemap.Mapper, writer FileWriter, out io.Writer, log logger.Logger) *Service {
	if log == nil {
		log = logger.Discard()
	}
	return &Service{
		catalog: catalog,
		mapper:  mapper,
		writer:  writer,
		out:     out,
		log:     log,
	}
}

// Run introspects the schema and emits every artifact of every table. The
// returned summary is never nil once the arguments are valid; an error means
// the run was aborted by a query or resolver failure.
func (s *Service) Run(ctx context.Context, opts Options) (*Summary, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	summary := &Summary{Schema: opts.Ref.SchemaName, Package: opts.Package}

	tables, err := s.catalog.ListTables(ctx, opts.Ref)
	if err != nil {
		summary.Aborted = true
		return summary, fmt.Errorf("failed to list tables: %w", err)
	}

	if len(tables) == 0 {
		s.log.Info("no tables found", "schema", opts.Ref.SchemaName)
		return summary, nil
	}
	s.log.Debug("tables found", "schema", opts.Ref.SchemaName, "count", len(tables))

	for _, table := range tables {
		result, err := s.processTable(ctx, table, opts)
		summary.Tables = append(summary.Tables, result)
		if err != nil {
			summary.Aborted = true
			return summary, err
		}
	}

	return summary, nil
}

// processTable returns an error only for failures that abort the run.
// Emission failures are recorded in the result instead.
func (s *Service) processTable(ctx context.Context, table types.TableDescriptor, opts Options) (TableResult, error) {
	ids := naming.Identifiers(table.Name)
	result := TableResult{Table: table.Name, Entity: ids.EntityName}

	columns, err := s.catalog.ListColumns(ctx, table.Name, opts.Ref)
	if err != nil {
		result.fail(err)
		return result, fmt.Errorf("failed to list columns of table %s: %w", table.Name, err)
	}

	resolved, err := s.mapper.ResolveAll(ctx, columns)
	if err != nil {
		result.fail(err)
		return result, fmt.Errorf("failed to resolve column types of table %s: %w", table.Name, err)
	}
	for _, col := range resolved {
		if field := naming.FieldName(col.Name); field != naming.ToCamel(col.Name) {
			s.log.Warn("column name is a Java keyword, field renamed", "table", table.Name, "column", col.Name, "field", field)
		}
	}

	files, err := template.RenderAll(template.RenderContext{
		Package: opts.Package,
		Schema:  opts.Ref.SchemaName,
		Table:   table.Name,
		IDs:     ids,
		Columns: resolved,
		IDType:  opts.IDType,
	})
	if err != nil {
		result.fail(err)
		s.log.Error("render failed", "table", table.Name, "err", err)
		return result, nil
	}

	green := color.New(color.FgGreen)
	for i, file := range files {
		path, err := s.writer.Write(file)
		if err != nil {
			result.fail(err)
			s.log.Error("write failed", "table", table.Name, "kind", types.ArtifactKinds[i], "err", err)
			color.New(color.FgRed).Fprintf(s.out, "❌ Failed to create %s for table %q: %v\n", types.ArtifactKinds[i], table.Name, err)
			return result, nil
		}
		result.Files = append(result.Files, path)
		green.Fprintf(s.out, "✅ Created %s for table %q as %s\n", types.ArtifactKinds[i], table.Name, path)
	}

	return result, nil
}
