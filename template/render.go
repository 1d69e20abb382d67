package template

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/Rana718/spring-helper/internal/types"
)

// DefaultIDType is the Java type of the primary key assumed by repositories.
const DefaultIDType = "Integer"

// RenderContext carries everything a template may reference. Nothing in it
// depends on another artifact's output.
type RenderContext struct {
	Package string
	Schema  string
	Table   string
	IDs     types.IdentifierSet
	Columns []types.ResolvedColumn
	IDType  string
}

var entityImports = []string{
	"lombok.AllArgsConstructor",
	"lombok.Data",
	"lombok.NoArgsConstructor",
	"org.springframework.data.annotation.Id",
	"org.springframework.data.relational.core.mapping.Column",
	"org.springframework.data.relational.core.mapping.Table",
}

var typeImports = map[*regexp.Regexp]string{
	regexp.MustCompile(`\bBigDecimal\b`):    "java.math.BigDecimal",
	regexp.MustCompile(`\bLocalDate\b`):     "java.time.LocalDate",
	regexp.MustCompile(`\bLocalTime\b`):     "java.time.LocalTime",
	regexp.MustCompile(`\bLocalDateTime\b`): "java.time.LocalDateTime",
	regexp.MustCompile(`\bList\b`):          "java.util.List",
}

// Imports returns the sorted import list of the entity for these columns.
func (rc RenderContext) Imports() []string {
	seen := make(map[string]bool, len(entityImports))
	imports := make([]string, 0, len(entityImports)+len(typeImports))
	add := func(imp string) {
		if !seen[imp] {
			seen[imp] = true
			imports = append(imports, imp)
		}
	}

	for _, imp := range entityImports {
		add(imp)
	}
	for _, col := range rc.Columns {
		for re, imp := range typeImports {
			if re.MatchString(col.MappedType) {
				add(imp)
			}
		}
	}

	sort.Strings(imports)
	return imports
}

// Render produces one artifact of the given kind.
func Render(kind types.ArtifactKind, rc RenderContext) (types.GeneratedFile, error) {
	cfg, ok := artifactConfigs[kind]
	if !ok {
		return types.GeneratedFile{}, fmt.Errorf("unknown artifact kind %d", int(kind))
	}
	if rc.IDType == "" {
		rc.IDType = DefaultIDType
	}

	var content strings.Builder
	if err := artifactTemplates[kind].Execute(&content, rc); err != nil {
		return types.GeneratedFile{}, fmt.Errorf("failed to render %s for table %s: %w", kind, rc.Table, err)
	}

	return types.GeneratedFile{
		Dir:     cfg.dir,
		Name:    rc.IDs.EntityName + cfg.suffix + ".java",
		Content: content.String(),
	}, nil
}

// RenderAll renders every artifact kind for one table, in emission order.
func RenderAll(rc RenderContext) ([]types.GeneratedFile, error) {
	files := make([]types.GeneratedFile, 0, len(types.ArtifactKinds))
	for _, kind := range types.ArtifactKinds {
		file, err := Render(kind, rc)
		if err != nil {
			return files, err
		}
		files = append(files, file)
	}
	return files, nil
}
