package template

import (
	"fmt"
	"sort"
	"strings"
	texttemplate "text/template"

	"github.com/Rana718/spring-helper/internal/types"
)

type ModelField struct {
	Name string
	Type string
}

type ModelContext struct {
	Package string
	Name    string
	Fields  []ModelField
}

var modelImports = []string{
	"lombok.AllArgsConstructor",
	"lombok.Data",
	"lombok.NoArgsConstructor",
}

func (mc ModelContext) Imports() []string {
	imports := append([]string(nil), modelImports...)
	seen := map[string]bool{}
	for _, f := range mc.Fields {
		for re, imp := range typeImports {
			if re.MatchString(f.Type) && !seen[imp] {
				seen[imp] = true
				imports = append(imports, imp)
			}
		}
	}
	sort.Strings(imports)
	return imports
}

const modelText = `package {{.Package}};
{{range .Imports}}
import {{.}};
{{- end}}

@Data
@AllArgsConstructor
@NoArgsConstructor
public class {{.Name}} {
{{range .Fields}}
    private {{.Type}} {{.Name}};
{{end}}
}
`

var modelTemplate = texttemplate.Must(texttemplate.New("model").Parse(modelText))

// RenderModel produces a plain class with one private field per entry.
func RenderModel(mc ModelContext) (types.GeneratedFile, error) {
	var content strings.Builder
	if err := modelTemplate.Execute(&content, mc); err != nil {
		return types.GeneratedFile{}, fmt.Errorf("failed to render model %s: %w", mc.Name, err)
	}
	return types.GeneratedFile{
		Name:    mc.Name + ".java",
		Content: content.String(),
	}, nil
}
