package template

import (
	texttemplate "text/template"

	"github.com/Rana718/spring-helper/internal/naming"
	"github.com/Rana718/spring-helper/internal/types"
)

type artifactConfig struct {
	dir    string
	suffix string
	text   string
}

var artifactConfigs = map[types.ArtifactKind]artifactConfig{
	types.Entity: {
		dir:  "model",
		text: entityText,
	},
	types.Repository: {
		dir:    "repository",
		suffix: "Repository",
		text:   repositoryText,
	},
	types.ServiceInterface: {
		dir:    "service",
		suffix: "Service",
		text:   serviceText,
	},
	types.ServiceImpl: {
		dir:    "service/impl",
		suffix: "ServiceImpl",
		text:   serviceImplText,
	},
	types.Controller: {
		dir:    "controller",
		suffix: "Controller",
		text:   controllerText,
	},
}

var artifactTemplates = func() map[types.ArtifactKind]*texttemplate.Template {
	funcs := texttemplate.FuncMap{"fieldName": naming.FieldName}
	parsed := make(map[types.ArtifactKind]*texttemplate.Template, len(artifactConfigs))
	for kind, cfg := range artifactConfigs {
		parsed[kind] = texttemplate.Must(texttemplate.New(kind.String()).Funcs(funcs).Parse(cfg.text))
	}
	return parsed
}()

const entityText = `package {{.Package}}.model;
{{range .Imports}}
import {{.}};
{{- end}}

@Data
@AllArgsConstructor
@NoArgsConstructor
@Table(schema = "{{.Schema}}", value = "{{.Table}}")
public class {{.IDs.EntityName}} {
{{range .Columns}}
{{- if .IsPrimaryKey}}
    @Id
{{- end}}
    @Column("{{.Name}}")
    private {{.MappedType}} {{fieldName .Name}};
{{end}}
}
`

const repositoryText = `package {{.Package}}.repository;

import {{.Package}}.model.{{.IDs.EntityName}};
import org.springframework.data.repository.reactive.ReactiveCrudRepository;
import org.springframework.stereotype.Repository;

@Repository
public interface {{.IDs.EntityName}}Repository extends ReactiveCrudRepository<{{.IDs.EntityName}}, {{.IDType}}> {
}
`

const serviceText = `package {{.Package}}.service;

public interface {{.IDs.EntityName}}Service {
}
`

const serviceImplText = `package {{.Package}}.service.impl;

import {{.Package}}.repository.{{.IDs.EntityName}}Repository;
import {{.Package}}.service.{{.IDs.EntityName}}Service;
import org.springframework.stereotype.Service;

@Service
public class {{.IDs.EntityName}}ServiceImpl implements {{.IDs.EntityName}}Service {

    private final {{.IDs.EntityName}}Repository {{.IDs.FieldPrefix}}Repository;

    public {{.IDs.EntityName}}ServiceImpl({{.IDs.EntityName}}Repository {{.IDs.FieldPrefix}}Repository) {
        this.{{.IDs.FieldPrefix}}Repository = {{.IDs.FieldPrefix}}Repository;
    }
}
`

const controllerText = `package {{.Package}}.controller;

import {{.Package}}.service.{{.IDs.EntityName}}Service;
import org.springframework.web.bind.annotation.RequestMapping;
import org.springframework.web.bind.annotation.RestController;

@RestController
@RequestMapping("/{{.IDs.PathSegment}}")
public class {{.IDs.EntityName}}Controller {

    private final {{.IDs.EntityName}}Service {{.IDs.FieldPrefix}}Service;

    public {{.IDs.EntityName}}Controller({{.IDs.EntityName}}Service {{.IDs.FieldPrefix}}Service) {
        this.{{.IDs.FieldPrefix}}Service = {{.IDs.FieldPrefix}}Service;
    }
}
`
