package model

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/Rana718/spring-helper/internal/logger"
	"github.com/Rana718/spring-helper/internal/naming"
	"github.com/Rana718/spring-helper/internal/types"
	"github.com/Rana718/spring-helper/template"
	"github.com/fatih/color"
	"github.com/tidwall/gjson"
)

var ErrInvalidDocument = errors.New("invalid model document")

var (
	classNameRe   = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)
	packageNameRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)*$`)
)

type FileWriter interface {
	Write(file types.GeneratedFile) (string, error)
}

// Parse reads a flat JSON object of field name to Java type. Fields keep
// document order.
func Parse(document string) ([]template.ModelField, error) {
	document = strings.TrimSpace(document)
	if !gjson.Valid(document) {
		return nil, fmt.Errorf("%w: not valid JSON", ErrInvalidDocument)
	}

	doc := gjson.Parse(document)
	if !doc.IsObject() {
		return nil, fmt.Errorf("%w: expected an object of field name to Java type", ErrInvalidDocument)
	}

	var fields []template.ModelField
	var err error
	doc.ForEach(func(key, value gjson.Result) bool {
		if value.Type != gjson.String {
			err = fmt.Errorf("%w: field %q must map to a Java type string, got %s", ErrInvalidDocument, key.String(), value.Type)
			return false
		}
		if !classNameRe.MatchString(key.String()) || naming.IsJavaKeyword(key.String()) {
			err = fmt.Errorf("%w: field %q is not a Java identifier", ErrInvalidDocument, key.String())
			return false
		}
		fields = append(fields, template.ModelField{Name: key.String(), Type: value.String()})
		return true
	})
	if err != nil {
		return nil, err
	}
	return fields, nil
}

type Generator struct {
	reader *bufio.Reader
	out    io.Writer
	writer FileWriter
	log    logger.Logger
}

func NewGenerator(in io.Reader, out io.Writer, writer FileWriter, log logger.Logger) *Generator {
	if log == nil {
		log = logger.Discard()
	}
	return &Generator{
		reader: bufio.NewReader(in),
		out:    out,
		writer: writer,
		log:    log,
	}
}

// Generate asks for one line of JSON and writes <name>.java from it. Nothing
// is written when the document is rejected.
func (g *Generator) Generate(name, pkg string) (string, error) {
	if !classNameRe.MatchString(name) || naming.IsJavaKeyword(name) {
		return "", fmt.Errorf("%w: model name %q is not a Java identifier", ErrInvalidDocument, name)
	}
	if !packageNameRe.MatchString(pkg) {
		return "", fmt.Errorf("%w: package name %q is not a dotted Java package", ErrInvalidDocument, pkg)
	}

	fmt.Fprintln(g.out, "Please paste the JSON below. (Newline is not allowed. Press Enter/Return to continue, Ctrl+C to cancel)")
	fmt.Fprintln(g.out)

	line, err := g.reader.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", fmt.Errorf("failed to read model document: %w", err)
	}

	fields, err := Parse(line)
	if err != nil {
		return "", err
	}
	g.log.Debug("model document parsed", "model", name, "fields", len(fields))

	fmt.Fprintln(g.out)
	fmt.Fprintln(g.out, "JSON parsed successfully, will create model class with following fields:")
	for _, f := range fields {
		fmt.Fprintf(g.out, "%s, Java type: %s\n", f.Name, f.Type)
	}
	fmt.Fprintln(g.out)

	file, err := template.RenderModel(template.ModelContext{Package: pkg, Name: name, Fields: fields})
	if err != nil {
		return "", err
	}

	path, err := g.writer.Write(file)
	if err != nil {
		return "", err
	}
	color.New(color.FgGreen).Fprintf(g.out, "✅ Model created successfully as %s\n", path)
	return path, nil
}
