package naming

import (
	"strings"

	"github.com/Rana718/spring-helper/internal/types"
	"github.com/jinzhu/inflection"
	"github.com/stoewer/go-strcase"
)

// javaKeywords are the reserved words and literals that cannot name a field.
var javaKeywords = map[string]bool{
	"_": true, "abstract": true, "assert": true, "boolean": true, "break": true,
	"byte": true, "case": true, "catch": true, "char": true, "class": true,
	"const": true, "continue": true, "default": true, "do": true, "double": true,
	"else": true, "enum": true, "extends": true, "false": true, "final": true,
	"finally": true, "float": true, "for": true, "goto": true, "if": true,
	"implements": true, "import": true, "instanceof": true, "int": true,
	"interface": true, "long": true, "native": true, "new": true, "null": true,
	"package": true, "private": true, "protected": true, "public": true,
	"return": true, "short": true, "static": true, "strictfp": true,
	"super": true, "switch": true, "synchronized": true, "this": true,
	"throw": true, "throws": true, "transient": true, "true": true, "try": true,
	"void": true, "volatile": true, "while": true,
}

// trimSeparators drops leading "_" and "-", which strcase would otherwise
// read as a word boundary and capitalise the first letter.
func trimSeparators(identifier string) string {
	trimmed := strings.TrimLeft(identifier, "_-")
	if trimmed == "" {
		return identifier
	}
	return trimmed
}

// ToUpperCamel converts a catalog identifier such as "user_account" to
// "UserAccount".
func ToUpperCamel(identifier string) string {
	return strcase.UpperCamelCase(trimSeparators(identifier))
}

// ToCamel converts a catalog identifier such as "user_account" to
// "userAccount".
func ToCamel(identifier string) string {
	return strcase.LowerCamelCase(trimSeparators(identifier))
}

func IsJavaKeyword(word string) bool {
	return javaKeywords[word]
}

// FieldName is the Java field for a column. Names that collide with a
// keyword get a trailing underscore; the column mapping keeps the original.
func FieldName(column string) string {
	field := ToCamel(column)
	if IsJavaKeyword(field) {
		return field + "_"
	}
	return field
}

// Identifiers derives the name variants shared by all artifacts of a table.
func Identifiers(tableName string) types.IdentifierSet {
	camel := ToCamel(tableName)
	return types.IdentifierSet{
		EntityName:  ToUpperCamel(tableName),
		FieldPrefix: camel,
		PathSegment: inflection.Plural(camel),
	}
}
