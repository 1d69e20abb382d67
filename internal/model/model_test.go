package model

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Rana718/spring-helper/internal/artifact"
	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

func TestParse(t *testing.T) {
	t.Run("Should keep document order", func(t *testing.T) {
		fields, err := Parse(`{"zeta":"String","alpha":"Integer","createdAt":"LocalDateTime"}`)

		require.NoError(t, err)
		require.Len(t, fields, 3)
		assert.Equal(t, "zeta", fields[0].Name)
		assert.Equal(t, "alpha", fields[1].Name)
		assert.Equal(t, "LocalDateTime", fields[2].Type)
	})

	t.Run("Should accept an empty object", func(t *testing.T) {
		fields, err := Parse("{}\n")

		require.NoError(t, err)
		assert.Empty(t, fields)
	})

	rejected := map[string]string{
		"malformed":      `{"name":`,
		"array":          `["String"]`,
		"number value":   `{"age":42}`,
		"nested object":  `{"owner":{"name":"String"}}`,
		"bad field name": `{"first name":"String"}`,
		"keyword field":  `{"class":"String"}`,
	}
	for name, doc := range rejected {
		t.Run("Should reject "+name, func(t *testing.T) {
			_, err := Parse(doc)

			assert.ErrorIs(t, err, ErrInvalidDocument)
		})
	}
}

func TestGenerate(t *testing.T) {
	t.Run("Should write the class and list its fields", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		var out bytes.Buffer
		in := strings.NewReader(`{"id":"Integer","price":"BigDecimal","tags":"List<String>"}` + "\n")

		path, err := NewGenerator(in, &out, artifact.NewEmitter(fs, "/work"), nil).Generate("Product", "tw.mingchang.shop")

		require.NoError(t, err)
		assert.Equal(t, "/work/Product.java", path)
		data, err := afero.ReadFile(fs, path)
		require.NoError(t, err)
		content := string(data)
		assert.True(t, strings.HasPrefix(content, "package tw.mingchang.shop;\n"))
		assert.Contains(t, content, "import java.math.BigDecimal;")
		assert.Contains(t, content, "import java.util.List;")
		assert.Contains(t, content, "public class Product {")
		assert.Contains(t, content, "    private List<String> tags;")
		assert.Less(t, strings.Index(content, "Integer id;"), strings.Index(content, "BigDecimal price;"))
		assert.Contains(t, out.String(), "id, Java type: Integer")
		assert.Contains(t, out.String(), "Model created successfully as /work/Product.java")
	})

	t.Run("Should accept input without a trailing newline", func(t *testing.T) {
		fs := afero.NewMemMapFs()

		_, err := NewGenerator(strings.NewReader(`{"id":"Integer"}`), &bytes.Buffer{}, artifact.NewEmitter(fs, "/work"), nil).Generate("Tag", "tw.mingchang.shop")

		require.NoError(t, err)
	})

	t.Run("Should write nothing for a rejected document", func(t *testing.T) {
		fs := afero.NewMemMapFs()

		_, err := NewGenerator(strings.NewReader("{\"id\":1}\n"), &bytes.Buffer{}, artifact.NewEmitter(fs, "/work"), nil).Generate("Tag", "tw.mingchang.shop")

		assert.ErrorIs(t, err, ErrInvalidDocument)
		exists, _ := afero.Exists(fs, "/work/Tag.java")
		assert.False(t, exists)
	})

	t.Run("Should fail on closed input", func(t *testing.T) {
		_, err := NewGenerator(strings.NewReader(""), &bytes.Buffer{}, artifact.NewEmitter(afero.NewMemMapFs(), "/work"), nil).Generate("Tag", "tw.mingchang.shop")

		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrInvalidDocument)
	})

	t.Run("Should reject a bad model name before reading input", func(t *testing.T) {
		var out bytes.Buffer

		_, err := NewGenerator(strings.NewReader("{}\n"), &out, artifact.NewEmitter(afero.NewMemMapFs(), "/work"), nil).Generate("my-model", "tw.mingchang.shop")

		assert.ErrorIs(t, err, ErrInvalidDocument)
		assert.Empty(t, out.String())
	})
}
