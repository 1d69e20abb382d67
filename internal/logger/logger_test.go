package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	t.Run("Should respect the configured level", func(t *testing.T) {
		var buf bytes.Buffer
		log := New(&Config{Level: "warn", Output: &buf})

		log.Info("hidden")
		log.Warn("shown", "table", "users")

		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "shown")
		assert.Contains(t, buf.String(), "table=users")
	})

	t.Run("Should fall back to info on an unknown level", func(t *testing.T) {
		var buf bytes.Buffer
		log := New(&Config{Level: "loud", Output: &buf})

		log.Debug("debug line")
		log.Info("info line")

		assert.NotContains(t, buf.String(), "debug line")
		assert.Contains(t, buf.String(), "info line")
	})

	t.Run("Should emit JSON when asked", func(t *testing.T) {
		var buf bytes.Buffer
		log := New(&Config{Level: "info", Output: &buf, JSON: true})

		log.Info("hello")

		assert.Contains(t, buf.String(), `"msg":"hello"`)
	})
}
