package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, Debug, ParseLevel("DEBUG"))
	assert.Equal(t, Warn, ParseLevel("warning"))
	assert.Equal(t, Info, ParseLevel(""))
	assert.Equal(t, Info, ParseLevel("nope"))
	assert.Equal(t, "error", Error.String())
}

func TestLogger_JSON_IncludesBaseAndFields(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Info, Format: FormatJSON, App: "medguardian", Writer: &buf})

	l.With(map[string]any{"owner_id": "u-1"}).Info("intake recorded", map[string]any{
		"medication_id": "m-1",
		"":              "ignored",
	})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "intake recorded", entry["msg"])
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "medguardian", entry["app"])
	assert.Equal(t, "u-1", entry["owner_id"])
	assert.Equal(t, "m-1", entry["medication_id"])
	_, hasEmpty := entry[""]
	assert.False(t, hasEmpty)
}

func TestLogger_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Warn, Format: FormatText, Writer: &buf})

	l.Info("hidden", nil)
	l.Warn("shown", map[string]any{"n": 1})

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.True(t, strings.Contains(out, "msg=shown"))
	assert.True(t, strings.Contains(out, "n=1"))
}
