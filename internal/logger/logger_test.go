package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProductionWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, false, "")

	log.Debug("hidden")
	log.Info("build finished", "posts", 3)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "build finished", entry["msg"])
	assert.EqualValues(t, 3, entry["posts"])
}

func TestNewDevelopmentWritesDebugText(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, true, "")

	log.Debug("parsed post", "slug", "hello-world")

	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "slug=hello-world")
}
