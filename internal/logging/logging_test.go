package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSONByDefault(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New("", &buf)
	require.NoError(t, err)

	logger.Info("card rendered", "slug", "tail-climber")
	logger.Debug("hidden")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "card rendered", entry["msg"])
	assert.Equal(t, "tail-climber", entry["slug"])
	assert.NotContains(t, buf.String(), "hidden")
}

func TestNew_DebugUsesTint(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New("debug", &buf)
	require.NoError(t, err)

	logger.Debug("visible")
	assert.Contains(t, buf.String(), "visible")
	assert.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New("loud", &bytes.Buffer{})
	assert.Error(t, err)
}

func TestCleanSourcePath(t *testing.T) {
	assert.Equal(t, "service/service.go", cleanSourcePath("/home/dev/soleshop/service/service.go", "/soleshop/"))
	assert.Equal(t, "github.com/x/y.go", cleanSourcePath("/root/go/src/github.com/x/y.go", "/soleshop/"))
}
