package logging_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/aretw0/dendro/internal/logging"
	"github.com/stretchr/testify/assert"
)

func TestNew_RenamesErrorKey(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(slog.LevelInfo, logging.WithWriter(&buf))

	logger.Error("enrichment failed", "error", errors.New("no root"))
	assert.Contains(t, buf.String(), `err="no root"`)
	assert.NotContains(t, buf.String(), "error=")
}

func TestNew_Level(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(slog.LevelWarn, logging.WithWriter(&buf))

	logger.Info("hidden")
	logger.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(slog.LevelDebug, logging.WithWriter(&buf), logging.WithJSON())

	logger.Debug("run_start", "taxonomy", "CCN202002013")
	assert.Contains(t, buf.String(), `"taxonomy":"CCN202002013"`)
}
