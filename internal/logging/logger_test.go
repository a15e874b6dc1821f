package logging

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew_Levels(t *testing.T) {
	log, err := New("")
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zap.DebugLevel))

	log, err = New("DEBUG")
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zap.DebugLevel))

	_, err = New("loud")
	assert.Error(t, err)
}

func TestHelpers_Fields(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	log := zap.New(core)

	LogExtract(log, "prefecture", "13", 25, 3*time.Millisecond)
	LogSkip(log, "document", "docs/05_tokyo/13_tokyo.md", errors.New("permission denied"))
	LogImport(log, "prefectures", 47, time.Second)

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, "extracted document", entries[0].Message)
	assert.Equal(t, "13", entries[0].ContextMap()["code"])
	assert.Equal(t, zap.WarnLevel, entries[1].Level)
	assert.Equal(t, "skipped document", entries[1].Message)
	assert.Equal(t, int64(1000), entries[2].ContextMap()["duration_ms"])
}
