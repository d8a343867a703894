package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInitialize(t *testing.T) {
	tests := []struct {
		name  string
		opts  Options
		debug bool
	}{
		{name: "console only", opts: Options{}},
		{name: "debug", opts: Options{Debug: true}, debug: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prev := Logger
			defer func() { Logger = prev }()

			require.NoError(t, Initialize(tt.opts))
			require.NotNil(t, Logger)
			assert.Equal(t, tt.debug, Logger.Desugar().Core().Enabled(zapcore.DebugLevel))
		})
	}
}

func TestInitializeWithFile(t *testing.T) {
	prev := Logger
	defer func() { Logger = prev }()

	path := filepath.Join(t.TempDir(), "csforge.log")
	require.NoError(t, Initialize(Options{File: path, MaxSizeMB: 1}))

	Logger.Infow("generated", "file", "Person.cs")
	Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"file":"Person.cs"`)
}

func TestUse(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	restore := Use(zap.New(core))

	Logger.Debugw("applied rewriter", "name", "normalizer")
	restore()
	Logger.Debugw("not recorded")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "applied rewriter", logs.All()[0].Message)
}
