package logger

import (
	"coder_edu_frontend/internal/config"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestSetLevel(t *testing.T) {
	tests := []struct {
		name string
		mode string
		lvl  string
		want zap.AtomicLevel
	}{
		{name: "release default", mode: "release", want: zap.NewAtomicLevelAt(zap.InfoLevel)},
		{name: "debug mode", mode: "debug", want: zap.NewAtomicLevelAt(zap.DebugLevel)},
		{name: "explicit level wins", mode: "debug", lvl: "warn", want: zap.NewAtomicLevelAt(zap.WarnLevel)},
		{name: "bad level falls back", mode: "debug", lvl: "loud", want: zap.NewAtomicLevelAt(zap.InfoLevel)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.Server.Mode = tt.mode
			cfg.Log.Level = tt.lvl

			SetLevel(cfg)
			assert.Equal(t, tt.want.Level(), Level())
		})
	}
}
