package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"debug":    zerolog.DebugLevel,
		"INFO":     zerolog.InfoLevel,
		" error ":  zerolog.ErrorLevel,
		"off":      zerolog.Disabled,
		"disabled": zerolog.Disabled,
		"warn":     zerolog.WarnLevel,
		"fatal":    zerolog.FatalLevel,
		"Panic":    zerolog.PanicLevel,
		"trace":    zerolog.TraceLevel,
		"":         zerolog.WarnLevel,
		"verbose":  zerolog.WarnLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestSetup_File(t *testing.T) {
	prevLevel, prevLogger := zerolog.GlobalLevel(), log.Logger
	defer func() {
		zerolog.SetGlobalLevel(prevLevel)
		log.Logger = prevLogger
	}()
	path := filepath.Join(t.TempDir(), "shoestock.log")

	closer, err := Setup("info", path)
	require.NoError(t, err)
	log.Info().Str("code", "ABC12345").Msg("restocked")
	log.Debug().Msg("hidden")
	require.NoError(t, closer.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "restocked")
	assert.Contains(t, string(content), "code=ABC12345")
	assert.NotContains(t, string(content), "hidden")
}
