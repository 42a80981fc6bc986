// SPDX-License-Identifier: MIT

package logging_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sectormap/internal/logging"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"none":  zerolog.Disabled,
		"TRACE": zerolog.TraceLevel,
		"debug": zerolog.DebugLevel,
		"Info":  zerolog.InfoLevel,
		"warn":  zerolog.WarnLevel,
		"error": zerolog.ErrorLevel,
		"fatal": zerolog.FatalLevel,
	}
	for name, want := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := logging.ParseLevel(name)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
	_, err := logging.ParseLevel("loud")
	assert.ErrorIs(t, err, logging.ErrUnknownLevel)
}

func TestSetup_File(t *testing.T) {
	prevLogger, prevLevel := log.Logger, zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = prevLogger
		zerolog.SetGlobalLevel(prevLevel)
	})

	path := filepath.Join(t.TempDir(), "run.log")
	release, err := logging.Setup(logging.Config{Level: "warn", File: path})
	require.NoError(t, err)
	log.Info().Msg("hidden")
	log.Warn().Msg("shown")
	release()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), `"message":"shown"`)

	_, err = logging.Setup(logging.Config{Level: "chatty"})
	assert.ErrorIs(t, err, logging.ErrUnknownLevel)
}

func TestWarnings(t *testing.T) {
	var buf bytes.Buffer
	l := logging.New(&buf, false)
	logging.Warnings(&l, "layout", []error{errors.New("a"), errors.New("b")})
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"source":"layout"`)
	assert.Contains(t, lines[1], `"error":"b"`)

	buf.Reset()
	l = logging.New(&buf, true)
	l.Warn().Msg("console")
	assert.Contains(t, buf.String(), "WRN")
}
