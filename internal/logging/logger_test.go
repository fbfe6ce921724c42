package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug": LevelDebug, "INFO": LevelInfo, "": LevelInfo,
		"warn": LevelWarn, "Warning": LevelWarn, " error ": LevelError,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}
	_, err := ParseLevel("verbose")
	require.ErrorIs(t, err, ErrUnknownLevel)
	require.Equal(t, "UNKNOWN", Level(42).String())
	require.Equal(t, "WARN", LevelWarn.String())
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("JSON")
	require.NoError(t, err)
	require.Equal(t, FormatJSON, f)
	f, err = ParseFormat("")
	require.NoError(t, err)
	require.Equal(t, FormatText, f)
	_, err = ParseFormat("xml")
	require.ErrorIs(t, err, ErrUnknownFormat)
}

func TestNew_JSONFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: LevelWarn, Format: FormatJSON, Output: &buf, Service: "reachlab"})
	log.Info("hidden")
	log.Warn("shown", "n", 5)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	require.Equal(t, "shown", rec["msg"])
	require.Equal(t, "reachlab", rec["service"])
	require.Equal(t, float64(5), rec["n"])
}

func TestNew_Text(t *testing.T) {
	var buf bytes.Buffer
	New(Config{Level: LevelDebug, Output: &buf}).Debug("trace", "k", 1)
	require.Contains(t, buf.String(), "msg=trace")
	require.Contains(t, buf.String(), "k=1")
}
