package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/reachlab/config"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	require.Len(t, cfg.Families, 4)
	require.Equal(t, []int{5, 8, 10, 12, 15, 20, 25, 30}, cfg.Families[0].Sizes)
	require.Equal(t, "grid", cfg.Families[3].Name)
	require.Equal(t, []int{9, 16, 25, 36}, cfg.Families[3].Sizes)

	// Families must not share size slices.
	cfg.Families[0].Sizes[0] = 99
	require.Equal(t, 5, cfg.Families[1].Sizes[0])
	require.Equal(t, 5, config.Default().Families[0].Sizes[0])
}

func TestParse_Overrides(t *testing.T) {
	cfg, err := config.Parse([]byte(`
families:
  - name: random
    sizes: [10, 20]
    probability: 0.25
    seed: 7
  - name: clustered
    sizes: [12]
    cluster_size: 4
repetitions: 3
validate: false
output:
  csv: out.csv
log:
  level: debug
`))
	require.NoError(t, err)
	require.Len(t, cfg.Families, 2)
	require.Equal(t, 0.25, cfg.Families[0].Probability)
	require.Equal(t, int64(7), cfg.Families[0].Seed)
	require.Equal(t, 3, cfg.Repetitions)
	require.False(t, cfg.CrossCheck)
	require.True(t, cfg.Isolate, "unset keys keep defaults")
	require.Equal(t, "out.csv", cfg.Output.CSV)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "text", cfg.Log.Format)

	fam, err := cfg.Families[0].Family()
	require.NoError(t, err)
	g1, err := fam.Build(10)
	require.NoError(t, err)
	g2, err := fam.Build(10)
	require.NoError(t, err)
	require.Equal(t, g1.Edges(), g2.Edges())

	fam, err = cfg.Families[1].Family()
	require.NoError(t, err)
	g, err := fam.Build(12)
	require.NoError(t, err)
	require.Equal(t, 12, g.Order())
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string]string{
		"yaml":        "families: [",
		"no families": "families: []",
		"unknown":     "families: [{name: torus, sizes: [4]}]",
		"no sizes":    "families: [{name: path}]",
		"negative":    "families: [{name: path, sizes: [-1]}]",
		"probability": "families: [{name: random, sizes: [4], probability: 2}]",
		"cluster":     "families: [{name: clustered, sizes: [4], cluster_size: -2}]",
		"repetitions": "repetitions: 0",
		"level":       "log: {level: chatty}",
		"format":      "log: {format: xml}",
	}
	for name, doc := range cases {
		_, err := config.Parse([]byte(doc))
		require.ErrorIs(t, err, config.ErrInvalidConfig, name)
	}
}

func TestParse_Env(t *testing.T) {
	t.Setenv("REACHLAB_REPETITIONS", "4")
	t.Setenv("REACHLAB_LOG_FORMAT", "json")
	cfg, err := config.Parse(nil)
	require.NoError(t, err)
	require.Equal(t, 4, cfg.Repetitions)
	require.Equal(t, "json", cfg.Log.Format)

	t.Setenv("REACHLAB_REPETITIONS", "many")
	_, err = config.Parse(nil)
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestLoad(t *testing.T) {
	file := filepath.Join(t.TempDir(), "bench.yaml")
	require.NoError(t, os.WriteFile(file, []byte("repetitions: 2\n"), 0o600))
	cfg, err := config.Load(file)
	require.NoError(t, err)
	require.Equal(t, 2, cfg.Repetitions)
	require.Len(t, cfg.Families, 4)

	_, err = config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestYAML_RoundTrip(t *testing.T) {
	out, err := config.Default().YAML()
	require.NoError(t, err)
	back, err := config.Parse(out)
	require.NoError(t, err)
	require.Equal(t, config.Default(), back)
}

func TestCrossCheck_YAMLKey(t *testing.T) {
	cfg := config.Default()
	require.True(t, cfg.CrossCheck)

	out, err := cfg.YAML()
	require.NoError(t, err)
	require.Contains(t, string(out), "validate: true")

	cfg, err = config.Parse([]byte("validate: false\n"))
	require.NoError(t, err)
	require.False(t, cfg.CrossCheck)
	require.NoError(t, cfg.Validate())
}
