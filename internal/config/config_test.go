package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lox/mjcalc/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.hcl"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, game.DefaultRules(), cfg.GameRules())
	assert.Equal(t, DefaultLength, cfg.Table.Length)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.ManagerConfig().Names)
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "mjcalc.hcl")
	src := `
table {
  players        = ["Ami", "Ben", "Cho"]
  starting_score = 35000
  length         = 1
}

rules {
  kiriage       = true
  stick_sweep   = "discarder"
  draw_rotation = "reset"
}

log {
  level = "debug"
  file  = "mjcalc.log"
}
`
	require.NoError(t, os.WriteFile(path, []byte(src), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, game.Rules{
		Kiriage:      true,
		StickSweep:   game.SweepDiscarderOrder,
		DrawRotation: game.DrawRotationReset,
		NotenTotal:   game.DefaultNotenTotal,
	}, cfg.GameRules())
	assert.Equal(t, game.ManagerConfig{
		Names:         []string{"Ami", "Ben", "Cho"},
		StartingScore: 35000,
		Rules:         cfg.GameRules(),
	}, cfg.ManagerConfig())
	assert.Equal(t, 1, cfg.Table.Length)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "mjcalc.log", cfg.Log.File)

	m, err := game.NewManager(cfg.ManagerConfig())
	require.NoError(t, err)
	assert.Len(t, m.Players(), 3)
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte(`table {`), "broken.hcl")
	assert.ErrorContains(t, err, "failed to parse HCL")

	_, err = Parse([]byte(`table { seats = 4 }`), "unknown.hcl")
	assert.ErrorContains(t, err, "failed to decode HCL")
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		src     string
		wantErr string
	}{
		{"two players", `table { players = ["a", "b"] }`, "3 or 4 names"},
		{"duplicate player", `table { players = ["a", "b", "a"] }`, "duplicate player"},
		{"empty name", `table { players = ["a", "", "c", "d"] }`, "must not be empty"},
		{"negative score", `table { starting_score = -1 }`, "starting score"},
		{"five winds", `table { length = 5 }`, "length"},
		{"unknown sweep", `rules { stick_sweep = "split" }`, "rules: unknown stick sweep"},
		{"unknown rotation", `rules { draw_rotation = "hold" }`, "rules: unknown draw rotation"},
		{"negative noten", `rules { noten_total = -3000 }`, "noten total"},
		{"bad log level", `log { level = "trace" }`, "invalid level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.src), "test.hcl")
			require.NoError(t, err)
			assert.ErrorContains(t, cfg.Validate(), tt.wantErr)
		})
	}
}
