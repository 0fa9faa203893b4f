package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"svw.info/worksheets/internal/domain"
	"svw.info/worksheets/internal/kenken"
	"svw.info/worksheets/internal/symbolgrid"
)

func TestDefaultPresetsAreValid(t *testing.T) {
	cfg := Default()
	require.Len(t, cfg.SymbolPresets, 4)
	require.Len(t, cfg.KenKenPresets, 4)

	for _, p := range cfg.SymbolPresets {
		require.NoError(t, symbolgrid.ValidateParams(p.Params), "preset %s", p.Name)
		require.NotEmpty(t, p.Description)
	}
	for _, p := range cfg.KenKenPresets {
		require.NoError(t, kenken.ValidateSpec(p.Spec), "preset %s", p.Name)
		require.NotEmpty(t, p.Spec.AllowedOperations)
	}
	require.Len(t, Symbols, len(SymbolColors))
}

func TestPresetLookup(t *testing.T) {
	cfg := Default()
	p, ok := cfg.SymbolPreset("Expert")
	require.True(t, ok)
	require.Equal(t, 0.0, p.Params.HintFraction)

	k, ok := cfg.KenKenPreset("Easy")
	require.True(t, ok)
	require.Equal(t, []domain.Operation{domain.OpAdd}, k.Spec.AllowedOperations)

	_, ok = cfg.KenKenPreset("Nope")
	require.False(t, ok)
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "worksheets.yaml")
	body := `
addr: ":9090"
kenken_presets:
  - name: Tiny
    description: 3×3 warmup
    spec:
      size: 3
      max_cage_size: 2
      operations: ["+"]
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, ":9090", cfg.Addr)
	require.Equal(t, "info", cfg.LogLevel) // untouched default
	require.Len(t, cfg.KenKenPresets, 1)
	require.Equal(t, domain.OpAdd, cfg.KenKenPresets[0].Spec.AllowedOperations[0])
	require.Len(t, cfg.SymbolPresets, 4) // untouched default
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("bogus: 1\n"), 0o644))
	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadEmptyPathKeepsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.Addr)
}
