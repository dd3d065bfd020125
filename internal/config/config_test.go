package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/philipparndt/facestl/internal/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validConfig = `scene: scene.yaml
export_dir: exports
targets:
  - Hub
  - Shroud
inlet_color: [1.0, 1.0, 0.0]
outlet_color: [1.0, 0.0, 0.0]
color_tolerance: 0.0001
mesh:
  linear_deflection: 0.01
  angular_deflection: 0.2
format: ascii
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, validConfig)
	cfg, err := NewLoader().Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Hub", "Shroud"}, cfg.Targets)
	assert.Equal(t, scene.Color{R: 1, G: 1, B: 0, A: 1}, cfg.InletColor)
	assert.Equal(t, scene.Color{R: 1, G: 0, B: 0, A: 1}, cfg.OutletColor)
	assert.Equal(t, 0.0001, cfg.ColorTolerance)
	assert.Equal(t, 0.01, cfg.Mesh.LinearDeflection)
	assert.Equal(t, 0.2, cfg.Mesh.AngularDeflection)
	assert.Equal(t, "ascii", cfg.Format)

	// relative paths resolve against the config file directory
	dir := filepath.Dir(path)
	assert.Equal(t, filepath.Join(dir, "scene.yaml"), cfg.Scene)
	assert.Equal(t, filepath.Join(dir, "exports"), cfg.ExportDir)
}

func TestLoadAppliesDefaults(t *testing.T) {
	cfg, err := NewLoader().Load(writeConfig(t, `scene: s.yaml
export_dir: out
targets: [Hub]
inlet_color: [1.0, 1.0, 0.0]
outlet_color: [1.0, 0.0, 0.0]
`))
	require.NoError(t, err)

	assert.Equal(t, DefaultLinearDeflection, cfg.Mesh.LinearDeflection)
	assert.Equal(t, DefaultAngularDeflection, cfg.Mesh.AngularDeflection)
	assert.Equal(t, "binary", cfg.Format)
	assert.Zero(t, cfg.ColorTolerance)
	assert.False(t, cfg.Mesh.Relative)
}

func TestLoadKeepsAbsolutePaths(t *testing.T) {
	cfg, err := NewLoader().Load(writeConfig(t, `scene: /data/scene.yaml
export_dir: /data/out
targets: [Hub]
inlet_color: [1.0, 1.0, 0.0]
outlet_color: [1.0, 0.0, 0.0]
`))
	require.NoError(t, err)
	assert.Equal(t, "/data/scene.yaml", cfg.Scene)
	assert.Equal(t, "/data/out", cfg.ExportDir)
}

func TestValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "missing scene",
			content: "export_dir: out\ntargets: [Hub]\ninlet_color: [1,1,0]\noutlet_color: [1,0,0]\n",
			wantErr: "scene file must be specified",
		},
		{
			name:    "missing export dir",
			content: "scene: s.yaml\ntargets: [Hub]\ninlet_color: [1,1,0]\noutlet_color: [1,0,0]\n",
			wantErr: "export directory",
		},
		{
			name:    "no targets",
			content: "scene: s.yaml\nexport_dir: out\ninlet_color: [1,1,0]\noutlet_color: [1,0,0]\n",
			wantErr: "at least one target",
		},
		{
			name:    "empty target label",
			content: "scene: s.yaml\nexport_dir: out\ntargets: ['Hub', '']\ninlet_color: [1,1,0]\noutlet_color: [1,0,0]\n",
			wantErr: "label must not be empty",
		},
		{
			name:    "color out of range",
			content: "scene: s.yaml\nexport_dir: out\ntargets: [Hub]\ninlet_color: [2,1,0]\noutlet_color: [1,0,0]\n",
			wantErr: "inlet_color",
		},
		{
			name:    "negative tolerance",
			content: "scene: s.yaml\nexport_dir: out\ntargets: [Hub]\ninlet_color: [1,1,0]\noutlet_color: [1,0,0]\ncolor_tolerance: -0.1\n",
			wantErr: "color_tolerance",
		},
		{
			name:    "negative deflection",
			content: "scene: s.yaml\nexport_dir: out\ntargets: [Hub]\ninlet_color: [1,1,0]\noutlet_color: [1,0,0]\nmesh:\n  linear_deflection: -1\n",
			wantErr: "linear_deflection",
		},
		{
			name:    "bad format",
			content: "scene: s.yaml\nexport_dir: out\ntargets: [Hub]\ninlet_color: [1,1,0]\noutlet_color: [1,0,0]\nformat: obj\n",
			wantErr: "unknown STL format",
		},
		{
			name:    "bad yaml",
			content: "{{{",
			wantErr: "failed to parse YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLoader().Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := NewLoader().Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "failed to read config file")
}

// the shipped sample config must stay loadable
func TestSampleConfigIsValid(t *testing.T) {
	cfg, err := NewLoader().Load(writeConfig(t, Sample))
	require.NoError(t, err)
	assert.Equal(t, []string{"Hub", "Shroud", "Spiral"}, cfg.Targets)
	assert.Equal(t, DefaultLinearDeflection, cfg.Mesh.LinearDeflection)
}
