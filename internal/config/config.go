package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/philipparndt/facestl/internal/scene"
	"github.com/philipparndt/facestl/internal/stl"
	"gopkg.in/yaml.v3"
)

// Default mesh quality settings, matching the values the export macro
// shipped with
const (
	DefaultLinearDeflection  = 0.05
	DefaultAngularDeflection = 0.1
)

// MeshSettings holds the mesh quality tolerances
type MeshSettings struct {
	LinearDeflection  float64 `yaml:"linear_deflection"`
	AngularDeflection float64 `yaml:"angular_deflection"`
	Relative          bool    `yaml:"relative"`
}

// Config describes one export job
type Config struct {
	Scene       string      `yaml:"scene"`
	ExportDir   string      `yaml:"export_dir"`
	Targets     []string    `yaml:"targets"`
	InletColor  scene.Color `yaml:"inlet_color"`
	OutletColor scene.Color `yaml:"outlet_color"`

	// ColorTolerance is the maximum per-channel deviation for a face color
	// to match a reference color. Zero requires exact equality. Colors set
	// through a UI color picker may not round-trip bit-exactly; 1e-4 is a
	// reasonable value in that case.
	ColorTolerance float64 `yaml:"color_tolerance"`

	Mesh   MeshSettings `yaml:"mesh"`
	Format string       `yaml:"format"`
}

// Loader handles loading and validating YAML job configurations
type Loader struct{}

// NewLoader creates a new config loader
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads and parses a YAML config file
func (l *Loader) Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	l.applyDefaults(&config)

	if err := l.Validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	// Convert relative paths to absolute paths (relative to config file)
	configDir := filepath.Dir(configPath)
	absConfigDir, err := filepath.Abs(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path of config directory: %w", err)
	}

	if !filepath.IsAbs(config.Scene) {
		config.Scene = filepath.Join(absConfigDir, config.Scene)
	}
	if !filepath.IsAbs(config.ExportDir) {
		config.ExportDir = filepath.Join(absConfigDir, config.ExportDir)
	}

	return &config, nil
}

func (l *Loader) applyDefaults(config *Config) {
	if config.Mesh.LinearDeflection == 0 {
		config.Mesh.LinearDeflection = DefaultLinearDeflection
	}
	if config.Mesh.AngularDeflection == 0 {
		config.Mesh.AngularDeflection = DefaultAngularDeflection
	}
	if config.Format == "" {
		config.Format = stl.FormatBinary.String()
	}
}

// Validate checks if the configuration is valid
func (l *Loader) Validate(config *Config) error {
	if config.Scene == "" {
		return fmt.Errorf("scene file must be specified")
	}

	if config.ExportDir == "" {
		return fmt.Errorf("export directory must be specified")
	}

	if len(config.Targets) == 0 {
		return fmt.Errorf("at least one target label must be defined")
	}

	for i, label := range config.Targets {
		if label == "" {
			return fmt.Errorf("target %d: label must not be empty", i)
		}
	}

	if err := validateColor(config.InletColor, "inlet_color"); err != nil {
		return err
	}
	if err := validateColor(config.OutletColor, "outlet_color"); err != nil {
		return err
	}

	if config.ColorTolerance < 0 {
		return fmt.Errorf("color_tolerance must not be negative")
	}

	if config.Mesh.LinearDeflection <= 0 {
		return fmt.Errorf("mesh linear_deflection must be positive")
	}
	if config.Mesh.AngularDeflection <= 0 {
		return fmt.Errorf("mesh angular_deflection must be positive")
	}

	if _, err := stl.ParseFormat(config.Format); err != nil {
		return err
	}

	return nil
}

func validateColor(c scene.Color, name string) error {
	for _, channel := range []float64{c.R, c.G, c.B} {
		if channel < 0 || channel > 1 {
			return fmt.Errorf("%s: channel values must be in [0,1]", name)
		}
	}
	return nil
}
