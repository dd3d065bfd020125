package config

// Sample is a complete example configuration, printed by the init command
const Sample = `# facestl export configuration
scene: scene.yaml          # snapshot dumped from the CAD document
export_dir: exports/stl

# Bodies to process, in order. Labels not found in the scene are
# reported and skipped.
targets:
  - Hub
  - Shroud
  - Spiral

# Reference colors (RGB, values 0.0 to 1.0)
inlet_color: [1.0, 1.0, 0.0]   # yellow
outlet_color: [1.0, 0.0, 0.0]  # red

# Per-channel matching tolerance. 0 requires exact equality; use 1e-4
# for colors assigned through a color picker.
color_tolerance: 0

mesh:
  linear_deflection: 0.05      # finer = 0.01
  angular_deflection: 0.1      # finer = lower value
  relative: false

format: binary                 # binary or ascii
`
