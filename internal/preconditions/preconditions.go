package preconditions

import (
	"fmt"
	"os"
)

// Check verifies all preconditions for an export run
func Check(scenePath, exportDir string) error {
	checks := []struct {
		name string
		fn   func() error
	}{
		{"scene file", func() error { return ValidateSceneFile(scenePath) }},
		{"export directory", func() error { return EnsureExportDir(exportDir) }},
	}

	for _, check := range checks {
		if err := check.fn(); err != nil {
			return fmt.Errorf("%s: %w", check.name, err)
		}
	}

	return nil
}

// ValidateSceneFile checks that the scene snapshot exists and is readable
func ValidateSceneFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("cannot access %s: %w", path, err)
	}

	if info.IsDir() {
		return fmt.Errorf("%s is a directory, not a file", path)
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("cannot read %s: %w", path, err)
	}
	file.Close()

	return nil
}

// EnsureExportDir creates the export directory if needed and checks that
// it is writable
func EnsureExportDir(dir string) error {
	if dir == "" {
		return fmt.Errorf("export directory must not be empty")
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cannot create %s: %w", dir, err)
	}

	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("cannot access %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}
	if info.Mode()&0200 == 0 {
		return fmt.Errorf("%s is not writable", dir)
	}

	return nil
}
