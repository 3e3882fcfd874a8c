package output

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/df07/go-ppm-raytracer/pkg/ppm"
)

// WriteFile encodes img as P3 into path, creating parent directories as needed
func WriteFile(path string, img *ppm.Image) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("error creating output directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("error closing %s: %w", path, closeErr)
		}
	}()

	if err := ppm.Encode(file, img); err != nil {
		return fmt.Errorf("error saving PPM to %s: %w", path, err)
	}
	return nil
}

// ThumbnailPath returns the sibling path used for a thumbnail of path
func ThumbnailPath(path string) string {
	ext := filepath.Ext(path)
	return path[:len(path)-len(ext)] + "_thumb" + ext
}
