package assets

import (
	"fmt"
	"os"
)

// LoadShaderSource reads a multi-stage GLSL file. Stage boundaries inside
// the file are marked with #type lines and split by the graphics backend.
func LoadShaderSource(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("load shader %q: %w", path, err)
	}
	return string(b), nil
}
