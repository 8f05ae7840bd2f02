package utils

import (
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// LoadTextFromFile reads the whole file from fs.
func LoadTextFromFile(fs afero.Fs, filename string) ([]byte, error) {
	return afero.ReadFile(fs, filename)
}

// Extension returns the lowercased file extension without the leading dot.
func Extension(filename string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
}
