package config

import (
	_ "embed"
	"errors"
	"io/fs"
	"os"
)

// DefaultFile is the name of the configuration file looked up on disk.
const DefaultFile = "skyship.yaml"

//go:embed skyship.yaml
var defaultConfig []byte

// Default returns the embedded configuration file.
func Default() []byte {
	return append([]byte(nil), defaultConfig...)
}

// readOverride returns the contents of path, or nil when the file does not exist.
func readOverride(path string) ([]byte, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	return data, err
}
