package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"os"

	"github.com/automoto/movingsquare/config"
)

//go:embed all:levels
var assetFS embed.FS

// Levels returns the filesystem holding one directory per run. A directory
// given with -levels takes precedence over the embedded runs.
func Levels() (fs.FS, error) {
	if config.Levels.Dir != "" {
		return os.DirFS(config.Levels.Dir), nil
	}
	sub, err := fs.Sub(assetFS, config.Levels.Root)
	if err != nil {
		return nil, fmt.Errorf("open embedded levels: %w", err)
	}
	return sub, nil
}
