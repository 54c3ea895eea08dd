package config

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed configs/*.yaml
var configsFS embed.FS

// Embedded returns a loader backed by the tables compiled into the
// binary. This is the default source; a disk directory can override it
// for tuning without rebuilding.
func Embedded() (*Loader, error) {
	fsys, err := fs.Sub(configsFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded configs: %w", err)
	}
	return NewFSLoader(fsys), nil
}
