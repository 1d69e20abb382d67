package artifact

import (
	"fmt"
	"path/filepath"

	"github.com/Rana718/spring-helper/internal/types"
	"github.com/spf13/afero"
)

// Emitter persists rendered artifacts under a root directory. Existing files
// are overwritten; nothing written is ever rolled back.
type Emitter struct {
	fs   afero.Fs
	root string
}

func NewEmitter(fs afero.Fs, root string) *Emitter {
	if root == "" {
		root = "."
	}
	return &Emitter{fs: fs, root: root}
}

// Path returns the location a file is written to.
func (e *Emitter) Path(file types.GeneratedFile) string {
	return filepath.Join(e.root, file.Dir, file.Name)
}

func (e *Emitter) Write(file types.GeneratedFile) (string, error) {
	dir := filepath.Join(e.root, file.Dir)
	if err := e.fs.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	path := e.Path(file)
	if err := afero.WriteFile(e.fs, path, []byte(file.Content), 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}
