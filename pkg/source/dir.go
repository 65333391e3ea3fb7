package source

import (
	"context"
	"fmt"
	"io/fs"
	"os"
)

// DirSource walks a filesystem tree and returns every regular file in it.
type DirSource struct {
	fsys fs.FS
}

// Dir returns a Source that recursively lists fsys. Paths are slash-separated
// and relative to the fsys root.
func Dir(fsys fs.FS) *DirSource {
	return &DirSource{fsys: fsys}
}

// DirPath returns a Source over an OS directory.
func DirPath(path string) *DirSource {
	return Dir(os.DirFS(path))
}

// Files walks the tree depth-first and reads every regular file. Directories
// contribute nothing themselves; unreadable entries abort discovery.
func (d *DirSource) Files(ctx context.Context) ([]File, error) {
	var out []File

	err := fs.WalkDir(d.fsys, ".", func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("source: walking %q: %w", path, err)
		}
		if entry.IsDir() {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		data, err := fs.ReadFile(d.fsys, path)
		if err != nil {
			return fmt.Errorf("source: reading %q: %w", path, err)
		}
		out = append(out, File{Path: path, Data: data})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}
