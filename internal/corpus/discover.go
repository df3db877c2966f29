package corpus

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gorewood/admonitions/internal/output"
)

// Discover returns the documents under root whose extension is in exts,
// in lexical order. Hidden directories are not entered. A missing root is a
// user error.
func Discover(root string, exts []string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, output.NewUserError("source directory %s does not exist", root)
		}
		return nil, output.NewSystemError("failed to stat "+root, err)
	}
	if !info.IsDir() {
		if matchesExt(root, exts) {
			return []string{root}, nil
		}
		return nil, nil
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Type().IsRegular() && matchesExt(path, exts) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, output.NewSystemError("failed to walk "+root, err)
	}

	slices.Sort(files)
	return files, nil
}

func matchesExt(path string, exts []string) bool {
	if len(exts) == 0 {
		exts = []string{".md"}
	}
	return slices.Contains(exts, strings.ToLower(filepath.Ext(path)))
}
