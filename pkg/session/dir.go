package session

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// ResolveDir returns the absolute storage directory for dir. An existing
// directory is used as is. Otherwise a directory named
// "<executable>-<base of dir>" under the OS temp dir is created and returned.
func ResolveDir(fsys afero.Fs, dir string) (string, error) {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	if dir == "" {
		dir = DefaultDir
	}

	ok, err := afero.DirExists(fsys, dir)
	if err != nil {
		return "", errors.Join(ErrStorageDir, err)
	}
	if ok {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return "", errors.Join(ErrStorageDir, err)
		}
		return abs, nil
	}

	fallback := filepath.Join(os.TempDir(), processName()+"-"+filepath.Base(dir))
	if err := fsys.MkdirAll(fallback, dirPerm); err != nil {
		return "", errors.Join(ErrStorageDir, err)
	}
	return fallback, nil
}

func processName() string {
	name := filepath.Base(os.Args[0])
	name = strings.TrimSuffix(name, filepath.Ext(name))
	if name == "" || name == "." || name == string(filepath.Separator) {
		return "filesession"
	}
	return name
}
