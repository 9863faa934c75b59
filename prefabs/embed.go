package prefabs

import (
	"embed"
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

//go:embed *.yaml
var PrefabsFS embed.FS

// Dir is the on-disk directory searched before the embedded copies, so edited
// specs take effect without rebuilding.
var Dir = "prefabs"

// sources lists where specs are looked up, in priority order.
func sources() []fs.FS {
	return []fs.FS{os.DirFS(Dir), PrefabsFS}
}

// Load returns the named spec from the first source that has it. Names may
// carry a "prefabs/" prefix and may omit the .yaml extension.
func Load(name string) ([]byte, error) {
	clean, err := specPath(name)
	if err != nil {
		return nil, err
	}
	var firstErr error
	for _, src := range sources() {
		data, err := fs.ReadFile(src, clean)
		if err == nil {
			return data, nil
		}
		if firstErr == nil || !errors.Is(err, fs.ErrNotExist) {
			firstErr = err
		}
	}
	return nil, firstErr
}

// ModTime reports when the on-disk copy of name last changed.
func ModTime(name string) (time.Time, bool) {
	clean, err := specPath(name)
	if err != nil {
		return time.Time{}, false
	}
	info, err := fs.Stat(os.DirFS(Dir), clean)
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

func specPath(name string) (string, error) {
	clean := cleanPrefabPath(name)
	if !fs.ValidPath(clean) || clean == "." {
		return "", &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
	}
	return clean, nil
}

func cleanPrefabPath(name string) string {
	if name == "" {
		return ""
	}
	s := strings.TrimPrefix(filepath.ToSlash(name), "prefabs/")
	if path.Ext(s) == "" {
		s += ".yaml"
	}
	return s
}
