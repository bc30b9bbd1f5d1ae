package theme

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/BrandonKowalski/themer/pkg/themer/constants"
	"github.com/BrandonKowalski/themer/pkg/themer/element"
	"github.com/BrandonKowalski/themer/pkg/themer/internal"
)

// Loader loads theme files against a set of element variants.
type Loader struct {
	Registry    *element.Registry // defaults to element.Default
	DefaultName string            // name of bootstrapped themes; defaults to constants.DefaultThemeName
	Logger      *slog.Logger
}

// LoadResult describes what Load did besides decoding.
type LoadResult struct {
	Created bool     // the file did not exist and was written with defaults
	Added   []string // default elements merged in because the file lacked them
}

func (l *Loader) registry() *element.Registry {
	if l.Registry != nil {
		return l.Registry
	}
	return element.Default
}

func (l *Loader) defaultName() string {
	if l.DefaultName != "" {
		return l.DefaultName
	}
	return constants.DefaultThemeName
}

// Load materializes the theme stored at path.
//
// If the file does not exist, the theme is the discovered defaults and is
// written to path before returning. Otherwise the stored theme is decoded
// and every discovered default it lacks is added; stored entries win. The
// file is not rewritten after such a merge.
func (l *Loader) Load(path string) (*Theme, LoadResult, error) {
	logger := internal.LoggerOr(l.Logger)
	defaults := l.registry().Discover()

	_, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		t := FromElements(l.defaultName(), defaults)
		if err := Save(t, path); err != nil {
			return nil, LoadResult{}, err
		}
		logger.Info("Created theme file", "path", path, "theme", t.Name, "elements", t.Len())
		return t, LoadResult{Created: true}, nil
	}
	if err != nil {
		return nil, LoadResult{}, &FileError{Op: "stat", Path: path, Err: err}
	}

	t, err := l.Read(path)
	if err != nil {
		return nil, LoadResult{}, err
	}

	added := t.Merge(defaults)
	if len(added) > 0 {
		logger.Debug("Merged default theme elements", "path", path, "added", added)
	}

	return t, LoadResult{Added: added}, nil
}

// Read decodes the theme at path without merging defaults.
func (l *Loader) Read(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileError{Op: "read", Path: path, Err: err}
	}

	t, err := Decode(data, FormatForPath(path), l.registry(), l.defaultName(), l.Logger)
	if err != nil {
		var fe *FormatError
		if errors.As(err, &fe) && fe.Path == "" {
			fe.Path = path
		}
		return nil, err
	}
	return t, nil
}

// Save writes t to path in the format its extension selects, replacing the
// file in one rename so readers never observe a partial theme. Missing
// parent directories are created.
func Save(t *Theme, path string) error {
	data, err := Encode(t, FormatForPath(path))
	if err != nil {
		var fe *FormatError
		if errors.As(err, &fe) && fe.Path == "" {
			fe.Path = path
		}
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return &FileError{Op: "write", Path: path, Err: err}
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return &FileError{Op: "write", Path: path, Err: err}
	}
	tmpPath := tmp.Name()

	cleanup := func(err error) error {
		tmp.Close()
		os.Remove(tmpPath)
		return &FileError{Op: "write", Path: path, Err: err}
	}

	if _, err := tmp.Write(data); err != nil {
		return cleanup(err)
	}
	if err := tmp.Sync(); err != nil {
		return cleanup(err)
	}
	if err := tmp.Chmod(0644); err != nil {
		return cleanup(err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return &FileError{Op: "write", Path: path, Err: err}
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return &FileError{Op: "write", Path: path, Err: err}
	}
	return nil
}
