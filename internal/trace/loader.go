package trace

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// TraceFilePrefix marks the files of a trace directory that hold type dumps.
const TraceFilePrefix = "types."

var (
	ErrNotExist     = errors.New("path does not exist")
	ErrNotDirectory = errors.New("path is not a directory")
)

// ListTraceFiles returns the names of the type dumps in dir, in directory
// listing order.
func ListTraceFiles(dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(ErrNotExist, "%s", dir)
		}
		return nil, errors.Wrapf(err, "stat %s", dir)
	}
	if !info.IsDir() {
		return nil, errors.Wrapf(ErrNotDirectory, "%s", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "read directory %s", dir)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasPrefix(e.Name(), TraceFilePrefix) {
			continue
		}
		files = append(files, e.Name())
	}
	return files, nil
}

// LoadFile decodes every entry of a trace file.
func LoadFile(path string) ([]any, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	values, err := NewParser().ParseAll(f)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", filepath.Base(path))
	}
	return values, nil
}
