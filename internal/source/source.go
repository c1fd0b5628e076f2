// Package source resolves the command line input into definition payloads.
package source

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LocationPrefix marks an argument as a file or directory path rather than
// a literal definition.
const LocationPrefix = "location:"

var ErrUnavailable = errors.New("please verify the file/folder availability")

// Location returns the path named by arg when it carries LocationPrefix.
func Location(arg string) (string, bool) {
	path, ok := strings.CutPrefix(arg, LocationPrefix)
	return path, ok
}

type File struct {
	Path string
	Data []byte
}

// Handler receives every regular file found by Walk and every location that
// could not be read. Either callback may be nil.
type Handler struct {
	File  func(File)
	Error func(path string, err error)
}

// Walk reads root, or every regular file below it when root is a
// directory. Failures are handed to h.Error and the walk continues with the
// next entry.
func Walk(root string, h Handler) {
	info, err := os.Stat(root)
	if err != nil {
		h.fail(root, fmt.Errorf("%w: %w", ErrUnavailable, err))
		return
	}

	switch {
	case info.Mode().IsRegular():
		data, err := os.ReadFile(root)
		if err != nil {
			h.fail(root, fmt.Errorf("%w: %w", ErrUnavailable, err))
			return
		}
		if h.File != nil {
			h.File(File{Path: root, Data: data})
		}
	case info.IsDir():
		entries, err := os.ReadDir(root)
		if err != nil {
			h.fail(root, fmt.Errorf("%w: %w", ErrUnavailable, err))
			return
		}
		for _, e := range entries {
			Walk(filepath.Join(root, e.Name()), h)
		}
	default:
		h.fail(root, fmt.Errorf("%w: not a regular file or directory", ErrUnavailable))
	}
}

func (h Handler) fail(path string, err error) {
	if h.Error != nil {
		h.Error(path, err)
	}
}
