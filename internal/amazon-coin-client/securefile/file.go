package securefile

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"

	"github.com/amazoncoin-io/amazon-coin-client/internal/amazon-coin-client/constants"
)

type Options struct {
	FilePerm      os.FileMode
	DirectoryPerm os.FileMode
}

func defaultOptions() Options {
	return Options{
		FilePerm:      constants.FilePerm,
		DirectoryPerm: constants.DirectoryPerm,
	}
}

func mergeOptions(opt ...Options) Options {
	o := defaultOptions()
	if len(opt) == 0 {
		return o
	}
	in := opt[0]
	if in.FilePerm != 0 {
		o.FilePerm = in.FilePerm
	}
	if in.DirectoryPerm != 0 {
		o.DirectoryPerm = in.DirectoryPerm
	}
	return o
}

// WriteJSON marshals v with indentation and replaces path atomically,
// creating the parent directory if needed.
func WriteJSON[T any](path string, v T, opt ...Options) error {
	o := mergeOptions(opt...)

	if err := os.MkdirAll(filepath.Dir(path), o.DirectoryPerm); err != nil {
		return errors.Wrapf(err, "mkdir %s", filepath.Dir(path))
	}

	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshal json")
	}
	b = append(b, '\n')

	return AtomicWriteFile(path, b, o.FilePerm)
}

func ReadJSON[T any](path string) (T, error) {
	var zero T

	b, err := os.ReadFile(path)
	if err != nil {
		return zero, errors.Wrap(err, "read file")
	}

	var out T
	if err := json.Unmarshal(b, &out); err != nil {
		return zero, errors.Wrapf(err, "unmarshal %s", filepath.Base(path))
	}
	return out, nil
}

// AtomicWriteFile writes data next to path and renames it into place, so
// readers see either the old or the new content.
func AtomicWriteFile(path string, data []byte, perm os.FileMode) error {
	tmp := path + ".tmp"

	_ = os.Remove(tmp)

	if err := os.WriteFile(tmp, data, perm); err != nil {
		return errors.Wrap(err, "write tmp")
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return errors.Wrap(err, "rename")
	}
	return nil
}

func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
