package kv

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

type File struct {
	path string
}

// NewFile stores all keys in a single JSON document on disk. A missing
// file simply means no keys yet.
func NewFile(path string) *File {
	return &File{path: path}
}

func (f *File) Get(key string) (string, bool, error) {
	data, err := f.read()
	if err != nil {
		return "", false, err
	}
	value, ok := data[key]
	return value, ok, nil
}

func (f *File) Set(key, value string) error {
	data, err := f.read()
	if err != nil {
		return err
	}
	data[key] = value

	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode key-value file")
	}
	return errors.Wrapf(os.WriteFile(f.path, raw, 0666), "write key-value file %s", f.path)
}

func (f *File) read() (map[string]string, error) {
	raw, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return make(map[string]string), nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "read key-value file %s", f.path)
	}

	data := make(map[string]string)
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, errors.Wrapf(err, "parse key-value file %s", f.path)
	}
	return data, nil
}
