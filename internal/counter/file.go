package counter

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

var (
	// ErrMalformed is returned when a counter file is not a JSON object.
	ErrMalformed = errors.New("counter file malformed")
	// ErrFieldMissing is returned when a required key is absent.
	ErrFieldMissing = errors.New("counter field missing")
	// ErrFieldType is returned when a value is not an unsigned integer.
	ErrFieldType = errors.New("counter field is not an unsigned integer")
	// ErrOutOfRange is returned when a value does not fit the field width.
	ErrOutOfRange = errors.New("counter field out of range")
)

// object is a decoded counter file. Numbers keep their literal text.
type object map[string]any

// readObject decodes path. A missing file yields a nil object and no error.
func readObject(path string) (object, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, path, err)
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s: not an object", ErrMalformed, path)
	}
	return obj, nil
}

// uint reads key as an unsigned integer of the given bit size.
func (o object) uint(key string, bits int) (uint64, error) {
	v, ok := o[key]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrFieldMissing, key)
	}
	n, ok := v.(json.Number)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrFieldType, key)
	}
	u, err := strconv.ParseUint(n.String(), 10, bits)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return 0, fmt.Errorf("%w: %q = %s", ErrOutOfRange, key, n)
		}
		return 0, fmt.Errorf("%w: %q = %s", ErrFieldType, key, n)
	}
	return u, nil
}

func (o object) uint32(key string) (uint32, error) {
	u, err := o.uint(key, 32)
	return uint32(u), err
}

func (o object) uint64(key string) (uint64, error) {
	return o.uint(key, 64)
}

// writeFileAtomic replaces path with v encoded as indented JSON.
// The temp file lives in the same directory so the rename cannot cross devices.
func writeFileAtomic(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp*")
	if err != nil {
		return fmt.Errorf("creating temp file for %s: %w", path, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing %s: %w", tmpName, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("syncing %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return syncDir(dir)
}

// syncDir flushes the directory entry so a completed rename survives power loss.
func syncDir(dir string) error {
	d, err := os.Open(dir)
	if err != nil {
		return fmt.Errorf("opening %s: %w", dir, err)
	}
	defer d.Close()
	if err := d.Sync(); err != nil {
		return fmt.Errorf("syncing %s: %w", dir, err)
	}
	return nil
}
