package idl

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
)

var (
	// ErrIO is returned when an IDL file cannot be read or written.
	ErrIO = errors.New("idl: io error")
	// ErrNotFound is returned when an IDL file does not exist. It also matches ErrIO.
	ErrNotFound = fmt.Errorf("%w: file not found", ErrIO)
	// ErrParse is returned when an IDL file does not contain valid JSON.
	ErrParse = errors.New("idl: invalid JSON")
	// ErrSchema is returned when the JSON document is not shaped like an IDL, e.g. its top level
	// is not an object.
	ErrSchema = errors.New("idl: unexpected document shape")
)

// readError classifies an error returned while reading path.
func readError(path string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s: %w", ErrNotFound, path, err)
	}

	return fmt.Errorf("%w: failed to read %s: %w", ErrIO, path, err)
}

// decodeError classifies an error returned by json.Unmarshal for the file at path.
func decodeError(path string, err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return fmt.Errorf("%w: %s: top level is %s, want object", ErrSchema, path, typeErr.Value)
	}

	return fmt.Errorf("%w: %s: %w", ErrParse, path, err)
}
