package session

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"
)

// ReadError means the watched file could not be read.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string { return fmt.Sprintf("read %s: %v", e.Path, e.Err) }
func (e *ReadError) Unwrap() error { return e.Err }

// DecodeError means the watched file is not UTF-8 text.
type DecodeError struct {
	Path string
}

func (e *DecodeError) Error() string { return fmt.Sprintf("%s is not valid UTF-8 text", e.Path) }

func readSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &ReadError{Path: path, Err: err}
	}
	if !utf8.Valid(data) {
		return "", &DecodeError{Path: path}
	}
	return string(data), nil
}

// statusText shortens a file error for the status line.
func statusText(err error) string {
	var re *ReadError
	if errors.As(err, &re) {
		cause := re.Err
		var pe *fs.PathError
		if errors.As(cause, &pe) {
			cause = pe.Err
		}
		return fmt.Sprintf("read %s: %v", filepath.Base(re.Path), cause)
	}
	var de *DecodeError
	if errors.As(err, &de) {
		return filepath.Base(de.Path) + " is not valid UTF-8 text"
	}
	return err.Error()
}
