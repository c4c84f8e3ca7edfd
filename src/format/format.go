// Package format encodes and decodes configurations.
//
// Two formats are supported: a structured JSON document and the run length
// encoded (RLE) pattern format used by the Life community.
package format

import (
	"errors"
	"fmt"
	"io/ioutil"
	"path/filepath"
	"strings"

	"cellular-automat/src/universe"
)

//Format is implemented by JSONFormat and RLEFormat only
type Format interface {
	Name() string
	Encode(cfg *universe.Configuration) (string, error)
	Decode(source string) (*universe.Configuration, error)
	isFormat()
}

var (
	ErrMissingHeader     = errors.New("missing header")
	ErrUnknownRule       = errors.New("unknown rule type")
	ErrUnknownUniverse   = errors.New("unknown universe type")
	ErrMalformedBody     = errors.New("malformed body")
	ErrInvalidDimension  = errors.New("invalid dimension")
	ErrCellOutOfUniverse = errors.New("cell outside the universe")
	ErrUnknownExtension  = errors.New("unknown file extension")
)

//DecodeError is returned by every failing Decode
type DecodeError struct {
	Format string
	Reason string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s decode: %v", e.Format, e.Err)
	}
	return fmt.Sprintf("%s decode: %v: %s", e.Format, e.Err, e.Reason)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func decodeError(format string, err error, reason string, args ...interface{}) *DecodeError {
	return &DecodeError{Format: format, Err: err, Reason: fmt.Sprintf(reason, args...)}
}

//ForPath returns the format matching the file extension (.json, .rle)
func ForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSONFormat{}, nil
	case ".rle":
		return RLEFormat{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownExtension, path)
}

//ReadFile decodes the configuration stored at path, the format is chosen by extension
func ReadFile(path string) (*universe.Configuration, error) {
	f, err := ForPath(path)
	if err != nil {
		return nil, err
	}
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return f.Decode(string(data))
}

//WriteFile encodes the configuration to path, the format is chosen by extension
func WriteFile(path string, cfg *universe.Configuration) error {
	f, err := ForPath(path)
	if err != nil {
		return err
	}
	s, err := f.Encode(cfg)
	if err != nil {
		return err
	}
	return ioutil.WriteFile(path, []byte(s), 0644)
}
