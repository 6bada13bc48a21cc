package config

import (
	"errors"
	"fmt"
)

// ErrTypeMismatch indicates a setting value has the wrong type.
var ErrTypeMismatch = errors.New("type mismatch")

// SettingError describes a setting that could not be applied.
type SettingError struct {
	// Path is the dotted setting path, e.g. "editor.tab_width".
	Path string
	// Value is the offending value.
	Value any
	// Err is the underlying error.
	Err error
}

func (e *SettingError) Error() string {
	return fmt.Sprintf("setting %s = %v: %v", e.Path, e.Value, e.Err)
}

func (e *SettingError) Unwrap() error {
	return e.Err
}
