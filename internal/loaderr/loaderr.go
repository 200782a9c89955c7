// Package loaderr defines the fatal load-time error type shared by every
// component that parses an external JSON/YAML parameter file (spec §7:
// malformed JSON, missing required fields, wrong value types, missing
// tag universe are all fatal at construction).
package loaderr

import "github.com/pkg/errors"

// LoadError wraps a construction-time failure with the path that caused
// it. It is always fatal: callers should treat it as non-recoverable for
// that component instance.
type LoadError struct {
	Component string
	Path      string
	Err       error
}

func (e *LoadError) Error() string {
	return errors.Wrapf(e.Err, "%s: load %q", e.Component, e.Path).Error()
}

func (e *LoadError) Unwrap() error { return e.Err }

// New wraps err (adding stack context via pkg/errors) into a LoadError
// naming the failing component and path. Returns nil if err is nil.
func New(component, path string, err error) error {
	if err == nil {
		return nil
	}
	return &LoadError{Component: component, Path: path, Err: errors.WithStack(err)}
}
