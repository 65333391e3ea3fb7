package template

import (
	"errors"
	"strconv"
)

// Sentinel errors for template rendering.
var (
	ErrMissingParam = errors.New("template: missing parameter")
	ErrUnbalanced   = errors.New("template: unbalanced braces")
)

// MissingParamError reports a placeholder referenced by the template that has
// no value in the parameter map.
type MissingParamError struct {
	Name string
}

func (e *MissingParamError) Error() string {
	return "template: missing parameter " + strconv.Quote(e.Name)
}

func (e *MissingParamError) Unwrap() error { return ErrMissingParam }

// UnbalancedError reports a stray brace or a malformed placeholder at a byte
// offset in the template.
type UnbalancedError struct {
	Offset int
}

func (e *UnbalancedError) Error() string {
	return "template: unbalanced brace at offset " + strconv.Itoa(e.Offset)
}

func (e *UnbalancedError) Unwrap() error { return ErrUnbalanced }
