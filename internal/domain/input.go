package domain

import "fmt"

// InputErrorKind classifies why an input document could not be loaded.
type InputErrorKind int

const (
	InputNotFound InputErrorKind = iota
	InputUnreadable
	InputMalformed
)

// InputError is returned when the file under check cannot be loaded.
type InputError struct {
	Kind InputErrorKind
	Path string
	Err  error
}

func (e *InputError) Error() string {
	switch e.Kind {
	case InputNotFound:
		return fmt.Sprintf("file '%s' not found", e.Path)
	case InputMalformed:
		return fmt.Sprintf("invalid JSON format in '%s': %v", e.Path, e.Err)
	default:
		return fmt.Sprintf("reading file: %v", e.Err)
	}
}

func (e *InputError) Unwrap() error { return e.Err }

// ProgressReporter receives progress of a tool check while it runs.
type ProgressReporter interface {
	Started(path string)
	Injecting(provider string, count int)
	Converted(index int, name string)
	Submitting(provider string)
	Reviewing(provider, model string)
}

// NopProgress discards progress events.
type NopProgress struct{}

func (NopProgress) Started(string) {}
func (NopProgress) Injecting(string, int) {}
func (NopProgress) Converted(int, string) {}
func (NopProgress) Submitting(string) {}
func (NopProgress) Reviewing(string, string) {}
