package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// SyntaxError describes malformed JSON with a 1-based line and column.
type SyntaxError struct {
	Line   int
	Column int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("Line %d, Column %d: %s", e.Line, e.Column, e.Msg)
}

// ParseJSON checks that data holds exactly one JSON value. Malformed input
// yields a *SyntaxError.
func ParseJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, syntaxError(data, err)
	}
	end := dec.InputOffset()
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		pos := int(end) + len(data[end:]) - len(bytes.TrimLeft(data[end:], " \t\r\n"))
		line, col := lineColumn(data, pos)
		return nil, &SyntaxError{Line: line, Column: col, Msg: "extra data after JSON value"}
	}
	return v, nil
}

func syntaxError(data []byte, err error) *SyntaxError {
	pos := len(data)
	msg := err.Error()

	var se *json.SyntaxError
	switch {
	case errors.As(err, &se):
		// Offset counts the offending byte.
		pos = int(se.Offset) - 1
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		msg = "unexpected end of JSON input"
	}

	line, col := lineColumn(data, pos)
	return &SyntaxError{Line: line, Column: col, Msg: msg}
}

// lineColumn converts the 0-based byte position pos to a 1-based line and
// column.
func lineColumn(data []byte, pos int) (int, int) {
	pos = max(0, min(pos, len(data)))
	prefix := data[:pos]
	line := bytes.Count(prefix, []byte("\n")) + 1
	col := pos - bytes.LastIndexByte(prefix, '\n')
	return line, col
}
