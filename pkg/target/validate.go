package target

import (
	"bytes"
	"io"
)

// Validate checks that input is a syntactically recognizable request target.
// Returns nil if the input matches one of the four forms, or a *ParseError
// identifying the problem.
func Validate(input string) error {
	_, err := Classify(input)
	return err
}

// ValidateReader reads all data from r and validates it as a request target.
// See Validate for the validation semantics.
func ValidateReader(r io.Reader) error {
	data, err := readAll(r)
	if err != nil {
		return err
	}
	_, err = ClassifyBytes(data)
	return err
}

// readAll reads all data from r.
func readAll(r io.Reader) ([]byte, error) {
	var buf bytes.Buffer
	_, err := buf.ReadFrom(r)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
