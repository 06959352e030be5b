package target

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Decoder reads request targets from an input stream, one target per line.
// A single Decoder is not safe for concurrent use; create one per goroutine
// or serialize access externally.
type Decoder struct {
	r *bufio.Reader
}

// NewDecoder returns a new decoder that reads from r.
// The decoder uses buffered reading; do not read from r after handing it over.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: bufio.NewReader(r)}
}

// Decode reads and classifies the next request target from the stream.
// Blank lines are skipped. Returns io.EOF once the stream is exhausted.
func (dec *Decoder) Decode() (*Target, error) {
	for {
		line, err := dec.r.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("target: decode: %w", err)
		}

		token := strings.TrimRight(line, "\r\n")
		if token == "" {
			if err == io.EOF {
				return nil, io.EOF
			}
			continue
		}

		t, cerr := ClassifyTarget(token)
		if cerr != nil {
			return nil, fmt.Errorf("target: decode: %w", cerr)
		}
		return t, nil
	}
}

// DecodeForm reads the next target and returns only its form.
func (dec *Decoder) DecodeForm() (Form, error) {
	t, err := dec.Decode()
	if err != nil {
		return 0, err
	}
	return t.Form, nil
}
