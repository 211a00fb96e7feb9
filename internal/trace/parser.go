package trace

import (
	"encoding/json"
	"io"

	"github.com/pkg/errors"
)

// ErrNotArray is returned when a trace file's top-level JSON value is not an array.
var ErrNotArray = errors.New("trace file is not a JSON array")

// Parser decodes the entries of a types.*.json dump one at a time, so a
// file is never held as raw text and decoded values together.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse reads a JSON array from r and returns a channel of its elements.
// It runs asynchronously; the error channel receives at most one error and
// is closed once the values channel is closed.
func (p *Parser) Parse(r io.Reader) (chan any, chan error) {
	values := make(chan any)
	errs := make(chan error, 1) // Buffered to avoid blocking if receiver stops

	go func() {
		defer close(errs)
		defer close(values)

		dec := json.NewDecoder(r)
		dec.UseNumber()

		tok, err := dec.Token()
		if err != nil {
			errs <- errors.Wrap(err, "read array start")
			return
		}
		if delim, ok := tok.(json.Delim); !ok || delim != '[' {
			errs <- ErrNotArray
			return
		}

		for dec.More() {
			var v any
			if err := dec.Decode(&v); err != nil {
				errs <- errors.Wrap(err, "decode entry")
				return
			}
			values <- v
		}

		if _, err := dec.Token(); err != nil {
			errs <- errors.Wrap(err, "read array end")
		}
	}()

	return values, errs
}

// ParseAll drains Parse into a slice.
func (p *Parser) ParseAll(r io.Reader) ([]any, error) {
	values, errs := p.Parse(r)
	var out []any
	for v := range values {
		out = append(out, v)
	}
	if err := <-errs; err != nil {
		return out, err
	}
	return out, nil
}
