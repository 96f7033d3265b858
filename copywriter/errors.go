package copywriter

import (
	"errors"
	"fmt"
)

// Parse failure kinds. Handlers match these with errors.Is to decide
// how to report a failed generation back to the operator.
var (
	ErrEmptyResponse = errors.New("model returned no text")
	ErrNoJSONFound   = errors.New("no JSON object found in model output")
	ErrInvalidJSON   = errors.New("model output contained invalid JSON")
)

// ParseError wraps a parse failure kind together with the offending
// text so the operator sees what the model actually produced.
type ParseError struct {
	Kind error  // one of the sentinel errors above
	Text string // raw output, or the extracted candidate for ErrInvalidJSON
	Err  error  // underlying decode error, if any
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s\nextracted:\n%s", e.Kind, e.Err, e.Text)
	}
	return fmt.Sprintf("%s:\n%s", e.Kind, e.Text)
}

func (e *ParseError) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}
