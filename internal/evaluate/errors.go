package evaluate

import (
	"errors"
	"fmt"

	"github.com/dshills/wcagaudit/internal/llm"
)

// Kind classifies an evaluation failure.
type Kind int

const (
	// KindTransport means the evaluator could not be reached or refused the request.
	KindTransport Kind = iota + 1
	// KindMalformed means the response was not the expected JSON shape.
	KindMalformed
	// KindEmpty means the evaluator returned no content.
	KindEmpty
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindMalformed:
		return "malformed response"
	case KindEmpty:
		return "empty response"
	default:
		return "unknown"
	}
}

// Error is returned for every failed evaluation. No partial result
// accompanies it.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return "evaluation failed: " + e.Kind.String()
	}
	return fmt.Sprintf("evaluation failed (%s): %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// TooLarge reports whether the evaluator rejected the input for its size.
func (e *Error) TooLarge() bool {
	return errors.Is(e.Err, llm.ErrInputTooLarge)
}

const (
	msgGeneric  = "Er ging iets mis bij het genereren van het rapport. Probeer het opnieuw."
	msgTooLarge = "De HTML code is te groot om in één keer te verwerken. Probeer een kleiner stuk code (bijvoorbeeld alleen de <body>)."
)

// UserMessage returns the single message shown to the user for err.
// Errors that are not evaluation errors get the generic message.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) && e.TooLarge() {
		return msgTooLarge
	}
	return msgGeneric
}
