package failure

import (
	"errors"
	"fmt"
	"net/http"
)

// Reason identifies why an input could not be turned into a summary.
type Reason int

const (
	Unknown Reason = iota
	EmptyInput
	NoCaptionsAvailable
	DownloadFailed
	TranscriptionFailed
	ParseFailed
	NoApplicableStrategy
	AuthError
	RemoteError
	EmptyContent
)

var reasonNames = map[Reason]string{
	Unknown:              "unknown",
	EmptyInput:           "empty_input",
	NoCaptionsAvailable:  "no_captions_available",
	DownloadFailed:       "download_failed",
	TranscriptionFailed:  "transcription_failed",
	ParseFailed:          "parse_failed",
	NoApplicableStrategy: "no_applicable_strategy",
	AuthError:            "auth_error",
	RemoteError:          "remote_error",
	EmptyContent:         "empty_content",
}

func (r Reason) String() string {
	if name, ok := reasonNames[r]; ok {
		return name
	}
	return fmt.Sprintf("reason(%d)", int(r))
}

// Category groups reasons by the stage that produced them.
type Category int

const (
	CategoryUnknown Category = iota
	InputError
	ExtractionError
	SummarizationError
)

func (c Category) String() string {
	switch c {
	case InputError:
		return "input"
	case ExtractionError:
		return "extraction"
	case SummarizationError:
		return "summarization"
	default:
		return "unknown"
	}
}

func (r Reason) Category() Category {
	switch r {
	case EmptyInput:
		return InputError
	case NoCaptionsAvailable, DownloadFailed, TranscriptionFailed, ParseFailed, NoApplicableStrategy:
		return ExtractionError
	case AuthError, RemoteError, EmptyContent:
		return SummarizationError
	default:
		return CategoryUnknown
	}
}

// Error is the only error type surfaced by the pipeline.
type Error struct {
	Reason  Reason
	Op      string
	Message string
	Err     error
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Reason.String()
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New builds an Error for op. err may be nil.
func New(reason Reason, op string, err error, message string) *Error {
	return &Error{
		Reason:  reason,
		Op:      op,
		Message: message,
		Err:     err,
	}
}

// ReasonOf returns the reason of the outermost *Error in err's chain,
// or Unknown when there is none.
func ReasonOf(err error) Reason {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Reason
	}
	return Unknown
}

// Is reports whether err carries the given reason.
func Is(err error, reason Reason) bool {
	return err != nil && ReasonOf(err) == reason
}

// HTTPStatus maps err to the status code an HTTP surface should answer with.
func HTTPStatus(err error) int {
	switch ReasonOf(err) {
	case EmptyInput, EmptyContent:
		return http.StatusBadRequest
	case NoCaptionsAvailable, DownloadFailed, TranscriptionFailed, ParseFailed:
		return http.StatusUnprocessableEntity
	case AuthError, RemoteError:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
