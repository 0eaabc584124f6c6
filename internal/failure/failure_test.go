package failure

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestErrorString(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "message only",
			err:  New(EmptyInput, "op", nil, "invalid URL"),
			want: "invalid URL",
		},
		{
			name: "message with cause",
			err:  New(ParseFailed, "op", fmt.Errorf("bad xref"), "read pdf"),
			want: "read pdf: bad xref",
		},
		{
			name: "reason fallback",
			err:  New(RemoteError, "op", nil, ""),
			want: "remote_error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReasonOf(t *testing.T) {
	base := New(AuthError, "summarizer", nil, "missing key")
	wrapped := fmt.Errorf("run: %w", base)

	if got := ReasonOf(wrapped); got != AuthError {
		t.Errorf("ReasonOf(wrapped) = %v, want %v", got, AuthError)
	}
	if got := ReasonOf(errors.New("plain")); got != Unknown {
		t.Errorf("ReasonOf(plain) = %v, want %v", got, Unknown)
	}
	if Is(nil, Unknown) {
		t.Error("Is(nil) should be false")
	}
	if !Is(wrapped, AuthError) {
		t.Error("Is(wrapped, AuthError) should be true")
	}
}

func TestCategory(t *testing.T) {
	tests := []struct {
		reason Reason
		want   Category
	}{
		{EmptyInput, InputError},
		{NoCaptionsAvailable, ExtractionError},
		{DownloadFailed, ExtractionError},
		{TranscriptionFailed, ExtractionError},
		{ParseFailed, ExtractionError},
		{NoApplicableStrategy, ExtractionError},
		{AuthError, SummarizationError},
		{RemoteError, SummarizationError},
		{EmptyContent, SummarizationError},
		{Unknown, CategoryUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.reason.String(), func(t *testing.T) {
			if got := tt.reason.Category(); got != tt.want {
				t.Errorf("Category() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"empty input", New(EmptyInput, "", nil, ""), http.StatusBadRequest},
		{"parse failed", New(ParseFailed, "", nil, ""), http.StatusUnprocessableEntity},
		{"auth", New(AuthError, "", nil, ""), http.StatusBadGateway},
		{"plain error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HTTPStatus(tt.err); got != tt.want {
				t.Errorf("HTTPStatus() = %d, want %d", got, tt.want)
			}
		})
	}
}
