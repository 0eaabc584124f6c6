package input

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/nguyentantai21042004/summary-flow/internal/failure"
)

// Kind tags which variant of a Spec is populated.
type Kind int

const (
	KindUnknown Kind = iota
	KindYouTubeURL
	KindDocument
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindYouTubeURL:
		return "youtube_url"
	case KindDocument:
		return "document"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// Spec is a single user-supplied input. Build it with YouTubeURL, Document or Text;
// exactly one variant is populated per value.
type Spec struct {
	kind     Kind
	url      string
	data     []byte
	filename string
	text     string
}

func YouTubeURL(raw string) Spec {
	return Spec{kind: KindYouTubeURL, url: strings.TrimSpace(raw)}
}

func Document(data []byte, filename string) Spec {
	return Spec{kind: KindDocument, data: data, filename: filename}
}

func Text(s string) Spec {
	return Spec{kind: KindText, text: s}
}

func (s Spec) Kind() Kind       { return s.kind }
func (s Spec) URL() string      { return s.url }
func (s Spec) Data() []byte     { return s.data }
func (s Spec) Filename() string { return s.filename }
func (s Spec) Text() string     { return s.text }

// Validate rejects inputs that no extraction strategy should be asked to handle.
func (s Spec) Validate() error {
	const op = "input.Validate"

	switch s.kind {
	case KindYouTubeURL:
		if s.url == "" {
			return failure.New(failure.EmptyInput, op, nil, "please provide a YouTube URL to get started")
		}
		if err := validateURL(s.url); err != nil {
			return failure.New(failure.EmptyInput, op, err, "invalid URL")
		}
	case KindDocument:
		if len(s.data) == 0 {
			return failure.New(failure.EmptyInput, op, nil, "uploaded document is empty")
		}
	case KindText:
		if strings.TrimSpace(s.text) == "" {
			return failure.New(failure.EmptyInput, op, nil, "please provide some text to summarize")
		}
	default:
		return failure.New(failure.EmptyInput, op, nil, "no input provided")
	}
	return nil
}

// Describe renders the input for log lines without dumping its content.
func (s Spec) Describe() string {
	switch s.kind {
	case KindYouTubeURL:
		return fmt.Sprintf("%s %s", s.kind, s.url)
	case KindDocument:
		return fmt.Sprintf("%s %s (%d bytes)", s.kind, s.filename, len(s.data))
	case KindText:
		return fmt.Sprintf("%s (%d chars)", s.kind, len(s.text))
	default:
		return s.kind.String()
	}
}

func validateURL(raw string) error {
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("missing host")
	}
	return nil
}
