package extract

import (
	"encoding/xml"
	"fmt"
	"html"
	"strings"
)

type playerResponse struct {
	PlayabilityStatus *struct {
		Status string `json:"status"`
		Reason string `json:"reason"`
	} `json:"playabilityStatus"`
	Captions *struct {
		PlayerCaptionsTracklistRenderer struct {
			CaptionTracks []captionTrack `json:"captionTracks"`
		} `json:"playerCaptionsTracklistRenderer"`
	} `json:"captions"`
}

type captionTrack struct {
	BaseURL      string `json:"baseUrl"`
	LanguageCode string `json:"languageCode"`
	Kind         string `json:"kind"`
}

func trackKind(t captionTrack) string {
	if t.Kind == "asr" {
		return "auto-generated"
	}
	return "manual"
}

// needsPoToken reports whether a track URL only works inside a browser session.
func needsPoToken(baseURL string) bool {
	return strings.Contains(baseURL, "&exp=xpe")
}

// pickBestTrack prefers a manual track in one of langs, then an auto-generated one,
// then any English track, then whatever is left.
func pickBestTrack(tracks []captionTrack, langs []string) (captionTrack, bool) {
	usable := make([]captionTrack, 0, len(tracks))
	for _, t := range tracks {
		if !needsPoToken(t.BaseURL) {
			usable = append(usable, t)
		}
	}
	if len(usable) == 0 {
		return captionTrack{}, false
	}

	for _, lang := range langs {
		for _, t := range usable {
			if t.LanguageCode == lang && t.Kind != "asr" {
				return t, true
			}
		}
	}
	for _, lang := range langs {
		for _, t := range usable {
			if t.LanguageCode == lang {
				return t, true
			}
		}
	}
	for _, t := range usable {
		if strings.HasPrefix(t.LanguageCode, "en") {
			return t, true
		}
	}
	return usable[0], true
}

// extractJSON returns the first balanced JSON object at the start of data, or nil.
func extractJSON(data []byte) []byte {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i, c := range data {
		if start < 0 {
			if c == '{' {
				start = i
				depth = 1
			} else if c != ' ' && c != '\t' && c != '\n' && c != '\r' {
				return nil
			}
			continue
		}

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return data[start : i+1]
			}
		}
	}
	return nil
}

// timedText covers both timedtext shapes: <transcript><text> and format 3 <timedtext><body><p>.
type timedText struct {
	Lines []timedLine `xml:"text"`
	Body  struct {
		Paragraphs []timedParagraph `xml:"p"`
	} `xml:"body"`
}

type timedLine struct {
	Text string `xml:",chardata"`
}

type timedParagraph struct {
	Text     string      `xml:",chardata"`
	Segments []timedLine `xml:"s"`
}

func parseTimedText(body []byte) (string, error) {
	var tt timedText
	if err := xml.Unmarshal(body, &tt); err != nil {
		return "", fmt.Errorf("parse timedtext XML: %w", err)
	}

	var parts []string
	for _, line := range tt.Lines {
		parts = appendCaption(parts, line.Text)
	}
	for _, p := range tt.Body.Paragraphs {
		if len(p.Segments) == 0 {
			parts = appendCaption(parts, p.Text)
			continue
		}
		var sb strings.Builder
		for _, seg := range p.Segments {
			sb.WriteString(seg.Text)
		}
		parts = appendCaption(parts, sb.String())
	}
	return strings.Join(parts, " "), nil
}

func appendCaption(parts []string, raw string) []string {
	// timedtext escapes entities twice; xml decoding undoes the first layer
	text := strings.Join(strings.Fields(html.UnescapeString(raw)), " ")
	if text == "" {
		return parts
	}
	return append(parts, text)
}
