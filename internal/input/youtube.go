package input

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var reVideoID = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// VideoID extracts the YouTube video identifier from the common URL shapes:
// watch?v=, youtu.be/, embed/, v/, shorts/ and live/, on www, m and music hosts.
func VideoID(raw string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("parse url: %w", err)
	}

	host := strings.ToLower(u.Hostname())
	segments := strings.Split(strings.Trim(u.Path, "/"), "/")

	var id string
	switch host {
	case "youtu.be":
		id = segments[0]
	case "youtube.com", "www.youtube.com", "m.youtube.com", "music.youtube.com":
		if len(segments) >= 2 {
			switch segments[0] {
			case "embed", "v", "shorts", "live":
				id = segments[1]
			}
		}
		if id == "" && segments[0] == "watch" {
			id = u.Query().Get("v")
		}
	default:
		return "", fmt.Errorf("not a YouTube host: %s", host)
	}

	if id == "" || !reVideoID.MatchString(id) {
		return "", fmt.Errorf("could not extract video ID from: %s", raw)
	}
	return id, nil
}
